package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/notify"
	"github.com/manav03panchal/dockprompt/internal/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *storage.DB {
	db, err := storage.Open(storage.Options{InMemory: true})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

type fakeSender struct {
	bodies [][]byte
	err    error
}

func (s *fakeSender) Send(_ context.Context, _ string, _ string, body []byte) *notify.SendResult {
	s.bodies = append(s.bodies, body)
	return &notify.SendResult{StatusCode: 200, Attempts: 1, Error: s.err}
}

type testClock struct{ t time.Time }

func (c *testClock) Now() time.Time { return c.t }

func newRecorder(t *testing.T, opts Options) (*Recorder, *storage.PixelRepo, *testClock) {
	repo := storage.NewPixelRepo(setupTestDB(t))
	clk := &testClock{t: time.Date(2025, 5, 1, 10, 0, 0, 0, time.UTC)}
	opts.Now = clk.Now
	return NewRecorder(repo, opts), repo, clk
}

func TestFireStandardAlwaysRecords(t *testing.T) {
	r, repo, _ := newRecorder(t, Options{})

	r.Fire("m_test", model.FrequencyStandard, map[string]string{"contentType": "add-to-dock"})
	r.Fire("m_test", model.FrequencyStandard, nil)

	records, err := repo.ListByName("m_test")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFireDailyOncePerDay(t *testing.T) {
	r, repo, clk := newRecorder(t, Options{})

	r.Fire("m_daily", model.FrequencyDaily, nil)
	clk.t = clk.t.Add(6 * time.Hour)
	r.Fire("m_daily", model.FrequencyDaily, nil)

	records, err := repo.ListByName("m_daily")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	clk.t = clk.t.Add(24 * time.Hour)
	r.Fire("m_daily", model.FrequencyDaily, nil)

	records, err = repo.ListByName("m_daily")
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFireUniqueOnce(t *testing.T) {
	r, repo, clk := newRecorder(t, Options{})

	r.Fire("m_unique", model.FrequencyUnique, nil)
	clk.t = clk.t.AddDate(0, 1, 0)
	r.Fire("m_unique", model.FrequencyUnique, nil)

	records, err := repo.ListByName("m_unique")
	require.NoError(t, err)
	assert.Len(t, records, 1)

	// Other names are independent.
	r.Fire("m_other", model.FrequencyUnique, nil)
	records, err = repo.List(0)
	require.NoError(t, err)
	assert.Len(t, records, 2)
}

func TestFireDeliversToEndpoint(t *testing.T) {
	sender := &fakeSender{}
	r, _, _ := newRecorder(t, Options{Endpoint: "https://pixels.example.com/e", Sender: sender})

	r.Fire("m_test", model.FrequencyStandard, map[string]string{"numberOfBannersShown": "3"})

	require.Len(t, sender.bodies, 1)
	var payload pixelPayload
	require.NoError(t, json.Unmarshal(sender.bodies[0], &payload))
	assert.Equal(t, "m_test", payload.Pixel)
	assert.Equal(t, "standard", payload.Frequency)
	assert.Equal(t, "3", payload.Parameters["numberOfBannersShown"])
}

func TestFireDeliveryFailureKeepsRecord(t *testing.T) {
	sender := &fakeSender{err: errors.New("offline")}
	r, repo, _ := newRecorder(t, Options{Endpoint: "https://pixels.example.com/e", Sender: sender})

	r.Fire("m_test", model.FrequencyUnique, nil)

	records, err := repo.List(0)
	require.NoError(t, err)
	assert.Len(t, records, 1)
}

func TestFireWithoutEndpointSkipsDelivery(t *testing.T) {
	sender := &fakeSender{}
	r, _, _ := newRecorder(t, Options{Sender: sender})

	r.Fire("m_test", model.FrequencyStandard, nil)
	assert.Empty(t, sender.bodies)
}
