// Package telemetry records prompt pixels locally and optionally forwards
// them to a collection endpoint.
package telemetry

import (
	"context"
	"encoding/json"
	"time"

	"github.com/manav03panchal/dockprompt/internal/logging"
	"github.com/manav03panchal/dockprompt/internal/model"
	"github.com/manav03panchal/dockprompt/internal/notify"
	"github.com/manav03panchal/dockprompt/internal/storage"
)

// Sender delivers an encoded pixel.
type Sender interface {
	Send(ctx context.Context, url string, contentType string, body []byte) *notify.SendResult
}

// Options configures a Recorder.
type Options struct {
	// Endpoint receives a JSON POST per pixel. Empty disables delivery.
	Endpoint string
	Sender   Sender
	Now      func() time.Time
	// SameDay reports whether two instants share a calendar day.
	SameDay func(a, b time.Time) bool
}

// Recorder fires pixels subject to their frequency.
type Recorder struct {
	repo     *storage.PixelRepo
	endpoint string
	sender   Sender
	now      func() time.Time
	sameDay  func(a, b time.Time) bool
}

// NewRecorder creates a recorder backed by repo.
func NewRecorder(repo *storage.PixelRepo, opts Options) *Recorder {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.SameDay == nil {
		opts.SameDay = func(a, b time.Time) bool {
			ay, am, ad := a.Date()
			by, bm, bd := b.In(a.Location()).Date()
			return ay == by && am == bm && ad == bd
		}
	}
	return &Recorder{
		repo:     repo,
		endpoint: opts.Endpoint,
		sender:   opts.Sender,
		now:      opts.Now,
		sameDay:  opts.SameDay,
	}
}

// Remote reports whether pixels are forwarded to an endpoint.
func (r *Recorder) Remote() bool {
	return r.endpoint != "" && r.sender != nil
}

type pixelPayload struct {
	Pixel      string            `json:"pixel"`
	Frequency  string            `json:"frequency"`
	Parameters map[string]string `json:"parameters,omitempty"`
	Timestamp  int64             `json:"timestamp"`
}

// Fire records the pixel unless its frequency forbids it. Failures are
// logged and never returned.
func (r *Recorder) Fire(name string, frequency model.PixelFrequency, params map[string]string) {
	now := r.now()

	allowed, err := r.allowed(name, frequency, now)
	if err != nil {
		logging.Warn("failed to check pixel frequency",
			logging.KeyPixel, name,
			logging.KeyError, err)
		return
	}
	if !allowed {
		logging.DebugLog("pixel suppressed",
			logging.KeyPixel, name,
			logging.KeyFrequency, string(frequency))
		return
	}

	record := &model.PixelRecord{
		Name:       name,
		Frequency:  frequency,
		Parameters: params,
		FiredAt:    now,
	}
	if err := r.repo.Create(record); err != nil {
		logging.Warn("failed to store pixel", logging.KeyPixel, name, logging.KeyError, err)
		return
	}
	if frequency != model.FrequencyStandard {
		if err := r.repo.MarkFired(name, now); err != nil {
			logging.Warn("failed to mark pixel fired", logging.KeyPixel, name, logging.KeyError, err)
		}
	}

	logging.DebugLog("pixel fired",
		logging.KeyPixel, name,
		logging.KeyFrequency, string(frequency))

	r.deliver(record)
}

func (r *Recorder) allowed(name string, frequency model.PixelFrequency, now time.Time) (bool, error) {
	if frequency == model.FrequencyStandard {
		return true, nil
	}
	last, fired, err := r.repo.LastFired(name)
	if err != nil {
		return false, err
	}
	if !fired {
		return true, nil
	}
	if frequency == model.FrequencyDaily {
		return !r.sameDay(last, now), nil
	}
	return false, nil
}

func (r *Recorder) deliver(record *model.PixelRecord) {
	if !r.Remote() {
		return
	}
	body, err := json.Marshal(pixelPayload{
		Pixel:      record.Name,
		Frequency:  string(record.Frequency),
		Parameters: record.Parameters,
		Timestamp:  record.FiredAt.Unix(),
	})
	if err != nil {
		logging.Warn("failed to encode pixel", logging.KeyPixel, record.Name, logging.KeyError, err)
		return
	}
	result := r.sender.Send(context.Background(), r.endpoint, "application/json", body)
	if result.Error != nil {
		logging.Warn("failed to deliver pixel",
			logging.KeyPixel, record.Name,
			"endpoint", logging.MaskURL(r.endpoint),
			logging.KeyError, result.Error)
	}
}
