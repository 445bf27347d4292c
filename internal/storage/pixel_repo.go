package storage

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/manav03panchal/dockprompt/internal/model"
)

// PixelRepo stores fired pixels and the markers used for frequency limits.
type PixelRepo struct {
	db *DB
}

// NewPixelRepo creates a new pixel repository.
func NewPixelRepo(db *DB) *PixelRepo {
	return &PixelRepo{db: db}
}

// Create stores a pixel record with a generated time-ordered key.
func (r *PixelRepo) Create(record *model.PixelRecord) error {
	if record.Key == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return err
		}
		record.Key = model.GeneratePixelKey(id.String())
	}
	return r.db.Set(record)
}

// List returns stored pixels, newest first. A limit of 0 returns all.
func (r *PixelRepo) List(limit int) ([]*model.PixelRecord, error) {
	records, err := GetAllByPrefix(r.db, model.PrefixPixel, func() *model.PixelRecord {
		return &model.PixelRecord{}
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(records, func(i, j int) bool {
		return records[i].FiredAt.After(records[j].FiredAt)
	})

	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

// ListByName returns stored pixels with the given name, newest first.
func (r *PixelRepo) ListByName(name string) ([]*model.PixelRecord, error) {
	all, err := r.List(0)
	if err != nil {
		return nil, err
	}
	var result []*model.PixelRecord
	for _, rec := range all {
		if rec.Name == name {
			result = append(result, rec)
		}
	}
	return result, nil
}

// LastFired returns when the named pixel last passed its frequency check.
func (r *PixelRepo) LastFired(name string) (time.Time, bool, error) {
	var epoch int64
	err := r.db.GetJSON(model.PrefixPixelFired+name, &epoch)
	if err != nil {
		if IsErrKeyNotFound(err) {
			return time.Time{}, false, nil
		}
		return time.Time{}, false, err
	}
	return time.Unix(epoch, 0), true, nil
}

// MarkFired records that the named pixel fired at t.
func (r *PixelRepo) MarkFired(name string, t time.Time) error {
	return r.db.SetJSON(model.PrefixPixelFired+name, t.Unix())
}

// Clear removes all stored pixels and frequency markers.
func (r *PixelRepo) Clear() (int, error) {
	n, err := r.db.DeleteByPrefix(model.PrefixPixel)
	if err != nil {
		return 0, err
	}
	m, err := r.db.DeleteByPrefix(model.PrefixPixelFired)
	if err != nil {
		return n, err
	}
	return n + m, nil
}
