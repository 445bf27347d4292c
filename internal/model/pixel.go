package model

import (
	"strings"
	"time"
)

// PixelFrequency controls how often a pixel may fire.
type PixelFrequency string

const (
	// FrequencyStandard fires every time.
	FrequencyStandard PixelFrequency = "standard"
	// FrequencyDaily fires at most once per calendar day per pixel name.
	FrequencyDaily PixelFrequency = "daily"
	// FrequencyUnique fires at most once ever per pixel name.
	FrequencyUnique PixelFrequency = "unique"
)

// PixelRecord is a fired telemetry event as stored locally.
type PixelRecord struct {
	Key        string            `json:"key"`
	Name       string            `json:"name"`
	Frequency  PixelFrequency    `json:"frequency"`
	Parameters map[string]string `json:"parameters,omitempty"`
	FiredAt    time.Time         `json:"fired_at"`
}

// SetKey sets the database key for this pixel record.
func (p *PixelRecord) SetKey(key string) {
	p.Key = key
}

// GetKey returns the database key for this pixel record.
func (p *PixelRecord) GetKey() string {
	return p.Key
}

// ID returns the record identifier without the key prefix.
func (p *PixelRecord) ID() string {
	return strings.TrimPrefix(p.Key, PrefixPixel)
}

// GeneratePixelKey creates a database key for a pixel record.
func GeneratePixelKey(id string) string {
	return PrefixPixel + id
}
