package domain

import (
	"fmt"
	"time"
)

// AccessType gates whether a video's full content is open to everyone
// or reserved for subscribers.
type AccessType string

const (
	AccessTypeFree    AccessType = "free"
	AccessTypePremium AccessType = "premium"
)

// SourceKind distinguishes media we host directly from media embedded
// from a third-party player. Trailer cutoff for hosted media is driven
// by playback position; embedded media is driven by wall-clock polling.
type SourceKind string

const (
	SourceKindHosted   SourceKind = "hosted"
	SourceKindEmbedded SourceKind = "embedded"
)

const (
	DefaultTrailerDurationSeconds = 30
	MinTrailerDurationSeconds     = 10
	MaxTrailerDurationSeconds     = 120
)

type Video struct {
	HashID                 string     `json:"hash_id"`
	Title                  string     `json:"title"`
	DescriptionStart       string     `json:"description_start"`
	Channel                string     `json:"channel"`
	SourceURL              string     `json:"source_url"`
	SourceKind             SourceKind `json:"source_kind"`
	AccessType             AccessType `json:"access_type"`
	TrailerDurationSeconds int        `json:"trailer_duration_seconds"`
	PublishedAt            time.Time  `json:"published_at"`

	// Per-viewer annotations, only populated for authenticated requests.
	Viewed *bool `json:"viewed,omitempty"`
	Liked  *bool `json:"liked,omitempty"`
	Score  *int  `json:"score,omitempty"`
}

// EffectiveTrailerDuration is the trailer window used at playback time.
// An unset duration falls back to the default; a configured value
// outside the creation-time range is honored as-is.
func (v Video) EffectiveTrailerDuration() time.Duration {
	seconds := v.TrailerDurationSeconds
	if seconds <= 0 {
		seconds = DefaultTrailerDurationSeconds
	}
	return time.Duration(seconds) * time.Second
}

// ValidateForCreation checks the constraints enforced when a video is
// added to the catalog. Playback never re-validates.
func (v Video) ValidateForCreation() error {
	if v.HashID == "" {
		return fmt.Errorf("video hash ID is required")
	}
	if v.Title == "" {
		return fmt.Errorf("video title is required")
	}
	switch v.AccessType {
	case AccessTypeFree, AccessTypePremium:
	default:
		return fmt.Errorf("unknown access type [%s]", v.AccessType)
	}
	switch v.SourceKind {
	case SourceKindHosted, SourceKindEmbedded:
	default:
		return fmt.Errorf("unknown source kind [%s]", v.SourceKind)
	}
	if v.TrailerDurationSeconds != 0 &&
		(v.TrailerDurationSeconds < MinTrailerDurationSeconds ||
			v.TrailerDurationSeconds > MaxTrailerDurationSeconds) {
		return fmt.Errorf("trailer duration [%d] outside valid range [%d-%d]",
			v.TrailerDurationSeconds, MinTrailerDurationSeconds, MaxTrailerDurationSeconds)
	}
	return nil
}

type VideoFilters struct {
	OnlyChannels    []string
	ExceptChannels  []string
	AccessType      AccessType
	PublishedAfter  time.Time
	PublishedBefore time.Time
}

type VideoListOptions struct {
	Ordering       []VideoOrdering
	Page, PageSize int
}

type VideoOrdering struct {
	Field VideoOrderingField
	Desc  bool
}

type VideoOrderingField string

const VideoOrderingFieldPublishedAt VideoOrderingField = "published_at"
const VideoOrderingFieldChannel VideoOrderingField = "channel"
const VideoOrderingFieldTitle VideoOrderingField = "title"

var ValidOrderingFields = []VideoOrderingField{
	VideoOrderingFieldPublishedAt,
	VideoOrderingFieldChannel,
	VideoOrderingFieldTitle,
}
