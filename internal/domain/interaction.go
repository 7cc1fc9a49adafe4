package domain

import (
	"fmt"
	"time"
)

// SignalType names one engagement signal a viewer can send for a video.
type SignalType string

const (
	SignalViewed    SignalType = "viewed"
	SignalLiked     SignalType = "liked"
	SignalWatched   SignalType = "watched"
	SignalCompleted SignalType = "completed"
	SignalDisliked  SignalType = "disliked"
	SignalSkipped   SignalType = "skipped"
)

var ValidSignalTypes = []SignalType{
	SignalViewed,
	SignalLiked,
	SignalWatched,
	SignalCompleted,
	SignalDisliked,
	SignalSkipped,
}

// ParseSignalType validates a signal name from the wire.
func ParseSignalType(s string) (SignalType, error) {
	for _, t := range ValidSignalTypes {
		if SignalType(s) == t {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown interaction signal [%s]", s)
}

// InteractionFlags is the boolean engagement state of one viewer-video pair.
type InteractionFlags struct {
	Viewed    bool `json:"viewed"`
	Liked     bool `json:"liked"`
	Watched   bool `json:"watched"`
	Completed bool `json:"completed"`
	Disliked  bool `json:"disliked"`
	Skipped   bool `json:"skipped"`
}

// Merge applies one incoming signal to the stored flags. Existing flags
// are kept (a flag once true stays true) except the flag the signal
// names, which takes the signal's value.
func (f InteractionFlags) Merge(signal SignalType, value bool) InteractionFlags {
	merged := f
	switch signal {
	case SignalViewed:
		merged.Viewed = value
	case SignalLiked:
		merged.Liked = value
	case SignalWatched:
		merged.Watched = value
	case SignalCompleted:
		merged.Completed = value
	case SignalDisliked:
		merged.Disliked = value
	case SignalSkipped:
		merged.Skipped = value
	}
	return merged
}

// Positive reports whether the flags carry any affirmative engagement,
// used to seed recommendation lookups.
func (f InteractionFlags) Positive() bool {
	return f.Liked || f.Watched || f.Completed
}

// Interaction is the stored engagement record for one viewer-video pair,
// unique on the pair. Score is always derived from the flags, never
// incremented independently.
type Interaction struct {
	ViewerID    string           `json:"viewer_id"`
	VideoHashID string           `json:"video_hash_id"`
	Flags       InteractionFlags `json:"flags"`
	Score       int              `json:"score"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// ScoreWeights maps each engagement flag to its score contribution.
type ScoreWeights struct {
	Viewed    int
	Liked     int
	Watched   int
	Completed int
	Disliked  int
	Skipped   int
}

// DefaultScoreWeights returns the production weighting.
func DefaultScoreWeights() ScoreWeights {
	return ScoreWeights{
		Viewed:    1,
		Liked:     5,
		Watched:   3,
		Completed: 10,
		Disliked:  -5,
		Skipped:   -2,
	}
}

// Score computes the relevance score for a flag combination as the sum
// of the weights of the set flags. No clamping or normalization.
func (w ScoreWeights) Score(f InteractionFlags) int {
	score := 0
	if f.Viewed {
		score += w.Viewed
	}
	if f.Liked {
		score += w.Liked
	}
	if f.Watched {
		score += w.Watched
	}
	if f.Completed {
		score += w.Completed
	}
	if f.Disliked {
		score += w.Disliked
	}
	if f.Skipped {
		score += w.Skipped
	}
	return score
}
