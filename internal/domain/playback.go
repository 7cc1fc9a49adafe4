package domain

import "time"

// PlaybackState is the state of a single playback session for one open
// video. Sessions are per page instance and never persisted; navigating
// away discards them.
type PlaybackState int

const (
	// StateIdle shows the poster; nothing is playing yet.
	StateIdle PlaybackState = iota
	// StatePlayingFull plays to completion with no restriction.
	StatePlayingFull
	// StatePlayingTrailer plays from zero against a bounded budget.
	StatePlayingTrailer
	// StateTrailerEnded blocks further viewing and shows the upsell,
	// until an explicit watch-again.
	StateTrailerEnded
	// StateError is the media-failure overlay, orthogonal to the
	// trailer budget. Recoverable only by an explicit reset.
	StateError
)

func (s PlaybackState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePlayingFull:
		return "playing_full"
	case StatePlayingTrailer:
		return "playing_trailer"
	case StateTrailerEnded:
		return "trailer_ended"
	case StateError:
		return "error"
	default:
		return "unknown"
	}
}

// PlaybackEvent is one input to the playback transition function.
type PlaybackEvent interface {
	isPlaybackEvent()
}

// EventPlay is the viewer pressing play from the poster.
type EventPlay struct{}

// EventTick reports elapsed wall-clock time since the trailer started.
// Embedded third-party players feed this from a polling timer armed at
// the player-ready callback, so buffering latency before playback does
// not consume the preview budget.
type EventTick struct {
	Elapsed time.Duration
}

// EventProgress reports the media playback position. Hosted media feeds
// this continuously from the native player.
type EventProgress struct {
	Position time.Duration
}

// EventWatchAgain restarts the trailer from the upsell panel.
type EventWatchAgain struct{}

// EventMediaError reports a media load or playback failure.
type EventMediaError struct{}

// EventReset dismisses the error overlay back to the poster.
type EventReset struct{}

func (EventPlay) isPlaybackEvent()       {}
func (EventTick) isPlaybackEvent()       {}
func (EventProgress) isPlaybackEvent()   {}
func (EventWatchAgain) isPlaybackEvent() {}
func (EventMediaError) isPlaybackEvent() {}
func (EventReset) isPlaybackEvent()      {}

// PlaybackEffect is a side effect the caller must perform after a
// transition.
type PlaybackEffect string

const (
	EffectExitFullscreen PlaybackEffect = "exit_fullscreen"
	EffectShowUpsell     PlaybackEffect = "show_upsell"
)

// Entitled decides whether a viewer may watch a video's full content.
func Entitled(video Video, viewer Viewer) bool {
	return video.AccessType == AccessTypeFree ||
		viewer.Subscription == SubscriptionActive ||
		viewer.IsAdmin()
}

// PlaybackSession is the access-gate state machine for one video page.
// Entitlement is computed once at session start and not re-checked
// mid-playback; a subscription activated mid-session takes effect on
// the next session.
type PlaybackSession struct {
	state           PlaybackState
	entitled        bool
	trailerDuration time.Duration

	// elapsed is the trailer budget consumed in the current attempt.
	// A media error preserves it; watch-again resets it.
	elapsed time.Duration
}

// NewPlaybackSession starts a session in StateIdle.
func NewPlaybackSession(video Video, viewer Viewer) *PlaybackSession {
	return &PlaybackSession{
		state:           StateIdle,
		entitled:        Entitled(video, viewer),
		trailerDuration: video.EffectiveTrailerDuration(),
	}
}

func (s *PlaybackSession) State() PlaybackState {
	return s.state
}

func (s *PlaybackSession) Entitled() bool {
	return s.entitled
}

// Elapsed is the trailer budget consumed by the current attempt.
func (s *PlaybackSession) Elapsed() time.Duration {
	return s.elapsed
}

// Apply runs one event through the transition function and returns the
// side effects the caller must perform. Events that do not apply to the
// current state are ignored.
func (s *PlaybackSession) Apply(event PlaybackEvent) []PlaybackEffect {
	switch ev := event.(type) {
	case EventPlay:
		return s.applyPlay()
	case EventTick:
		return s.applyBudget(ev.Elapsed)
	case EventProgress:
		return s.applyBudget(ev.Position)
	case EventWatchAgain:
		if s.state == StateTrailerEnded {
			s.state = StatePlayingTrailer
			s.elapsed = 0
		}
		return nil
	case EventMediaError:
		if s.state == StatePlayingFull || s.state == StatePlayingTrailer {
			s.state = StateError
		}
		return nil
	case EventReset:
		if s.state == StateError {
			s.state = StateIdle
		}
		return nil
	default:
		return nil
	}
}

func (s *PlaybackSession) applyPlay() []PlaybackEffect {
	if s.state != StateIdle {
		return nil
	}
	if s.entitled {
		s.state = StatePlayingFull
	} else {
		s.state = StatePlayingTrailer
	}
	return nil
}

// applyBudget handles both cutoff mechanisms: wall-clock ticks for
// embedded sources and media position for hosted sources both report
// trailer-relevant playback time against the same budget.
func (s *PlaybackSession) applyBudget(elapsed time.Duration) []PlaybackEffect {
	if s.state != StatePlayingTrailer {
		return nil
	}

	s.elapsed = elapsed
	if elapsed < s.trailerDuration {
		return nil
	}

	s.state = StateTrailerEnded
	return []PlaybackEffect{EffectExitFullscreen, EffectShowUpsell}
}
