package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

// Playback mode strings returned to the player.
const (
	playbackModeFull    = "full"
	playbackModeTrailer = "trailer"
)

// VideoPlayback resolves the playback grant for one video and viewer.
// The client's player opens a session from this response; entitlement
// is decided here, once, and holds for the whole session.
type VideoPlayback struct {
	Fetcher datasources.VideoFetcher
}

type VideoPlaybackResponse struct {
	Mode                   string `json:"mode"`
	SourceURL              string `json:"source_url"`
	SourceKind             string `json:"source_kind"`
	TrailerDurationSeconds int    `json:"trailer_duration_seconds,omitempty"`
}

func (c VideoPlayback) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["video_id"]

	videos, err := c.Fetcher.FetchVideosByID(r.Context(), []string{id})
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch video", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if len(videos) == 0 {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	video := videos[0]
	viewer := domain.ViewerFromContext(r.Context())

	response := VideoPlaybackResponse{
		Mode:       playbackModeFull,
		SourceURL:  video.SourceURL,
		SourceKind: string(video.SourceKind),
	}
	if !domain.Entitled(video, viewer) {
		response.Mode = playbackModeTrailer
		response.TrailerDurationSeconds = int(video.EffectiveTrailerDuration().Seconds())
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(response); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write playback grant to response", "error", err)
	}
}
