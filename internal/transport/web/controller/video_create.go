package controller

import (
	"encoding/json"
	"net/http"

	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

const maxVideoBodyBytes = 64 * 1024

// VideoCreate adds a video to the catalog. Trailer duration is
// validated here against the allowed range; a zero value means the
// platform default.
type VideoCreate struct {
	Creator datasources.VideoCreator
}

func (c VideoCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var video domain.Video
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxVideoBodyBytes)).Decode(&video); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if err := video.ValidateForCreation(); err != nil {
		logger.ErrorContext(ctx, "invalid video", "error", err)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(map[string]string{"message": err.Error()})
		return
	}

	if err := c.Creator.CreateVideo(ctx, video); err != nil {
		logger.ErrorContext(ctx, "unable to create video", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)

	if err := json.NewEncoder(w).Encode(video); err != nil {
		logger.ErrorContext(ctx, "unable to write video to response", "error", err)
	}
}
