package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

type VideoGet struct {
	Fetcher     datasources.VideoFetcher
	CacheMaxAge time.Duration
}

func (c VideoGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	w.Header().Set("Content-Type", "application/json")
	if domain.ViewerFromContext(r.Context()).IsAnonymous() {
		w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))
	}

	if err := json.NewEncoder(w).Encode(videos[0]); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write video to response", "error", err)
	}
}
