package controller

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

type VideosList struct {
	Lister interface {
		datasources.VideoLister
		datasources.VideoFetcher
	}
	CacheMaxAge time.Duration
}

type VideosListResponse struct {
	Data     []domain.Video     `json:"data"`
	Metadata VideosListMetadata `json:"metadata"`
}

type VideosListMetadata struct{}

func (c VideosList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	filters, err := videoFiltersFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse video filters in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	options, err := listOptionsFromQuery(r.URL.Query())
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to parse video list options in query string", "error", err)

		w.WriteHeader(http.StatusBadRequest)
		return
	}

	videoIDs, err := c.Lister.ListLatestVideoIDs(r.Context(), filters, options)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch video IDs", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	videos, err := c.Lister.FetchVideosByID(r.Context(), videoIDs)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch video metadata", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if err := json.NewEncoder(w).Encode(VideosListResponse{
		Data:     videos,
		Metadata: VideosListMetadata{},
	}); err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write videos to response", "error", err)
	}
}
