package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

// ViewerVideosLister is a function type that lists video IDs for a viewer with pagination.
type ViewerVideosLister func(ctx context.Context, viewerID string, page, pageSize int) ([]string, error)

// HistoryList serves the viewer's watch history, most recent first.
type HistoryList struct {
	Fetcher  datasources.VideoFetcher
	ListFunc ViewerVideosLister
}

func (c HistoryList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	viewer := domain.ViewerFromContext(ctx)
	if viewer.IsAnonymous() {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	page, pageSize, err := parsePagination(r.URL.Query())
	if err != nil {
		logger.ErrorContext(ctx, "unable to parse pagination", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	videoIDs, err := c.ListFunc(ctx, viewer.ID, page, pageSize)
	if err != nil {
		logger.ErrorContext(ctx, "unable to list history video IDs", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	videos, err := c.Fetcher.FetchVideosByID(ctx, videoIDs)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch video metadata", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(VideosListResponse{
		Data:     videos,
		Metadata: VideosListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write history videos to response", "error", err)
	}
}
