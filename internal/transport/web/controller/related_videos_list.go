package controller

import (
	"encoding/json"
	"fmt"
	"github.com/gorilla/mux"
	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
	"net/http"
	"time"
)

type RelatedVideosList struct {
	Fetcher     datasources.VideoFetcher
	Similarity  datasources.SimilarVideoLister
	CacheMaxAge time.Duration
}

func (c RelatedVideosList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	videoID := mux.Vars(r)["video_id"]

	similarVideos, err := c.Similarity.ListSimilarVideos(r.Context(), []string{videoID}, 10)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch related videos", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ids := make([]string, 0, len(similarVideos))
	for _, similar := range similarVideos {
		ids = append(ids, similar.HashID)
	}

	videos, err := c.Fetcher.FetchVideosByID(r.Context(), ids)
	if err != nil {
		ctx := r.Context()
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to fetch videos", "error", err)

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
