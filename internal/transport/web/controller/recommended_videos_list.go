package controller

import (
	"encoding/json"
	"net/http"

	"github.com/kushalstream/kushal-stream/internal/command"
	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

type RecommendedVideosList struct {
	Command *command.RecommendVideos
	Fetcher datasources.VideoFetcher
}

func (c RecommendedVideosList) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	viewer := domain.ViewerFromContext(ctx)
	if viewer.IsAnonymous() {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	similarVideos, err := c.Command.Execute(ctx, command.RecommendVideosRequest{
		ViewerID: viewer.ID,
		Limit:    10,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get recommended videos", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ids := make([]string, 0, len(similarVideos))
	for _, similar := range similarVideos {
		ids = append(ids, similar.HashID)
	}

	videos, err := c.Fetcher.FetchVideosByID(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch video metadata", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if videos == nil {
		videos = []domain.Video{}
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(VideosListResponse{
		Data:     videos,
		Metadata: VideosListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write recommended videos to response", "error", err)
	}
}
