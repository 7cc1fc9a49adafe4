package controller

import (
	"encoding/json"
	"net/http"

	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

const maxTextBytes = 100 * 1024 // 100KB

type SemanticSearch struct {
	Embedder   datasources.Embedder
	Similarity datasources.SimilarVideosByVectorLister
	Fetcher    datasources.VideoFetcher
}

type semanticSearchRequest struct {
	Text  string `json:"text"`
	Limit int    `json:"limit"`
}

func (c SemanticSearch) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	var req semanticSearchRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxTextBytes+1024)).Decode(&req); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if req.Text == "" {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	if len(req.Text) > maxTextBytes {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	limit := req.Limit
	if limit <= 0 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	vector, err := c.Embedder.EmbedText(ctx, req.Text)
	if err != nil {
		logger.ErrorContext(ctx, "unable to embed text", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if vector == nil {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}

	similarVideos, err := c.Similarity.ListSimilarVideosByVector(ctx, nil, vector, limit)
	if err != nil {
		logger.ErrorContext(ctx, "unable to find similar videos", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	ids := make([]string, 0, len(similarVideos))
	for _, similar := range similarVideos {
		ids = append(ids, similar.HashID)
	}

	videos, err := c.Fetcher.FetchVideosByID(ctx, ids)
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch videos", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(VideosListResponse{
		Data:     videos,
		Metadata: VideosListMetadata{},
	}); err != nil {
		logger.ErrorContext(ctx, "unable to write videos to response", "error", err)
	}
}
