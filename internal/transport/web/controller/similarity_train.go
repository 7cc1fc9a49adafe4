package controller

import (
	"encoding/json"
	"net/http"

	"github.com/kushalstream/kushal-stream/internal/command"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

// SimilarityTrain triggers a full similarity training run and reports
// what it processed. Runs synchronously; the batch is small enough that
// an admin request can wait for it.
type SimilarityTrain struct {
	Command *command.TrainSimilarity
}

func (c SimilarityTrain) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	result, err := c.Command.Execute(ctx, command.TrainSimilarityRequest{})
	if err != nil {
		logger.ErrorContext(ctx, "unable to run similarity training", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(result); err != nil {
		logger.ErrorContext(ctx, "unable to write training result to response", "error", err)
	}
}
