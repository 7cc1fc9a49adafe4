package controller

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/kushalstream/kushal-stream/internal/command"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

// Bool string constants for route parameters.
const (
	boolTrue  = "true"
	boolFalse = "false"
)

// InteractionSet applies one engagement signal for the signed-in viewer
// and returns the upserted interaction, so the client can refresh its
// local copy without a follow-up fetch.
type InteractionSet struct {
	Command *command.RecordInteraction
}

func (c InteractionSet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["video_id"]
	logger := domain.LoggerFromContext(r.Context())
	ctx := domain.ContextWithLogger(r.Context(), logger.With("video_id", id))

	signal, err := domain.ParseSignalType(vars["signal"])
	if err != nil {
		logger.ErrorContext(ctx, "invalid signal", "signal", vars["signal"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var value bool
	switch vars["value"] {
	case boolTrue:
		value = true
	case boolFalse:
		value = false
	default:
		logger.ErrorContext(ctx, "invalid value", "value", vars["value"])
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	viewer := domain.ViewerFromContext(r.Context())
	interaction, err := c.Command.Execute(ctx, command.RecordInteractionRequest{
		ViewerID:    viewer.ID,
		VideoHashID: id,
		Signal:      signal,
		Value:       value,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to record interaction", "error", err)

		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")

	if err := json.NewEncoder(w).Encode(interaction); err != nil {
		logger.ErrorContext(ctx, "unable to write interaction to response", "error", err)
	}
}
