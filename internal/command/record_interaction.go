package command

import (
	"context"
	"fmt"

	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

// RecordInteractionRequest is the request for the RecordInteraction command.
type RecordInteractionRequest struct {
	ViewerID    string
	VideoHashID string
	Signal      domain.SignalType
	Value       bool
}

// RecordInteraction applies one engagement signal to a viewer-video
// interaction. The repository merges flags and recomputes the score
// from the merged state; there is no direct score increment path.
type RecordInteraction struct {
	VideoFetcher datasources.VideoFetcher
	Recorder     datasources.InteractionRecorder
	Weights      domain.ScoreWeights
}

// NewRecordInteraction creates a properly initialized RecordInteraction command.
func NewRecordInteraction(
	videoFetcher datasources.VideoFetcher,
	recorder datasources.InteractionRecorder,
	weights domain.ScoreWeights,
) *RecordInteraction {
	return &RecordInteraction{
		VideoFetcher: videoFetcher,
		Recorder:     recorder,
		Weights:      weights,
	}
}

// Execute records the signal and returns the full upserted interaction.
func (c *RecordInteraction) Execute(
	ctx context.Context, req RecordInteractionRequest,
) (domain.Interaction, error) {
	logger := domain.LoggerFromContext(ctx)

	videos, err := c.VideoFetcher.FetchVideosByID(ctx, []string{req.VideoHashID})
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("fetching video: %w", err)
	}
	if len(videos) == 0 {
		return domain.Interaction{}, fmt.Errorf("unknown video [%s]", req.VideoHashID)
	}

	interaction, err := c.Recorder.RecordInteractionSignal(
		ctx, req.ViewerID, req.VideoHashID, req.Signal, req.Value, c.Weights,
	)
	if err != nil {
		return domain.Interaction{}, fmt.Errorf("recording interaction signal: %w", err)
	}

	logger.DebugContext(ctx, "recorded interaction signal",
		"video_hash_id", req.VideoHashID,
		"signal", req.Signal,
		"value", req.Value,
		"score", interaction.Score,
	)

	return interaction, nil
}
