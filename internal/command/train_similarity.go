package command

import (
	"context"
	"fmt"
	"sort"

	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

// TrainSimilarityRequest is the request for the TrainSimilarity command.
// It carries no parameters; the trainer always runs over the full
// interaction set.
type TrainSimilarityRequest struct{}

// TrainSimilarityResult reports what a training run processed and wrote.
type TrainSimilarityResult struct {
	InteractionsProcessed int `json:"interactions_processed"`
	VideosCompared        int `json:"videos_compared"`
	RowsWritten           int `json:"rows_written"`
}

// TrainSimilarityConfig holds the trainer's tunables.
type TrainSimilarityConfig struct {
	// Algorithm tags the rows this trainer owns in the similarity store.
	Algorithm string

	// RelevanceThreshold prunes pairs whose similarity does not exceed it.
	RelevanceThreshold float64
}

// TrainSimilarity batch-computes pairwise video similarity from the
// full interaction set and replaces the stored slice for its algorithm.
//
// The replace is delete-then-insert without a wrapping transaction, so
// a failed run can leave the slice empty until the next successful run.
// At most one run should execute at a time; this is an operational
// convention, not enforced by locking.
type TrainSimilarity struct {
	Interactions datasources.AllInteractionsLister
	Similarity   datasources.SimilarityReplacer
	Config       TrainSimilarityConfig
}

// NewTrainSimilarity creates a properly initialized TrainSimilarity command.
func NewTrainSimilarity(
	interactions datasources.AllInteractionsLister,
	similarity datasources.SimilarityReplacer,
	config TrainSimilarityConfig,
) *TrainSimilarity {
	return &TrainSimilarity{
		Interactions: interactions,
		Similarity:   similarity,
		Config:       config,
	}
}

// Execute runs one training pass. Deterministic for identical
// interaction data, and idempotent when rerun on unchanged data.
func (c *TrainSimilarity) Execute(
	ctx context.Context, _ TrainSimilarityRequest,
) (TrainSimilarityResult, error) {
	logger := domain.LoggerFromContext(ctx)

	interactions, err := c.Interactions.ListAllInteractions(ctx)
	if err != nil {
		return TrainSimilarityResult{}, fmt.Errorf("listing interactions: %w", err)
	}

	matrix := buildScoreMatrix(interactions)
	entries := c.computeSimilarities(matrix)

	if err := c.Similarity.ReplaceSimilarities(ctx, c.Config.Algorithm, entries); err != nil {
		return TrainSimilarityResult{}, fmt.Errorf("replacing similarities: %w", err)
	}

	result := TrainSimilarityResult{
		InteractionsProcessed: len(interactions),
		VideosCompared:        len(matrix),
		RowsWritten:           len(entries),
	}

	logger.InfoContext(ctx, "similarity training run complete",
		"algorithm", c.Config.Algorithm,
		"interactions_processed", result.InteractionsProcessed,
		"videos_compared", result.VideosCompared,
		"rows_written", result.RowsWritten,
	)

	return result, nil
}

// buildScoreMatrix turns interaction rows into a sparse video-to-viewer
// score mapping. Each video only has entries for viewers who interacted
// with it.
func buildScoreMatrix(interactions []domain.Interaction) map[string]domain.ScoreVector {
	matrix := make(map[string]domain.ScoreVector)
	for _, interaction := range interactions {
		vector, ok := matrix[interaction.VideoHashID]
		if !ok {
			vector = make(domain.ScoreVector)
			matrix[interaction.VideoHashID] = vector
		}
		vector[interaction.ViewerID] = interaction.Score
	}
	return matrix
}

// computeSimilarities evaluates every unordered pair of videos and
// keeps pairs above the relevance threshold, written in both
// directions. Video IDs are sorted first so identical data always
// produces identical output.
func (c *TrainSimilarity) computeSimilarities(
	matrix map[string]domain.ScoreVector,
) []domain.VideoSimilarity {
	videoIDs := make([]string, 0, len(matrix))
	for videoID := range matrix {
		videoIDs = append(videoIDs, videoID)
	}
	sort.Strings(videoIDs)

	var entries []domain.VideoSimilarity
	for i := 0; i < len(videoIDs); i++ {
		for j := i + 1; j < len(videoIDs); j++ {
			similarity := domain.CosineSimilarity(matrix[videoIDs[i]], matrix[videoIDs[j]])
			if similarity <= c.Config.RelevanceThreshold {
				continue
			}

			entries = append(entries,
				domain.VideoSimilarity{VideoA: videoIDs[i], VideoB: videoIDs[j], Score: similarity},
				domain.VideoSimilarity{VideoA: videoIDs[j], VideoB: videoIDs[i], Score: similarity},
			)
		}
	}

	return entries
}
