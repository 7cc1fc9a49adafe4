package command

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/kushalstream/kushal-stream/internal/datasources/mocks"
	"github.com/kushalstream/kushal-stream/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testTrainConfig() TrainSimilarityConfig {
	return TrainSimilarityConfig{
		Algorithm:          domain.AlgorithmCollaborative,
		RelevanceThreshold: 0.1,
	}
}

func interaction(viewerID, videoID string, score int) domain.Interaction {
	return domain.Interaction{ViewerID: viewerID, VideoHashID: videoID, Score: score}
}

func TestTrainSimilarity_Execute(t *testing.T) {
	// v1 and v2 share viewers with aligned scores; v3 shares nobody.
	interactions := []domain.Interaction{
		interaction("u1", "v1", 5),
		interaction("u2", "v1", 3),
		interaction("u1", "v2", 10),
		interaction("u2", "v2", 6),
		interaction("u3", "v3", 8),
	}

	lister := mocks.NewMockAllInteractionsLister(t)
	replacer := mocks.NewMockSimilarityReplacer(t)

	lister.EXPECT().ListAllInteractions(mock.Anything).Return(interactions, nil)

	var written []domain.VideoSimilarity
	replacer.EXPECT().
		ReplaceSimilarities(mock.Anything, domain.AlgorithmCollaborative, mock.Anything).
		Run(func(_ context.Context, _ string, entries []domain.VideoSimilarity) {
			written = entries
		}).
		Return(nil)

	cmd := NewTrainSimilarity(lister, replacer, testTrainConfig())

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	result, err := cmd.Execute(ctx, TrainSimilarityRequest{})
	require.NoError(t, err)

	assert.Equal(t, 5, result.InteractionsProcessed)
	assert.Equal(t, 3, result.VideosCompared)

	// One qualifying pair (v1, v2), written in both directions.
	assert.Equal(t, 2, result.RowsWritten)
	require.Len(t, written, 2)
	assert.Equal(t, "v1", written[0].VideoA)
	assert.Equal(t, "v2", written[0].VideoB)
	assert.Equal(t, "v2", written[1].VideoA)
	assert.Equal(t, "v1", written[1].VideoB)
	assert.Equal(t, written[0].Score, written[1].Score)
	assert.InDelta(t, 1.0, written[0].Score, 0.01)
}

// Row count is always twice the number of qualifying pairs.
func TestTrainSimilarity_Execute_RowCountTwicePairs(t *testing.T) {
	// Three videos rated identically by the same viewers: all three
	// pairs qualify.
	interactions := []domain.Interaction{
		interaction("u1", "v1", 5), interaction("u2", "v1", 3),
		interaction("u1", "v2", 5), interaction("u2", "v2", 3),
		interaction("u1", "v3", 5), interaction("u2", "v3", 3),
	}

	lister := mocks.NewMockAllInteractionsLister(t)
	replacer := mocks.NewMockSimilarityReplacer(t)

	lister.EXPECT().ListAllInteractions(mock.Anything).Return(interactions, nil)
	replacer.EXPECT().
		ReplaceSimilarities(mock.Anything, domain.AlgorithmCollaborative, mock.Anything).
		Return(nil)

	cmd := NewTrainSimilarity(lister, replacer, testTrainConfig())

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	result, err := cmd.Execute(ctx, TrainSimilarityRequest{})
	require.NoError(t, err)

	assert.Equal(t, 2*3, result.RowsWritten)
}

func TestTrainSimilarity_Execute_ThresholdPrunes(t *testing.T) {
	// Orthogonal-ish vectors: small positive similarity below threshold.
	interactions := []domain.Interaction{
		interaction("u1", "v1", 10), interaction("u2", "v1", 1),
		interaction("u1", "v2", 1), interaction("u2", "v2", 10),
	}

	lister := mocks.NewMockAllInteractionsLister(t)
	replacer := mocks.NewMockSimilarityReplacer(t)

	lister.EXPECT().ListAllInteractions(mock.Anything).Return(interactions, nil)
	replacer.EXPECT().
		ReplaceSimilarities(mock.Anything, domain.AlgorithmCollaborative, mock.Anything).
		Return(nil)

	cfg := testTrainConfig()
	cfg.RelevanceThreshold = 0.5
	cmd := NewTrainSimilarity(lister, replacer, cfg)

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	result, err := cmd.Execute(ctx, TrainSimilarityRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.RowsWritten)
}

// An empty interaction set still replaces (clears) the stored slice.
func TestTrainSimilarity_Execute_EmptyInteractions(t *testing.T) {
	lister := mocks.NewMockAllInteractionsLister(t)
	replacer := mocks.NewMockSimilarityReplacer(t)

	lister.EXPECT().ListAllInteractions(mock.Anything).Return(nil, nil)
	replacer.EXPECT().
		ReplaceSimilarities(mock.Anything, domain.AlgorithmCollaborative, mock.Anything).
		Return(nil)

	cmd := NewTrainSimilarity(lister, replacer, testTrainConfig())

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	result, err := cmd.Execute(ctx, TrainSimilarityRequest{})
	require.NoError(t, err)

	assert.Equal(t, 0, result.InteractionsProcessed)
	assert.Equal(t, 0, result.RowsWritten)
}

func TestTrainSimilarity_Execute_Deterministic(t *testing.T) {
	interactions := []domain.Interaction{
		interaction("u1", "v1", 5), interaction("u2", "v1", -2),
		interaction("u1", "v2", 3), interaction("u3", "v2", 10),
		interaction("u2", "v3", 1), interaction("u3", "v3", 15),
	}

	run := func() []domain.VideoSimilarity {
		lister := mocks.NewMockAllInteractionsLister(t)
		replacer := mocks.NewMockSimilarityReplacer(t)

		lister.EXPECT().ListAllInteractions(mock.Anything).Return(interactions, nil)

		var written []domain.VideoSimilarity
		replacer.EXPECT().
			ReplaceSimilarities(mock.Anything, domain.AlgorithmCollaborative, mock.Anything).
			Run(func(_ context.Context, _ string, entries []domain.VideoSimilarity) {
				written = entries
			}).
			Return(nil)

		cmd := NewTrainSimilarity(lister, replacer, testTrainConfig())
		ctx := domain.ContextWithLogger(context.Background(), testLogger())
		_, err := cmd.Execute(ctx, TrainSimilarityRequest{})
		require.NoError(t, err)
		return written
	}

	assert.Equal(t, run(), run())
}

func TestTrainSimilarity_Execute_ListError(t *testing.T) {
	lister := mocks.NewMockAllInteractionsLister(t)
	replacer := mocks.NewMockSimilarityReplacer(t)

	lister.EXPECT().ListAllInteractions(mock.Anything).Return(nil, errors.New("db error"))

	cmd := NewTrainSimilarity(lister, replacer, testTrainConfig())

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	_, err := cmd.Execute(ctx, TrainSimilarityRequest{})
	require.Error(t, err)
}

func TestTrainSimilarity_Execute_ReplaceError(t *testing.T) {
	lister := mocks.NewMockAllInteractionsLister(t)
	replacer := mocks.NewMockSimilarityReplacer(t)

	lister.EXPECT().ListAllInteractions(mock.Anything).Return(nil, nil)
	replacer.EXPECT().
		ReplaceSimilarities(mock.Anything, domain.AlgorithmCollaborative, mock.Anything).
		Return(errors.New("db error"))

	cmd := NewTrainSimilarity(lister, replacer, testTrainConfig())

	ctx := domain.ContextWithLogger(context.Background(), testLogger())
	_, err := cmd.Execute(ctx, TrainSimilarityRequest{})
	require.Error(t, err)
}
