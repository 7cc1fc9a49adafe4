package command

import (
	"context"
	"errors"
	"testing"

	"github.com/kushalstream/kushal-stream/internal/datasources/mocks"
	"github.com/kushalstream/kushal-stream/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRecommendVideos_Execute(t *testing.T) {
	positives := mocks.NewMockPositiveInteractionsLister(t)
	similar := mocks.NewMockSimilarVideoLister(t)

	positives.EXPECT().
		ListPositiveInteractions(mock.Anything, "viewer1").
		Return([]domain.Interaction{
			{ViewerID: "viewer1", VideoHashID: "video1"},
			{ViewerID: "viewer1", VideoHashID: "video2"},
		}, nil)

	expected := []domain.SimilarVideo{
		{HashID: "video3", Score: 0.9},
		{HashID: "video4", Score: 0.4},
	}
	similar.EXPECT().
		ListSimilarVideos(mock.Anything, []string{"video1", "video2"}, 20).
		Return(expected, nil)

	cmd := NewRecommendVideos(positives, similar)

	result, err := cmd.Execute(context.Background(), RecommendVideosRequest{
		ViewerID: "viewer1",
		Limit:    20,
	})
	require.NoError(t, err)
	assert.Equal(t, expected, result)
}

// A viewer with no positive engagement gets nothing, and the similarity
// store is never queried.
func TestRecommendVideos_Execute_NoPositives(t *testing.T) {
	positives := mocks.NewMockPositiveInteractionsLister(t)
	similar := mocks.NewMockSimilarVideoLister(t)

	positives.EXPECT().
		ListPositiveInteractions(mock.Anything, "viewer1").
		Return(nil, nil)

	cmd := NewRecommendVideos(positives, similar)

	result, err := cmd.Execute(context.Background(), RecommendVideosRequest{
		ViewerID: "viewer1",
		Limit:    20,
	})
	require.NoError(t, err)
	assert.Nil(t, result)
}

func TestRecommendVideos_Execute_PositivesError(t *testing.T) {
	positives := mocks.NewMockPositiveInteractionsLister(t)
	similar := mocks.NewMockSimilarVideoLister(t)

	positives.EXPECT().
		ListPositiveInteractions(mock.Anything, "viewer1").
		Return(nil, errors.New("db error"))

	cmd := NewRecommendVideos(positives, similar)

	_, err := cmd.Execute(context.Background(), RecommendVideosRequest{
		ViewerID: "viewer1",
		Limit:    20,
	})
	require.Error(t, err)
}

func TestRecommendVideos_Execute_SimilarError(t *testing.T) {
	positives := mocks.NewMockPositiveInteractionsLister(t)
	similar := mocks.NewMockSimilarVideoLister(t)

	positives.EXPECT().
		ListPositiveInteractions(mock.Anything, "viewer1").
		Return([]domain.Interaction{{ViewerID: "viewer1", VideoHashID: "video1"}}, nil)
	similar.EXPECT().
		ListSimilarVideos(mock.Anything, []string{"video1"}, 20).
		Return(nil, errors.New("db error"))

	cmd := NewRecommendVideos(positives, similar)

	_, err := cmd.Execute(context.Background(), RecommendVideosRequest{
		ViewerID: "viewer1",
		Limit:    20,
	})
	require.Error(t, err)
}
