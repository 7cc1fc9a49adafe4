package command

import (
	"context"
	"fmt"

	"github.com/kushalstream/kushal-stream/internal/datasources"
	"github.com/kushalstream/kushal-stream/internal/domain"
)

// RecommendVideosRequest is the request for the RecommendVideos command.
type RecommendVideosRequest struct {
	ViewerID string
	Limit    int
}

// RecommendVideos serves personalized recommendations from the trained
// similarity table: videos similar to the viewer's positively-engaged
// videos, with the seeds themselves excluded.
type RecommendVideos struct {
	Positives datasources.PositiveInteractionsLister
	Similar   datasources.SimilarVideoLister
}

// NewRecommendVideos creates a properly initialized RecommendVideos command.
func NewRecommendVideos(
	positives datasources.PositiveInteractionsLister,
	similar datasources.SimilarVideoLister,
) *RecommendVideos {
	return &RecommendVideos{
		Positives: positives,
		Similar:   similar,
	}
}

// Execute returns up to Limit recommended videos, best matches first.
// A viewer with no positive engagement gets no recommendations.
func (c *RecommendVideos) Execute(
	ctx context.Context, req RecommendVideosRequest,
) ([]domain.SimilarVideo, error) {
	positives, err := c.Positives.ListPositiveInteractions(ctx, req.ViewerID)
	if err != nil {
		return nil, fmt.Errorf("listing positive interactions: %w", err)
	}

	if len(positives) == 0 {
		return nil, nil
	}

	seedIDs := make([]string, 0, len(positives))
	for _, interaction := range positives {
		seedIDs = append(seedIDs, interaction.VideoHashID)
	}

	similar, err := c.Similar.ListSimilarVideos(ctx, seedIDs, req.Limit)
	if err != nil {
		return nil, fmt.Errorf("listing similar videos: %w", err)
	}

	return similar, nil
}
