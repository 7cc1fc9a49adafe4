package datasources

import (
	"context"

	"github.com/kushalstream/kushal-stream/internal/domain"
)

// SimilarVideoLister returns videos related to a set of seed videos,
// best matches first. Seed videos are excluded from the results.
type SimilarVideoLister interface {
	ListSimilarVideos(
		ctx context.Context,
		hashIDs []string,
		limit int,
	) ([]domain.SimilarVideo, error)
}

// SimilarityReplacer atomically-by-convention replaces the stored slice
// for one algorithm: delete all rows tagged with the algorithm, then
// insert the new set. Not safe for concurrent runs; the trainer is a
// single-writer batch job.
type SimilarityReplacer interface {
	ReplaceSimilarities(
		ctx context.Context,
		algorithm string,
		entries []domain.VideoSimilarity,
	) error
}

// SimilarVideosByVectorLister finds videos near an embedding vector.
type SimilarVideosByVectorLister interface {
	ListSimilarVideosByVector(
		ctx context.Context,
		excludeHashIDs []string,
		vector []float32,
		limit int,
	) ([]domain.SimilarVideo, error)
}

// RelatedVideosRepository is the read side of the related-videos surface.
type RelatedVideosRepository interface {
	SimilarVideoLister
	SimilarVideosByVectorLister
}

// CompositeRelatedVideosRepository pairs independent implementations of
// the two related-videos lookups, so the collaborative store can serve
// seed-based lookups while vector search stays elsewhere or disabled.
type CompositeRelatedVideosRepository struct {
	SimilarVideoLister
	SimilarVideosByVectorLister
}

// NullRelatedVideosRepository disables the related-videos surface.
type NullRelatedVideosRepository struct{}

var _ RelatedVideosRepository = NullRelatedVideosRepository{}

func (NullRelatedVideosRepository) ListSimilarVideos(
	_ context.Context,
	_ []string,
	_ int,
) ([]domain.SimilarVideo, error) {
	return nil, nil
}

func (NullRelatedVideosRepository) ListSimilarVideosByVector(
	_ context.Context,
	_ []string,
	_ []float32,
	_ int,
) ([]domain.SimilarVideo, error) {
	return nil, nil
}
