package datasources

import (
	"context"

	"github.com/kushalstream/kushal-stream/internal/domain"
)

// CatalogRepository combines everything the primary store provides.
type CatalogRepository interface {
	VideoLister
	VideoFetcher
	VideoCreator
	InteractionRecorder
	AllInteractionsLister
	ViewedVideoIDsLister
	PositiveInteractionsLister
	SimilarVideoLister
	SimilarityReplacer
}

type VideoLister interface {
	ListLatestVideoIDs(
		ctx context.Context,
		filters domain.VideoFilters,
		options domain.VideoListOptions,
	) ([]string, error)
}

type VideoFetcher interface {
	FetchVideosByID(ctx context.Context, hashIDs []string) ([]domain.Video, error)
}

type VideoCreator interface {
	CreateVideo(ctx context.Context, video domain.Video) error
}

// InteractionRecorder applies one engagement signal to the stored
// viewer-video interaction: flags merge, score recomputes from the
// merged flags, and the full upserted record comes back.
type InteractionRecorder interface {
	RecordInteractionSignal(
		ctx context.Context,
		viewerID, videoHashID string,
		signal domain.SignalType,
		value bool,
		weights domain.ScoreWeights,
	) (domain.Interaction, error)
}

// AllInteractionsLister dumps every interaction row for the trainer.
type AllInteractionsLister interface {
	ListAllInteractions(ctx context.Context) ([]domain.Interaction, error)
}

type ViewedVideoIDsLister interface {
	ListViewedVideoIDs(ctx context.Context, viewerID string, page, pageSize int) ([]string, error)
}

type PositiveInteractionsLister interface {
	ListPositiveInteractions(ctx context.Context, viewerID string) ([]domain.Interaction, error)
}
