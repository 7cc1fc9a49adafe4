package datasources

import "context"

// Embedder turns query text into an embedding vector for semantic
// search over the catalog.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// NullEmbedder disables semantic search; callers treat a nil vector as
// the feature being unavailable.
type NullEmbedder struct{}

var _ Embedder = NullEmbedder{}

func (NullEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}
