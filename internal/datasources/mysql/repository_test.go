package mysql

import (
	"testing"

	"github.com/kushalstream/kushal-stream/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkSimilarityEntries(t *testing.T) {
	makeEntries := func(n int) []domain.VideoSimilarity {
		entries := make([]domain.VideoSimilarity, n)
		for i := range entries {
			entries[i] = domain.VideoSimilarity{VideoA: "a", VideoB: "b", Score: float64(i)}
		}
		return entries
	}

	cases := []struct {
		name       string
		total      int
		size       int
		wantChunks []int
	}{
		{"empty", 0, 100, nil},
		{"under_one_batch", 42, 100, []int{42}},
		{"exact_batch", 100, 100, []int{100}},
		{"splits_remainder", 250, 100, []int{100, 100, 50}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			chunks := chunkSimilarityEntries(makeEntries(tc.total), tc.size)
			require.Len(t, chunks, len(tc.wantChunks))

			seen := 0
			for i, chunk := range chunks {
				assert.Len(t, chunk, tc.wantChunks[i])
				seen += len(chunk)
			}
			assert.Equal(t, tc.total, seen)
		})
	}
}

func TestBuildVideosOrder(t *testing.T) {
	orderings, err := buildVideosOrder(domain.VideoListOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"date_published DESC"}, orderings)

	orderings, err = buildVideosOrder(domain.VideoListOptions{
		Ordering: []domain.VideoOrdering{
			{Field: domain.VideoOrderingFieldTitle},
			{Field: domain.VideoOrderingFieldPublishedAt, Desc: true},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"title", "date_published DESC"}, orderings)

	_, err = buildVideosOrder(domain.VideoListOptions{
		Ordering: []domain.VideoOrdering{{Field: "view_count"}},
	})
	require.Error(t, err)
}
