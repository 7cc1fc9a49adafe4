package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/kushalstream/kushal-stream/internal/datasources/mocks"
	"github.com/kushalstream/kushal-stream/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestSemanticSearch_ServeHTTP(t *testing.T) {
	testTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	testVector := []float32{0.1, 0.2, 0.3}

	cases := []struct {
		name          string
		body          string
		vector        []float32
		embedErr      error
		wantLimit     int
		similarResult []domain.SimilarVideo
		similarErr    error
		videos        []domain.Video
		fetchErr      error
		wantStatus    int
		wantVideos    []domain.Video
		skipEmbed     bool
		skipSimilar   bool
		skipFetch     bool
	}{
		{
			name:      "successful_search",
			body:      `{"text":"container gardening basics","limit":5}`,
			vector:    testVector,
			wantLimit: 5,
			similarResult: []domain.SimilarVideo{
				{HashID: "hash1", Score: 0.95},
			},
			videos: []domain.Video{
				{HashID: "hash1", Title: "Video 1", PublishedAt: testTime},
			},
			wantStatus: http.StatusOK,
			wantVideos: []domain.Video{
				{HashID: "hash1", Title: "Video 1", PublishedAt: testTime},
			},
		},
		{
			name:          "default_limit",
			body:          `{"text":"container gardening basics"}`,
			vector:        testVector,
			wantLimit:     10,
			similarResult: []domain.SimilarVideo{},
			videos:        []domain.Video{},
			wantStatus:    http.StatusOK,
			wantVideos:    []domain.Video{},
		},
		{
			name:        "empty_text",
			body:        `{"text":""}`,
			wantStatus:  http.StatusBadRequest,
			skipEmbed:   true,
			skipSimilar: true,
			skipFetch:   true,
		},
		{
			name:        "invalid_json",
			body:        `{invalid`,
			wantStatus:  http.StatusBadRequest,
			skipEmbed:   true,
			skipSimilar: true,
			skipFetch:   true,
		},
		{
			name:        "embed_error",
			body:        `{"text":"container gardening basics"}`,
			embedErr:    errors.New("voyage error"),
			wantLimit:   10,
			wantStatus:  http.StatusInternalServerError,
			skipSimilar: true,
			skipFetch:   true,
		},
		{
			name:        "nil_vector_unavailable",
			body:        `{"text":"container gardening basics"}`,
			vector:      nil,
			wantLimit:   10,
			wantStatus:  http.StatusServiceUnavailable,
			skipSimilar: true,
			skipFetch:   true,
		},
		{
			name:       "similarity_error",
			body:       `{"text":"container gardening basics"}`,
			vector:     testVector,
			wantLimit:  10,
			similarErr: errors.New("pinecone error"),
			wantStatus: http.StatusInternalServerError,
			skipFetch:  true,
		},
		{
			name:      "fetch_error",
			body:      `{"text":"container gardening basics"}`,
			vector:    testVector,
			wantLimit: 10,
			similarResult: []domain.SimilarVideo{
				{HashID: "hash1", Score: 0.95},
			},
			fetchErr:   errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			embedder := mocks.NewMockEmbedder(t)
			similarity := mocks.NewMockSimilarVideosByVectorLister(t)
			fetcher := mocks.NewMockVideoFetcher(t)

			if !tc.skipEmbed {
				embedder.EXPECT().
					EmbedText(mock.Anything, mock.Anything).
					Return(tc.vector, tc.embedErr)
			}

			if !tc.skipSimilar {
				similarity.EXPECT().
					ListSimilarVideosByVector(mock.Anything, []string(nil), tc.vector, tc.wantLimit).
					Return(tc.similarResult, tc.similarErr)
			}

			if !tc.skipFetch && tc.similarErr == nil {
				hashIDs := make([]string, 0, len(tc.similarResult))
				for _, s := range tc.similarResult {
					hashIDs = append(hashIDs, s.HashID)
				}
				fetcher.EXPECT().
					FetchVideosByID(mock.Anything, hashIDs).
					Return(tc.videos, tc.fetchErr)
			}

			controller := SemanticSearch{
				Embedder:   embedder,
				Similarity: similarity,
				Fetcher:    fetcher,
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/videos/search/semantic", strings.NewReader(tc.body))
			req = testContext()(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var response VideosListResponse
				err := json.NewDecoder(rec.Body).Decode(&response)
				require.NoError(t, err)
				assert.Equal(t, tc.wantVideos, response.Data)
			}
		})
	}
}
