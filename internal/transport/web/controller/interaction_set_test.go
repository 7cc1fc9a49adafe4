package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/kushalstream/kushal-stream/internal/command"
	"github.com/kushalstream/kushal-stream/internal/datasources/mocks"
	"github.com/kushalstream/kushal-stream/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestInteractionSet_ServeHTTP(t *testing.T) {
	testTime := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

	cases := []struct {
		name            string
		videoID         string
		signal          string
		value           string
		viewerID        string
		videos          []domain.Video
		fetchErr        error
		recorded        domain.Interaction
		recordErr       error
		wantStatus      int
		wantInteraction bool
		skipFetch       bool
		skipRecord      bool
	}{
		{
			name:     "set_liked_true",
			videoID:  "hash123",
			signal:   "liked",
			value:    "true",
			viewerID: "viewer456",
			videos: []domain.Video{
				{HashID: "hash123", Title: "Test", PublishedAt: testTime},
			},
			recorded: domain.Interaction{
				ViewerID:    "viewer456",
				VideoHashID: "hash123",
				Flags:       domain.InteractionFlags{Liked: true},
				Score:       5,
				UpdatedAt:   testTime,
			},
			wantStatus:      http.StatusOK,
			wantInteraction: true,
		},
		{
			name:     "set_watched_false",
			videoID:  "hash123",
			signal:   "watched",
			value:    "false",
			viewerID: "viewer456",
			videos: []domain.Video{
				{HashID: "hash123", Title: "Test", PublishedAt: testTime},
			},
			recorded: domain.Interaction{
				ViewerID:    "viewer456",
				VideoHashID: "hash123",
				Score:       0,
				UpdatedAt:   testTime,
			},
			wantStatus:      http.StatusOK,
			wantInteraction: true,
		},
		{
			name:       "invalid_signal",
			videoID:    "hash123",
			signal:     "starred",
			value:      "true",
			viewerID:   "viewer456",
			wantStatus: http.StatusBadRequest,
			skipFetch:  true,
			skipRecord: true,
		},
		{
			name:       "invalid_value",
			videoID:    "hash123",
			signal:     "liked",
			value:      "maybe",
			viewerID:   "viewer456",
			wantStatus: http.StatusBadRequest,
			skipFetch:  true,
			skipRecord: true,
		},
		{
			name:       "fetch_error",
			videoID:    "hash123",
			signal:     "liked",
			value:      "true",
			viewerID:   "viewer456",
			fetchErr:   errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
			skipRecord: true,
		},
		{
			name:       "unknown_video",
			videoID:    "missing",
			signal:     "liked",
			value:      "true",
			viewerID:   "viewer456",
			videos:     nil,
			wantStatus: http.StatusInternalServerError,
			skipRecord: true,
		},
		{
			name:     "record_error",
			videoID:  "hash123",
			signal:   "liked",
			value:    "true",
			viewerID: "viewer456",
			videos: []domain.Video{
				{HashID: "hash123", Title: "Test", PublishedAt: testTime},
			},
			recordErr:  errors.New("database error"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockVideoFetcher(t)
			recorder := mocks.NewMockInteractionRecorder(t)

			if !tc.skipFetch {
				fetcher.EXPECT().
					FetchVideosByID(mock.Anything, []string{tc.videoID}).
					Return(tc.videos, tc.fetchErr)
			}

			if !tc.skipRecord {
				signal, err := domain.ParseSignalType(tc.signal)
				require.NoError(t, err)
				recorder.EXPECT().
					RecordInteractionSignal(
						mock.Anything, tc.viewerID, tc.videoID,
						signal, tc.value == boolTrue, domain.DefaultScoreWeights(),
					).
					Return(tc.recorded, tc.recordErr)
			}

			controller := InteractionSet{
				Command: command.NewRecordInteraction(fetcher, recorder, domain.DefaultScoreWeights()),
			}

			req := httptest.NewRequest(http.MethodPost,
				"/v1/videos/"+tc.videoID+"/interactions/"+tc.signal+"/"+tc.value, nil)
			req = testContextWithViewer(domain.Viewer{
				ID:           tc.viewerID,
				Subscription: domain.SubscriptionInactive,
				Role:         domain.RoleViewer,
			})(req)
			req = mux.SetURLVars(req, map[string]string{
				"video_id": tc.videoID,
				"signal":   tc.signal,
				"value":    tc.value,
			})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantInteraction {
				var interaction domain.Interaction
				err := json.NewDecoder(rec.Body).Decode(&interaction)
				require.NoError(t, err)
				assert.Equal(t, tc.recorded, interaction)
			}
		})
	}
}
