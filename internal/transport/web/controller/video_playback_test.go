package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/kushalstream/kushal-stream/internal/datasources/mocks"
	"github.com/kushalstream/kushal-stream/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestVideoPlayback_ServeHTTP(t *testing.T) {
	premiumVideo := domain.Video{
		HashID:     "hash123",
		Title:      "Premium Video",
		SourceURL:  "https://cdn.example.com/hash123.mp4",
		SourceKind: domain.SourceKindHosted,
		AccessType: domain.AccessTypePremium,
	}
	freeVideo := domain.Video{
		HashID:     "hash123",
		Title:      "Free Video",
		SourceURL:  "https://cdn.example.com/hash123.mp4",
		SourceKind: domain.SourceKindEmbedded,
		AccessType: domain.AccessTypeFree,
	}

	subscriber := domain.Viewer{
		ID:           "viewer456",
		Subscription: domain.SubscriptionActive,
		Role:         domain.RoleViewer,
	}
	nonSubscriber := domain.Viewer{
		ID:           "viewer456",
		Subscription: domain.SubscriptionInactive,
		Role:         domain.RoleViewer,
	}
	admin := domain.Viewer{
		ID:           "admin789",
		Subscription: domain.SubscriptionInactive,
		Role:         domain.RoleAdmin,
	}

	cases := []struct {
		name         string
		videoID      string
		setupContext func(r *http.Request) *http.Request
		videos       []domain.Video
		fetchErr     error
		wantStatus   int
		wantResponse VideoPlaybackResponse
	}{
		{
			name:         "subscriber_gets_full_playback",
			videoID:      "hash123",
			setupContext: testContextWithViewer(subscriber),
			videos:       []domain.Video{premiumVideo},
			wantStatus:   http.StatusOK,
			wantResponse: VideoPlaybackResponse{
				Mode:       "full",
				SourceURL:  "https://cdn.example.com/hash123.mp4",
				SourceKind: "hosted",
			},
		},
		{
			name:         "non_subscriber_gets_trailer",
			videoID:      "hash123",
			setupContext: testContextWithViewer(nonSubscriber),
			videos:       []domain.Video{premiumVideo},
			wantStatus:   http.StatusOK,
			wantResponse: VideoPlaybackResponse{
				Mode:                   "trailer",
				SourceURL:              "https://cdn.example.com/hash123.mp4",
				SourceKind:             "hosted",
				TrailerDurationSeconds: 30,
			},
		},
		{
			name:         "anonymous_gets_trailer_for_premium",
			videoID:      "hash123",
			setupContext: testContext(),
			videos:       []domain.Video{premiumVideo},
			wantStatus:   http.StatusOK,
			wantResponse: VideoPlaybackResponse{
				Mode:                   "trailer",
				SourceURL:              "https://cdn.example.com/hash123.mp4",
				SourceKind:             "hosted",
				TrailerDurationSeconds: 30,
			},
		},
		{
			name:         "admin_gets_full_playback_without_subscription",
			videoID:      "hash123",
			setupContext: testContextWithViewer(admin),
			videos:       []domain.Video{premiumVideo},
			wantStatus:   http.StatusOK,
			wantResponse: VideoPlaybackResponse{
				Mode:       "full",
				SourceURL:  "https://cdn.example.com/hash123.mp4",
				SourceKind: "hosted",
			},
		},
		{
			name:         "free_video_is_full_for_anyone",
			videoID:      "hash123",
			setupContext: testContext(),
			videos:       []domain.Video{freeVideo},
			wantStatus:   http.StatusOK,
			wantResponse: VideoPlaybackResponse{
				Mode:       "full",
				SourceURL:  "https://cdn.example.com/hash123.mp4",
				SourceKind: "embedded",
			},
		},
		{
			name:         "custom_trailer_duration",
			videoID:      "hash123",
			setupContext: testContextWithViewer(nonSubscriber),
			videos: []domain.Video{
				func() domain.Video {
					v := premiumVideo
					v.TrailerDurationSeconds = 60
					return v
				}(),
			},
			wantStatus: http.StatusOK,
			wantResponse: VideoPlaybackResponse{
				Mode:                   "trailer",
				SourceURL:              "https://cdn.example.com/hash123.mp4",
				SourceKind:             "hosted",
				TrailerDurationSeconds: 60,
			},
		},
		{
			name:         "video_not_found",
			videoID:      "missing",
			setupContext: testContext(),
			videos:       nil,
			wantStatus:   http.StatusNotFound,
		},
		{
			name:         "fetch_error",
			videoID:      "hash123",
			setupContext: testContext(),
			fetchErr:     errors.New("database error"),
			wantStatus:   http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			fetcher := mocks.NewMockVideoFetcher(t)
			fetcher.EXPECT().
				FetchVideosByID(mock.Anything, []string{tc.videoID}).
				Return(tc.videos, tc.fetchErr)

			controller := VideoPlayback{Fetcher: fetcher}

			req := httptest.NewRequest(http.MethodGet, "/v1/videos/"+tc.videoID+"/playback", nil)
			req = tc.setupContext(req)
			req = mux.SetURLVars(req, map[string]string{"video_id": tc.videoID})
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)

			if tc.wantStatus == http.StatusOK {
				var response VideoPlaybackResponse
				err := json.NewDecoder(rec.Body).Decode(&response)
				require.NoError(t, err)
				assert.Equal(t, tc.wantResponse, response)
			}
		})
	}
}
