package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/kushalstream/kushal-stream/internal/datasources/mocks"
	"github.com/kushalstream/kushal-stream/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestVideoCreate_ServeHTTP(t *testing.T) {
	validBody := `{
		"hash_id": "hash123",
		"title": "Raised Bed Basics",
		"channel": "gardening",
		"source_url": "https://cdn.example.com/hash123.mp4",
		"source_kind": "hosted",
		"access_type": "premium",
		"trailer_duration_seconds": 45
	}`

	cases := []struct {
		name       string
		body       string
		createErr  error
		wantStatus int
		skipCreate bool
	}{
		{
			name:       "successful_create",
			body:       validBody,
			wantStatus: http.StatusCreated,
		},
		{
			name: "default_trailer_duration_accepted",
			body: `{
				"hash_id": "hash123",
				"title": "Raised Bed Basics",
				"source_kind": "embedded",
				"access_type": "free"
			}`,
			wantStatus: http.StatusCreated,
		},
		{
			name:       "invalid_json",
			body:       `{invalid`,
			wantStatus: http.StatusBadRequest,
			skipCreate: true,
		},
		{
			name: "missing_title",
			body: `{
				"hash_id": "hash123",
				"source_kind": "hosted",
				"access_type": "free"
			}`,
			wantStatus: http.StatusBadRequest,
			skipCreate: true,
		},
		{
			name: "trailer_duration_too_short",
			body: `{
				"hash_id": "hash123",
				"title": "Raised Bed Basics",
				"source_kind": "hosted",
				"access_type": "premium",
				"trailer_duration_seconds": 5
			}`,
			wantStatus: http.StatusBadRequest,
			skipCreate: true,
		},
		{
			name: "trailer_duration_too_long",
			body: `{
				"hash_id": "hash123",
				"title": "Raised Bed Basics",
				"source_kind": "hosted",
				"access_type": "premium",
				"trailer_duration_seconds": 600
			}`,
			wantStatus: http.StatusBadRequest,
			skipCreate: true,
		},
		{
			name: "unknown_access_type",
			body: `{
				"hash_id": "hash123",
				"title": "Raised Bed Basics",
				"source_kind": "hosted",
				"access_type": "vip"
			}`,
			wantStatus: http.StatusBadRequest,
			skipCreate: true,
		},
		{
			name:       "create_error",
			body:       validBody,
			createErr:  assert.AnError,
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			creator := mocks.NewMockVideoCreator(t)

			if !tc.skipCreate {
				creator.EXPECT().
					CreateVideo(mock.Anything, mock.Anything).
					Return(tc.createErr)
			}

			controller := VideoCreate{Creator: creator}

			req := httptest.NewRequest(http.MethodPost, "/v1/admin/videos", strings.NewReader(tc.body))
			req = testContextWithViewer(domain.Viewer{
				ID:           "admin789",
				Subscription: domain.SubscriptionInactive,
				Role:         domain.RoleAdmin,
			})(req)
			rec := httptest.NewRecorder()

			controller.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
		})
	}
}
