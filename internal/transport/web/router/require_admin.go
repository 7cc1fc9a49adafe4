package router

import (
	"net/http"

	"github.com/kushalstream/kushal-stream/internal/domain"
)

func requireAdminMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer := domain.ViewerFromContext(r.Context())
		if viewer.IsAnonymous() {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		if !viewer.IsAdmin() {
			logger := domain.LoggerFromContext(r.Context())
			logger.WarnContext(r.Context(), "attempt to use admin endpoint without admin role",
				"viewer_id", viewer.ID)
			w.WriteHeader(http.StatusForbidden)
			return
		}

		next.ServeHTTP(w, r)
	})
}
