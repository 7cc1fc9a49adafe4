package router

import (
	"net/http"

	"github.com/kushalstream/kushal-stream/internal/domain"
)

func requireAuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		viewer := domain.ViewerFromContext(r.Context())
		if viewer.IsAnonymous() {
			logger := domain.LoggerFromContext(r.Context())
			logger.ErrorContext(r.Context(), "attempt to use endpoint requiring auth without viewer ID")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r)
	})
}
