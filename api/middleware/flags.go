package middleware

import (
	"net/http"

	"news-summarizer-api/pkg/featureflags"
)

// FeatureFlagsMiddleware makes manager visible to everything downstream via featureflags.FromContext
func FeatureFlagsMiddleware(manager featureflags.Manager) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(featureflags.WithManager(r.Context(), manager)))
		})
	}
}
