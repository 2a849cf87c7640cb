package middleware

import (
	"context"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/kelydev/explorador/navigation"
)

// TrackNavigation records every GET page request in the visitor's history.
// The escaped path is stored so names with reserved characters round-trip.
func TrackNavigation(store *navigation.Store) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := navigation.VisitorID(w, r)
			if r.Method == http.MethodGet {
				store.History(id).Push(r.URL.EscapedPath())
			}
			ctx := context.WithValue(r.Context(), VisitorIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
