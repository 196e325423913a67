package middleware

import (
	"io"
	"net/http"
)

// maxDrainBytes bounds how much of an unread request body is discarded
// before closing it, so the connection can be reused.
const maxDrainBytes = 256 << 10

func DrainAndCloseRequest() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r)
			if r.Body != nil {
				_, _ = io.CopyN(io.Discard, r.Body, maxDrainBytes)
				_ = r.Body.Close()
			}
		})
	}
}
