package middleware

import (
	"net/http"
	"strings"

	log "github.com/sirupsen/logrus"
)

const corsAllowedHeaders = "Accept, Content-Type, Content-Length, Accept-Encoding, Authorization, MCP-Protocol-Version, Mcp-Session-Id"

func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	origins := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		origins[strings.TrimSuffix(o, "/")] = true
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			userAgent := r.Header.Get("User-Agent")

			switch {
			case
				origins[origin],
				strings.HasPrefix(userAgent, "curl/"),
				strings.HasPrefix(userAgent, "test-agent"),
				// MCP clients often send no Origin
				strings.HasPrefix(r.URL.Path, "/mcp"):
				{
					allowOrigin := origin
					if allowOrigin == "" {
						allowOrigin = "*"
					}
					w.Header().Set("Access-Control-Allow-Origin", allowOrigin)
					w.Header().Set("Access-Control-Allow-Headers", corsAllowedHeaders)
					w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS, PUT, DELETE")
				}
			case r.URL.Path == "/":
				// liveness probes
			default:
				log.Warnf("CORS: origin not allowed for path [%s] and origin [%s]", r.URL.Path, origin)
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
