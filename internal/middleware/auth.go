package middleware

import (
	"crypto/sha256"
	"net/http"
	"strings"
	"sync"

	"github.com/amankaushik/achilles-workout-tracker/internal/telemetry/tracing"
	"github.com/amankaushik/achilles-workout-tracker/pkg"

	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=auth_mocks_test.go -package=middleware_test

type tokenChecker interface {
	Check(token string) bool
}

// BcryptTokenChecker checks API tokens against a bcrypt hash. Since bcrypt is slow
// on purpose, digests of already verified tokens are remembered.
type BcryptTokenChecker struct {
	tokenHash string
	verified  sync.Map
}

func NewBcryptTokenChecker(tokenHash string) *BcryptTokenChecker {
	return &BcryptTokenChecker{
		tokenHash: tokenHash,
	}
}

func (c *BcryptTokenChecker) Check(token string) bool {
	if token == "" || c.tokenHash == "" {
		return false
	}

	digest := sha256.Sum256([]byte(token))
	if _, ok := c.verified.Load(digest); ok {
		return true
	}

	if !pkg.CheckTokenHash(token, c.tokenHash) {
		return false
	}
	c.verified.Store(digest, struct{}{})
	return true
}

type AuthMiddlewareHandler struct {
	tokenChecker tokenChecker
	allowedPaths map[string]bool
}

func NewAuthMiddlewareHandler(tokenChecker tokenChecker) *AuthMiddlewareHandler {
	return &AuthMiddlewareHandler{
		tokenChecker: tokenChecker,
		allowedPaths: map[string]bool{
			"/": true,
		},
	}
}

func (h *AuthMiddlewareHandler) AuthCheck() func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, span := tracing.GlobalTracer.Start(r.Context(), "middleware.auth")
			defer span.End()

			if r.Method == http.MethodOptions {
				w.Header().Add("Allow", "GET, PUT, DELETE, POST, OPTIONS")
				w.WriteHeader(http.StatusOK)
				span.SetStatus(codes.Ok, "options-ok")
				return
			}

			if h.allowedPaths[r.URL.Path] {
				span.SetStatus(codes.Ok, "ok")
				next.ServeHTTP(w, r)
				return
			}

			authToken := bearerToken(r)
			if authToken == "" {
				log.Tracef("[missing token] [auth middleware] unauthorized => %s", r.URL.Path)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "missing-auth-token")
				return
			}

			if !h.tokenChecker.Check(authToken) {
				reqIp, _ := pkg.ReadUserIP(r)
				log.Warnf("[invalid token] [auth middleware] unauthorized => %s, from %s", r.URL.Path, reqIp)
				http.Error(w, "no can do", http.StatusUnauthorized)
				span.SetStatus(codes.Error, "invalid-token")
				return
			}

			span.SetStatus(codes.Ok, "ok")
			next.ServeHTTP(w, r)
		})
	}
}

func bearerToken(r *http.Request) string {
	authHeader := strings.TrimSpace(r.Header.Get("Authorization"))
	if len(authHeader) > 7 && strings.EqualFold(authHeader[:7], "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	return authHeader
}
