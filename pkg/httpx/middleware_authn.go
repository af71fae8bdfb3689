package httpx

import (
	"net/http"
	"strings"

	"github.com/aussiebroadwan/orgs/pkg/jwtx"
	"github.com/aussiebroadwan/orgs/pkg/slogx"
)

const unauthenticatedMessage = "Authentication credentials were not provided or are invalid"

// VerifyFunc checks a raw bearer token and returns its claims.
// jwtx.Verifier.Verify satisfies it.
type VerifyFunc func(raw string) (jwtx.Claims, error)

// AuthnMiddleware rejects requests without a valid bearer access token and
// stores the verified claims on the request context.
func AuthnMiddleware(verify VerifyFunc) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			log := slogx.FromContext(ctx)

			authz := r.Header.Get("Authorization")
			if !strings.HasPrefix(authz, "Bearer ") {
				writeBearerError(w, "missing bearer token")
				return
			}
			raw := strings.TrimSpace(strings.TrimPrefix(authz, "Bearer "))

			claims, err := verify(raw)
			if err != nil {
				log.Warn("jwt verify failed", "err", err)
				writeBearerError(w, "token verification failed")
				return
			}

			ctx = slogx.With(ContextWithClaims(ctx, claims), "user_id", claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RFC 6750 challenge plus the JSON error envelope.
func writeBearerError(w http.ResponseWriter, desc string) {
	w.Header().Set("WWW-Authenticate", `Bearer error="invalid_token", error_description="`+desc+`"`)
	WriteError(w, http.StatusUnauthorized, StatusUnauthorized, unauthenticatedMessage)
}
