package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hris/dayflow-backend-go/internal/handler/http/response"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type contextKey struct{ name string }

var identityCtxKey = &contextKey{"Identity"}

// WithIdentity stores the authenticated caller on ctx.
func WithIdentity(ctx context.Context, identity user.Identity) context.Context {
	return context.WithValue(ctx, identityCtxKey, identity)
}

// IdentityFromContext returns the caller set by AuthRequired.
func IdentityFromContext(ctx context.Context) (user.Identity, bool) {
	identity, ok := ctx.Value(identityCtxKey).(user.Identity)
	return identity, ok
}

// AuthRequired runs after jwtauth.Verifier. It rejects missing, invalid and
// signed-out tokens and puts the caller's identity on the request context.
func AuthRequired(jwtService jwt.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())
			if errors.Is(err, jwtauth.ErrNoTokenFound) {
				response.HandleError(w, auth.ErrTokenRequired)
				return
			}
			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			identity, err := jwt.IdentityFromClaims(claims)
			if err != nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			revoked, err := jwtService.IsTokenRevoked(r.Context(), jwtauth.TokenFromHeader(r))
			if err != nil {
				slog.Error("revocation lookup error", "error", err)
				response.HandleError(w, err)
				return
			}
			if revoked {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
		}
		return http.HandlerFunc(hfn)
	}
}
