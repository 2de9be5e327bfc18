package middleware

import (
	"net/http"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hris/dayflow-backend-go/internal/handler/http/response"
)

// AdminOnly lets admin and hr callers through.
func AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			response.HandleError(w, auth.ErrInvalidToken)
			return
		}

		if !identity.IsAdmin() {
			response.HandleError(w, user.ErrAdminPrivilegeRequired)
			return
		}

		next.ServeHTTP(w, r)
	})
}
