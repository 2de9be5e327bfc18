package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hris/dayflow-backend-go/internal/handler/http/middleware"
	"github.com/dayflow-hris/dayflow-backend-go/internal/handler/http/response"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

// decodeJSON reads the body into dst and writes a 400 when it is malformed.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		slog.Error(op+" decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return false
	}
	return true
}

// identity returns the caller or writes a 401. Routes behind AuthRequired
// always have one.
func identity(w http.ResponseWriter, r *http.Request) (user.Identity, bool) {
	id, ok := middleware.IdentityFromContext(r.Context())
	if !ok {
		response.HandleError(w, auth.ErrInvalidToken)
	}
	return id, ok
}

func pathID(w http.ResponseWriter, r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		response.ValidationError(w, validator.ValidationErrors{{Field: name, Message: name + " must be a positive integer"}})
		return 0, false
	}
	return id, true
}

// queryInt64 reads an optional positive integer query parameter.
func queryInt64(r *http.Request, name string) (*int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || v <= 0 {
		return nil, validator.ValidationErrors{{Field: name, Message: name + " must be a positive integer"}}
	}
	return &v, nil
}

func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, validator.ValidationErrors{{Field: name, Message: name + " must be a number"}}
	}
	return &v, nil
}

func queryString(r *http.Request, name string) *string {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil
	}
	return &raw
}
