package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"

	"github.com/erphq/hrm-backend-go/internal/domain/capability"
	"github.com/erphq/hrm-backend-go/internal/pkg/coerce"
	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

var errInvalidID = resterror.BadRequest("rest_invalid_id", "Invalid resource id.")
var errInvalidPayload = resterror.BadRequest("rest_invalid_payload", "Invalid JSON payload.")

// pathID reads a positive integer id from a chi route parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidPayload
	}
	return nil
}

// callerCaps pulls the capability list from the verified token.
func callerCaps(r *http.Request) []string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return nil
	}
	return capability.FromClaims(claims)
}

// callerID pulls the authenticated user's id claim, zero when absent.
func callerID(r *http.Request) int64 {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return 0
	}
	return coerce.Int64(claims["user_id"])
}

// queryInt parses an integer query parameter, falling back on absence or
// garbage.
func queryInt(r *http.Request, name string, fallback int) int {
	v := r.URL.Query().Get(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}
