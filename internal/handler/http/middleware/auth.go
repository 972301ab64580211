package middleware

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
)

// AuthRequired rejects requests whose token did not verify. Runs after
// jwtauth.Verifier, which parses the Authorization header.
func AuthRequired(ja *jwtauth.JWTAuth) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, _, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Unauthorized(w, err.Error())
				return
			}
			if token == nil {
				response.Unauthorized(w, "Missing or invalid token")
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
