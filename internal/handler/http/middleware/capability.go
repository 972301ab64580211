package middleware

import (
	"fmt"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/erphq/hrm-backend-go/internal/domain/capability"
	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
)

// RequireCapability gates a route on one capability from the token's caps
// claim.
func RequireCapability(cap string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, claims, err := jwtauth.FromContext(r.Context())
			if err != nil {
				response.Forbidden(w, capabilityMessage(cap))
				return
			}

			caps := capability.FromClaims(claims)
			if !capability.Has(caps, cap) {
				response.Forbidden(w, capabilityMessage(cap))
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func capabilityMessage(cap string) string {
	return fmt.Sprintf("Insufficient permissions: required '%s'", cap)
}
