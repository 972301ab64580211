package response

import (
	"errors"
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

// HandleError maps domain errors to HTTP responses. Domain code carries its
// own code, message and status; anything else is an opaque 500 so internal
// detail never reaches the wire.
func HandleError(w http.ResponseWriter, err error) {
	var restErr *resterror.Error
	if errors.As(err, &restErr) {
		writeJSON(w, restErr.Status, Response{
			Success: false,
			Error: &ErrorDetail{
				Code:    restErr.Code,
				Message: restErr.Message,
			},
		})
		return
	}

	InternalServerError(w, "An unexpected error occurred")
}
