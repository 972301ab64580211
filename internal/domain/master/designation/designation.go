package designation

import (
	"context"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

type Designation struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

var ErrDesignationNotFound = resterror.BadRequest("rest_invalid_designation", "Invalid designation ID")

type Repository interface {
	GetByID(ctx context.Context, id int64) (Designation, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
