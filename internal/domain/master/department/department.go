package department

import (
	"context"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

type Department struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Lead        int64  `json:"lead"`
	Parent      int64  `json:"parent"`
}

var ErrDepartmentNotFound = resterror.BadRequest("rest_invalid_department", "Invalid department ID")

type Repository interface {
	GetByID(ctx context.Context, id int64) (Department, error)
	Exists(ctx context.Context, id int64) (bool, error)
}
