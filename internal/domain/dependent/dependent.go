package dependent

import (
	"context"
	"time"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

type Dependent struct {
	ID          int64
	EmployeeID  int64
	Name        string
	Relation    string
	DateOfBirth *time.Time
}

type UpsertRequest struct {
	ID          int64  `json:"-"`
	EmployeeID  int64  `json:"-"`
	Name        string `json:"name"`
	Relation    string `json:"relation"`
	DateOfBirth string `json:"date_of_birth"`
}

type Response struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Relation    string `json:"relation"`
	DateOfBirth string `json:"date_of_birth"`
}

var ErrDependentNotFound = resterror.NotFound("rest_invalid_dependent", "Invalid dependent id.")

type Repository interface {
	ListByEmployee(ctx context.Context, employeeID int64) ([]Dependent, error)
	GetByIDAndEmployee(ctx context.Context, id, employeeID int64) (Dependent, error)
	GetByID(ctx context.Context, id int64) (Dependent, error)
	Create(ctx context.Context, d Dependent) (Dependent, error)
	Update(ctx context.Context, d Dependent) (Dependent, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context, employeeID int64) ([]Response, error)
	Get(ctx context.Context, employeeID, depID int64) (Response, error)
	Create(ctx context.Context, req UpsertRequest) (Response, error)
	Update(ctx context.Context, req UpsertRequest) (Response, error)
	Delete(ctx context.Context, depID int64) error
}
