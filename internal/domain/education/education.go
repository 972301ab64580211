package education

import (
	"context"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

type Education struct {
	ID         int64
	EmployeeID int64
	School     string
	Degree     string
	Field      string
	Finished   bool
	Notes      string
	Interest   string
}

type UpsertRequest struct {
	ID         int64  `json:"-"`
	EmployeeID int64  `json:"-"`
	School     string `json:"school"`
	Degree     string `json:"degree"`
	Field      string `json:"field"`
	Finished   *bool  `json:"finished"`
	Notes      string `json:"notes"`
	Interest   string `json:"interest"`
}

type Response struct {
	ID       int64  `json:"id"`
	School   string `json:"school"`
	Degree   string `json:"degree"`
	Field    string `json:"field"`
	Finished bool   `json:"finished"`
	Notes    string `json:"notes"`
	Interest string `json:"interest"`
}

var ErrEducationNotFound = resterror.NotFound("rest_invalid_education", "Invalid education id.")

type Repository interface {
	ListByEmployee(ctx context.Context, employeeID int64) ([]Education, error)
	GetByIDAndEmployee(ctx context.Context, id, employeeID int64) (Education, error)
	GetByID(ctx context.Context, id int64) (Education, error)
	Create(ctx context.Context, e Education) (Education, error)
	Update(ctx context.Context, e Education) (Education, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context, employeeID int64) ([]Response, error)
	Get(ctx context.Context, employeeID, eduID int64) (Response, error)
	Create(ctx context.Context, req UpsertRequest) (Response, error)
	Update(ctx context.Context, req UpsertRequest) (Response, error)
	Delete(ctx context.Context, eduID int64) error
}
