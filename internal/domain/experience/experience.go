package experience

import (
	"context"
	"time"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

type Experience struct {
	ID          int64
	EmployeeID  int64
	CompanyName string
	JobTitle    string
	Description string
	From        *time.Time
	To          *time.Time
}

// UpsertRequest serves both create and update. The parent employee id is
// injected from the path; on update ID names the experience itself.
type UpsertRequest struct {
	ID          int64  `json:"-"`
	EmployeeID  int64  `json:"-"`
	CompanyName string `json:"company_name"`
	JobTitle    string `json:"job_title"`
	Description string `json:"description"`
	From        string `json:"from"`
	To          string `json:"to"`
}

// Response is the fixed field set; empty values stay present as empties.
type Response struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"company_name"`
	JobTitle    string `json:"job_title"`
	Description string `json:"description"`
	From        string `json:"from"`
	To          string `json:"to"`
}

var ErrExperienceNotFound = resterror.NotFound("rest_invalid_experience", "Invalid experience id.")

// RequiredCode is shared by all three employee sub-resources; legacy clients
// match on this code regardless of which resource failed validation.
const RequiredCode = "rest_experience_required_fields"

type Repository interface {
	ListByEmployee(ctx context.Context, employeeID int64) ([]Experience, error)
	// GetByIDAndEmployee filters on the compound key so a child id paired
	// with the wrong parent reads as absent.
	GetByIDAndEmployee(ctx context.Context, id, employeeID int64) (Experience, error)
	GetByID(ctx context.Context, id int64) (Experience, error)
	Create(ctx context.Context, e Experience) (Experience, error)
	Update(ctx context.Context, e Experience) (Experience, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context, employeeID int64) ([]Response, error)
	Get(ctx context.Context, employeeID, expID int64) (Response, error)
	Create(ctx context.Context, req UpsertRequest) (Response, error)
	Update(ctx context.Context, req UpsertRequest) (Response, error)
	Delete(ctx context.Context, expID int64) error
}
