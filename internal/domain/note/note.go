package note

import (
	"context"
	"time"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

// Note is a free-text comment pinned to an employee, stamped with the
// commenting user. Never updatable after creation.
type Note struct {
	ID         int64
	EmployeeID int64
	CommentBy  int64
	Note       string
	CreatedAt  time.Time
}

type CreateRequest struct {
	EmployeeID int64  `json:"-"`
	CommentBy  int64  `json:"-"`
	Note       string `json:"note"`
}

const (
	DefaultPerPage = 20
	DefaultOffset  = 0
)

var (
	ErrNoteNotFound = resterror.NotFound("rest_invalid_note_id", "Invalid note id.")
	ErrNoteRequired = resterror.RequiredField("rest_note_required_fields", "note")
)

type Repository interface {
	ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]Note, error)
	CountByEmployee(ctx context.Context, employeeID int64) (int64, error)
	Create(ctx context.Context, n Note) (Note, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context, employeeID int64, perPage, offset int) ([]map[string]any, int64, error)
	Create(ctx context.Context, req CreateRequest) (map[string]any, error)
	Delete(ctx context.Context, noteID int64) error
}
