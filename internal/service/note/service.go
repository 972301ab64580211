package note

import (
	"context"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/note"
	"github.com/erphq/hrm-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	noteRepo     note.Repository
	employeeRepo employee.Repository
}

func NewNoteService(noteRepo note.Repository, employeeRepo employee.Repository) note.Service {
	return &ServiceImpl{noteRepo: noteRepo, employeeRepo: employeeRepo}
}

const createdAtFormat = "2006-01-02 15:04:05"

// List implements note.Service.
func (s *ServiceImpl) List(ctx context.Context, employeeID int64, perPage, offset int) ([]map[string]any, int64, error) {
	owner, err := s.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, 0, err
	}

	if perPage < 1 {
		perPage = note.DefaultPerPage
	}
	if offset < 0 {
		offset = note.DefaultOffset
	}

	notes, err := s.noteRepo.ListByEmployee(ctx, employeeID, perPage, offset)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.noteRepo.CountByEmployee(ctx, employeeID)
	if err != nil {
		return nil, 0, err
	}

	items := make([]map[string]any, 0, len(notes))
	for _, n := range notes {
		items = append(items, s.shape(ctx, n, owner))
	}

	return items, total, nil
}

// Create implements note.Service.
func (s *ServiceImpl) Create(ctx context.Context, req note.CreateRequest) (map[string]any, error) {
	owner, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return nil, err
	}
	if validator.IsEmpty(req.Note) {
		return nil, note.ErrNoteRequired
	}

	created, err := s.noteRepo.Create(ctx, note.Note{
		EmployeeID: req.EmployeeID,
		CommentBy:  req.CommentBy,
		Note:       req.Note,
	})
	if err != nil {
		return nil, err
	}

	return s.shape(ctx, created, owner), nil
}

// Delete implements note.Service.
func (s *ServiceImpl) Delete(ctx context.Context, noteID int64) error {
	return s.noteRepo.Delete(ctx, noteID)
}

// shape carries the owning employee's identity under employee_* keys and
// resolves the commenting user's display name best-effort.
func (s *ServiceImpl) shape(ctx context.Context, n note.Note, owner employee.Employee) map[string]any {
	item := map[string]any{
		"id":                  n.ID,
		"note":                n.Note,
		"comment_by":          n.CommentBy,
		"comment_by_name":     "",
		"created_at":          n.CreatedAt.Format(createdAtFormat),
		"employee_id":         owner.ID,
		"employee_first_name": owner.FirstName,
		"employee_last_name":  owner.LastName,
	}
	if n.CommentBy > 0 {
		if c, err := s.employeeRepo.GetByID(ctx, n.CommentBy); err == nil {
			item["comment_by_name"] = c.FullName()
		}
	}
	return item
}
