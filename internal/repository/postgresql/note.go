package postgresql

import (
	"context"
	"fmt"

	"github.com/erphq/hrm-backend-go/internal/domain/note"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type noteRepositoryImpl struct {
	db *database.DB
}

func NewNoteRepository(db *database.DB) note.Repository {
	return &noteRepositoryImpl{db: db}
}

// ListByEmployee implements note.Repository.
func (r *noteRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]note.Note, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT id, employee_id, comment_by, note, created_at
		 FROM erp_hr_employee_notes
		 WHERE employee_id = $1
		 ORDER BY created_at DESC
		 LIMIT $2 OFFSET $3`,
		employeeID, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("list notes for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var notes []note.Note
	for rows.Next() {
		var n note.Note
		if err := rows.Scan(&n.ID, &n.EmployeeID, &n.CommentBy, &n.Note, &n.CreatedAt); err != nil {
			return nil, err
		}
		notes = append(notes, n)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return notes, nil
}

// CountByEmployee implements note.Repository.
func (r *noteRepositoryImpl) CountByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var total int64
	err := q.QueryRow(ctx,
		`SELECT COUNT(*) FROM erp_hr_employee_notes WHERE employee_id = $1`,
		employeeID,
	).Scan(&total)
	if err != nil {
		return 0, fmt.Errorf("count notes for employee %d: %w", employeeID, err)
	}
	return total, nil
}

// Create implements note.Repository.
func (r *noteRepositoryImpl) Create(ctx context.Context, n note.Note) (note.Note, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO erp_hr_employee_notes (employee_id, comment_by, note)
		VALUES ($1, $2, $3)
		RETURNING id, employee_id, comment_by, note, created_at
	`

	var created note.Note
	err := q.QueryRow(ctx, query, n.EmployeeID, n.CommentBy, n.Note).Scan(
		&created.ID, &created.EmployeeID, &created.CommentBy, &created.Note, &created.CreatedAt,
	)
	if err != nil {
		return note.Note{}, fmt.Errorf("create note: %w", err)
	}
	return created, nil
}

// Delete implements note.Repository.
func (r *noteRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM erp_hr_employee_notes WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete note %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return note.ErrNoteNotFound
	}
	return nil
}
