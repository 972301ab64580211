package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erphq/hrm-backend-go/internal/domain/announcement"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type announcementRepositoryImpl struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.Repository {
	return &announcementRepositoryImpl{db: db}
}

const announcementColumns = `id, employee_id, author, title, content, status, date`

// ListByEmployee implements announcement.Repository.
func (r *announcementRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+announcementColumns+`
		 FROM erp_hr_announcements
		 WHERE employee_id = $1
		 ORDER BY date DESC`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list announcements for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var items []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		err := rows.Scan(&a.ID, &a.EmployeeID, &a.Author, &a.Title, &a.Content, &a.Status, &a.Date)
		if err != nil {
			return nil, err
		}
		items = append(items, a)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetByIDAndEmployee implements announcement.Repository.
func (r *announcementRepositoryImpl) GetByIDAndEmployee(ctx context.Context, id, employeeID int64) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	var a announcement.Announcement
	err := q.QueryRow(ctx,
		`SELECT `+announcementColumns+` FROM erp_hr_announcements WHERE id = $1 AND employee_id = $2`,
		id, employeeID,
	).Scan(&a.ID, &a.EmployeeID, &a.Author, &a.Title, &a.Content, &a.Status, &a.Date)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("get announcement %d: %w", id, err)
	}
	return a, nil
}

// MarkRead implements announcement.Repository.
func (r *announcementRepositoryImpl) MarkRead(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE erp_hr_announcements SET status = $1 WHERE id = $2`,
		announcement.StatusRead, id,
	)
	if err != nil {
		return fmt.Errorf("mark announcement %d read: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}
	return nil
}
