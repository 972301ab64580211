package postgresql

import (
	"context"
	"fmt"

	"github.com/erphq/hrm-backend-go/internal/domain/history"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type historyRepositoryImpl struct {
	db *database.DB
}

func NewHistoryRepository(db *database.DB) history.Repository {
	return &historyRepositoryImpl{db: db}
}

const historyColumns = `id, employee_id, module, date,
	status, comment,
	pay_rate, pay_type, reason,
	department_id, designation_id, reporting_to, location`

// List implements history.Repository.
func (r *historyRepositoryImpl) List(ctx context.Context, f history.Filter) ([]history.History, error) {
	q := GetQuerier(ctx, r.db)

	args := []interface{}{f.EmployeeID}
	query := `SELECT ` + historyColumns + ` FROM erp_hr_employee_history WHERE employee_id = $1`
	if f.Module != "" {
		args = append(args, f.Module)
		query += ` AND module = $2`
	}
	query += ` ORDER BY date DESC, id DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history for employee %d: %w", f.EmployeeID, err)
	}
	defer rows.Close()

	var items []history.History
	for rows.Next() {
		var h history.History
		err := rows.Scan(
			&h.ID, &h.EmployeeID, &h.Module, &h.Date,
			&h.Status, &h.Comment,
			&h.PayRate, &h.PayType, &h.Reason,
			&h.DepartmentID, &h.DesignationID, &h.ReportingTo, &h.Location,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, h)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Create implements history.Repository.
func (r *historyRepositoryImpl) Create(ctx context.Context, h history.History) (history.History, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO erp_hr_employee_history (
			employee_id, module, date,
			status, comment,
			pay_rate, pay_type, reason,
			department_id, designation_id, reporting_to, location
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		h.EmployeeID, h.Module, h.Date,
		h.Status, h.Comment,
		h.PayRate, h.PayType, h.Reason,
		h.DepartmentID, h.DesignationID, h.ReportingTo, h.Location,
	).Scan(&h.ID)
	if err != nil {
		return history.History{}, fmt.Errorf("create history entry: %w", err)
	}
	return h, nil
}

// Delete implements history.Repository.
func (r *historyRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM erp_hr_employee_history WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete history entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return history.ErrHistoryNotFound
	}
	return nil
}
