package postgresql

import (
	"context"
	"fmt"

	"github.com/erphq/hrm-backend-go/internal/domain/performance"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type performanceRepositoryImpl struct {
	db *database.DB
}

func NewPerformanceRepository(db *database.DB) performance.Repository {
	return &performanceRepositoryImpl{db: db}
}

const performanceColumns = `id, employee_id, type, performance_date,
	reporting_to, job_knowledge, work_quality, attendance, communication, dependability,
	reviewer, comments,
	completion_date, goal_description, employee_assessment, supervisor, supervisor_assessment`

// ListByEmployee implements performance.Repository.
func (r *performanceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+performanceColumns+`
		 FROM erp_hr_employee_performances
		 WHERE employee_id = $1
		 ORDER BY performance_date DESC, id DESC`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list performances for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var items []performance.Performance
	for rows.Next() {
		var p performance.Performance
		err := rows.Scan(
			&p.ID, &p.EmployeeID, &p.Type, &p.PerformanceDate,
			&p.ReportingTo, &p.JobKnowledge, &p.WorkQuality, &p.Attendance, &p.Communication, &p.Dependability,
			&p.Reviewer, &p.Comments,
			&p.CompletionDate, &p.GoalDescription, &p.EmployeeAssessment, &p.Supervisor, &p.SupervisorAssessment,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Create implements performance.Repository.
func (r *performanceRepositoryImpl) Create(ctx context.Context, p performance.Performance) (performance.Performance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO erp_hr_employee_performances (
			employee_id, type, performance_date,
			reporting_to, job_knowledge, work_quality, attendance, communication, dependability,
			reviewer, comments,
			completion_date, goal_description, employee_assessment, supervisor, supervisor_assessment
		) VALUES (
			$1, $2, $3,
			$4, $5, $6, $7, $8, $9,
			$10, $11,
			$12, $13, $14, $15, $16
		)
		RETURNING id
	`

	err := q.QueryRow(ctx, query,
		p.EmployeeID, p.Type, p.PerformanceDate,
		p.ReportingTo, p.JobKnowledge, p.WorkQuality, p.Attendance, p.Communication, p.Dependability,
		p.Reviewer, p.Comments,
		p.CompletionDate, p.GoalDescription, p.EmployeeAssessment, p.Supervisor, p.SupervisorAssessment,
	).Scan(&p.ID)
	if err != nil {
		return performance.Performance{}, fmt.Errorf("create performance entry: %w", err)
	}
	return p, nil
}

// Delete implements performance.Repository.
func (r *performanceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM erp_hr_employee_performances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete performance entry %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return performance.ErrPerformanceNotFound
	}
	return nil
}
