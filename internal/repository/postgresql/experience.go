package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erphq/hrm-backend-go/internal/domain/experience"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type experienceRepositoryImpl struct {
	db *database.DB
}

func NewExperienceRepository(db *database.DB) experience.Repository {
	return &experienceRepositoryImpl{db: db}
}

const experienceColumns = `id, employee_id, company_name, job_title, description, date_from, date_to`

func scanExperience(row pgx.Row) (experience.Experience, error) {
	var e experience.Experience
	err := row.Scan(&e.ID, &e.EmployeeID, &e.CompanyName, &e.JobTitle, &e.Description, &e.From, &e.To)
	return e, err
}

// ListByEmployee implements experience.Repository.
func (r *experienceRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]experience.Experience, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+experienceColumns+` FROM erp_hr_employee_experiences WHERE employee_id = $1 ORDER BY id`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list experiences for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var items []experience.Experience
	for rows.Next() {
		e, err := scanExperience(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetByIDAndEmployee implements experience.Repository.
func (r *experienceRepositoryImpl) GetByIDAndEmployee(ctx context.Context, id, employeeID int64) (experience.Experience, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanExperience(q.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM erp_hr_employee_experiences WHERE id = $1 AND employee_id = $2`,
		id, employeeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return experience.Experience{}, experience.ErrExperienceNotFound
		}
		return experience.Experience{}, fmt.Errorf("get experience %d: %w", id, err)
	}
	return e, nil
}

// GetByID implements experience.Repository.
func (r *experienceRepositoryImpl) GetByID(ctx context.Context, id int64) (experience.Experience, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanExperience(q.QueryRow(ctx,
		`SELECT `+experienceColumns+` FROM erp_hr_employee_experiences WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return experience.Experience{}, experience.ErrExperienceNotFound
		}
		return experience.Experience{}, fmt.Errorf("get experience %d: %w", id, err)
	}
	return e, nil
}

// Create implements experience.Repository.
func (r *experienceRepositoryImpl) Create(ctx context.Context, e experience.Experience) (experience.Experience, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO erp_hr_employee_experiences (employee_id, company_name, job_title, description, date_from, date_to)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + experienceColumns

	created, err := scanExperience(q.QueryRow(ctx, query,
		e.EmployeeID, e.CompanyName, e.JobTitle, e.Description, e.From, e.To,
	))
	if err != nil {
		return experience.Experience{}, fmt.Errorf("create experience: %w", err)
	}
	return created, nil
}

// Update implements experience.Repository.
func (r *experienceRepositoryImpl) Update(ctx context.Context, e experience.Experience) (experience.Experience, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE erp_hr_employee_experiences
		SET company_name = $1, job_title = $2, description = $3, date_from = $4, date_to = $5
		WHERE id = $6 AND employee_id = $7
		RETURNING ` + experienceColumns

	updated, err := scanExperience(q.QueryRow(ctx, query,
		e.CompanyName, e.JobTitle, e.Description, e.From, e.To, e.ID, e.EmployeeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return experience.Experience{}, experience.ErrExperienceNotFound
		}
		return experience.Experience{}, fmt.Errorf("update experience %d: %w", e.ID, err)
	}
	return updated, nil
}

// Delete implements experience.Repository.
func (r *experienceRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM erp_hr_employee_experiences WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete experience %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return experience.ErrExperienceNotFound
	}
	return nil
}
