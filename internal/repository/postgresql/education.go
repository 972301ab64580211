package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erphq/hrm-backend-go/internal/domain/education"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type educationRepositoryImpl struct {
	db *database.DB
}

func NewEducationRepository(db *database.DB) education.Repository {
	return &educationRepositoryImpl{db: db}
}

const educationColumns = `id, employee_id, school, degree, field, finished, notes, interest`

func scanEducation(row pgx.Row) (education.Education, error) {
	var e education.Education
	err := row.Scan(&e.ID, &e.EmployeeID, &e.School, &e.Degree, &e.Field, &e.Finished, &e.Notes, &e.Interest)
	return e, err
}

// ListByEmployee implements education.Repository.
func (r *educationRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]education.Education, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+educationColumns+` FROM erp_hr_employee_educations WHERE employee_id = $1 ORDER BY id`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list educations for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var items []education.Education
	for rows.Next() {
		e, err := scanEducation(rows)
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

// GetByIDAndEmployee implements education.Repository.
func (r *educationRepositoryImpl) GetByIDAndEmployee(ctx context.Context, id, employeeID int64) (education.Education, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEducation(q.QueryRow(ctx,
		`SELECT `+educationColumns+` FROM erp_hr_employee_educations WHERE id = $1 AND employee_id = $2`,
		id, employeeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return education.Education{}, education.ErrEducationNotFound
		}
		return education.Education{}, fmt.Errorf("get education %d: %w", id, err)
	}
	return e, nil
}

// GetByID implements education.Repository.
func (r *educationRepositoryImpl) GetByID(ctx context.Context, id int64) (education.Education, error) {
	q := GetQuerier(ctx, r.db)

	e, err := scanEducation(q.QueryRow(ctx,
		`SELECT `+educationColumns+` FROM erp_hr_employee_educations WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return education.Education{}, education.ErrEducationNotFound
		}
		return education.Education{}, fmt.Errorf("get education %d: %w", id, err)
	}
	return e, nil
}

// Create implements education.Repository.
func (r *educationRepositoryImpl) Create(ctx context.Context, e education.Education) (education.Education, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO erp_hr_employee_educations (employee_id, school, degree, field, finished, notes, interest)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + educationColumns

	created, err := scanEducation(q.QueryRow(ctx, query,
		e.EmployeeID, e.School, e.Degree, e.Field, e.Finished, e.Notes, e.Interest,
	))
	if err != nil {
		return education.Education{}, fmt.Errorf("create education: %w", err)
	}
	return created, nil
}

// Update implements education.Repository.
func (r *educationRepositoryImpl) Update(ctx context.Context, e education.Education) (education.Education, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE erp_hr_employee_educations
		SET school = $1, degree = $2, field = $3, finished = $4, notes = $5, interest = $6
		WHERE id = $7 AND employee_id = $8
		RETURNING ` + educationColumns

	updated, err := scanEducation(q.QueryRow(ctx, query,
		e.School, e.Degree, e.Field, e.Finished, e.Notes, e.Interest, e.ID, e.EmployeeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return education.Education{}, education.ErrEducationNotFound
		}
		return education.Education{}, fmt.Errorf("update education %d: %w", e.ID, err)
	}
	return updated, nil
}

// Delete implements education.Repository.
func (r *educationRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM erp_hr_employee_educations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete education %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return education.ErrEducationNotFound
	}
	return nil
}
