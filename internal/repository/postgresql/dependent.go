package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erphq/hrm-backend-go/internal/domain/dependent"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type dependentRepositoryImpl struct {
	db *database.DB
}

func NewDependentRepository(db *database.DB) dependent.Repository {
	return &dependentRepositoryImpl{db: db}
}

const dependentColumns = `id, employee_id, name, relation, dob`

func scanDependent(row pgx.Row) (dependent.Dependent, error) {
	var d dependent.Dependent
	err := row.Scan(&d.ID, &d.EmployeeID, &d.Name, &d.Relation, &d.DateOfBirth)
	return d, err
}

// ListByEmployee implements dependent.Repository.
func (r *dependentRepositoryImpl) ListByEmployee(ctx context.Context, employeeID int64) ([]dependent.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT `+dependentColumns+` FROM erp_hr_employee_dependents WHERE employee_id = $1 ORDER BY id`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list dependents for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var items []dependent.Dependent
	for rows.Next() {
		d, err := scanDependent(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, d)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// GetByIDAndEmployee implements dependent.Repository.
func (r *dependentRepositoryImpl) GetByIDAndEmployee(ctx context.Context, id, employeeID int64) (dependent.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDependent(q.QueryRow(ctx,
		`SELECT `+dependentColumns+` FROM erp_hr_employee_dependents WHERE id = $1 AND employee_id = $2`,
		id, employeeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dependent.Dependent{}, dependent.ErrDependentNotFound
		}
		return dependent.Dependent{}, fmt.Errorf("get dependent %d: %w", id, err)
	}
	return d, nil
}

// GetByID implements dependent.Repository.
func (r *dependentRepositoryImpl) GetByID(ctx context.Context, id int64) (dependent.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDependent(q.QueryRow(ctx,
		`SELECT `+dependentColumns+` FROM erp_hr_employee_dependents WHERE id = $1`,
		id,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dependent.Dependent{}, dependent.ErrDependentNotFound
		}
		return dependent.Dependent{}, fmt.Errorf("get dependent %d: %w", id, err)
	}
	return d, nil
}

// Create implements dependent.Repository.
func (r *dependentRepositoryImpl) Create(ctx context.Context, d dependent.Dependent) (dependent.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO erp_hr_employee_dependents (employee_id, name, relation, dob)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + dependentColumns

	created, err := scanDependent(q.QueryRow(ctx, query,
		d.EmployeeID, d.Name, d.Relation, d.DateOfBirth,
	))
	if err != nil {
		return dependent.Dependent{}, fmt.Errorf("create dependent: %w", err)
	}
	return created, nil
}

// Update implements dependent.Repository.
func (r *dependentRepositoryImpl) Update(ctx context.Context, d dependent.Dependent) (dependent.Dependent, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE erp_hr_employee_dependents
		SET name = $1, relation = $2, dob = $3
		WHERE id = $4 AND employee_id = $5
		RETURNING ` + dependentColumns

	updated, err := scanDependent(q.QueryRow(ctx, query,
		d.Name, d.Relation, d.DateOfBirth, d.ID, d.EmployeeID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dependent.Dependent{}, dependent.ErrDependentNotFound
		}
		return dependent.Dependent{}, fmt.Errorf("update dependent %d: %w", d.ID, err)
	}
	return updated, nil
}

// Delete implements dependent.Repository.
func (r *dependentRepositoryImpl) Delete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM erp_hr_employee_dependents WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete dependent %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return dependent.ErrDependentNotFound
	}
	return nil
}
