package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/erphq/hrm-backend-go/internal/domain/master/department"
	"github.com/erphq/hrm-backend-go/internal/domain/master/designation"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type departmentRepositoryImpl struct {
	db *database.DB
}

func NewDepartmentRepository(db *database.DB) department.Repository {
	return &departmentRepositoryImpl{db: db}
}

// GetByID implements department.Repository.
func (r *departmentRepositoryImpl) GetByID(ctx context.Context, id int64) (department.Department, error) {
	q := GetQuerier(ctx, r.db)

	var d department.Department
	err := q.QueryRow(ctx,
		`SELECT id, title, description, lead, parent FROM erp_hr_depts WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Title, &d.Description, &d.Lead, &d.Parent)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return department.Department{}, department.ErrDepartmentNotFound
		}
		return department.Department{}, fmt.Errorf("get department %d: %w", id, err)
	}
	return d, nil
}

// Exists implements department.Repository.
func (r *departmentRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM erp_hr_depts WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check department %d: %w", id, err)
	}
	return exists, nil
}

type designationRepositoryImpl struct {
	db *database.DB
}

func NewDesignationRepository(db *database.DB) designation.Repository {
	return &designationRepositoryImpl{db: db}
}

// GetByID implements designation.Repository.
func (r *designationRepositoryImpl) GetByID(ctx context.Context, id int64) (designation.Designation, error) {
	q := GetQuerier(ctx, r.db)

	var d designation.Designation
	err := q.QueryRow(ctx,
		`SELECT id, title, description FROM erp_hr_designations WHERE id = $1`,
		id,
	).Scan(&d.ID, &d.Title, &d.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return designation.Designation{}, designation.ErrDesignationNotFound
		}
		return designation.Designation{}, fmt.Errorf("get designation %d: %w", id, err)
	}
	return d, nil
}

// Exists implements designation.Repository.
func (r *designationRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM erp_hr_designations WHERE id = $1)`, id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check designation %d: %w", id, err)
	}
	return exists, nil
}
