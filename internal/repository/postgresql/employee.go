package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type employeeRepositoryImpl struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.Repository {
	return &employeeRepositoryImpl{db: db}
}

const employeeColumns = `id, first_name, middle_name, last_name, email,
	department_id, designation_id, reporting_to, location, hiring_source,
	hiring_date, date_of_birth, pay_rate, pay_type, type, status,
	other_email, phone, work_phone, mobile, address, gender, marital_status,
	nationality, driving_license, hobbies, user_url, description,
	street_1, street_2, city, state, postal_code, country,
	terminate_date, termination_type, termination_reason, eligible_for_rehire,
	created_at, updated_at, deleted_at`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var e employee.Employee
	err := row.Scan(
		&e.ID, &e.FirstName, &e.MiddleName, &e.LastName, &e.Email,
		&e.DepartmentID, &e.DesignationID, &e.ReportingTo, &e.Location, &e.HiringSource,
		&e.HiringDate, &e.DateOfBirth, &e.PayRate, &e.PayType, &e.Type, &e.Status,
		&e.OtherEmail, &e.Phone, &e.WorkPhone, &e.Mobile, &e.Address, &e.Gender, &e.MaritalStatus,
		&e.Nationality, &e.DrivingLicense, &e.Hobbies, &e.UserURL, &e.Description,
		&e.Street1, &e.Street2, &e.City, &e.State, &e.PostalCode, &e.Country,
		&e.TerminateDate, &e.TerminationType, &e.TerminationReason, &e.EligibleForRehire,
		&e.CreatedAt, &e.UpdatedAt, &e.DeletedAt,
	)
	return e, err
}

// GetByID implements employee.Repository.
func (r *employeeRepositoryImpl) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM erp_hr_employees WHERE id = $1 AND deleted_at IS NULL`

	e, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("get employee %d: %w", id, err)
	}
	return e, nil
}

// Exists implements employee.Repository.
func (r *employeeRepositoryImpl) Exists(ctx context.Context, id int64) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM erp_hr_employees WHERE id = $1 AND deleted_at IS NULL)`,
		id,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("check employee %d: %w", id, err)
	}
	return exists, nil
}

// listConditions builds the WHERE clause shared by List and Count. A -1 id or
// empty string in the filter means "any".
func listConditions(f employee.Filter) (string, []interface{}) {
	conditions := []string{"deleted_at IS NULL"}
	args := []interface{}{}

	if f.Status != "" && f.Status != "all" {
		args = append(args, f.Status)
		conditions = append(conditions, fmt.Sprintf("status = $%d", len(args)))
	}
	if f.Department > 0 {
		args = append(args, f.Department)
		conditions = append(conditions, fmt.Sprintf("department_id = $%d", len(args)))
	}
	if f.Designation > 0 {
		args = append(args, f.Designation)
		conditions = append(conditions, fmt.Sprintf("designation_id = $%d", len(args)))
	}
	if f.Location != "" {
		args = append(args, f.Location)
		conditions = append(conditions, fmt.Sprintf("location = $%d", len(args)))
	}

	return strings.Join(conditions, " AND "), args
}

// List implements employee.Repository.
func (r *employeeRepositoryImpl) List(ctx context.Context, f employee.Filter) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	where, args := listConditions(f)
	args = append(args, f.PerPage, f.Offset())
	query := fmt.Sprintf(
		`SELECT %s FROM erp_hr_employees WHERE %s ORDER BY id LIMIT $%d OFFSET $%d`,
		employeeColumns, where, len(args)-1, len(args),
	)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return employees, nil
}

// Count implements employee.Repository.
func (r *employeeRepositoryImpl) Count(ctx context.Context, f employee.Filter) (int64, error) {
	q := GetQuerier(ctx, r.db)

	where, args := listConditions(f)
	query := `SELECT COUNT(*) FROM erp_hr_employees WHERE ` + where

	var total int64
	if err := q.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count employees: %w", err)
	}
	return total, nil
}

// Create implements employee.Repository.
func (r *employeeRepositoryImpl) Create(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO erp_hr_employees (
			first_name, middle_name, last_name, email,
			department_id, designation_id, reporting_to, location, hiring_source,
			hiring_date, date_of_birth, pay_rate, pay_type, type, status,
			other_email, phone, work_phone, mobile, address, gender, marital_status,
			nationality, driving_license, hobbies, user_url, description,
			street_1, street_2, city, state, postal_code, country
		) VALUES (
			$1, $2, $3, $4,
			$5, $6, $7, $8, $9,
			$10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, $20, $21, $22,
			$23, $24, $25, $26, $27,
			$28, $29, $30, $31, $32, $33
		)
		RETURNING ` + employeeColumns

	created, err := scanEmployee(q.QueryRow(ctx, query,
		e.FirstName, e.MiddleName, e.LastName, e.Email,
		e.DepartmentID, e.DesignationID, e.ReportingTo, e.Location, e.HiringSource,
		e.HiringDate, e.DateOfBirth, e.PayRate, e.PayType, e.Type, e.Status,
		e.OtherEmail, e.Phone, e.WorkPhone, e.Mobile, e.Address, e.Gender, e.MaritalStatus,
		e.Nationality, e.DrivingLicense, e.Hobbies, e.UserURL, e.Description,
		e.Street1, e.Street2, e.City, e.State, e.PostalCode, e.Country,
	))
	if err != nil {
		return employee.Employee{}, fmt.Errorf("create employee: %w", err)
	}
	return created, nil
}

// Update implements employee.Repository.
func (r *employeeRepositoryImpl) Update(ctx context.Context, e employee.Employee) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE erp_hr_employees SET
			first_name = $1, middle_name = $2, last_name = $3, email = $4,
			department_id = $5, designation_id = $6, reporting_to = $7, location = $8,
			hiring_source = $9, hiring_date = $10, date_of_birth = $11,
			pay_rate = $12, pay_type = $13, type = $14, status = $15,
			other_email = $16, phone = $17, work_phone = $18, mobile = $19,
			address = $20, gender = $21, marital_status = $22, nationality = $23,
			driving_license = $24, hobbies = $25, user_url = $26, description = $27,
			street_1 = $28, street_2 = $29, city = $30, state = $31,
			postal_code = $32, country = $33, updated_at = NOW()
		WHERE id = $34 AND deleted_at IS NULL
		RETURNING ` + employeeColumns

	updated, err := scanEmployee(q.QueryRow(ctx, query,
		e.FirstName, e.MiddleName, e.LastName, e.Email,
		e.DepartmentID, e.DesignationID, e.ReportingTo, e.Location,
		e.HiringSource, e.HiringDate, e.DateOfBirth,
		e.PayRate, e.PayType, e.Type, e.Status,
		e.OtherEmail, e.Phone, e.WorkPhone, e.Mobile,
		e.Address, e.Gender, e.MaritalStatus, e.Nationality,
		e.DrivingLicense, e.Hobbies, e.UserURL, e.Description,
		e.Street1, e.Street2, e.City, e.State,
		e.PostalCode, e.Country, e.ID,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("update employee %d: %w", e.ID, err)
	}
	return updated, nil
}

// SoftDelete implements employee.Repository.
func (r *employeeRepositoryImpl) SoftDelete(ctx context.Context, id int64) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx,
		`UPDATE erp_hr_employees SET deleted_at = NOW() WHERE id = $1 AND deleted_at IS NULL`,
		id,
	)
	if err != nil {
		return fmt.Errorf("delete employee %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Terminate implements employee.Repository.
func (r *employeeRepositoryImpl) Terminate(ctx context.Context, t employee.Termination) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE erp_hr_employees SET
			status = $1, terminate_date = $2, termination_type = $3,
			termination_reason = $4, eligible_for_rehire = $5, updated_at = NOW()
		WHERE id = $6 AND deleted_at IS NULL
	`

	tag, err := q.Exec(ctx, query,
		employee.StatusTerminated, t.TerminateDate, t.TerminationType,
		t.TerminationReason, t.EligibleForRehire, t.EmployeeID,
	)
	if err != nil {
		return fmt.Errorf("terminate employee %d: %w", t.EmployeeID, err)
	}
	if tag.RowsAffected() == 0 {
		return employee.ErrEmployeeNotFound
	}
	return nil
}

// Roles implements employee.Repository.
func (r *employeeRepositoryImpl) Roles(ctx context.Context, employeeID int64) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT role FROM erp_hr_employee_roles WHERE employee_id = $1 ORDER BY role`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list roles for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var roles []string
	for rows.Next() {
		var role string
		if err := rows.Scan(&role); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roles, nil
}

// UpdateRoles implements employee.Repository.
func (r *employeeRepositoryImpl) UpdateRoles(ctx context.Context, employeeID int64, toggles map[string]bool) ([]string, error) {
	var roles []string

	err := database.WithTransaction(ctx, r.db, func(tx pgx.Tx) error {
		txCtx := WithTx(ctx, tx)
		q := GetQuerier(txCtx, r.db)

		for role, enabled := range toggles {
			if enabled {
				_, err := q.Exec(txCtx,
					`INSERT INTO erp_hr_employee_roles (employee_id, role)
					 VALUES ($1, $2) ON CONFLICT (employee_id, role) DO NOTHING`,
					employeeID, role,
				)
				if err != nil {
					return fmt.Errorf("grant role %s: %w", role, err)
				}
				continue
			}
			_, err := q.Exec(txCtx,
				`DELETE FROM erp_hr_employee_roles WHERE employee_id = $1 AND role = $2`,
				employeeID, role,
			)
			if err != nil {
				return fmt.Errorf("revoke role %s: %w", role, err)
			}
		}

		var err error
		roles, err = r.Roles(txCtx, employeeID)
		return err
	})
	if err != nil {
		return nil, err
	}

	return roles, nil
}
