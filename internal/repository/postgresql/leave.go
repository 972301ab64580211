package postgresql

import (
	"context"
	"fmt"

	"github.com/erphq/hrm-backend-go/internal/domain/leave"
	"github.com/erphq/hrm-backend-go/internal/pkg/database"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

func NewLeaveRepository(db *database.DB) leave.Repository {
	return &leaveRepositoryImpl{db: db}
}

// Policies implements leave.Repository.
func (r *leaveRepositoryImpl) Policies(ctx context.Context) ([]leave.Policy, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, name, color, value FROM erp_hr_leave_policies ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list leave policies: %w", err)
	}
	defer rows.Close()

	var policies []leave.Policy
	for rows.Next() {
		var p leave.Policy
		if err := rows.Scan(&p.ID, &p.Name, &p.Color, &p.Value); err != nil {
			return nil, err
		}
		policies = append(policies, p)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return policies, nil
}

// Entitlements implements leave.Repository.
func (r *leaveRepositoryImpl) Entitlements(ctx context.Context, employeeID int64) ([]leave.Entitlement, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx,
		`SELECT policy_id, days, from_date, to_date
		 FROM erp_hr_leave_entitlements
		 WHERE user_id = $1
		 ORDER BY policy_id`,
		employeeID,
	)
	if err != nil {
		return nil, fmt.Errorf("list entitlements for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var items []leave.Entitlement
	for rows.Next() {
		var e leave.Entitlement
		if err := rows.Scan(&e.PolicyID, &e.Days, &e.FromDate, &e.ToDate); err != nil {
			return nil, err
		}
		items = append(items, e)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

// Balances implements leave.Repository. Total counts approved requested days
// per policy, scheduled the approved days that have not started yet.
func (r *leaveRepositoryImpl) Balances(ctx context.Context, employeeID int64) (map[int64]leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.policy_id, e.days,
			COALESCE(SUM(r.days) FILTER (WHERE r.status = $2), 0),
			COALESCE(SUM(r.days) FILTER (WHERE r.status = $2 AND r.start_date > NOW()), 0)
		FROM erp_hr_leave_entitlements e
		LEFT JOIN erp_hr_leave_requests r
			ON r.policy_id = e.policy_id AND r.user_id = e.user_id
		WHERE e.user_id = $1
		GROUP BY e.policy_id, e.days
	`

	rows, err := q.Query(ctx, query, employeeID, leave.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("leave balances for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	balances := make(map[int64]leave.Balance)
	for rows.Next() {
		var b leave.Balance
		if err := rows.Scan(&b.PolicyID, &b.Entitlement, &b.Total, &b.Scheduled); err != nil {
			return nil, err
		}
		balances[b.PolicyID] = b
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return balances, nil
}

// RequestsByEmployee implements leave.Repository.
func (r *leaveRepositoryImpl) RequestsByEmployee(ctx context.Context, employeeID int64) ([]leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT r.id, r.user_id,
			TRIM(CONCAT(e.first_name, ' ', e.last_name)),
			r.policy_id, p.name, p.color, r.status, r.reason, r.comments,
			r.created_on, r.days, r.start_date, r.end_date
		FROM erp_hr_leave_requests r
		JOIN erp_hr_leave_policies p ON p.id = r.policy_id
		JOIN erp_hr_employees e ON e.id = r.user_id
		WHERE r.user_id = $1
		ORDER BY r.start_date
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list leave requests for employee %d: %w", employeeID, err)
	}
	defer rows.Close()

	var requests []leave.Request
	for rows.Next() {
		var lr leave.Request
		err := rows.Scan(
			&lr.ID, &lr.UserID, &lr.DisplayName,
			&lr.PolicyID, &lr.PolicyName, &lr.Color, &lr.Status, &lr.Reason, &lr.Comments,
			&lr.CreatedOn, &lr.Days, &lr.StartDate, &lr.EndDate,
		)
		if err != nil {
			return nil, err
		}
		requests = append(requests, lr)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return requests, nil
}

// CreateRequest implements leave.Repository.
func (r *leaveRepositoryImpl) CreateRequest(ctx context.Context, lr leave.Request) (leave.Request, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO erp_hr_leave_requests (user_id, policy_id, status, reason, comments, days, start_date, end_date, created_on)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		RETURNING id, created_on
	`

	err := q.QueryRow(ctx, query,
		lr.UserID, lr.PolicyID, lr.Status, lr.Reason, lr.Comments, lr.Days, lr.StartDate, lr.EndDate,
	).Scan(&lr.ID, &lr.CreatedOn)
	if err != nil {
		return leave.Request{}, fmt.Errorf("create leave request: %w", err)
	}
	return lr, nil
}

// Holidays implements leave.Repository.
func (r *leaveRepositoryImpl) Holidays(ctx context.Context) ([]leave.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	rows, err := q.Query(ctx, `SELECT id, title, start, "end" FROM erp_hr_holidays ORDER BY start`)
	if err != nil {
		return nil, fmt.Errorf("list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []leave.Holiday
	for rows.Next() {
		var h leave.Holiday
		if err := rows.Scan(&h.ID, &h.Title, &h.Start, &h.End); err != nil {
			return nil, err
		}
		holidays = append(holidays, h)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return holidays, nil
}
