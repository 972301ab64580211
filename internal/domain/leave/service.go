package leave

import "context"

type Service interface {
	// Policies is the read-only balance view: one row per policy the
	// employee holds an entitlement for.
	Policies(ctx context.Context, employeeID int64) ([]PolicySummary, error)

	List(ctx context.Context, employeeID int64) ([]Response, error)

	// Create validates policy/start/end independently and opens the
	// request in the pending state. Returns the new request id.
	Create(ctx context.Context, req CreateRequest) (int64, error)

	// Events merges the employee's leave calendar with company holidays.
	Events(ctx context.Context, employeeID int64) ([]Event, error)
}
