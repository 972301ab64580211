package leave

import "context"

type Repository interface {
	Policies(ctx context.Context) ([]Policy, error)
	Entitlements(ctx context.Context, employeeID int64) ([]Entitlement, error)
	Balances(ctx context.Context, employeeID int64) (map[int64]Balance, error)
	// RequestsByEmployee returns requests ordered by start date.
	RequestsByEmployee(ctx context.Context, employeeID int64) ([]Request, error)
	CreateRequest(ctx context.Context, r Request) (Request, error)
	Holidays(ctx context.Context) ([]Holiday, error)
}
