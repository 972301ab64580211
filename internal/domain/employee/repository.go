package employee

import "context"

type Repository interface {
	GetByID(ctx context.Context, id int64) (Employee, error)
	Exists(ctx context.Context, id int64) (bool, error)
	List(ctx context.Context, f Filter) ([]Employee, error)
	Count(ctx context.Context, f Filter) (int64, error)
	Create(ctx context.Context, e Employee) (Employee, error)
	Update(ctx context.Context, e Employee) (Employee, error)
	SoftDelete(ctx context.Context, id int64) error
	Terminate(ctx context.Context, t Termination) error
	Roles(ctx context.Context, employeeID int64) ([]string, error)
	// UpdateRoles applies the toggles atomically and returns the resulting
	// role list.
	UpdateRoles(ctx context.Context, employeeID int64, toggles map[string]bool) ([]string, error)
}
