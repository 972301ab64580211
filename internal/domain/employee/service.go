package employee

import "context"

// Service is the employee resource controller: request-to-domain mapping,
// validation, persistence orchestration and response shaping.
type Service interface {
	// List returns shaped employees plus the true total count for the
	// collection envelope.
	List(ctx context.Context, f Filter) ([]map[string]any, int64, error)

	// Get shapes one employee, expanding the recognized include tokens.
	Get(ctx context.Context, id int64, include []string) (map[string]any, error)

	Create(ctx context.Context, req CreateEmployeeRequest) (map[string]any, int64, error)

	// BulkCreate stops at the first failing item and reports how many
	// records were created before it.
	BulkCreate(ctx context.Context, reqs []CreateEmployeeRequest) (int, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) (map[string]any, error)

	Delete(ctx context.Context, id int64) error

	// Terminate runs the termination state transition; a refusal surfaces
	// as a failed-transition error, not a validation error.
	Terminate(ctx context.Context, req TerminateRequest) error

	Roles(ctx context.Context, employeeID int64) ([]string, error)
	UpdateRoles(ctx context.Context, req UpdateRolesRequest) ([]string, error)
}
