package employee

import (
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

var (
	ErrEmployeeNotFound = resterror.NotFound("rest_employee_invalid_id", "Invalid resource id.")

	ErrFirstNameRequired = resterror.RequiredField("rest_employee_required_fields", "first_name")
	ErrLastNameRequired  = resterror.RequiredField("rest_employee_required_fields", "last_name")
	ErrEmailRequired     = resterror.RequiredField("rest_employee_required_fields", "email")

	ErrInvalidRoleFormat = resterror.BadRequest("rest_invalid_role_format", "Invalid role format")

	// Termination refusals are failed state transitions, answered 401.
	ErrTerminateDateRequired = resterror.FailedTransition("rest_employee_terminate_failed", "Termination date is required")
	ErrAlreadyTerminated     = resterror.FailedTransition("rest_employee_terminate_failed", "Employee is already terminated")

	// The legacy API answered the in-action roles permission check with a
	// 404-coded error; callers depend on that shape.
	ErrRolePermission = resterror.New("rest_invalid_user_permission", "User do not have permission for the action.", http.StatusNotFound)
)
