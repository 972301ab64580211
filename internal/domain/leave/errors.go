package leave

import "github.com/erphq/hrm-backend-go/internal/pkg/resterror"

var (
	ErrPolicyIDRequired  = resterror.BadRequest("rest_invalid_policy_id", "Invalid Policy id.")
	ErrStartDateRequired = resterror.BadRequest("rest_invalid_start_date", "Invalid Leave Start Date.")
	ErrEndDateRequired   = resterror.BadRequest("rest_invalid_end_date", "Invalid Leave End Date.")
)
