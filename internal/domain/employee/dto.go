package employee

import (
	"github.com/erphq/hrm-backend-go/internal/pkg/coerce"
	"github.com/shopspring/decimal"
)

// CreateEmployeeRequest is the request-side safelist: only these keys are
// read from the payload, everything else is dropped by the decoder. Optional
// fields are pointers so an absent key stays absent instead of becoming a
// zero entry.
type CreateEmployeeRequest struct {
	FirstName      string           `json:"first_name"`
	MiddleName     *string          `json:"middle_name"`
	LastName       string           `json:"last_name"`
	Email          string           `json:"email"`
	Designation    *coerce.ID       `json:"designation"`
	Department     *coerce.ID       `json:"department"`
	ReportingTo    *coerce.ID       `json:"reporting_to"`
	Location       *string          `json:"location"`
	HiringSource   *string          `json:"hiring_source"`
	HiringDate     *string          `json:"hiring_date"`
	DateOfBirth    *string          `json:"date_of_birth"`
	PayRate        *decimal.Decimal `json:"pay_rate"`
	PayType        *string          `json:"pay_type"`
	Type           *string          `json:"type"`
	Status         *string          `json:"status"`
	OtherEmail     *string          `json:"other_email"`
	Phone          *string          `json:"phone"`
	WorkPhone      *string          `json:"work_phone"`
	Mobile         *string          `json:"mobile"`
	Address        *string          `json:"address"`
	Gender         *string          `json:"gender"`
	MaritalStatus  *string          `json:"marital_status"`
	Nationality    *string          `json:"nationality"`
	DrivingLicense *string          `json:"driving_license"`
	Hobbies        *string          `json:"hobbies"`
	UserURL        *string          `json:"user_url"`
	Description    *string          `json:"description"`
	Street1        *string          `json:"street_1"`
	Street2        *string          `json:"street_2"`
	City           *string          `json:"city"`
	Country        *string          `json:"country"`
	State          *string          `json:"state"`
	PostalCode     *string          `json:"postal_code"`
}

// UpdateEmployeeRequest carries the same safelist for partial updates. The
// target id comes from the path, never the body.
type UpdateEmployeeRequest struct {
	ID             int64            `json:"-"`
	FirstName      *string          `json:"first_name"`
	MiddleName     *string          `json:"middle_name"`
	LastName       *string          `json:"last_name"`
	Email          *string          `json:"email"`
	Designation    *coerce.ID       `json:"designation"`
	Department     *coerce.ID       `json:"department"`
	ReportingTo    *coerce.ID       `json:"reporting_to"`
	Location       *string          `json:"location"`
	HiringSource   *string          `json:"hiring_source"`
	HiringDate     *string          `json:"hiring_date"`
	DateOfBirth    *string          `json:"date_of_birth"`
	PayRate        *decimal.Decimal `json:"pay_rate"`
	PayType        *string          `json:"pay_type"`
	Type           *string          `json:"type"`
	Status         *string          `json:"status"`
	OtherEmail     *string          `json:"other_email"`
	Phone          *string          `json:"phone"`
	WorkPhone      *string          `json:"work_phone"`
	Mobile         *string          `json:"mobile"`
	Address        *string          `json:"address"`
	Gender         *string          `json:"gender"`
	MaritalStatus  *string          `json:"marital_status"`
	Nationality    *string          `json:"nationality"`
	DrivingLicense *string          `json:"driving_license"`
	Hobbies        *string          `json:"hobbies"`
	UserURL        *string          `json:"user_url"`
	Description    *string          `json:"description"`
	Street1        *string          `json:"street_1"`
	Street2        *string          `json:"street_2"`
	City           *string          `json:"city"`
	Country        *string          `json:"country"`
	State          *string          `json:"state"`
	PostalCode     *string          `json:"postal_code"`
}

// TerminateRequest maps the terminate endpoint's payload.
type TerminateRequest struct {
	EmployeeID        int64   `json:"-"`
	TerminateDate     *string `json:"terminate_date"`
	TerminationType   *string `json:"termination_type"`
	TerminationReason *string `json:"termination_reason"`
	EligibleForRehire *string `json:"eligible_for_rehire"`
}

// UpdateRolesRequest toggles roles on or off in one atomic step. CallerCaps
// carries the caller's capabilities for the in-action permission re-check.
type UpdateRolesRequest struct {
	EmployeeID int64           `json:"-"`
	CallerCaps []string        `json:"-"`
	Roles      map[string]bool `json:"roles"`
}

// Filter narrows the employee collection. A -1 id or empty string means
// "any", mirroring the listing defaults.
type Filter struct {
	Status      string
	Department  int64
	Designation int64
	Location    string
	Page        int
	PerPage     int
}

// Offset converts page/per-page into a row offset.
func (f Filter) Offset() int {
	if f.Page < 1 {
		return 0
	}
	return f.PerPage * (f.Page - 1)
}

// IncludeTokens are the relation-expansion directives the employee response
// mapper recognizes; anything else in the include list is ignored.
const (
	IncludeDepartment  = "department"
	IncludeDesignation = "designation"
	IncludeReportingTo = "reporting_to"
	IncludeAvatar      = "avatar"
	IncludeRoles       = "roles"
)
