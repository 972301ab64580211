package history

import (
	"context"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

// History rows record employee timeline events. The module discriminator
// selects which variant fields are meaningful.
const (
	ModuleStatus       = "status"
	ModuleCompensation = "compensation"
	ModuleInformation  = "information"
)

type History struct {
	ID         int64
	EmployeeID int64
	Module     string
	Date       time.Time

	// status
	Status  string
	Comment string

	// compensation
	PayRate decimal.Decimal
	PayType string
	Reason  string

	// information
	DepartmentID  int64
	DesignationID int64
	ReportingTo   int64
	Location      string
}

var (
	ErrNoModuleType    = resterror.New("rest_no_module_type", "Invalid module type", http.StatusBadRequest)
	ErrInvalidStatus   = resterror.BadRequest("rest_invalid_employee_status", "Invalid employee status")
	ErrInvalidPayRate  = resterror.BadRequest("rest_invalid_pay_rate", "Invalid pay rate")
	ErrInvalidPayType  = resterror.BadRequest("rest_invalid_pay_type", "Invalid pay type")
	ErrInvalidReason   = resterror.BadRequest("rest_invalid_reason", "Invalid pay change reason")
	ErrInvalidReportTo = resterror.BadRequest("rest_invalid_reporting_to", "Invalid reporting to ID")
	ErrHistoryNotFound = resterror.NotFound("rest_invalid_history_id", "Invalid history id.")
)

// RequiredCode tags missing-field errors for every history variant.
const RequiredCode = "rest_required_fields"

type Filter struct {
	EmployeeID int64
	// Module narrows the listing to one variant; empty means all.
	Module string
}

type Repository interface {
	List(ctx context.Context, f Filter) ([]History, error)
	Create(ctx context.Context, h History) (History, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	// List groups the employee's timeline rows by module.
	List(ctx context.Context, f Filter) (map[string][]map[string]any, error)
	Create(ctx context.Context, employeeID int64, payload map[string]any) (map[string]any, error)
	Delete(ctx context.Context, historyID int64) error
}
