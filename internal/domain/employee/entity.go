package employee

import (
	"crypto/md5"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// DateFormat is the wire format for every date field in this API.
const DateFormat = "2006-01-02"

type Employee struct {
	ID         int64
	FirstName  string
	MiddleName string
	LastName   string
	Email      string

	// work
	DepartmentID  int64
	DesignationID int64
	ReportingTo   int64
	Location      string
	HiringSource  string
	HiringDate    *time.Time
	DateOfBirth   *time.Time
	PayRate       decimal.Decimal
	PayType       string
	Type          EmploymentType
	Status        Status

	// personal / contact
	OtherEmail     string
	Phone          string
	WorkPhone      string
	Mobile         string
	Address        string
	Gender         string
	MaritalStatus  string
	Nationality    string
	DrivingLicense string
	Hobbies        string
	UserURL        string
	Description    string
	Street1        string
	Street2        string
	City           string
	State          string
	PostalCode     string
	Country        string

	// termination, set once the employee leaves
	TerminateDate     *time.Time
	TerminationType   string
	TerminationReason string
	EligibleForRehire string

	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt *time.Time
}

type Status string

const (
	StatusActive     Status = "active"
	StatusTerminated Status = "terminated"
	StatusDeceased   Status = "deceased"
	StatusResigned   Status = "resigned"
)

type EmploymentType string

const (
	TypeFullTime   EmploymentType = "full-time"
	TypePartTime   EmploymentType = "part-time"
	TypeOnContract EmploymentType = "on-contract"
	TypeTemporary  EmploymentType = "temporary"
	TypeTrainee    EmploymentType = "trainee"
	TypeTerminated EmploymentType = "terminated"
)

// EmploymentTypes is the controlled vocabulary for employment status history
// entries, key to display label.
func EmploymentTypes() map[string]string {
	return map[string]string{
		"full-time":   "Full Time",
		"part-time":   "Part Time",
		"on-contract": "On Contract",
		"temporary":   "Temporary",
		"trainee":     "Trainee",
		"terminated":  "Terminated",
	}
}

// PayTypes is the controlled vocabulary for compensation pay types.
func PayTypes() map[string]string {
	return map[string]string{
		"hourly":     "Hourly",
		"daily":      "Daily",
		"weekly":     "Weekly",
		"monthly":    "Monthly",
		"annually":   "Annually",
		"commission": "Commission",
	}
}

// PayChangeReasons is the controlled vocabulary for compensation changes.
func PayChangeReasons() map[string]string {
	return map[string]string{
		"promotion":   "Promotion",
		"performance": "Performance",
		"merit":       "Merit",
		"increment":   "Increment",
		"demotion":    "Demotion",
		"other":       "Other",
	}
}

// Termination records the state transition of terminating an employee. Not a
// deletion: the record stays, flagged terminated.
type Termination struct {
	EmployeeID        int64
	TerminateDate     time.Time
	TerminationType   string
	TerminationReason string
	EligibleForRehire string
}

// FullName joins the non-empty name parts.
func (e *Employee) FullName() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{e.FirstName, e.MiddleName, e.LastName} {
		if strings.TrimSpace(p) != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

// AvatarURL returns the gravatar URL for the employee's email.
func (e *Employee) AvatarURL(size int) string {
	hash := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(e.Email))))
	return fmt.Sprintf("https://www.gravatar.com/avatar/%x?s=%d", hash, size)
}
