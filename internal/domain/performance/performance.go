package performance

import (
	"context"
	"time"

	"github.com/erphq/hrm-backend-go/internal/pkg/coerce"
	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
	"github.com/erphq/hrm-backend-go/internal/pkg/validator"
)

// Performance entries are a tagged union: the type discriminator selects
// which variant's fields and required set apply.
const (
	TypeReviews  = "reviews"
	TypeComments = "comments"
	TypeGoals    = "goals"
)

type Performance struct {
	ID              int64
	EmployeeID      int64
	Type            string
	PerformanceDate time.Time

	// reviews
	ReportingTo   int64
	JobKnowledge  int
	WorkQuality   int
	Attendance    int
	Communication int
	Dependability int

	// comments
	Reviewer int64
	Comments string

	// goals
	CompletionDate       *time.Time
	GoalDescription      string
	EmployeeAssessment   string
	Supervisor           int64
	SupervisorAssessment string
}

var (
	ErrTypeMissing         = resterror.BadRequest("rest_performance_required_fields", "Review type is missing")
	ErrInvalidType         = resterror.BadRequest("rest_performance_invalid_type", "Invalid review type")
	ErrPerformanceNotFound = resterror.NotFound("rest_invalid_performance", "Invalid performance id.")
)

const requiredCode = "rest_performance_required_fields"

type parser func(employeeID int64, payload map[string]any, now time.Time) (Performance, error)

var parsers = map[string]parser{
	TypeReviews:  parseReview,
	TypeComments: parseComment,
	TypeGoals:    parseGoal,
}

// ParseCreate dispatches on the type discriminator. An unknown or missing
// type is rejected before any field is looked at.
func ParseCreate(employeeID int64, payload map[string]any, now time.Time) (Performance, error) {
	t := coerce.String(payload["type"])
	if t == "" {
		return Performance{}, ErrTypeMissing
	}

	parse, ok := parsers[t]
	if !ok {
		return Performance{}, ErrInvalidType
	}

	return parse(employeeID, payload, now)
}

func parseReview(employeeID int64, payload map[string]any, now time.Time) (Performance, error) {
	p := Performance{
		EmployeeID:      employeeID,
		Type:            TypeReviews,
		PerformanceDate: parseDate(payload["performance_date"], now),
		ReportingTo:     coerce.Int64(payload["reporting_to"]),
		JobKnowledge:    coerce.Int(payload["job_knowledge"]),
		WorkQuality:     coerce.Int(payload["work_quality"]),
		Attendance:      coerce.Int(payload["attendance"]),
		Communication:   coerce.Int(payload["communication"]),
		Dependability:   coerce.Int(payload["dependability"]),
	}

	required := []validator.Required{
		{Key: "performance_date", Label: "Review Date"},
		{Key: "reporting_to", Label: "Reporting To"},
		{Key: "job_knowledge", Label: "Job Knowledge"},
		{Key: "work_quality", Label: "Work Quality"},
		{Key: "attendance", Label: "Attendance"},
		{Key: "communication", Label: "Communication"},
		{Key: "dependability", Label: "Dependability"},
	}
	fields := map[string]any{
		"performance_date": p.PerformanceDate,
		"reporting_to":     p.ReportingTo,
		"job_knowledge":    p.JobKnowledge,
		"work_quality":     p.WorkQuality,
		"attendance":       p.Attendance,
		"communication":    p.Communication,
		"dependability":    p.Dependability,
	}
	if err := validator.CheckRequired(requiredCode, required, fields); err != nil {
		return Performance{}, err
	}

	return p, nil
}

func parseComment(employeeID int64, payload map[string]any, now time.Time) (Performance, error) {
	p := Performance{
		EmployeeID:      employeeID,
		Type:            TypeComments,
		PerformanceDate: parseDate(payload["performance_date"], now),
		Reviewer:        coerce.Int64(payload["reviewer"]),
		Comments:        coerce.String(payload["comments"]),
	}

	required := []validator.Required{
		{Key: "performance_date", Label: "Reference Date"},
		{Key: "reviewer", Label: "Reviewer"},
		{Key: "comments", Label: "Comments"},
	}
	fields := map[string]any{
		"performance_date": p.PerformanceDate,
		"reviewer":         p.Reviewer,
		"comments":         p.Comments,
	}
	if err := validator.CheckRequired(requiredCode, required, fields); err != nil {
		return Performance{}, err
	}

	return p, nil
}

func parseGoal(employeeID int64, payload map[string]any, now time.Time) (Performance, error) {
	p := Performance{
		EmployeeID:           employeeID,
		Type:                 TypeGoals,
		PerformanceDate:      parseDate(payload["performance_date"], now),
		GoalDescription:      coerce.String(payload["goal_description"]),
		EmployeeAssessment:   coerce.String(payload["employee_assessment"]),
		Supervisor:           coerce.Int64(payload["supervisor"]),
		SupervisorAssessment: coerce.String(payload["supervisor_assessment"]),
	}

	// completion_date is required, so no server-time fallback here.
	var completion time.Time
	if s := coerce.String(payload["completion_date"]); s != "" {
		if t, ok := validator.IsValidDate(s); ok {
			completion = t
		} else if t, ok := validator.IsValidDateTime(s); ok {
			completion = t
		}
	}
	if !completion.IsZero() {
		p.CompletionDate = &completion
	}

	required := []validator.Required{
		{Key: "performance_date", Label: "Reference Date"},
		{Key: "completion_date", Label: "Completion Date"},
		{Key: "supervisor", Label: "Supervisor"},
	}
	fields := map[string]any{
		"performance_date": p.PerformanceDate,
		"completion_date":  completion,
		"supervisor":       p.Supervisor,
	}
	if err := validator.CheckRequired(requiredCode, required, fields); err != nil {
		return Performance{}, err
	}

	return p, nil
}

// parseDate reads a date or timestamp value, falling back to now.
func parseDate(v any, now time.Time) time.Time {
	s := coerce.String(v)
	if s == "" {
		return now
	}
	if t, ok := validator.IsValidDate(s); ok {
		return t
	}
	if t, ok := validator.IsValidDateTime(s); ok {
		return t
	}
	return now
}

type Repository interface {
	ListByEmployee(ctx context.Context, employeeID int64) ([]Performance, error)
	Create(ctx context.Context, p Performance) (Performance, error)
	Delete(ctx context.Context, id int64) error
}

type Service interface {
	// List groups the employee's entries by type.
	List(ctx context.Context, employeeID int64) (map[string][]map[string]any, error)
	Create(ctx context.Context, employeeID int64, payload map[string]any) (map[string]any, error)
	Delete(ctx context.Context, performanceID int64) error
}
