package performance

import (
	"context"
	"time"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/performance"
)

type ServiceImpl struct {
	performanceRepo performance.Repository
	employeeRepo    employee.Repository
}

func NewPerformanceService(performanceRepo performance.Repository, employeeRepo employee.Repository) performance.Service {
	return &ServiceImpl{performanceRepo: performanceRepo, employeeRepo: employeeRepo}
}

// List implements performance.Service.
func (s *ServiceImpl) List(ctx context.Context, employeeID int64) (map[string][]map[string]any, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	items, err := s.performanceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]map[string]any{
		performance.TypeReviews:  {},
		performance.TypeComments: {},
		performance.TypeGoals:    {},
	}
	for _, p := range items {
		grouped[p.Type] = append(grouped[p.Type], s.shape(ctx, p))
	}

	return grouped, nil
}

// Create implements performance.Service.
func (s *ServiceImpl) Create(ctx context.Context, employeeID int64, payload map[string]any) (map[string]any, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	p, err := performance.ParseCreate(employeeID, payload, time.Now())
	if err != nil {
		return nil, err
	}

	created, err := s.performanceRepo.Create(ctx, p)
	if err != nil {
		return nil, err
	}

	return s.shape(ctx, created), nil
}

// Delete implements performance.Service.
func (s *ServiceImpl) Delete(ctx context.Context, performanceID int64) error {
	return s.performanceRepo.Delete(ctx, performanceID)
}

// shape emits only the variant's own fields; the common part is always
// present.
func (s *ServiceImpl) shape(ctx context.Context, p performance.Performance) map[string]any {
	item := map[string]any{
		"id":               p.ID,
		"employee_id":      p.EmployeeID,
		"type":             p.Type,
		"performance_date": p.PerformanceDate.Format(employee.DateFormat),
	}

	switch p.Type {
	case performance.TypeReviews:
		item["reporting_to"] = p.ReportingTo
		item["reporting_to_name"] = s.displayName(ctx, p.ReportingTo)
		item["job_knowledge"] = p.JobKnowledge
		item["work_quality"] = p.WorkQuality
		item["attendance"] = p.Attendance
		item["communication"] = p.Communication
		item["dependability"] = p.Dependability
	case performance.TypeComments:
		item["reviewer"] = p.Reviewer
		item["reviewer_name"] = s.displayName(ctx, p.Reviewer)
		item["comments"] = p.Comments
	case performance.TypeGoals:
		completion := ""
		if p.CompletionDate != nil {
			completion = p.CompletionDate.Format(employee.DateFormat)
		}
		item["completion_date"] = completion
		item["goal_description"] = p.GoalDescription
		item["employee_assessment"] = p.EmployeeAssessment
		item["supervisor"] = p.Supervisor
		item["supervisor_name"] = s.displayName(ctx, p.Supervisor)
		item["supervisor_assessment"] = p.SupervisorAssessment
	}

	return item
}

// displayName resolves an employee id to a full name, empty when the id does
// not resolve. Shaping never fails on a dangling reference.
func (s *ServiceImpl) displayName(ctx context.Context, id int64) string {
	if id <= 0 {
		return ""
	}
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return ""
	}
	return e.FullName()
}

func (s *ServiceImpl) checkEmployee(ctx context.Context, employeeID int64) error {
	ok, err := s.employeeRepo.Exists(ctx, employeeID)
	if err != nil {
		return err
	}
	if !ok {
		return employee.ErrEmployeeNotFound
	}
	return nil
}
