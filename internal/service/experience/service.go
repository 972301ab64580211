package experience

import (
	"context"
	"errors"
	"time"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/experience"
	"github.com/erphq/hrm-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	experienceRepo experience.Repository
	employeeRepo   employee.Repository
}

func NewExperienceService(experienceRepo experience.Repository, employeeRepo employee.Repository) experience.Service {
	return &ServiceImpl{experienceRepo: experienceRepo, employeeRepo: employeeRepo}
}

// List implements experience.Service.
func (s *ServiceImpl) List(ctx context.Context, employeeID int64) ([]experience.Response, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	items, err := s.experienceRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]experience.Response, 0, len(items))
	for _, e := range items {
		responses = append(responses, shape(e))
	}
	return responses, nil
}

// Get implements experience.Service. The compound lookup makes a child id
// under the wrong parent read as absent.
func (s *ServiceImpl) Get(ctx context.Context, employeeID, expID int64) (experience.Response, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return experience.Response{}, err
	}

	e, err := s.experienceRepo.GetByIDAndEmployee(ctx, expID, employeeID)
	if err != nil {
		return experience.Response{}, err
	}
	return shape(e), nil
}

// Create implements experience.Service.
func (s *ServiceImpl) Create(ctx context.Context, req experience.UpsertRequest) (experience.Response, error) {
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return experience.Response{}, err
	}

	required := []validator.Required{
		{Key: "company_name", Label: "company_name"},
		{Key: "job_title", Label: "job_title"},
		{Key: "from", Label: "from"},
		{Key: "to", Label: "to"},
	}
	fields := map[string]any{
		"company_name": req.CompanyName,
		"job_title":    req.JobTitle,
		"from":         req.From,
		"to":           req.To,
	}
	if err := validator.CheckRequired(experience.RequiredCode, required, fields); err != nil {
		return experience.Response{}, err
	}

	created, err := s.experienceRepo.Create(ctx, fromRequest(req))
	if err != nil {
		return experience.Response{}, err
	}
	return shape(created), nil
}

// Update implements experience.Service. A missing target skips the write;
// the caller still gets an empty record back instead of an error.
func (s *ServiceImpl) Update(ctx context.Context, req experience.UpsertRequest) (experience.Response, error) {
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return experience.Response{}, err
	}
	if _, err := s.experienceRepo.GetByIDAndEmployee(ctx, req.ID, req.EmployeeID); err != nil {
		if errors.Is(err, experience.ErrExperienceNotFound) {
			return experience.Response{}, nil
		}
		return experience.Response{}, err
	}

	updated, err := s.experienceRepo.Update(ctx, fromRequest(req))
	if err != nil {
		return experience.Response{}, err
	}
	return shape(updated), nil
}

// Delete implements experience.Service.
func (s *ServiceImpl) Delete(ctx context.Context, expID int64) error {
	return s.experienceRepo.Delete(ctx, expID)
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

func fromRequest(req experience.UpsertRequest) experience.Experience {
	return experience.Experience{
		ID:          req.ID,
		EmployeeID:  req.EmployeeID,
		CompanyName: req.CompanyName,
		JobTitle:    req.JobTitle,
		Description: req.Description,
		From:        parseDate(req.From),
		To:          parseDate(req.To),
	}
}

func shape(e experience.Experience) experience.Response {
	return experience.Response{
		ID:          e.ID,
		CompanyName: e.CompanyName,
		JobTitle:    e.JobTitle,
		Description: e.Description,
		From:        formatDate(e.From),
		To:          formatDate(e.To),
	}
}

func parseDate(s string) *time.Time {
	t, ok := validator.IsValidDate(s)
	if !ok {
		return nil
	}
	return &t
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(employee.DateFormat)
}
