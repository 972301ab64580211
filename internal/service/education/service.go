package education

import (
	"context"
	"errors"

	"github.com/erphq/hrm-backend-go/internal/domain/education"
	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/experience"
	"github.com/erphq/hrm-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	educationRepo education.Repository
	employeeRepo  employee.Repository
}

func NewEducationService(educationRepo education.Repository, employeeRepo employee.Repository) education.Service {
	return &ServiceImpl{educationRepo: educationRepo, employeeRepo: employeeRepo}
}

// List implements education.Service.
func (s *ServiceImpl) List(ctx context.Context, employeeID int64) ([]education.Response, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	items, err := s.educationRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]education.Response, 0, len(items))
	for _, e := range items {
		responses = append(responses, shape(e))
	}
	return responses, nil
}

// Get implements education.Service.
func (s *ServiceImpl) Get(ctx context.Context, employeeID, eduID int64) (education.Response, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return education.Response{}, err
	}

	e, err := s.educationRepo.GetByIDAndEmployee(ctx, eduID, employeeID)
	if err != nil {
		return education.Response{}, err
	}
	return shape(e), nil
}

// Create implements education.Service.
func (s *ServiceImpl) Create(ctx context.Context, req education.UpsertRequest) (education.Response, error) {
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return education.Response{}, err
	}

	required := []validator.Required{
		{Key: "school", Label: "school"},
		{Key: "degree", Label: "degree"},
		{Key: "field", Label: "field"},
	}
	fields := map[string]any{
		"school": req.School,
		"degree": req.Degree,
		"field":  req.Field,
	}
	if err := validator.CheckRequired(experience.RequiredCode, required, fields); err != nil {
		return education.Response{}, err
	}

	created, err := s.educationRepo.Create(ctx, fromRequest(req))
	if err != nil {
		return education.Response{}, err
	}
	return shape(created), nil
}

// Update implements education.Service. A missing target skips the write;
// the caller still gets an empty record back instead of an error.
func (s *ServiceImpl) Update(ctx context.Context, req education.UpsertRequest) (education.Response, error) {
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return education.Response{}, err
	}
	if _, err := s.educationRepo.GetByIDAndEmployee(ctx, req.ID, req.EmployeeID); err != nil {
		if errors.Is(err, education.ErrEducationNotFound) {
			return education.Response{}, nil
		}
		return education.Response{}, err
	}

	updated, err := s.educationRepo.Update(ctx, fromRequest(req))
	if err != nil {
		return education.Response{}, err
	}
	return shape(updated), nil
}

// Delete implements education.Service.
func (s *ServiceImpl) Delete(ctx context.Context, eduID int64) error {
	return s.educationRepo.Delete(ctx, eduID)
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

func fromRequest(req education.UpsertRequest) education.Education {
	e := education.Education{
		ID:         req.ID,
		EmployeeID: req.EmployeeID,
		School:     req.School,
		Degree:     req.Degree,
		Field:      req.Field,
		Notes:      req.Notes,
		Interest:   req.Interest,
	}
	if req.Finished != nil {
		e.Finished = *req.Finished
	}
	return e
}

func shape(e education.Education) education.Response {
	return education.Response{
		ID:       e.ID,
		School:   e.School,
		Degree:   e.Degree,
		Field:    e.Field,
		Finished: e.Finished,
		Notes:    e.Notes,
		Interest: e.Interest,
	}
}
