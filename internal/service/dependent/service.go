package dependent

import (
	"context"
	"errors"
	"time"

	"github.com/erphq/hrm-backend-go/internal/domain/dependent"
	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/experience"
	"github.com/erphq/hrm-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	dependentRepo dependent.Repository
	employeeRepo  employee.Repository
}

func NewDependentService(dependentRepo dependent.Repository, employeeRepo employee.Repository) dependent.Service {
	return &ServiceImpl{dependentRepo: dependentRepo, employeeRepo: employeeRepo}
}

// List implements dependent.Service.
func (s *ServiceImpl) List(ctx context.Context, employeeID int64) ([]dependent.Response, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	items, err := s.dependentRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]dependent.Response, 0, len(items))
	for _, d := range items {
		responses = append(responses, shape(d))
	}
	return responses, nil
}

// Get implements dependent.Service.
func (s *ServiceImpl) Get(ctx context.Context, employeeID, depID int64) (dependent.Response, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return dependent.Response{}, err
	}

	d, err := s.dependentRepo.GetByIDAndEmployee(ctx, depID, employeeID)
	if err != nil {
		return dependent.Response{}, err
	}
	return shape(d), nil
}

// Create implements dependent.Service.
func (s *ServiceImpl) Create(ctx context.Context, req dependent.UpsertRequest) (dependent.Response, error) {
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return dependent.Response{}, err
	}

	required := []validator.Required{
		{Key: "name", Label: "name"},
		{Key: "relation", Label: "relation"},
	}
	fields := map[string]any{
		"name":     req.Name,
		"relation": req.Relation,
	}
	if err := validator.CheckRequired(experience.RequiredCode, required, fields); err != nil {
		return dependent.Response{}, err
	}

	created, err := s.dependentRepo.Create(ctx, fromRequest(req))
	if err != nil {
		return dependent.Response{}, err
	}
	return shape(created), nil
}

// Update implements dependent.Service. A missing target skips the write;
// the caller still gets an empty record back instead of an error.
func (s *ServiceImpl) Update(ctx context.Context, req dependent.UpsertRequest) (dependent.Response, error) {
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return dependent.Response{}, err
	}
	if _, err := s.dependentRepo.GetByIDAndEmployee(ctx, req.ID, req.EmployeeID); err != nil {
		if errors.Is(err, dependent.ErrDependentNotFound) {
			return dependent.Response{}, nil
		}
		return dependent.Response{}, err
	}

	updated, err := s.dependentRepo.Update(ctx, fromRequest(req))
	if err != nil {
		return dependent.Response{}, err
	}
	return shape(updated), nil
}

// Delete implements dependent.Service.
func (s *ServiceImpl) Delete(ctx context.Context, depID int64) error {
	return s.dependentRepo.Delete(ctx, depID)
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

func fromRequest(req dependent.UpsertRequest) dependent.Dependent {
	d := dependent.Dependent{
		ID:         req.ID,
		EmployeeID: req.EmployeeID,
		Name:       req.Name,
		Relation:   req.Relation,
	}
	if t, ok := validator.IsValidDate(req.DateOfBirth); ok {
		d.DateOfBirth = &t
	}
	return d
}

func shape(d dependent.Dependent) dependent.Response {
	return dependent.Response{
		ID:          d.ID,
		Name:        d.Name,
		Relation:    d.Relation,
		DateOfBirth: formatDate(d.DateOfBirth),
	}
}

func formatDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(employee.DateFormat)
}
