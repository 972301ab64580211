package history

import (
	"context"
	"time"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/history"
	"github.com/erphq/hrm-backend-go/internal/domain/master/department"
	"github.com/erphq/hrm-backend-go/internal/domain/master/designation"
	"github.com/erphq/hrm-backend-go/internal/pkg/coerce"
	"github.com/erphq/hrm-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	historyRepo     history.Repository
	employeeRepo    employee.Repository
	departmentRepo  department.Repository
	designationRepo designation.Repository
}

func NewHistoryService(
	historyRepo history.Repository,
	employeeRepo employee.Repository,
	departmentRepo department.Repository,
	designationRepo designation.Repository,
) history.Service {
	return &ServiceImpl{
		historyRepo:     historyRepo,
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
	}
}

// List implements history.Service.
func (s *ServiceImpl) List(ctx context.Context, f history.Filter) (map[string][]map[string]any, error) {
	if err := s.checkEmployee(ctx, f.EmployeeID); err != nil {
		return nil, err
	}

	items, err := s.historyRepo.List(ctx, f)
	if err != nil {
		return nil, err
	}

	grouped := map[string][]map[string]any{
		history.ModuleStatus:       {},
		history.ModuleCompensation: {},
		history.ModuleInformation:  {},
	}
	for _, h := range items {
		grouped[h.Module] = append(grouped[h.Module], shape(h))
	}

	return grouped, nil
}

// Create implements history.Service. The module discriminator picks the
// variant; each variant has its own required set, enum checks and reference
// checks, run in that order.
func (s *ServiceImpl) Create(ctx context.Context, employeeID int64, payload map[string]any) (map[string]any, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	h := history.History{
		EmployeeID: employeeID,
		Module:     coerce.String(payload["module"]),
		Date:       parseDate(payload["date"]),
	}

	switch h.Module {
	case history.ModuleStatus:
		if err := s.applyStatus(&h, payload); err != nil {
			return nil, err
		}
	case history.ModuleCompensation:
		if err := s.applyCompensation(&h, payload); err != nil {
			return nil, err
		}
	case history.ModuleInformation:
		if err := s.applyInformation(ctx, &h, payload); err != nil {
			return nil, err
		}
	default:
		return nil, history.ErrNoModuleType
	}

	created, err := s.historyRepo.Create(ctx, h)
	if err != nil {
		return nil, err
	}

	return shape(created), nil
}

// Delete implements history.Service.
func (s *ServiceImpl) Delete(ctx context.Context, historyID int64) error {
	return s.historyRepo.Delete(ctx, historyID)
}

func (s *ServiceImpl) applyStatus(h *history.History, payload map[string]any) error {
	h.Status = coerce.String(payload["status"])
	h.Comment = coerce.String(payload["comment"])

	required := []validator.Required{{Key: "status", Label: "Status"}}
	fields := map[string]any{"status": h.Status}
	if err := validator.CheckRequired(history.RequiredCode, required, fields); err != nil {
		return err
	}
	if !validator.InEnum(h.Status, employee.EmploymentTypes()) {
		return history.ErrInvalidStatus
	}
	return nil
}

func (s *ServiceImpl) applyCompensation(h *history.History, payload map[string]any) error {
	h.PayRate = coerce.Decimal(payload["pay_rate"]).Round(2)
	h.PayType = coerce.String(payload["pay_type"])
	h.Reason = coerce.String(payload["reason"])
	h.Comment = coerce.String(payload["comment"])

	required := []validator.Required{
		{Key: "pay_rate", Label: "Pay Rate"},
		{Key: "pay_type", Label: "Pay Type"},
		{Key: "reason", Label: "Change Reason"},
	}
	fields := map[string]any{
		"pay_rate": h.PayRate,
		"pay_type": h.PayType,
		"reason":   h.Reason,
	}
	if err := validator.CheckRequired(history.RequiredCode, required, fields); err != nil {
		return err
	}

	if h.PayRate.IsNegative() {
		return history.ErrInvalidPayRate
	}
	if !validator.InEnum(h.PayType, employee.PayTypes()) {
		return history.ErrInvalidPayType
	}
	if !validator.InEnum(h.Reason, employee.PayChangeReasons()) {
		return history.ErrInvalidReason
	}
	return nil
}

func (s *ServiceImpl) applyInformation(ctx context.Context, h *history.History, payload map[string]any) error {
	h.DepartmentID = coerce.Int64(payload["department"])
	h.DesignationID = coerce.Int64(payload["designation"])
	h.ReportingTo = coerce.Int64(payload["reporting_to"])
	h.Location = coerce.String(payload["location"])

	required := []validator.Required{
		{Key: "designation", Label: "Designation"},
		{Key: "department", Label: "Department"},
		{Key: "location", Label: "Location"},
		{Key: "reporting_to", Label: "Reporting To"},
	}
	fields := map[string]any{
		"designation":  h.DesignationID,
		"department":   h.DepartmentID,
		"location":     h.Location,
		"reporting_to": h.ReportingTo,
	}
	if err := validator.CheckRequired(history.RequiredCode, required, fields); err != nil {
		return err
	}

	if h.DesignationID > 0 {
		ok, err := s.designationRepo.Exists(ctx, h.DesignationID)
		if err != nil {
			return err
		}
		if !ok {
			return designation.ErrDesignationNotFound
		}
	}
	if h.DepartmentID > 0 {
		ok, err := s.departmentRepo.Exists(ctx, h.DepartmentID)
		if err != nil {
			return err
		}
		if !ok {
			return department.ErrDepartmentNotFound
		}
	}
	if h.ReportingTo > 0 {
		ok, err := s.employeeRepo.Exists(ctx, h.ReportingTo)
		if err != nil {
			return err
		}
		if !ok {
			return history.ErrInvalidReportTo
		}
	}
	return nil
}

func shape(h history.History) map[string]any {
	item := map[string]any{
		"id":     h.ID,
		"module": h.Module,
		"date":   h.Date.Format(employee.DateFormat),
	}

	switch h.Module {
	case history.ModuleStatus:
		item["status"] = h.Status
		item["comment"] = h.Comment
	case history.ModuleCompensation:
		item["pay_rate"] = h.PayRate
		item["pay_type"] = h.PayType
		item["reason"] = h.Reason
		item["comment"] = h.Comment
	case history.ModuleInformation:
		item["department"] = h.DepartmentID
		item["designation"] = h.DesignationID
		item["reporting_to"] = h.ReportingTo
		item["location"] = h.Location
	}

	return item
}

// parseDate reads the optional event date, defaulting to the server clock.
func parseDate(v any) time.Time {
	if t, ok := validator.IsValidDate(coerce.String(v)); ok {
		return t
	}
	return time.Now()
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
