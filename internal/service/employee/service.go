package employee

import (
	"context"
	"strings"
	"time"

	"github.com/erphq/hrm-backend-go/internal/domain/capability"
	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/master/department"
	"github.com/erphq/hrm-backend-go/internal/domain/master/designation"
	"github.com/erphq/hrm-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	employeeRepo    employee.Repository
	departmentRepo  department.Repository
	designationRepo designation.Repository
}

func NewEmployeeService(
	employeeRepo employee.Repository,
	departmentRepo department.Repository,
	designationRepo designation.Repository,
) employee.Service {
	return &ServiceImpl{
		employeeRepo:    employeeRepo,
		departmentRepo:  departmentRepo,
		designationRepo: designationRepo,
	}
}

const (
	defaultStatus  = employee.StatusActive
	defaultType    = employee.TypeFullTime
	defaultPage    = 1
	defaultPerPage = 10
	avatarSize     = 32
)

// List implements employee.Service.
func (s *ServiceImpl) List(ctx context.Context, f employee.Filter) ([]map[string]any, int64, error) {
	if f.Status == "" {
		f.Status = string(defaultStatus)
	}
	if f.Status == "-1" {
		f.Status = "all"
	}
	if f.Page < 1 {
		f.Page = defaultPage
	}
	if f.PerPage < 1 {
		f.PerPage = defaultPerPage
	}

	employees, err := s.employeeRepo.List(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.employeeRepo.Count(ctx, f)
	if err != nil {
		return nil, 0, err
	}

	items := make([]map[string]any, 0, len(employees))
	for _, e := range employees {
		items = append(items, s.shape(e))
	}

	return items, total, nil
}

// Get implements employee.Service.
func (s *ServiceImpl) Get(ctx context.Context, id int64, include []string) (map[string]any, error) {
	e, err := s.employeeRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	item := s.shape(e)
	if err := s.expand(ctx, item, e, include); err != nil {
		return nil, err
	}

	return item, nil
}

// Create implements employee.Service.
func (s *ServiceImpl) Create(ctx context.Context, req employee.CreateEmployeeRequest) (map[string]any, int64, error) {
	if validator.IsEmpty(req.FirstName) {
		return nil, 0, employee.ErrFirstNameRequired
	}
	if validator.IsEmpty(req.LastName) {
		return nil, 0, employee.ErrLastNameRequired
	}
	if validator.IsEmpty(req.Email) {
		return nil, 0, employee.ErrEmailRequired
	}

	e := employee.Employee{
		FirstName: strings.TrimSpace(req.FirstName),
		LastName:  strings.TrimSpace(req.LastName),
		Email:     strings.TrimSpace(req.Email),
		Status:    defaultStatus,
		Type:      defaultType,
	}
	applyCreate(&e, req)

	if err := s.checkReferences(ctx, e); err != nil {
		return nil, 0, err
	}

	created, err := s.employeeRepo.Create(ctx, e)
	if err != nil {
		return nil, 0, err
	}

	return s.shape(created), created.ID, nil
}

// BulkCreate implements employee.Service. The batch is not atomic: the first
// failing item stops the loop, everything before it stays created.
func (s *ServiceImpl) BulkCreate(ctx context.Context, reqs []employee.CreateEmployeeRequest) (int, error) {
	for i, req := range reqs {
		if _, _, err := s.Create(ctx, req); err != nil {
			return i, err
		}
	}
	return len(reqs), nil
}

// Update implements employee.Service.
func (s *ServiceImpl) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (map[string]any, error) {
	e, err := s.employeeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return nil, err
	}

	if req.FirstName != nil {
		if validator.IsEmpty(*req.FirstName) {
			return nil, employee.ErrFirstNameRequired
		}
		e.FirstName = strings.TrimSpace(*req.FirstName)
	}
	if req.LastName != nil {
		if validator.IsEmpty(*req.LastName) {
			return nil, employee.ErrLastNameRequired
		}
		e.LastName = strings.TrimSpace(*req.LastName)
	}
	if req.Email != nil {
		if validator.IsEmpty(*req.Email) {
			return nil, employee.ErrEmailRequired
		}
		e.Email = strings.TrimSpace(*req.Email)
	}
	applyUpdate(&e, req)

	if err := s.checkReferences(ctx, e); err != nil {
		return nil, err
	}

	updated, err := s.employeeRepo.Update(ctx, e)
	if err != nil {
		return nil, err
	}

	return s.shape(updated), nil
}

// Delete implements employee.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id int64) error {
	return s.employeeRepo.SoftDelete(ctx, id)
}

// Terminate implements employee.Service.
func (s *ServiceImpl) Terminate(ctx context.Context, req employee.TerminateRequest) error {
	e, err := s.employeeRepo.GetByID(ctx, req.EmployeeID)
	if err != nil {
		return err
	}
	if e.Status == employee.StatusTerminated {
		return employee.ErrAlreadyTerminated
	}

	date := strVal(req.TerminateDate)
	if date == "" {
		return employee.ErrTerminateDateRequired
	}
	when, ok := validator.IsValidDate(date)
	if !ok {
		return employee.ErrTerminateDateRequired
	}

	return s.employeeRepo.Terminate(ctx, employee.Termination{
		EmployeeID:        req.EmployeeID,
		TerminateDate:     when,
		TerminationType:   strVal(req.TerminationType),
		TerminationReason: strVal(req.TerminationReason),
		EligibleForRehire: strVal(req.EligibleForRehire),
	})
}

// Roles implements employee.Service.
func (s *ServiceImpl) Roles(ctx context.Context, employeeID int64) ([]string, error) {
	if _, err := s.employeeRepo.GetByID(ctx, employeeID); err != nil {
		return nil, err
	}
	return s.employeeRepo.Roles(ctx, employeeID)
}

// UpdateRoles implements employee.Service. On top of the route gate it
// re-checks the caller's manager capability inside the action, answering the
// legacy 404-coded permission error on failure.
func (s *ServiceImpl) UpdateRoles(ctx context.Context, req employee.UpdateRolesRequest) ([]string, error) {
	if !capability.Has(req.CallerCaps, capability.HRManager) {
		return nil, employee.ErrRolePermission
	}
	if len(req.Roles) == 0 {
		return nil, employee.ErrInvalidRoleFormat
	}
	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return nil, err
	}

	return s.employeeRepo.UpdateRoles(ctx, req.EmployeeID, req.Roles)
}

// shape projects the fixed response fields. Relations are absent until Get
// expands a requested include; absent key and null key mean different things
// to consumers.
func (s *ServiceImpl) shape(e employee.Employee) map[string]any {
	return map[string]any{
		"id":              e.ID,
		"first_name":      e.FirstName,
		"middle_name":     e.MiddleName,
		"last_name":       e.LastName,
		"full_name":       e.FullName(),
		"email":           e.Email,
		"location":        e.Location,
		"hiring_source":   e.HiringSource,
		"hiring_date":     dateString(e.HiringDate),
		"date_of_birth":   dateString(e.DateOfBirth),
		"pay_rate":        e.PayRate,
		"pay_type":        e.PayType,
		"type":            string(e.Type),
		"status":          string(e.Status),
		"other_email":     e.OtherEmail,
		"phone":           e.Phone,
		"work_phone":      e.WorkPhone,
		"mobile":          e.Mobile,
		"address":         e.Address,
		"gender":          e.Gender,
		"marital_status":  e.MaritalStatus,
		"nationality":     e.Nationality,
		"driving_license": e.DrivingLicense,
		"hobbies":         e.Hobbies,
		"user_url":        e.UserURL,
		"description":     e.Description,
		"street_1":        e.Street1,
		"street_2":        e.Street2,
		"city":            e.City,
		"state":           e.State,
		"postal_code":     e.PostalCode,
		"country":         e.Country,
	}
}

// expand resolves the recognized include tokens in place. A requested
// relation that does not resolve lands as an explicit null, never an error.
func (s *ServiceImpl) expand(ctx context.Context, item map[string]any, e employee.Employee, include []string) error {
	for _, token := range include {
		switch token {
		case employee.IncludeDepartment:
			item["department"] = nil
			if e.DepartmentID > 0 {
				if d, err := s.departmentRepo.GetByID(ctx, e.DepartmentID); err == nil {
					item["department"] = d
				}
			}
		case employee.IncludeDesignation:
			item["designation"] = nil
			if e.DesignationID > 0 {
				if d, err := s.designationRepo.GetByID(ctx, e.DesignationID); err == nil {
					item["designation"] = d
				}
			}
		case employee.IncludeReportingTo:
			item["reporting_to"] = nil
			if e.ReportingTo > 0 {
				// Shallow on purpose, no recursive expansion.
				if m, err := s.employeeRepo.GetByID(ctx, e.ReportingTo); err == nil {
					item["reporting_to"] = map[string]any{
						"id":        m.ID,
						"full_name": m.FullName(),
						"email":     m.Email,
					}
				}
			}
		case employee.IncludeAvatar:
			item["avatar"] = e.AvatarURL(avatarSize)
		case employee.IncludeRoles:
			roles, err := s.employeeRepo.Roles(ctx, e.ID)
			if err != nil {
				return err
			}
			if roles == nil {
				roles = []string{}
			}
			item["roles"] = roles
		}
	}
	return nil
}

// checkReferences verifies the foreign ids the request points at.
func (s *ServiceImpl) checkReferences(ctx context.Context, e employee.Employee) error {
	if e.DepartmentID > 0 {
		ok, err := s.departmentRepo.Exists(ctx, e.DepartmentID)
		if err != nil {
			return err
		}
		if !ok {
			return department.ErrDepartmentNotFound
		}
	}
	if e.DesignationID > 0 {
		ok, err := s.designationRepo.Exists(ctx, e.DesignationID)
		if err != nil {
			return err
		}
		if !ok {
			return designation.ErrDesignationNotFound
		}
	}
	return nil
}

func applyCreate(e *employee.Employee, req employee.CreateEmployeeRequest) {
	e.MiddleName = strVal(req.MiddleName)
	if req.Department != nil {
		e.DepartmentID = req.Department.Int64()
	}
	if req.Designation != nil {
		e.DesignationID = req.Designation.Int64()
	}
	if req.ReportingTo != nil {
		e.ReportingTo = req.ReportingTo.Int64()
	}
	e.Location = strVal(req.Location)
	e.HiringSource = strVal(req.HiringSource)
	e.HiringDate = datePtr(req.HiringDate)
	e.DateOfBirth = datePtr(req.DateOfBirth)
	if req.PayRate != nil {
		e.PayRate = req.PayRate.Round(2)
	}
	e.PayType = strVal(req.PayType)
	if req.Type != nil && *req.Type != "" {
		e.Type = employee.EmploymentType(*req.Type)
	}
	if req.Status != nil && *req.Status != "" {
		e.Status = employee.Status(*req.Status)
	}
	e.OtherEmail = strVal(req.OtherEmail)
	e.Phone = strVal(req.Phone)
	e.WorkPhone = strVal(req.WorkPhone)
	e.Mobile = strVal(req.Mobile)
	e.Address = strVal(req.Address)
	e.Gender = strVal(req.Gender)
	e.MaritalStatus = strVal(req.MaritalStatus)
	e.Nationality = strVal(req.Nationality)
	e.DrivingLicense = strVal(req.DrivingLicense)
	e.Hobbies = strVal(req.Hobbies)
	e.UserURL = strVal(req.UserURL)
	e.Description = strVal(req.Description)
	e.Street1 = strVal(req.Street1)
	e.Street2 = strVal(req.Street2)
	e.City = strVal(req.City)
	e.State = strVal(req.State)
	e.PostalCode = strVal(req.PostalCode)
	e.Country = strVal(req.Country)
}

func applyUpdate(e *employee.Employee, req employee.UpdateEmployeeRequest) {
	setStr(&e.MiddleName, req.MiddleName)
	if req.Department != nil {
		e.DepartmentID = req.Department.Int64()
	}
	if req.Designation != nil {
		e.DesignationID = req.Designation.Int64()
	}
	if req.ReportingTo != nil {
		e.ReportingTo = req.ReportingTo.Int64()
	}
	setStr(&e.Location, req.Location)
	setStr(&e.HiringSource, req.HiringSource)
	if req.HiringDate != nil {
		e.HiringDate = datePtr(req.HiringDate)
	}
	if req.DateOfBirth != nil {
		e.DateOfBirth = datePtr(req.DateOfBirth)
	}
	if req.PayRate != nil {
		e.PayRate = req.PayRate.Round(2)
	}
	setStr(&e.PayType, req.PayType)
	if req.Type != nil && *req.Type != "" {
		e.Type = employee.EmploymentType(*req.Type)
	}
	if req.Status != nil && *req.Status != "" {
		e.Status = employee.Status(*req.Status)
	}
	setStr(&e.OtherEmail, req.OtherEmail)
	setStr(&e.Phone, req.Phone)
	setStr(&e.WorkPhone, req.WorkPhone)
	setStr(&e.Mobile, req.Mobile)
	setStr(&e.Address, req.Address)
	setStr(&e.Gender, req.Gender)
	setStr(&e.MaritalStatus, req.MaritalStatus)
	setStr(&e.Nationality, req.Nationality)
	setStr(&e.DrivingLicense, req.DrivingLicense)
	setStr(&e.Hobbies, req.Hobbies)
	setStr(&e.UserURL, req.UserURL)
	setStr(&e.Description, req.Description)
	setStr(&e.Street1, req.Street1)
	setStr(&e.Street2, req.Street2)
	setStr(&e.City, req.City)
	setStr(&e.State, req.State)
	setStr(&e.PostalCode, req.PostalCode)
	setStr(&e.Country, req.Country)
}

func strVal(p *string) string {
	if p == nil {
		return ""
	}
	return strings.TrimSpace(*p)
}

func setStr(dst *string, p *string) {
	if p != nil {
		*dst = strings.TrimSpace(*p)
	}
}

// datePtr parses an optional wire date, nil when absent or unparseable.
func datePtr(p *string) *time.Time {
	if p == nil {
		return nil
	}
	t, ok := validator.IsValidDate(strings.TrimSpace(*p))
	if !ok {
		return nil
	}
	return &t
}

func dateString(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.Format(employee.DateFormat)
}
