package leave

import (
	"context"
	"strconv"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/leave"
	"github.com/erphq/hrm-backend-go/internal/pkg/validator"
)

type ServiceImpl struct {
	leaveRepo    leave.Repository
	employeeRepo employee.Repository
}

func NewLeaveService(leaveRepo leave.Repository, employeeRepo employee.Repository) leave.Service {
	return &ServiceImpl{leaveRepo: leaveRepo, employeeRepo: employeeRepo}
}

const dateTimeFormat = "2006-01-02 15:04:05"

// holidayColor marks holiday entries on the merged calendar feed.
const holidayColor = "#FF5354"

// Policies implements leave.Service.
func (s *ServiceImpl) Policies(ctx context.Context, employeeID int64) ([]leave.PolicySummary, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	policies, err := s.leaveRepo.Policies(ctx)
	if err != nil {
		return nil, err
	}
	names := make(map[int64]string, len(policies))
	for _, p := range policies {
		names[p.ID] = p.Name
	}

	entitlements, err := s.leaveRepo.Entitlements(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	balances, err := s.leaveRepo.Balances(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	summaries := make([]leave.PolicySummary, 0, len(entitlements))
	for _, e := range entitlements {
		b := balances[e.PolicyID]
		summaries = append(summaries, leave.PolicySummary{
			ID:         e.PolicyID,
			Policy:     names[e.PolicyID],
			Total:      strconv.Itoa(e.Days),
			Scheduled:  strconv.Itoa(b.Scheduled),
			Available:  strconv.Itoa(e.Days - b.Total),
			PeriodFrom: e.FromDate.Format(employee.DateFormat),
			PeriodTo:   e.ToDate.Format(employee.DateFormat),
		})
	}

	return summaries, nil
}

// List implements leave.Service.
func (s *ServiceImpl) List(ctx context.Context, employeeID int64) ([]leave.Response, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.RequestsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}

	responses := make([]leave.Response, 0, len(requests))
	for _, r := range requests {
		responses = append(responses, leave.Response{
			ID:          r.ID,
			UserID:      r.UserID,
			DisplayName: r.DisplayName,
			PolicyID:    r.PolicyID,
			PolicyName:  r.PolicyName,
			Status:      r.Status,
			Reason:      r.Reason,
			Comments:    r.Comments,
			CreatedOn:   r.CreatedOn.Format(dateTimeFormat),
			Days:        r.Days,
			StartDate:   r.StartDate.Format(employee.DateFormat),
			EndDate:     r.EndDate.Format(employee.DateFormat),
		})
	}

	return responses, nil
}

// Create implements leave.Service. Policy, start and end are validated one
// by one so the caller learns exactly which field failed.
func (s *ServiceImpl) Create(ctx context.Context, req leave.CreateRequest) (int64, error) {
	if err := s.checkEmployee(ctx, req.EmployeeID); err != nil {
		return 0, err
	}

	if req.PolicyID.Int64() <= 0 {
		return 0, leave.ErrPolicyIDRequired
	}
	start, ok := validator.IsValidDate(req.StartDate)
	if !ok {
		return 0, leave.ErrStartDateRequired
	}
	end, ok := validator.IsValidDate(req.EndDate)
	if !ok {
		return 0, leave.ErrEndDateRequired
	}
	if end.Before(start) {
		return 0, leave.ErrEndDateRequired
	}

	days := int(end.Sub(start).Hours()/24) + 1

	created, err := s.leaveRepo.CreateRequest(ctx, leave.Request{
		UserID:    req.EmployeeID,
		PolicyID:  req.PolicyID.Int64(),
		Status:    leave.StatusPending,
		Reason:    req.Reason,
		Days:      days,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		return 0, err
	}

	return created.ID, nil
}

// Events implements leave.Service: the employee's leave requests and the
// company holidays merged into one calendar feed.
func (s *ServiceImpl) Events(ctx context.Context, employeeID int64) ([]leave.Event, error) {
	if err := s.checkEmployee(ctx, employeeID); err != nil {
		return nil, err
	}

	requests, err := s.leaveRepo.RequestsByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	holidays, err := s.leaveRepo.Holidays(ctx)
	if err != nil {
		return nil, err
	}

	events := make([]leave.Event, 0, len(requests)+len(holidays))
	for _, r := range requests {
		title := r.PolicyName
		if r.Status == leave.StatusPending {
			title += " ( Pending )"
		}
		events = append(events, leave.Event{
			ID:      r.ID,
			Title:   title,
			Start:   r.StartDate.Format(employee.DateFormat),
			End:     r.EndDate.Format(employee.DateFormat),
			Color:   r.Color,
			Holiday: false,
		})
	}
	for _, h := range holidays {
		events = append(events, leave.Event{
			ID:      h.ID,
			Title:   h.Title,
			Start:   h.Start.Format(employee.DateFormat),
			End:     h.End.Format(employee.DateFormat),
			Color:   holidayColor,
			Holiday: true,
		})
	}

	return events, nil
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
