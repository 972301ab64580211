package leave

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/leave"
	"github.com/erphq/hrm-backend-go/internal/pkg/coerce"
)

type fakeLeaveRepo struct {
	policies      func(ctx context.Context) ([]leave.Policy, error)
	entitlements  func(ctx context.Context, employeeID int64) ([]leave.Entitlement, error)
	balances      func(ctx context.Context, employeeID int64) (map[int64]leave.Balance, error)
	requests      func(ctx context.Context, employeeID int64) ([]leave.Request, error)
	createRequest func(ctx context.Context, r leave.Request) (leave.Request, error)
	holidays      func(ctx context.Context) ([]leave.Holiday, error)
}

func (f *fakeLeaveRepo) Policies(ctx context.Context) ([]leave.Policy, error) {
	return f.policies(ctx)
}
func (f *fakeLeaveRepo) Entitlements(ctx context.Context, employeeID int64) ([]leave.Entitlement, error) {
	return f.entitlements(ctx, employeeID)
}
func (f *fakeLeaveRepo) Balances(ctx context.Context, employeeID int64) (map[int64]leave.Balance, error) {
	return f.balances(ctx, employeeID)
}
func (f *fakeLeaveRepo) RequestsByEmployee(ctx context.Context, employeeID int64) ([]leave.Request, error) {
	return f.requests(ctx, employeeID)
}
func (f *fakeLeaveRepo) CreateRequest(ctx context.Context, r leave.Request) (leave.Request, error) {
	return f.createRequest(ctx, r)
}
func (f *fakeLeaveRepo) Holidays(ctx context.Context) ([]leave.Holiday, error) {
	return f.holidays(ctx)
}

type employeeExistsRepo struct {
	employee.Repository
	exists bool
}

func (f *employeeExistsRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return f.exists, nil
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestCreateValidatesFieldsInOrder(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{}, &employeeExistsRepo{exists: true})

	_, err := svc.Create(context.Background(), leave.CreateRequest{})
	assert.Equal(t, leave.ErrPolicyIDRequired, err)

	_, err = svc.Create(context.Background(), leave.CreateRequest{PolicyID: coerce.ID(2)})
	assert.Equal(t, leave.ErrStartDateRequired, err)

	_, err = svc.Create(context.Background(), leave.CreateRequest{
		PolicyID:  coerce.ID(2),
		StartDate: "2024-03-04",
		EndDate:   "not-a-date",
	})
	assert.Equal(t, leave.ErrEndDateRequired, err)

	// An end before the start reads as an invalid end date.
	_, err = svc.Create(context.Background(), leave.CreateRequest{
		PolicyID:  coerce.ID(2),
		StartDate: "2024-03-04",
		EndDate:   "2024-03-01",
	})
	assert.Equal(t, leave.ErrEndDateRequired, err)
}

func TestCreateUnknownEmployee(t *testing.T) {
	svc := NewLeaveService(&fakeLeaveRepo{}, &employeeExistsRepo{exists: false})

	_, err := svc.Create(context.Background(), leave.CreateRequest{
		EmployeeID: 99,
		PolicyID:   coerce.ID(2),
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-06",
	})
	assert.Equal(t, employee.ErrEmployeeNotFound, err)
}

func TestCreateComputesInclusiveDays(t *testing.T) {
	var captured leave.Request
	repo := &fakeLeaveRepo{
		createRequest: func(ctx context.Context, r leave.Request) (leave.Request, error) {
			captured = r
			r.ID = 7
			return r, nil
		},
	}
	svc := NewLeaveService(repo, &employeeExistsRepo{exists: true})

	id, err := svc.Create(context.Background(), leave.CreateRequest{
		EmployeeID: 4,
		PolicyID:   coerce.ID(2),
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-08",
		Reason:     "family event",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), id)
	assert.Equal(t, int64(4), captured.UserID)
	assert.Equal(t, int64(2), captured.PolicyID)
	assert.Equal(t, leave.StatusPending, captured.Status)
	assert.Equal(t, 5, captured.Days)

	// A single-day leave still counts one day.
	_, err = svc.Create(context.Background(), leave.CreateRequest{
		EmployeeID: 4,
		PolicyID:   coerce.ID(2),
		StartDate:  "2024-03-04",
		EndDate:    "2024-03-04",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, captured.Days)
}

func TestPoliciesComputesAvailability(t *testing.T) {
	repo := &fakeLeaveRepo{
		policies: func(ctx context.Context) ([]leave.Policy, error) {
			return []leave.Policy{
				{ID: 1, Name: "Casual Leave"},
				{ID: 2, Name: "Sick Leave"},
			}, nil
		},
		entitlements: func(ctx context.Context, employeeID int64) ([]leave.Entitlement, error) {
			return []leave.Entitlement{
				{PolicyID: 1, Days: 12, FromDate: date("2024-01-01"), ToDate: date("2024-12-31")},
				{PolicyID: 2, Days: 10, FromDate: date("2024-01-01"), ToDate: date("2024-12-31")},
			}, nil
		},
		balances: func(ctx context.Context, employeeID int64) (map[int64]leave.Balance, error) {
			return map[int64]leave.Balance{
				1: {PolicyID: 1, Total: 5, Scheduled: 2},
			}, nil
		},
	}
	svc := NewLeaveService(repo, &employeeExistsRepo{exists: true})

	summaries, err := svc.Policies(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, summaries, 2)

	// Total is the entitled days; usage only reduces availability.
	casual := summaries[0]
	assert.Equal(t, "Casual Leave", casual.Policy)
	assert.Equal(t, "12", casual.Total)
	assert.Equal(t, "2", casual.Scheduled)
	assert.Equal(t, "7", casual.Available)
	assert.Equal(t, "2024-01-01", casual.PeriodFrom)
	assert.Equal(t, "2024-12-31", casual.PeriodTo)

	// No usage recorded yet: full entitlement is available.
	sick := summaries[1]
	assert.Equal(t, "10", sick.Total)
	assert.Equal(t, "10", sick.Available)
}

func TestEventsMergesRequestsAndHolidays(t *testing.T) {
	repo := &fakeLeaveRepo{
		requests: func(ctx context.Context, employeeID int64) ([]leave.Request, error) {
			return []leave.Request{
				{
					ID:         3,
					PolicyName: "Casual Leave",
					Color:      "#9b59b6",
					Status:     leave.StatusApproved,
					StartDate:  date("2024-03-04"),
					EndDate:    date("2024-03-05"),
				},
				{
					ID:         4,
					PolicyName: "Sick Leave",
					Status:     leave.StatusPending,
					StartDate:  date("2024-04-01"),
					EndDate:    date("2024-04-01"),
				},
			}, nil
		},
		holidays: func(ctx context.Context) ([]leave.Holiday, error) {
			return []leave.Holiday{{
				ID:    8,
				Title: "May Day",
				Start: date("2024-05-01"),
				End:   date("2024-05-01"),
			}}, nil
		},
	}
	svc := NewLeaveService(repo, &employeeExistsRepo{exists: true})

	events, err := svc.Events(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, events, 3)

	assert.Equal(t, "Casual Leave", events[0].Title)
	assert.Equal(t, "#9b59b6", events[0].Color)
	assert.False(t, events[0].Holiday)

	// Pending requests are labeled as such on the calendar.
	assert.Equal(t, "Sick Leave ( Pending )", events[1].Title)

	assert.Equal(t, "May Day", events[2].Title)
	assert.Equal(t, "2024-05-01", events[2].Start)
	assert.Equal(t, "#FF5354", events[2].Color)
	assert.True(t, events[2].Holiday)
}

func TestListFormatsTimestamps(t *testing.T) {
	repo := &fakeLeaveRepo{
		requests: func(ctx context.Context, employeeID int64) ([]leave.Request, error) {
			return []leave.Request{{
				ID:          3,
				UserID:      4,
				DisplayName: "John Doe",
				PolicyID:    2,
				PolicyName:  "Sick Leave",
				Status:      leave.StatusApproved,
				Days:        2,
				CreatedOn:   time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC),
				StartDate:   date("2024-03-04"),
				EndDate:     date("2024-03-05"),
			}}, nil
		},
	}
	svc := NewLeaveService(repo, &employeeExistsRepo{exists: true})

	items, err := svc.List(context.Background(), 4)
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, "2024-03-01 09:30:00", items[0].CreatedOn)
	assert.Equal(t, "2024-03-04", items[0].StartDate)
	assert.Equal(t, leave.StatusApproved, items[0].Status)
}
