package history

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/history"
	"github.com/erphq/hrm-backend-go/internal/domain/master/department"
	"github.com/erphq/hrm-backend-go/internal/domain/master/designation"
	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

type fakeHistoryRepo struct {
	list   func(ctx context.Context, f history.Filter) ([]history.History, error)
	create func(ctx context.Context, h history.History) (history.History, error)
	del    func(ctx context.Context, id int64) error
}

func (f *fakeHistoryRepo) List(ctx context.Context, fl history.Filter) ([]history.History, error) {
	return f.list(ctx, fl)
}
func (f *fakeHistoryRepo) Create(ctx context.Context, h history.History) (history.History, error) {
	return f.create(ctx, h)
}
func (f *fakeHistoryRepo) Delete(ctx context.Context, id int64) error {
	return f.del(ctx, id)
}

type employeeExistsRepo struct {
	employee.Repository
	existsFn func(ctx context.Context, id int64) (bool, error)
}

func (f *employeeExistsRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return f.existsFn(ctx, id)
}

type departmentExistsRepo struct {
	department.Repository
	existsFn func(ctx context.Context, id int64) (bool, error)
}

func (f *departmentExistsRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return f.existsFn(ctx, id)
}

type designationExistsRepo struct {
	designation.Repository
	existsFn func(ctx context.Context, id int64) (bool, error)
}

func (f *designationExistsRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return f.existsFn(ctx, id)
}

func boolRepo(v bool) func(ctx context.Context, id int64) (bool, error) {
	return func(ctx context.Context, id int64) (bool, error) { return v, nil }
}

func newTestService(repo *fakeHistoryRepo, deptOK, desigOK bool) history.Service {
	return NewHistoryService(
		repo,
		&employeeExistsRepo{existsFn: boolRepo(true)},
		&departmentExistsRepo{existsFn: boolRepo(deptOK)},
		&designationExistsRepo{existsFn: boolRepo(desigOK)},
	)
}

func passthroughCreate() (*fakeHistoryRepo, *history.History) {
	var captured history.History
	repo := &fakeHistoryRepo{
		create: func(ctx context.Context, h history.History) (history.History, error) {
			captured = h
			h.ID = 1
			return h, nil
		},
	}
	return repo, &captured
}

func TestCreateUnknownModuleRejected(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{}, true, true)

	_, err := svc.Create(context.Background(), 1, map[string]any{"module": "awards"})
	assert.Equal(t, history.ErrNoModuleType, err)

	_, err = svc.Create(context.Background(), 1, map[string]any{})
	assert.Equal(t, history.ErrNoModuleType, err)
}

func TestCreateStatusValidatesEnum(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{}, true, true)

	_, err := svc.Create(context.Background(), 1, map[string]any{
		"module": "status",
		"status": "freelancer",
	})
	assert.Equal(t, history.ErrInvalidStatus, err)
}

func TestCreateStatusRequiresStatus(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{}, true, true)

	_, err := svc.Create(context.Background(), 1, map[string]any{"module": "status"})
	require.Error(t, err)

	restErr := err.(*resterror.Error)
	assert.Equal(t, "rest_required_fields", restErr.Code)
	assert.Equal(t, "Status is required", restErr.Message)
}

func TestCreateStatusHappyPath(t *testing.T) {
	repo, captured := passthroughCreate()
	svc := newTestService(repo, true, true)

	item, err := svc.Create(context.Background(), 1, map[string]any{
		"module": "status",
		"status": "part-time",
		"date":   "2023-11-01",
	})
	require.NoError(t, err)

	assert.Equal(t, "part-time", captured.Status)
	assert.Equal(t, "2023-11-01", item["date"])
	assert.Equal(t, "status", item["module"])
}

func TestCreateCompensationRejectsNonPositivePayRate(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{}, true, true)

	// Zero reads as missing.
	_, err := svc.Create(context.Background(), 1, map[string]any{
		"module":   "compensation",
		"pay_rate": float64(0),
		"pay_type": "monthly",
		"reason":   "promotion",
	})
	require.Error(t, err)
	restErr := err.(*resterror.Error)
	assert.Equal(t, "Pay Rate is required", restErr.Message)

	_, err = svc.Create(context.Background(), 1, map[string]any{
		"module":   "compensation",
		"pay_rate": float64(-500),
		"pay_type": "monthly",
		"reason":   "promotion",
	})
	assert.Equal(t, history.ErrInvalidPayRate, err)
}

func TestCreateCompensationValidatesVocabularies(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{}, true, true)

	_, err := svc.Create(context.Background(), 1, map[string]any{
		"module":   "compensation",
		"pay_rate": float64(5000),
		"pay_type": "fortnightly",
		"reason":   "promotion",
	})
	assert.Equal(t, history.ErrInvalidPayType, err)

	_, err = svc.Create(context.Background(), 1, map[string]any{
		"module":   "compensation",
		"pay_rate": float64(5000),
		"pay_type": "monthly",
		"reason":   "felt like it",
	})
	assert.Equal(t, history.ErrInvalidReason, err)
}

func informationPayload() map[string]any {
	return map[string]any{
		"module":       "information",
		"designation":  float64(3),
		"department":   float64(2),
		"location":     "Dhaka",
		"reporting_to": float64(5),
	}
}

func TestCreateInformationRequiresAllFields(t *testing.T) {
	writeCalled := false
	repo := &fakeHistoryRepo{
		create: func(ctx context.Context, h history.History) (history.History, error) {
			writeCalled = true
			return h, nil
		},
	}
	svc := newTestService(repo, true, true)

	// A bare module discriminator carries none of the four fields; the
	// first one in declared order is reported and nothing is written.
	_, err := svc.Create(context.Background(), 1, map[string]any{"module": "information"})
	require.Error(t, err)

	restErr := err.(*resterror.Error)
	assert.Equal(t, "rest_required_fields", restErr.Code)
	assert.Equal(t, "Designation is required", restErr.Message)
	assert.False(t, writeCalled)

	payload := informationPayload()
	delete(payload, "location")
	_, err = svc.Create(context.Background(), 1, payload)
	require.Error(t, err)
	assert.Equal(t, "Location is required", err.(*resterror.Error).Message)
	assert.False(t, writeCalled)
}

func TestCreateCompensationRoundsPayRate(t *testing.T) {
	repo, captured := passthroughCreate()
	svc := newTestService(repo, true, true)

	item, err := svc.Create(context.Background(), 1, map[string]any{
		"module":   "compensation",
		"pay_rate": 1234.567,
		"pay_type": "monthly",
		"reason":   "promotion",
	})
	require.NoError(t, err)

	assert.Equal(t, "1234.57", captured.PayRate.String())
	assert.Equal(t, decimal.NewFromFloat(1234.57).String(), item["pay_rate"].(decimal.Decimal).String())
}

func TestCreateInformationChecksReferences(t *testing.T) {
	svc := newTestService(&fakeHistoryRepo{}, false, true)

	_, err := svc.Create(context.Background(), 1, informationPayload())
	assert.Equal(t, department.ErrDepartmentNotFound, err)

	svc = newTestService(&fakeHistoryRepo{}, true, false)
	_, err = svc.Create(context.Background(), 1, informationPayload())
	assert.Equal(t, designation.ErrDesignationNotFound, err)
}

func TestCreateInformationUnknownReportingTo(t *testing.T) {
	repo := &fakeHistoryRepo{}
	svc := NewHistoryService(
		repo,
		&employeeExistsRepo{existsFn: func(ctx context.Context, id int64) (bool, error) {
			// The parent employee resolves, the reporting target does not.
			return id == 1, nil
		}},
		&departmentExistsRepo{existsFn: boolRepo(true)},
		&designationExistsRepo{existsFn: boolRepo(true)},
	)

	payload := informationPayload()
	payload["reporting_to"] = float64(777)
	_, err := svc.Create(context.Background(), 1, payload)
	assert.Equal(t, history.ErrInvalidReportTo, err)
}

func TestListGroupsByModule(t *testing.T) {
	repo := &fakeHistoryRepo{
		list: func(ctx context.Context, f history.Filter) ([]history.History, error) {
			return []history.History{
				{ID: 1, Module: history.ModuleStatus, Status: "full-time"},
				{ID: 2, Module: history.ModuleInformation, Location: "Dhaka"},
				{ID: 3, Module: history.ModuleStatus, Status: "part-time"},
			}, nil
		},
	}
	svc := newTestService(repo, true, true)

	grouped, err := svc.List(context.Background(), history.Filter{EmployeeID: 1})
	require.NoError(t, err)

	assert.Len(t, grouped[history.ModuleStatus], 2)
	assert.Len(t, grouped[history.ModuleInformation], 1)
	assert.Empty(t, grouped[history.ModuleCompensation])
}
