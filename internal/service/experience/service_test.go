package experience

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/experience"
	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

type fakeExperienceRepo struct {
	listByEmployee     func(ctx context.Context, employeeID int64) ([]experience.Experience, error)
	getByIDAndEmployee func(ctx context.Context, id, employeeID int64) (experience.Experience, error)
	getByID            func(ctx context.Context, id int64) (experience.Experience, error)
	create             func(ctx context.Context, e experience.Experience) (experience.Experience, error)
	update             func(ctx context.Context, e experience.Experience) (experience.Experience, error)
	del                func(ctx context.Context, id int64) error
}

func (f *fakeExperienceRepo) ListByEmployee(ctx context.Context, employeeID int64) ([]experience.Experience, error) {
	return f.listByEmployee(ctx, employeeID)
}
func (f *fakeExperienceRepo) GetByIDAndEmployee(ctx context.Context, id, employeeID int64) (experience.Experience, error) {
	return f.getByIDAndEmployee(ctx, id, employeeID)
}
func (f *fakeExperienceRepo) GetByID(ctx context.Context, id int64) (experience.Experience, error) {
	return f.getByID(ctx, id)
}
func (f *fakeExperienceRepo) Create(ctx context.Context, e experience.Experience) (experience.Experience, error) {
	return f.create(ctx, e)
}
func (f *fakeExperienceRepo) Update(ctx context.Context, e experience.Experience) (experience.Experience, error) {
	return f.update(ctx, e)
}
func (f *fakeExperienceRepo) Delete(ctx context.Context, id int64) error {
	return f.del(ctx, id)
}

// employeeExistsRepo stubs only the existence check the experience service
// uses; everything else is unreachable from these tests.
type employeeExistsRepo struct {
	employee.Repository
	exists func(ctx context.Context, id int64) (bool, error)
}

func (f *employeeExistsRepo) Exists(ctx context.Context, id int64) (bool, error) {
	return f.exists(ctx, id)
}

func employeeExists(v bool) *employeeExistsRepo {
	return &employeeExistsRepo{exists: func(ctx context.Context, id int64) (bool, error) { return v, nil }}
}

func TestCreateMissingParentNeverWrites(t *testing.T) {
	writeCalled := false
	repo := &fakeExperienceRepo{
		create: func(ctx context.Context, e experience.Experience) (experience.Experience, error) {
			writeCalled = true
			return e, nil
		},
	}
	svc := NewExperienceService(repo, employeeExists(false))

	_, err := svc.Create(context.Background(), experience.UpsertRequest{
		EmployeeID:  99,
		CompanyName: "Acme",
	})

	assert.Equal(t, employee.ErrEmployeeNotFound, err)
	assert.False(t, writeCalled)
}

func TestGetCrossParentMismatchIsNotFound(t *testing.T) {
	repo := &fakeExperienceRepo{
		getByIDAndEmployee: func(ctx context.Context, id, employeeID int64) (experience.Experience, error) {
			// The row exists under another employee; the compound key
			// lookup reads it as absent.
			return experience.Experience{}, experience.ErrExperienceNotFound
		},
	}
	svc := NewExperienceService(repo, employeeExists(true))

	_, err := svc.Get(context.Background(), 1, 55)
	assert.Equal(t, experience.ErrExperienceNotFound, err)
}

func TestCreateShapesDates(t *testing.T) {
	repo := &fakeExperienceRepo{
		create: func(ctx context.Context, e experience.Experience) (experience.Experience, error) {
			e.ID = 7
			return e, nil
		},
	}
	svc := NewExperienceService(repo, employeeExists(true))

	resp, err := svc.Create(context.Background(), experience.UpsertRequest{
		EmployeeID:  1,
		CompanyName: "Acme",
		JobTitle:    "Engineer",
		From:        "2019-02-01",
		To:          "2021-08-31",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(7), resp.ID)
	assert.Equal(t, "2019-02-01", resp.From)
	assert.Equal(t, "2021-08-31", resp.To)
}

func TestCreateReportsFirstMissingField(t *testing.T) {
	svc := NewExperienceService(&fakeExperienceRepo{}, employeeExists(true))

	_, err := svc.Create(context.Background(), experience.UpsertRequest{
		EmployeeID:  1,
		CompanyName: "Acme",
		From:        "2019-02-01",
		To:          "2021-08-31",
	})
	require.Error(t, err)

	restErr := err.(*resterror.Error)
	assert.Equal(t, experience.RequiredCode, restErr.Code)
	assert.Equal(t, "job_title is required", restErr.Message)
	assert.Equal(t, 400, restErr.Status)
}

func TestUpdateMissingTargetSkipsWrite(t *testing.T) {
	updateCalled := false
	repo := &fakeExperienceRepo{
		getByIDAndEmployee: func(ctx context.Context, id, employeeID int64) (experience.Experience, error) {
			return experience.Experience{}, experience.ErrExperienceNotFound
		},
		update: func(ctx context.Context, e experience.Experience) (experience.Experience, error) {
			updateCalled = true
			return e, nil
		},
	}
	svc := NewExperienceService(repo, employeeExists(true))

	resp, err := svc.Update(context.Background(), experience.UpsertRequest{ID: 5, EmployeeID: 1})
	require.NoError(t, err)
	assert.Equal(t, experience.Response{}, resp)
	assert.False(t, updateCalled)
}

func TestDeleteMissingIsNotFound(t *testing.T) {
	repo := &fakeExperienceRepo{
		del: func(ctx context.Context, id int64) error { return experience.ErrExperienceNotFound },
	}
	svc := NewExperienceService(repo, employeeExists(true))

	err := svc.Delete(context.Background(), 404)
	assert.Equal(t, experience.ErrExperienceNotFound, err)
}
