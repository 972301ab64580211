package note

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/domain/note"
	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

type fakeNoteRepo struct {
	list   func(ctx context.Context, employeeID int64, limit, offset int) ([]note.Note, error)
	count  func(ctx context.Context, employeeID int64) (int64, error)
	create func(ctx context.Context, n note.Note) (note.Note, error)
	del    func(ctx context.Context, id int64) error
}

func (f *fakeNoteRepo) ListByEmployee(ctx context.Context, employeeID int64, limit, offset int) ([]note.Note, error) {
	return f.list(ctx, employeeID, limit, offset)
}
func (f *fakeNoteRepo) CountByEmployee(ctx context.Context, employeeID int64) (int64, error) {
	return f.count(ctx, employeeID)
}
func (f *fakeNoteRepo) Create(ctx context.Context, n note.Note) (note.Note, error) {
	return f.create(ctx, n)
}
func (f *fakeNoteRepo) Delete(ctx context.Context, id int64) error {
	return f.del(ctx, id)
}

type employeeLookupRepo struct {
	employee.Repository
	byID map[int64]employee.Employee
}

func (f *employeeLookupRepo) GetByID(ctx context.Context, id int64) (employee.Employee, error) {
	e, ok := f.byID[id]
	if !ok {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

func testEmployees() *employeeLookupRepo {
	return &employeeLookupRepo{byID: map[int64]employee.Employee{
		4: {ID: 4, FirstName: "Jane", LastName: "Smith"},
		9: {ID: 9, FirstName: "Mark", LastName: "Admin"},
	}}
}

func TestCreateRequiresNoteText(t *testing.T) {
	svc := NewNoteService(&fakeNoteRepo{}, testEmployees())

	_, err := svc.Create(context.Background(), note.CreateRequest{
		EmployeeID: 4,
		CommentBy:  9,
		Note:       "   ",
	})
	require.Error(t, err)

	restErr := err.(*resterror.Error)
	assert.Equal(t, "rest_note_required_fields", restErr.Code)
	assert.Equal(t, "note is required", restErr.Message)
}

func TestCreateUnknownEmployee(t *testing.T) {
	svc := NewNoteService(&fakeNoteRepo{}, testEmployees())

	_, err := svc.Create(context.Background(), note.CreateRequest{
		EmployeeID: 123,
		Note:       "left early",
	})
	assert.Equal(t, employee.ErrEmployeeNotFound, err)
}

func TestCreateShapesNote(t *testing.T) {
	repo := &fakeNoteRepo{
		create: func(ctx context.Context, n note.Note) (note.Note, error) {
			n.ID = 11
			n.CreatedAt = time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
			return n, nil
		},
	}
	svc := NewNoteService(repo, testEmployees())

	item, err := svc.Create(context.Background(), note.CreateRequest{
		EmployeeID: 4,
		CommentBy:  9,
		Note:       "promotion discussed",
	})
	require.NoError(t, err)

	assert.Equal(t, int64(11), item["id"])
	assert.Equal(t, "promotion discussed", item["note"])
	assert.Equal(t, int64(9), item["comment_by"])
	assert.Equal(t, "Mark Admin", item["comment_by_name"])
	assert.Equal(t, "2024-03-01 09:30:00", item["created_at"])
	assert.Equal(t, int64(4), item["employee_id"])
	assert.Equal(t, "Jane", item["employee_first_name"])
	assert.Equal(t, "Smith", item["employee_last_name"])
}

func TestCreateUnknownCommenterLeavesNameBlank(t *testing.T) {
	repo := &fakeNoteRepo{
		create: func(ctx context.Context, n note.Note) (note.Note, error) {
			n.ID = 12
			return n, nil
		},
	}
	svc := NewNoteService(repo, testEmployees())

	item, err := svc.Create(context.Background(), note.CreateRequest{
		EmployeeID: 4,
		CommentBy:  555,
		Note:       "imported remark",
	})
	require.NoError(t, err)
	assert.Equal(t, "", item["comment_by_name"])
}

func TestListDefaultsPagination(t *testing.T) {
	var gotLimit, gotOffset int
	repo := &fakeNoteRepo{
		list: func(ctx context.Context, employeeID int64, limit, offset int) ([]note.Note, error) {
			gotLimit, gotOffset = limit, offset
			return []note.Note{{ID: 1, EmployeeID: employeeID, Note: "first"}}, nil
		},
		count: func(ctx context.Context, employeeID int64) (int64, error) {
			return 31, nil
		},
	}
	svc := NewNoteService(repo, testEmployees())

	items, total, err := svc.List(context.Background(), 4, 0, -5)
	require.NoError(t, err)

	assert.Equal(t, note.DefaultPerPage, gotLimit)
	assert.Equal(t, note.DefaultOffset, gotOffset)
	assert.Equal(t, int64(31), total)
	require.Len(t, items, 1)
	assert.Equal(t, "first", items[0]["note"])
}

func TestDeletePropagatesNotFound(t *testing.T) {
	repo := &fakeNoteRepo{
		del: func(ctx context.Context, id int64) error {
			return note.ErrNoteNotFound
		},
	}
	svc := NewNoteService(repo, testEmployees())

	err := svc.Delete(context.Background(), 999)
	require.Error(t, err)

	restErr := err.(*resterror.Error)
	assert.Equal(t, 404, restErr.Status)
	assert.Equal(t, "rest_invalid_note_id", restErr.Code)
}
