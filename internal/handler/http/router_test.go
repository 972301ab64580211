package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erphq/hrm-backend-go/internal/domain/announcement"
	"github.com/erphq/hrm-backend-go/internal/domain/capability"
	"github.com/erphq/hrm-backend-go/internal/domain/employee"
)

type fakeEmployeeService struct {
	list        func(ctx context.Context, f employee.Filter) ([]map[string]any, int64, error)
	get         func(ctx context.Context, id int64, include []string) (map[string]any, error)
	create      func(ctx context.Context, req employee.CreateEmployeeRequest) (map[string]any, int64, error)
	bulkCreate  func(ctx context.Context, reqs []employee.CreateEmployeeRequest) (int, error)
	update      func(ctx context.Context, req employee.UpdateEmployeeRequest) (map[string]any, error)
	del         func(ctx context.Context, id int64) error
	terminate   func(ctx context.Context, req employee.TerminateRequest) error
	roles       func(ctx context.Context, employeeID int64) ([]string, error)
	updateRoles func(ctx context.Context, req employee.UpdateRolesRequest) ([]string, error)
}

func (f *fakeEmployeeService) List(ctx context.Context, fl employee.Filter) ([]map[string]any, int64, error) {
	return f.list(ctx, fl)
}
func (f *fakeEmployeeService) Get(ctx context.Context, id int64, include []string) (map[string]any, error) {
	return f.get(ctx, id, include)
}
func (f *fakeEmployeeService) Create(ctx context.Context, req employee.CreateEmployeeRequest) (map[string]any, int64, error) {
	return f.create(ctx, req)
}
func (f *fakeEmployeeService) BulkCreate(ctx context.Context, reqs []employee.CreateEmployeeRequest) (int, error) {
	return f.bulkCreate(ctx, reqs)
}
func (f *fakeEmployeeService) Update(ctx context.Context, req employee.UpdateEmployeeRequest) (map[string]any, error) {
	return f.update(ctx, req)
}
func (f *fakeEmployeeService) Delete(ctx context.Context, id int64) error {
	return f.del(ctx, id)
}
func (f *fakeEmployeeService) Terminate(ctx context.Context, req employee.TerminateRequest) error {
	return f.terminate(ctx, req)
}
func (f *fakeEmployeeService) Roles(ctx context.Context, employeeID int64) ([]string, error) {
	return f.roles(ctx, employeeID)
}
func (f *fakeEmployeeService) UpdateRoles(ctx context.Context, req employee.UpdateRolesRequest) ([]string, error) {
	return f.updateRoles(ctx, req)
}

type fakeAnnouncementService struct {
	list     func(ctx context.Context, employeeID int64) ([]announcement.Response, error)
	markRead func(ctx context.Context, employeeID, announcementID int64) (announcement.Response, error)
}

func (f *fakeAnnouncementService) List(ctx context.Context, employeeID int64) ([]announcement.Response, error) {
	return f.list(ctx, employeeID)
}
func (f *fakeAnnouncementService) MarkRead(ctx context.Context, employeeID, announcementID int64) (announcement.Response, error) {
	return f.markRead(ctx, employeeID, announcementID)
}

func testRouter(t *testing.T, h Handlers) (http.Handler, *jwtauth.JWTAuth) {
	t.Helper()
	tokenAuth := jwtauth.New("HS256", []byte("test-secret"), nil)
	return NewRouter(tokenAuth, "test", h), tokenAuth
}

func employeeRouter(t *testing.T, svc employee.Service) (http.Handler, *jwtauth.JWTAuth) {
	t.Helper()
	return testRouter(t, Handlers{Employee: NewEmployeeHandler(svc)})
}

func bearerToken(t *testing.T, tokenAuth *jwtauth.JWTAuth, caps ...string) string {
	t.Helper()
	claims := map[string]any{"user_id": 9}
	if len(caps) > 0 {
		claims["caps"] = caps
	}
	_, tokenString, err := tokenAuth.Encode(claims)
	require.NoError(t, err)
	return "Bearer " + tokenString
}

func doRequest(handler http.Handler, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var envelope map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	return envelope
}

func TestRouterRejectsMissingToken(t *testing.T) {
	handler, _ := employeeRouter(t, &fakeEmployeeService{})

	w := doRequest(handler, http.MethodGet, "/erp/v1/hrm/employees/", "", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, false, envelope["success"])
}

func TestRouterRejectsMissingCapability(t *testing.T) {
	handler, tokenAuth := employeeRouter(t, &fakeEmployeeService{})
	token := bearerToken(t, tokenAuth, capability.ListEmployee)

	// A read capability does not grant creation.
	w := doRequest(handler, http.MethodPost, "/erp/v1/hrm/employees/", token, `{"first_name":"Jane"}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	envelope := decodeEnvelope(t, w)
	errObj := envelope["error"].(map[string]any)
	assert.Equal(t, "rest_forbidden", errObj["code"])
}

func TestRouterListEnvelope(t *testing.T) {
	svc := &fakeEmployeeService{
		list: func(ctx context.Context, f employee.Filter) ([]map[string]any, int64, error) {
			items := make([]map[string]any, 0, f.PerPage)
			for i := 0; i < f.PerPage; i++ {
				items = append(items, map[string]any{"id": i + 1})
			}
			return items, 95, nil
		},
	}
	handler, tokenAuth := employeeRouter(t, svc)
	token := bearerToken(t, tokenAuth, capability.ListEmployee)

	w := doRequest(handler, http.MethodGet, "/erp/v1/hrm/employees/?page=1&per_page=10", token, "")
	assert.Equal(t, http.StatusOK, w.Code)

	envelope := decodeEnvelope(t, w)
	assert.Equal(t, true, envelope["success"])

	meta := envelope["meta"].(map[string]any)
	assert.Equal(t, float64(1), meta["page"])
	assert.Equal(t, float64(95), meta["total_items"])
	assert.Equal(t, float64(10), meta["total_pages"])
}

func TestRouterCreateSetsLocation(t *testing.T) {
	svc := &fakeEmployeeService{
		create: func(ctx context.Context, req employee.CreateEmployeeRequest) (map[string]any, int64, error) {
			return map[string]any{"id": int64(42), "first_name": req.FirstName}, 42, nil
		},
	}
	handler, tokenAuth := employeeRouter(t, svc)
	token := bearerToken(t, tokenAuth, capability.CreateEmployee)

	w := doRequest(handler, http.MethodPost, "/erp/v1/hrm/employees/", token,
		`{"first_name":"Jane","last_name":"Smith","email":"jane@example.com"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/erp/v1/hrm/employees/42", w.Header().Get("Location"))
}

func TestRouterInvalidPathID(t *testing.T) {
	handler, tokenAuth := employeeRouter(t, &fakeEmployeeService{})
	token := bearerToken(t, tokenAuth, capability.ListEmployee)

	w := doRequest(handler, http.MethodGet, "/erp/v1/hrm/employees/abc", token, "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	envelope := decodeEnvelope(t, w)
	errObj := envelope["error"].(map[string]any)
	assert.Equal(t, "rest_invalid_id", errObj["code"])
}

func TestRouterErrorsPassThrough(t *testing.T) {
	svc := &fakeEmployeeService{
		get: func(ctx context.Context, id int64, include []string) (map[string]any, error) {
			return nil, employee.ErrEmployeeNotFound
		},
	}
	handler, tokenAuth := employeeRouter(t, svc)
	token := bearerToken(t, tokenAuth, capability.ListEmployee)

	w := doRequest(handler, http.MethodGet, "/erp/v1/hrm/employees/7", token, "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	envelope := decodeEnvelope(t, w)
	errObj := envelope["error"].(map[string]any)
	assert.Equal(t, "rest_employee_invalid_id", errObj["code"])
}

func TestRouterManagerOnlyRoutes(t *testing.T) {
	svc := &fakeEmployeeService{
		terminate: func(ctx context.Context, req employee.TerminateRequest) error {
			return nil
		},
		roles: func(ctx context.Context, employeeID int64) ([]string, error) {
			return []string{"employee"}, nil
		},
		updateRoles: func(ctx context.Context, req employee.UpdateRolesRequest) ([]string, error) {
			return []string{"employee", "erp_hr_manager"}, nil
		},
	}
	handler, tokenAuth := employeeRouter(t, svc)

	// Edit rights alone are not enough for terminate or the role views.
	editToken := bearerToken(t, tokenAuth, capability.EditEmployee, capability.ListEmployee)
	w := doRequest(handler, http.MethodPut, "/erp/v1/hrm/employees/7/terminate", editToken, `{}`)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = doRequest(handler, http.MethodGet, "/erp/v1/hrm/employees/7/roles", editToken, "")
	assert.Equal(t, http.StatusForbidden, w.Code)

	managerToken := bearerToken(t, tokenAuth, capability.HRManager)
	w = doRequest(handler, http.MethodPut, "/erp/v1/hrm/employees/7/terminate", managerToken, `{"terminate_date":"2024-06-30"}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/erp/v1/hrm/employees/7", w.Header().Get("Location"))

	w = doRequest(handler, http.MethodGet, "/erp/v1/hrm/employees/7/roles", managerToken, "")
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(handler, http.MethodPut, "/erp/v1/hrm/employees/7/roles", managerToken, `{"roles":{"erp_hr_manager":true}}`)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/erp/v1/hrm/employees/7", w.Header().Get("Location"))
}

func TestRouterAnnouncementMarkRead(t *testing.T) {
	var gotEmployee, gotAnnouncement int64
	svc := &fakeAnnouncementService{
		markRead: func(ctx context.Context, employeeID, announcementID int64) (announcement.Response, error) {
			gotEmployee, gotAnnouncement = employeeID, announcementID
			return announcement.Response{ID: announcementID, Status: announcement.StatusRead}, nil
		},
	}
	handler, tokenAuth := testRouter(t, Handlers{Announcement: NewAnnouncementHandler(svc)})
	token := bearerToken(t, tokenAuth, capability.ListEmployee)

	// String ids in the body coerce like everywhere else.
	w := doRequest(handler, http.MethodPut, "/erp/v1/hrm/employees/4/announcements", token, `{"announcement_id":"9"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(4), gotEmployee)
	assert.Equal(t, int64(9), gotAnnouncement)

	w = doRequest(handler, http.MethodPut, "/erp/v1/hrm/employees/4/announcements", token, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
