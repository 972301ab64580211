package http

import (
	"fmt"
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/domain/employee"
	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
	"github.com/erphq/hrm-backend-go/internal/pkg/validator"
)

type EmployeeHandler struct {
	svc employee.Service
}

func NewEmployeeHandler(svc employee.Service) *EmployeeHandler {
	return &EmployeeHandler{svc: svc}
}

const defaultPerPage = 10

func (h *EmployeeHandler) List(w http.ResponseWriter, r *http.Request) {
	page := queryInt(r, "page", 1)
	if page < 1 {
		page = 1
	}
	perPage := queryInt(r, "per_page", defaultPerPage)
	if perPage < 1 {
		perPage = defaultPerPage
	}

	f := employee.Filter{
		Status:      r.URL.Query().Get("status"),
		Department:  int64(queryInt(r, "department", -1)),
		Designation: int64(queryInt(r, "designation", -1)),
		Location:    r.URL.Query().Get("location"),
		Page:        page,
		PerPage:     perPage,
	}

	items, total, err := h.svc.List(r.Context(), f)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Collection(w, items, response.NewMeta(page, perPage, total))
}

func (h *EmployeeHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	include := validator.SplitIncludes(r.URL.Query().Get("include"))

	item, err := h.svc.Get(r.Context(), id, include)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	item, id, err := h.svc.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d", id), item)
}

func (h *EmployeeHandler) BulkCreate(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Employees []employee.CreateEmployeeRequest `json:"employees"`
	}
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}

	created, err := h.svc.BulkCreate(r.Context(), req.Employees)
	if err != nil {
		// The batch stopped at the first failure; the count of records
		// already created is not reported back on this legacy shape.
		response.HandleError(w, err)
		return
	}

	response.Created(w, "/erp/v1/hrm/employees", map[string]any{"created": created})
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.UpdateEmployeeRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = id

	item, err := h.svc.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d", id), item)
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}

func (h *EmployeeHandler) Terminate(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.TerminateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = id

	if err := h.svc.Terminate(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	location := fmt.Sprintf("/erp/v1/hrm/employees/%d", id)
	response.Created(w, location, map[string]any{"id": id, "status": string(employee.StatusTerminated)})
}

func (h *EmployeeHandler) Roles(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	roles, err := h.svc.Roles(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if roles == nil {
		roles = []string{}
	}

	response.Success(w, roles)
}

func (h *EmployeeHandler) UpdateRoles(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req employee.UpdateRolesRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = id
	req.CallerCaps = callerCaps(r)

	roles, err := h.svc.UpdateRoles(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	location := fmt.Sprintf("/erp/v1/hrm/employees/%d", id)
	response.Created(w, location, roles)
}
