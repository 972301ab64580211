package http

import (
	"fmt"
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/domain/dependent"
	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
)

type DependentHandler struct {
	svc dependent.Service
}

func NewDependentHandler(svc dependent.Service) *DependentHandler {
	return &DependentHandler{svc: svc}
}

func (h *DependentHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	items, err := h.svc.List(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if items == nil {
		items = []dependent.Response{}
	}

	response.Collection(w, items, response.NewMeta(1, len(items), int64(len(items))))
}

func (h *DependentHandler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	depID, err := pathID(r, "dep_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	item, err := h.svc.Get(r.Context(), employeeID, depID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

func (h *DependentHandler) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req dependent.UpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = employeeID

	item, err := h.svc.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d/dependents/%d", employeeID, item.ID), item)
}

func (h *DependentHandler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	depID, err := pathID(r, "dep_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req dependent.UpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = depID
	req.EmployeeID = employeeID

	item, err := h.svc.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d/dependents/%d", employeeID, depID), item)
}

func (h *DependentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := pathID(r, "id"); err != nil {
		response.HandleError(w, err)
		return
	}
	depID, err := pathID(r, "dep_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), depID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
