package http

import (
	"fmt"
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/domain/education"
	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
)

type EducationHandler struct {
	svc education.Service
}

func NewEducationHandler(svc education.Service) *EducationHandler {
	return &EducationHandler{svc: svc}
}

func (h *EducationHandler) List(w http.ResponseWriter, r *http.Request) {
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
		items = []education.Response{}
	}

	response.Collection(w, items, response.NewMeta(1, len(items), int64(len(items))))
}

func (h *EducationHandler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	eduID, err := pathID(r, "edu_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	item, err := h.svc.Get(r.Context(), employeeID, eduID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

func (h *EducationHandler) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req education.UpsertRequest
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

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d/educations/%d", employeeID, item.ID), item)
}

func (h *EducationHandler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	eduID, err := pathID(r, "edu_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req education.UpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = eduID
	req.EmployeeID = employeeID

	item, err := h.svc.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d/educations/%d", employeeID, eduID), item)
}

func (h *EducationHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := pathID(r, "id"); err != nil {
		response.HandleError(w, err)
		return
	}
	eduID, err := pathID(r, "edu_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), eduID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
