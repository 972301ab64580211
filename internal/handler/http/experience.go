package http

import (
	"fmt"
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/domain/experience"
	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
)

type ExperienceHandler struct {
	svc experience.Service
}

func NewExperienceHandler(svc experience.Service) *ExperienceHandler {
	return &ExperienceHandler{svc: svc}
}

func (h *ExperienceHandler) List(w http.ResponseWriter, r *http.Request) {
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
		items = []experience.Response{}
	}

	response.Collection(w, items, response.NewMeta(1, len(items), int64(len(items))))
}

func (h *ExperienceHandler) Get(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	expID, err := pathID(r, "exp_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	item, err := h.svc.Get(r.Context(), employeeID, expID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}

func (h *ExperienceHandler) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req experience.UpsertRequest
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

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d/experiences/%d", employeeID, item.ID), item)
}

func (h *ExperienceHandler) Update(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}
	expID, err := pathID(r, "exp_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req experience.UpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.ID = expID
	req.EmployeeID = employeeID

	item, err := h.svc.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d/experiences/%d", employeeID, expID), item)
}

func (h *ExperienceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := pathID(r, "id"); err != nil {
		response.HandleError(w, err)
		return
	}
	expID, err := pathID(r, "exp_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), expID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
