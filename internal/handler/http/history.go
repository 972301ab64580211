package http

import (
	"fmt"
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/domain/history"
	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
)

type HistoryHandler struct {
	svc history.Service
}

func NewHistoryHandler(svc history.Service) *HistoryHandler {
	return &HistoryHandler{svc: svc}
}

func (h *HistoryHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	f := history.Filter{
		EmployeeID: employeeID,
		Module:     r.URL.Query().Get("module"),
	}

	grouped, err := h.svc.List(r.Context(), f)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grouped)
}

func (h *HistoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var payload map[string]any
	if err := decodeJSON(r, &payload); err != nil {
		response.HandleError(w, err)
		return
	}

	item, err := h.svc.Create(r.Context(), employeeID, payload)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d/histories", employeeID), item)
}

func (h *HistoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := pathID(r, "id"); err != nil {
		response.HandleError(w, err)
		return
	}
	historyID, err := pathID(r, "history_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), historyID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
