package http

import (
	"fmt"
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/domain/performance"
	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
)

type PerformanceHandler struct {
	svc performance.Service
}

func NewPerformanceHandler(svc performance.Service) *PerformanceHandler {
	return &PerformanceHandler{svc: svc}
}

// List groups the employee's entries by type in one response.
func (h *PerformanceHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	grouped, err := h.svc.List(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, grouped)
}

func (h *PerformanceHandler) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	// The payload shape depends on the type discriminator, so it is decoded
	// untyped and dispatched in the domain layer.
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

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d/performances", employeeID), item)
}

func (h *PerformanceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := pathID(r, "id"); err != nil {
		response.HandleError(w, err)
		return
	}
	performanceID, err := pathID(r, "performance_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), performanceID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
