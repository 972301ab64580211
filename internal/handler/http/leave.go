package http

import (
	"fmt"
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/domain/leave"
	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
)

type LeaveHandler struct {
	svc leave.Service
}

func NewLeaveHandler(svc leave.Service) *LeaveHandler {
	return &LeaveHandler{svc: svc}
}

// Policies is the read-only balance view.
func (h *LeaveHandler) Policies(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	summaries, err := h.svc.Policies(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if summaries == nil {
		summaries = []leave.PolicySummary{}
	}

	response.Collection(w, summaries, response.NewMeta(1, len(summaries), int64(len(summaries))))
}

func (h *LeaveHandler) List(w http.ResponseWriter, r *http.Request) {
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
		items = []leave.Response{}
	}

	response.Collection(w, items, response.NewMeta(1, len(items), int64(len(items))))
}

func (h *LeaveHandler) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req leave.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = employeeID

	id, err := h.svc.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w,
		fmt.Sprintf("/erp/v1/hrm/employees/%d/leaves", employeeID),
		map[string]any{"id": id, "status": leave.StatusPending},
	)
}

// Events feeds the calendar: leave requests merged with holidays.
func (h *LeaveHandler) Events(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	events, err := h.svc.Events(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if events == nil {
		events = []leave.Event{}
	}

	response.Success(w, events)
}
