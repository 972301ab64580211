package http

import (
	"fmt"
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/domain/note"
	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
)

type NoteHandler struct {
	svc note.Service
}

func NewNoteHandler(svc note.Service) *NoteHandler {
	return &NoteHandler{svc: svc}
}

func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	perPage := queryInt(r, "per_page", note.DefaultPerPage)
	if perPage < 1 {
		perPage = note.DefaultPerPage
	}
	offset := queryInt(r, "offset", note.DefaultOffset)
	if offset < 0 {
		offset = note.DefaultOffset
	}

	items, total, err := h.svc.List(r.Context(), employeeID, perPage, offset)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	if items == nil {
		items = []map[string]any{}
	}

	page := offset/perPage + 1
	response.Collection(w, items, response.NewMeta(page, perPage, total))
}

func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req note.CreateRequest
	if err := decodeJSON(r, &req); err != nil {
		response.HandleError(w, err)
		return
	}
	req.EmployeeID = employeeID
	req.CommentBy = callerID(r)

	item, err := h.svc.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, fmt.Sprintf("/erp/v1/hrm/employees/%d/notes", employeeID), item)
}

func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if _, err := pathID(r, "id"); err != nil {
		response.HandleError(w, err)
		return
	}
	noteID, err := pathID(r, "note_id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.svc.Delete(r.Context(), noteID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.NoContent(w)
}
