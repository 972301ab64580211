package http

import (
	"net/http"

	"github.com/erphq/hrm-backend-go/internal/domain/announcement"
	"github.com/erphq/hrm-backend-go/internal/handler/http/response"
	"github.com/erphq/hrm-backend-go/internal/pkg/coerce"
)

type AnnouncementHandler struct {
	svc announcement.Service
}

func NewAnnouncementHandler(svc announcement.Service) *AnnouncementHandler {
	return &AnnouncementHandler{svc: svc}
}

func (h *AnnouncementHandler) List(w http.ResponseWriter, r *http.Request) {
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
		items = []announcement.Response{}
	}

	response.Collection(w, items, response.NewMeta(1, len(items), int64(len(items))))
}

// MarkRead flips one announcement's status; the target id rides in the body
// because this route has no child path segment.
func (h *AnnouncementHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	employeeID, err := pathID(r, "id")
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var payload struct {
		ID coerce.ID `json:"announcement_id"`
	}
	if err := decodeJSON(r, &payload); err != nil {
		response.HandleError(w, err)
		return
	}
	if payload.ID.Int64() <= 0 {
		response.HandleError(w, errInvalidID)
		return
	}

	item, err := h.svc.MarkRead(r.Context(), employeeID, payload.ID.Int64())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, item)
}
