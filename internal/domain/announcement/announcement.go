package announcement

import (
	"context"
	"time"

	"github.com/erphq/hrm-backend-go/internal/pkg/resterror"
)

const (
	StatusUnread = "unread"
	StatusRead   = "read"
)

type Announcement struct {
	ID         int64
	EmployeeID int64
	Author     string
	Title      string
	Content    string
	Status     string
	Date       time.Time
}

type Response struct {
	ID      int64  `json:"id"`
	Author  string `json:"author"`
	Date    string `json:"date"`
	Status  string `json:"status"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

var ErrAnnouncementNotFound = resterror.NotFound("rest_invalid_announcement_id", "Invalid announcement id.")

type Repository interface {
	ListByEmployee(ctx context.Context, employeeID int64) ([]Announcement, error)
	GetByIDAndEmployee(ctx context.Context, id, employeeID int64) (Announcement, error)
	MarkRead(ctx context.Context, id int64) error
}

type Service interface {
	List(ctx context.Context, employeeID int64) ([]Response, error)
	// MarkRead flips an announcement to read and returns its refreshed shape.
	MarkRead(ctx context.Context, employeeID, announcementID int64) (Response, error)
}
