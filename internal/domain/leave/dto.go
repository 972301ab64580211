package leave

import "github.com/erphq/hrm-backend-go/internal/pkg/coerce"

type CreateRequest struct {
	EmployeeID int64     `json:"-"`
	PolicyID   coerce.ID `json:"policy_id"`
	StartDate  string    `json:"start_date"`
	EndDate    string    `json:"end_date"`
	Reason     string    `json:"reason"`
}

// Response is the fixed leave-request shape.
type Response struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	DisplayName string `json:"display_name"`
	PolicyID    int64  `json:"policy_id"`
	PolicyName  string `json:"policy_name"`
	Status      int    `json:"status"`
	Reason      string `json:"reason"`
	Comments    string `json:"comments"`
	CreatedOn   string `json:"created_on"`
	Days        int    `json:"days"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// PolicySummary is one row of the read-only balance view.
type PolicySummary struct {
	ID         int64  `json:"id"`
	Policy     string `json:"policy"`
	Total      string `json:"total"`
	Scheduled  string `json:"scheduled"`
	Available  string `json:"available"`
	PeriodFrom string `json:"period_from"`
	PeriodTo   string `json:"period_to"`
}

// Event is the uniform calendar shape merging leave requests and holidays.
type Event struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	Start   string `json:"start"`
	End     string `json:"end"`
	URL     string `json:"url"`
	Color   string `json:"color"`
	Img     string `json:"img"`
	Holiday bool   `json:"holiday"`
}
