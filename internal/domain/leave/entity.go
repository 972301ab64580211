package leave

import "time"

// Leave request status codes. Requests are always created pending.
const (
	StatusPending  = 0
	StatusApproved = 1
	StatusRejected = 2
)

// Request is a leave request row joined with its policy and requester, as
// the listing endpoints render it.
type Request struct {
	ID          int64
	UserID      int64
	DisplayName string
	PolicyID    int64
	PolicyName  string
	Color       string
	Status      int
	Reason      string
	Comments    string
	CreatedOn   time.Time
	Days        int
	StartDate   time.Time
	EndDate     time.Time
}

type Policy struct {
	ID    int64
	Name  string
	Color string
	// Value is the policy's default entitlement in days.
	Value int
}

type Entitlement struct {
	PolicyID int64
	Days     int
	FromDate time.Time
	ToDate   time.Time
}

// Balance aggregates an employee's usage against one policy. Available days
// are Entitlement minus Total.
type Balance struct {
	PolicyID    int64
	Entitlement int
	Total       int
	Scheduled   int
}

type Holiday struct {
	ID    int64
	Title string
	Start time.Time
	End   time.Time
}
