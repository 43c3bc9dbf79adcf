package leave

import "time"

const (
	StatusPending   = "Pending"
	StatusApproved  = "Approved"
	StatusRejected  = "Rejected"
	StatusCancelled = "Cancelled"
)

// Request is an approved, paid leave request as seen by payroll. Only
// approved requests whose leave type is paid are ever loaded for pay runs.
type Request struct {
	ID        string
	UserID    string
	TypeID    string
	TypeName  string
	StartDate time.Time
	EndDate   time.Time
}
