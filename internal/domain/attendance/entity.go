package attendance

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "Pending"
	StatusVerified = "Verified"
	StatusRejected = "Rejected"
)

// Entry is a single attendance record. An entry only counts toward payroll
// when both clock-in and clock-out have been verified.
type Entry struct {
	ID          string
	UserID      string
	Date        time.Time
	TimeIn      *time.Time
	TimeOut     *time.Time
	WorkedHours decimal.Decimal
	StatusIn    string
	StatusOut   string
}

func (e Entry) IsVerified() bool {
	return e.StatusIn == StatusVerified && e.StatusOut == StatusVerified
}
