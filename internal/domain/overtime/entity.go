package overtime

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusPending  = "Pending"
	StatusApproved = "Approved"
	StatusRejected = "Rejected"
)

// Request is an approved overtime request joined with its type, which carries
// the pay multiplier.
type Request struct {
	ID         string
	UserID     string
	TypeID     string
	TypeName   string
	Multiplier decimal.Decimal
	Date       time.Time
	Hours      decimal.Decimal
}
