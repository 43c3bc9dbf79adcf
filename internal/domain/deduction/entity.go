package deduction

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	TypeFixed      = "FIXED"
	TypePercentage = "PERCENTAGE"

	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
)

// ApplicablePlan is a deduction plan that applies to an employee for a pay
// run, joined with the employee's subscription when one exists. AmountPaid is
// derived from the ledger, never stored as a counter.
type ApplicablePlan struct {
	PlanID          string
	Name            string
	DeductionType   string
	Amount          decimal.Decimal
	IsGlobal        bool
	Subscribed      bool
	TotalLoanAmount *decimal.Decimal
	AmountPaid      decimal.Decimal
}

// Applies reports whether the plan covers the employee: global plans cover
// everyone, scoped plans only their subscribers. The repository query filters
// on the same rule; this keeps the function safe on unfiltered input.
func (p ApplicablePlan) Applies() bool {
	return p.IsGlobal || p.Subscribed
}

// RemainingBalance returns what is left to collect on a capped plan, or nil
// for open-ended plans. The subscriber column is written by another system,
// so both NULL and zero encode "no cap".
func (p ApplicablePlan) RemainingBalance() *decimal.Decimal {
	if p.TotalLoanAmount == nil || p.TotalLoanAmount.IsZero() {
		return nil
	}
	remaining := p.TotalLoanAmount.Sub(p.AmountPaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}
	return &remaining
}

// LedgerEntry is an append-only record of a collected deduction. PayRunID is
// nil for manual payments recorded outside a pay run.
type LedgerEntry struct {
	ID         string
	PlanID     string
	UserID     string
	PayRunID   *string
	AmountPaid decimal.Decimal
	PaidAt     time.Time
}
