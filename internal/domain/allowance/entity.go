package allowance

import "github.com/shopspring/decimal"

const (
	StatusActive = "ACTIVE"
	StatusPaused = "PAUSED"
)

// Subscription is an allowance that applies to an employee for a pay run,
// either through a global active type or an active per-employee assignment.
// CustomAmount, when set, overrides the type amount.
type Subscription struct {
	TypeID       string
	Name         string
	TypeAmount   decimal.Decimal
	CustomAmount *decimal.Decimal
	IsGlobal     bool
	Assigned     bool
}

// Applies reports whether the allowance covers the employee: global types
// cover everyone, scoped types only employees with an active assignment.
func (s Subscription) Applies() bool {
	return s.IsGlobal || s.Assigned
}

// EffectiveAmount is the per-period amount the employee actually receives.
func (s Subscription) EffectiveAmount() decimal.Decimal {
	if s.CustomAmount != nil {
		return *s.CustomAmount
	}
	return s.TypeAmount
}
