package employee

import (
	"github.com/shopspring/decimal"
)

// Employee is the payroll-relevant view of a user account.
type Employee struct {
	ID        string
	Fullname  string
	Email     string
	Position  string
	RoleID    int
	DailyRate *decimal.Decimal
	IsActive  bool
}

// EligibilityFromRoleIDs builds the predicate that decides which employees a
// pay run covers: active accounts whose role is not in the excluded set.
func EligibilityFromRoleIDs(excludedRoleIDs []int) func(Employee) bool {
	excluded := make(map[int]struct{}, len(excludedRoleIDs))
	for _, id := range excludedRoleIDs {
		excluded[id] = struct{}{}
	}
	return func(e Employee) bool {
		if !e.IsActive {
			return false
		}
		_, skip := excluded[e.RoleID]
		return !skip
	}
}
