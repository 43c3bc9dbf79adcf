package deduction

import "context"

type Repository interface {
	// ListActiveForUser returns active plans that apply to the user, either
	// global plans or ones the user subscribes to, with the ledger-derived
	// amount already paid per plan.
	ListActiveForUser(ctx context.Context, userID string) ([]ApplicablePlan, error)

	// AppendLedgerEntries records collected deductions. Called inside the pay
	// run transaction so ledger rows commit with the payroll records.
	AppendLedgerEntries(ctx context.Context, entries []LedgerEntry) error
}
