package payroll

import "context"

type Repository interface {
	// AcquireRunCreationLock takes the transaction-scoped advisory lock that
	// serializes pay-run creation. Released automatically at commit/rollback.
	AcquireRunCreationLock(ctx context.Context) error

	CreatePayRun(ctx context.Context, run *PayRun) (string, error)
	GetPayRun(ctx context.Context, id string) (*PayRun, error)
	// LockPayRun loads the run with FOR UPDATE so status transitions are
	// serialized. Must run inside a transaction.
	LockPayRun(ctx context.Context, id string) (*PayRun, error)
	ListPayRuns(ctx context.Context) ([]PayRunSummary, error)
	DeletePayRun(ctx context.Context, id string) error
	// MarkPayRunCompleted flips Draft to Completed. Returns
	// ErrPayRunAlreadyCompleted when the run is not in Draft.
	MarkPayRunCompleted(ctx context.Context, id string) error

	CreateRecord(ctx context.Context, record *Record) error
	ListRecordsByRun(ctx context.Context, runID string) ([]Record, error)
	RunTotals(ctx context.Context, runID string) (*RunTotals, error)
	ListPayslipsByUser(ctx context.Context, userID string) ([]Payslip, error)
}

// TxManager runs a function inside a database transaction. Kept as an
// interface so service tests can fake atomicity without a database.
type TxManager interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}
