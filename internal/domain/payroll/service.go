package payroll

import "context"

type Service interface {
	CreatePayRun(ctx context.Context, req *CreatePayRunRequest) (*CreatePayRunResponse, error)
	ListPayRuns(ctx context.Context) ([]PayRunSummaryResponse, error)
	GetPayRunDetails(ctx context.Context, id string) (*PayRunDetailResponse, error)
	DeletePayRun(ctx context.Context, id string) error
	FinalizePayRun(ctx context.Context, id string) error
	GetPayslipsByUser(ctx context.Context, userID string) ([]PayslipResponse, error)
}
