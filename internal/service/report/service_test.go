package report

import (
	"bytes"
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/kentzie123/LJA-System-Server/internal/domain/payroll"
)

type fakePayrollService struct {
	details *payroll.PayRunDetailResponse
	err     error
}

func (f *fakePayrollService) CreatePayRun(ctx context.Context, req *payroll.CreatePayRunRequest) (*payroll.CreatePayRunResponse, error) {
	panic("not used")
}

func (f *fakePayrollService) ListPayRuns(ctx context.Context) ([]payroll.PayRunSummaryResponse, error) {
	panic("not used")
}

func (f *fakePayrollService) GetPayRunDetails(ctx context.Context, id string) (*payroll.PayRunDetailResponse, error) {
	return f.details, f.err
}

func (f *fakePayrollService) DeletePayRun(ctx context.Context, id string) error { panic("not used") }

func (f *fakePayrollService) FinalizePayRun(ctx context.Context, id string) error { panic("not used") }

func (f *fakePayrollService) GetPayslipsByUser(ctx context.Context, userID string) ([]payroll.PayslipResponse, error) {
	panic("not used")
}

func TestExportPayRun(t *testing.T) {
	fake := &fakePayrollService{
		details: &payroll.PayRunDetailResponse{
			ID:        "run-1",
			RunName:   "January 1-15",
			StartDate: "2025-01-01",
			EndDate:   "2025-01-15",
			PayDate:   "2025-01-20",
			Status:    "Draft",
			Records: []payroll.PayrollRecordResponse{
				{
					Fullname:    "Ana Reyes",
					Position:    "Engineer",
					BasicSalary: decimal.RequireFromString("22000"),
					OvertimePay: decimal.RequireFromString("312.50"),
					Allowances:  decimal.RequireFromString("500"),
					Deductions:  decimal.RequireFromString("1400"),
					NetPay:      decimal.RequireFromString("21412.50"),
					Status:      "Pending",
				},
			},
			Totals: payroll.RunTotalsResponse{
				TotalOvertime:   decimal.RequireFromString("312.50"),
				TotalAllowances: decimal.RequireFromString("500"),
				TotalDeductions: decimal.RequireFromString("1400"),
				TotalNetPay:     decimal.RequireFromString("21412.50"),
			},
		},
	}

	svc := NewReportService(fake)
	buf, filename, err := svc.ExportPayRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, "payrun_2025-01-01_2025-01-15.xlsx", filename)

	wb, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer wb.Close()

	title, err := wb.GetCellValue("Payroll", "A1")
	require.NoError(t, err)
	assert.Contains(t, title, "January 1-15")

	name, err := wb.GetCellValue("Payroll", "A6")
	require.NoError(t, err)
	assert.Equal(t, "Ana Reyes", name)

	netPay, err := wb.GetCellValue("Payroll", "G6")
	require.NoError(t, err)
	assert.Equal(t, "21412.5", netPay)
}

func TestExportPayRunUnknownRun(t *testing.T) {
	fake := &fakePayrollService{err: payroll.ErrPayRunNotFound}

	svc := NewReportService(fake)
	_, _, err := svc.ExportPayRun(context.Background(), "missing")
	assert.ErrorIs(t, err, payroll.ErrPayRunNotFound)
}
