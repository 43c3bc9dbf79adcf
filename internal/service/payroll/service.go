package payroll

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/kentzie123/LJA-System-Server/internal/domain/allowance"
	"github.com/kentzie123/LJA-System-Server/internal/domain/attendance"
	"github.com/kentzie123/LJA-System-Server/internal/domain/deduction"
	"github.com/kentzie123/LJA-System-Server/internal/domain/employee"
	"github.com/kentzie123/LJA-System-Server/internal/domain/leave"
	"github.com/kentzie123/LJA-System-Server/internal/domain/overtime"
	domain "github.com/kentzie123/LJA-System-Server/internal/domain/payroll"
)

type PayrollServiceImpl struct {
	tx             domain.TxManager
	payrollRepo    domain.Repository
	employeeRepo   employee.Repository
	attendanceRepo attendance.Repository
	leaveRepo      leave.Repository
	overtimeRepo   overtime.Repository
	allowanceRepo  allowance.Repository
	deductionRepo  deduction.Repository
	isEligible     func(employee.Employee) bool
}

func NewPayrollService(
	tx domain.TxManager,
	payrollRepo domain.Repository,
	employeeRepo employee.Repository,
	attendanceRepo attendance.Repository,
	leaveRepo leave.Repository,
	overtimeRepo overtime.Repository,
	allowanceRepo allowance.Repository,
	deductionRepo deduction.Repository,
	isEligible func(employee.Employee) bool,
) domain.Service {
	return &PayrollServiceImpl{
		tx:             tx,
		payrollRepo:    payrollRepo,
		employeeRepo:   employeeRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		overtimeRepo:   overtimeRepo,
		allowanceRepo:  allowanceRepo,
		deductionRepo:  deductionRepo,
		isEligible:     isEligible,
	}
}

// CreatePayRun creates a Draft run and computes a payroll record for every
// eligible employee in one transaction. Concurrent creations are serialized
// by an advisory lock so overlapping periods cannot race each other.
func (s *PayrollServiceImpl) CreatePayRun(ctx context.Context, req *domain.CreatePayRunRequest) (*domain.CreatePayRunResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)
	payDate, _ := time.Parse("2006-01-02", req.PayDate)

	var runID string
	err := s.tx.WithinTx(ctx, func(ctx context.Context) error {
		if err := s.payrollRepo.AcquireRunCreationLock(ctx); err != nil {
			return err
		}

		id, err := s.payrollRepo.CreatePayRun(ctx, &domain.PayRun{
			RunName:   req.RunName,
			StartDate: startDate,
			EndDate:   endDate,
			PayDate:   payDate,
			Status:    domain.StatusDraft,
		})
		if err != nil {
			return err
		}
		runID = id

		employees, err := s.employeeRepo.ListActive(ctx)
		if err != nil {
			return err
		}

		for _, emp := range employees {
			if !s.isEligible(emp) {
				continue
			}
			record, err := s.computeRecord(ctx, emp, runID, startDate, endDate)
			if err != nil {
				return fmt.Errorf("failed to compute payroll for employee %s: %w", emp.ID, err)
			}
			if err := s.payrollRepo.CreateRecord(ctx, record); err != nil {
				return err
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return &domain.CreatePayRunResponse{ID: runID}, nil
}

func (s *PayrollServiceImpl) computeRecord(ctx context.Context, emp employee.Employee, runID string, startDate, endDate time.Time) (*domain.Record, error) {
	entries, err := s.attendanceRepo.ListVerifiedInRange(ctx, emp.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	leaveReqs, err := s.leaveRepo.ListApprovedPaidOverlapping(ctx, emp.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	otReqs, err := s.overtimeRepo.ListApprovedInRange(ctx, emp.ID, startDate, endDate)
	if err != nil {
		return nil, err
	}
	allowances, err := s.allowanceRepo.ListActiveByUser(ctx, emp.ID)
	if err != nil {
		return nil, err
	}
	plans, err := s.deductionRepo.ListActiveForUser(ctx, emp.ID)
	if err != nil {
		return nil, err
	}

	hourlyRate := HourlyRate(emp.DailyRate)
	attTotals := SummarizeAttendance(entries)
	leaveDays, leaveHours := SummarizePaidLeave(leaveReqs, startDate, endDate)
	basic := BasicSalary(attTotals.WorkedHours, leaveHours, hourlyRate)
	otTotal, otLines := SummarizeOvertime(otReqs, hourlyRate)
	allowTotal, allowLines := SummarizeAllowances(allowances)
	dedTotal, dedLines := SummarizeDeductions(plans, basic)

	netPay := basic.Add(otTotal).Add(allowTotal).Sub(dedTotal)

	return &domain.Record{
		PayRunID:    runID,
		UserID:      emp.ID,
		BasicSalary: basic,
		OvertimePay: otTotal,
		Allowances:  allowTotal,
		Deductions:  dedTotal,
		NetPay:      netPay,
		Status:      "Pending",
		Details: domain.Details{
			SchemaVersion: domain.DetailsSchemaVersion,
			AttendanceSummary: domain.AttendanceSummary{
				DaysPresent:      attTotals.DaysPresent,
				TotalWorkedHours: attTotals.WorkedHours,
				TotalLateHours:   attTotals.LateHours,
				PaidLeaveDays:    leaveDays,
				PaidLeaveHours:   leaveHours,
			},
			OvertimeBreakdown:  otLines,
			AllowanceBreakdown: allowLines,
			DeductionBreakdown: dedLines,
		},
	}, nil
}

func (s *PayrollServiceImpl) ListPayRuns(ctx context.Context) ([]domain.PayRunSummaryResponse, error) {
	summaries, err := s.payrollRepo.ListPayRuns(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.PayRunSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		responses = append(responses, domain.ToPayRunSummaryResponse(summary))
	}
	return responses, nil
}

func (s *PayrollServiceImpl) GetPayRunDetails(ctx context.Context, id string) (*domain.PayRunDetailResponse, error) {
	run, err := s.payrollRepo.GetPayRun(ctx, id)
	if err != nil {
		return nil, err
	}

	var (
		records []domain.Record
		totals  *domain.RunTotals
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		records, err = s.payrollRepo.ListRecordsByRun(gctx, id)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.payrollRepo.RunTotals(gctx, id)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	recordResponses := make([]domain.PayrollRecordResponse, 0, len(records))
	for _, rec := range records {
		recordResponses = append(recordResponses, domain.ToPayrollRecordResponse(rec))
	}

	return &domain.PayRunDetailResponse{
		ID:        run.ID,
		RunName:   run.RunName,
		StartDate: run.StartDate.Format("2006-01-02"),
		EndDate:   run.EndDate.Format("2006-01-02"),
		PayDate:   run.PayDate.Format("2006-01-02"),
		Status:    run.Status,
		Records:   recordResponses,
		Totals: domain.RunTotalsResponse{
			TotalOvertime:   totals.TotalOvertime,
			TotalAllowances: totals.TotalAllowances,
			TotalDeductions: totals.TotalDeductions,
			TotalNetPay:     totals.TotalNetPay,
		},
	}, nil
}

// DeletePayRun removes a Draft run and its records. Completed runs are
// immutable history backed by ledger entries, so deleting them is rejected.
func (s *PayrollServiceImpl) DeletePayRun(ctx context.Context, id string) error {
	run, err := s.payrollRepo.GetPayRun(ctx, id)
	if err != nil {
		return err
	}
	if run.Status == domain.StatusCompleted {
		return domain.ErrCannotDeleteCompleted
	}

	return s.payrollRepo.DeletePayRun(ctx, id)
}

// FinalizePayRun flips a Draft run to Completed and appends one ledger entry
// per deduction line of every record, all in one transaction. The transition
// is guarded, so finalizing twice cannot double-charge loans.
func (s *PayrollServiceImpl) FinalizePayRun(ctx context.Context, id string) error {
	return s.tx.WithinTx(ctx, func(ctx context.Context) error {
		run, err := s.payrollRepo.LockPayRun(ctx, id)
		if err != nil {
			return err
		}
		if run.Status != domain.StatusDraft {
			return domain.ErrPayRunAlreadyCompleted
		}

		records, err := s.payrollRepo.ListRecordsByRun(ctx, id)
		if err != nil {
			return err
		}

		var entries []deduction.LedgerEntry
		for _, rec := range records {
			for _, line := range rec.Details.DeductionBreakdown {
				runID := rec.PayRunID
				entries = append(entries, deduction.LedgerEntry{
					PlanID:     line.PlanID,
					UserID:     rec.UserID,
					PayRunID:   &runID,
					AmountPaid: line.Amount,
				})
			}
		}
		if len(entries) > 0 {
			if err := s.deductionRepo.AppendLedgerEntries(ctx, entries); err != nil {
				return err
			}
		}

		return s.payrollRepo.MarkPayRunCompleted(ctx, id)
	})
}

func (s *PayrollServiceImpl) GetPayslipsByUser(ctx context.Context, userID string) ([]domain.PayslipResponse, error) {
	payslips, err := s.payrollRepo.ListPayslipsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.PayslipResponse, 0, len(payslips))
	for _, p := range payslips {
		responses = append(responses, domain.ToPayslipResponse(p))
	}
	return responses, nil
}
