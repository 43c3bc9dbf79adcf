package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/kentzie123/LJA-System-Server/internal/domain/payroll"
	"github.com/kentzie123/LJA-System-Server/internal/pkg/database"
)

// payRunCreationLockKey is the advisory lock key every pay-run creation takes.
// Transaction-scoped, so it is released at commit or rollback.
const payRunCreationLockKey = 7821340001

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.Repository {
	return &payrollRepository{db: db}
}

func (r *payrollRepository) AcquireRunCreationLock(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, "SELECT pg_advisory_xact_lock($1)", payRunCreationLockKey); err != nil {
		return fmt.Errorf("failed to acquire pay run creation lock: %w", err)
	}
	return nil
}

func (r *payrollRepository) CreatePayRun(ctx context.Context, run *payroll.PayRun) (string, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO pay_runs (run_name, start_date, end_date, pay_date, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		run.RunNameOrNil(), run.StartDate, run.EndDate, run.PayDate, run.Status,
	).Scan(&id)
	if err != nil {
		return "", fmt.Errorf("failed to create pay run: %w", err)
	}

	return id, nil
}

func (r *payrollRepository) GetPayRun(ctx context.Context, id string) (*payroll.PayRun, error) {
	return r.getPayRun(ctx, id, false)
}

func (r *payrollRepository) LockPayRun(ctx context.Context, id string) (*payroll.PayRun, error) {
	return r.getPayRun(ctx, id, true)
}

func (r *payrollRepository) getPayRun(ctx context.Context, id string, forUpdate bool) (*payroll.PayRun, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, COALESCE(run_name, ''), start_date, end_date, pay_date, status, created_at
		FROM pay_runs
		WHERE id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var run payroll.PayRun
	err := q.QueryRow(ctx, query, id).Scan(
		&run.ID, &run.RunName, &run.StartDate, &run.EndDate,
		&run.PayDate, &run.Status, &run.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, payroll.ErrPayRunNotFound
		}
		return nil, fmt.Errorf("failed to get pay run: %w", err)
	}

	return &run, nil
}

func (r *payrollRepository) ListPayRuns(ctx context.Context) ([]payroll.PayRunSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT pr.id, COALESCE(pr.run_name, ''), pr.start_date, pr.end_date,
			   pr.pay_date, pr.status, pr.created_at,
			   (SELECT COUNT(*) FROM payroll_records rec WHERE rec.pay_run_id = pr.id) AS employee_count,
			   (SELECT COALESCE(SUM(rec.net_pay), 0) FROM payroll_records rec WHERE rec.pay_run_id = pr.id) AS total_cost
		FROM pay_runs pr
		ORDER BY pr.pay_date DESC, pr.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list pay runs: %w", err)
	}
	defer rows.Close()

	var summaries []payroll.PayRunSummary
	for rows.Next() {
		var s payroll.PayRunSummary
		err := rows.Scan(
			&s.ID, &s.RunName, &s.StartDate, &s.EndDate,
			&s.PayDate, &s.Status, &s.CreatedAt,
			&s.EmployeeCount, &s.TotalCost,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan pay run: %w", err)
		}
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func (r *payrollRepository) DeletePayRun(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	result, err := q.Exec(ctx, "DELETE FROM pay_runs WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete pay run: %w", err)
	}
	if result.RowsAffected() == 0 {
		return payroll.ErrPayRunNotFound
	}

	return nil
}

func (r *payrollRepository) MarkPayRunCompleted(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	// Guarded transition: only a Draft run can complete.
	query := `
		UPDATE pay_runs
		SET status = $1
		WHERE id = $2 AND status = $3
		RETURNING id
	`

	var updated string
	err := q.QueryRow(ctx, query, payroll.StatusCompleted, id, payroll.StatusDraft).Scan(&updated)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return payroll.ErrPayRunAlreadyCompleted
		}
		return fmt.Errorf("failed to complete pay run: %w", err)
	}

	return nil
}

func (r *payrollRepository) CreateRecord(ctx context.Context, record *payroll.Record) error {
	q := GetQuerier(ctx, r.db)

	details, err := json.Marshal(record.Details)
	if err != nil {
		return fmt.Errorf("failed to marshal record details: %w", err)
	}

	query := `
		INSERT INTO payroll_records (
			pay_run_id, user_id, basic_salary, overtime_pay,
			allowances, deductions, net_pay, details, status
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`

	err = q.QueryRow(ctx, query,
		record.PayRunID, record.UserID, record.BasicSalary, record.OvertimePay,
		record.Allowances, record.Deductions, record.NetPay, details, record.Status,
	).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create payroll record: %w", err)
	}

	return nil
}

func (r *payrollRepository) ListRecordsByRun(ctx context.Context, runID string) ([]payroll.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rec.id, rec.pay_run_id, rec.user_id, u.fullname, COALESCE(u.position, ''),
			   rec.basic_salary, rec.overtime_pay, rec.allowances, rec.deductions,
			   rec.net_pay, rec.details, rec.status, rec.created_at
		FROM payroll_records rec
		JOIN users u ON u.id = rec.user_id
		WHERE rec.pay_run_id = $1
		ORDER BY u.fullname
	`

	rows, err := q.Query(ctx, query, runID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payroll records: %w", err)
	}
	defer rows.Close()

	var records []payroll.Record
	for rows.Next() {
		var rec payroll.Record
		var details []byte
		err := rows.Scan(
			&rec.ID, &rec.PayRunID, &rec.UserID, &rec.Fullname, &rec.Position,
			&rec.BasicSalary, &rec.OvertimePay, &rec.Allowances, &rec.Deductions,
			&rec.NetPay, &details, &rec.Status, &rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll record: %w", err)
		}
		if err := json.Unmarshal(details, &rec.Details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal record details: %w", err)
		}
		records = append(records, rec)
	}

	return records, rows.Err()
}

func (r *payrollRepository) RunTotals(ctx context.Context, runID string) (*payroll.RunTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(overtime_pay), 0), COALESCE(SUM(allowances), 0),
			   COALESCE(SUM(deductions), 0), COALESCE(SUM(net_pay), 0)
		FROM payroll_records
		WHERE pay_run_id = $1
	`

	totals := payroll.RunTotals{
		TotalOvertime:   decimal.Zero,
		TotalAllowances: decimal.Zero,
		TotalDeductions: decimal.Zero,
		TotalNetPay:     decimal.Zero,
	}
	err := q.QueryRow(ctx, query, runID).Scan(
		&totals.TotalOvertime, &totals.TotalAllowances,
		&totals.TotalDeductions, &totals.TotalNetPay,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate pay run totals: %w", err)
	}

	return &totals, nil
}

func (r *payrollRepository) ListPayslipsByUser(ctx context.Context, userID string) ([]payroll.Payslip, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT rec.id, rec.pay_run_id, rec.user_id,
			   rec.basic_salary, rec.overtime_pay, rec.allowances, rec.deductions,
			   rec.net_pay, rec.details, rec.status, rec.created_at,
			   COALESCE(pr.run_name, ''), pr.start_date, pr.end_date, pr.pay_date
		FROM payroll_records rec
		JOIN pay_runs pr ON pr.id = rec.pay_run_id
		WHERE rec.user_id = $1
		ORDER BY pr.pay_date DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list payslips: %w", err)
	}
	defer rows.Close()

	var payslips []payroll.Payslip
	for rows.Next() {
		var p payroll.Payslip
		var details []byte
		err := rows.Scan(
			&p.Record.ID, &p.Record.PayRunID, &p.Record.UserID,
			&p.BasicSalary, &p.OvertimePay, &p.Allowances, &p.Deductions,
			&p.NetPay, &details, &p.Record.Status, &p.Record.CreatedAt,
			&p.RunName, &p.StartDate, &p.EndDate, &p.PayDate,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payslip: %w", err)
		}
		if err := json.Unmarshal(details, &p.Record.Details); err != nil {
			return nil, fmt.Errorf("failed to unmarshal payslip details: %w", err)
		}
		payslips = append(payslips, p)
	}

	return payslips, rows.Err()
}
