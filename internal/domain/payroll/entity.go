package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	StatusDraft     = "Draft"
	StatusCompleted = "Completed"
)

type PayRun struct {
	ID        string
	RunName   string
	StartDate time.Time
	EndDate   time.Time
	PayDate   time.Time
	Status    string
	CreatedAt time.Time
}

// RunNameOrNil returns the run name as a nullable column value. Runs are
// frequently created without a name; those store NULL, not an empty string.
func (r *PayRun) RunNameOrNil() *string {
	if r.RunName == "" {
		return nil
	}
	return &r.RunName
}

// PayRunSummary is a pay run with its listing aggregates.
type PayRunSummary struct {
	PayRun
	EmployeeCount int
	TotalCost     decimal.Decimal
}

// Record is one employee's computed pay line inside a pay run.
type Record struct {
	ID          string
	PayRunID    string
	UserID      string
	Fullname    string
	Position    string
	BasicSalary decimal.Decimal
	OvertimePay decimal.Decimal
	Allowances  decimal.Decimal
	Deductions  decimal.Decimal
	NetPay      decimal.Decimal
	Details     Details
	Status      string
	CreatedAt   time.Time
}

// RunTotals aggregates record columns for the pay run detail view.
type RunTotals struct {
	TotalOvertime   decimal.Decimal
	TotalAllowances decimal.Decimal
	TotalDeductions decimal.Decimal
	TotalNetPay     decimal.Decimal
}

// Payslip is a record joined with its run's period and pay date, as shown in
// an employee's payslip history.
type Payslip struct {
	Record
	RunName   string
	StartDate time.Time
	EndDate   time.Time
	PayDate   time.Time
}
