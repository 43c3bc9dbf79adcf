package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kentzie123/LJA-System-Server/internal/pkg/validator"
)

// ========== PAY RUN DTOs ==========

type CreatePayRunRequest struct {
	RunName   string `json:"run_name,omitempty"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	PayDate   string `json:"pay_date"`
}

func (r *CreatePayRunRequest) Validate() error {
	var errs validator.ValidationErrors

	var start, end time.Time
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "is required"})
	} else if parsed, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be a valid date (YYYY-MM-DD)"})
	} else {
		start = parsed
	}

	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "is required"})
	} else if parsed, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be a valid date (YYYY-MM-DD)"})
	} else {
		end = parsed
	}

	if validator.IsEmpty(r.PayDate) {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "is required"})
	} else if _, ok := validator.IsValidDate(r.PayDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "pay_date", Message: "must be a valid date (YYYY-MM-DD)"})
	}

	if !start.IsZero() && !end.IsZero() && end.Before(start) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must not be before start_date"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CreatePayRunResponse struct {
	ID string `json:"id"`
}

type PayRunSummaryResponse struct {
	ID            string          `json:"id"`
	RunName       string          `json:"run_name"`
	StartDate     string          `json:"start_date"`
	EndDate       string          `json:"end_date"`
	PayDate       string          `json:"pay_date"`
	Status        string          `json:"status"`
	EmployeeCount int             `json:"employee_count"`
	TotalCost     decimal.Decimal `json:"total_cost"`
}

type PayRunDetailResponse struct {
	ID        string                  `json:"id"`
	RunName   string                  `json:"run_name"`
	StartDate string                  `json:"start_date"`
	EndDate   string                  `json:"end_date"`
	PayDate   string                  `json:"pay_date"`
	Status    string                  `json:"status"`
	Records   []PayrollRecordResponse `json:"records"`
	Totals    RunTotalsResponse       `json:"totals"`
}

type RunTotalsResponse struct {
	TotalOvertime   decimal.Decimal `json:"total_overtime"`
	TotalAllowances decimal.Decimal `json:"total_allowances"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalNetPay     decimal.Decimal `json:"total_net_pay"`
}

type PayrollRecordResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Fullname    string          `json:"fullname"`
	Position    string          `json:"position,omitempty"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	OvertimePay decimal.Decimal `json:"overtime_pay"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetPay      decimal.Decimal `json:"net_pay"`
	Details     Details         `json:"details"`
	Status      string          `json:"status"`
}

type PayslipResponse struct {
	ID          string          `json:"id"`
	PayRunID    string          `json:"pay_run_id"`
	RunName     string          `json:"run_name"`
	StartDate   string          `json:"start_date"`
	EndDate     string          `json:"end_date"`
	PayDate     string          `json:"pay_date"`
	BasicSalary decimal.Decimal `json:"basic_salary"`
	OvertimePay decimal.Decimal `json:"overtime_pay"`
	Allowances  decimal.Decimal `json:"allowances"`
	Deductions  decimal.Decimal `json:"deductions"`
	NetPay      decimal.Decimal `json:"net_pay"`
	Details     Details         `json:"details"`
}

const dateLayout = "2006-01-02"

func ToPayRunSummaryResponse(s PayRunSummary) PayRunSummaryResponse {
	return PayRunSummaryResponse{
		ID:            s.ID,
		RunName:       s.RunName,
		StartDate:     s.StartDate.Format(dateLayout),
		EndDate:       s.EndDate.Format(dateLayout),
		PayDate:       s.PayDate.Format(dateLayout),
		Status:        s.Status,
		EmployeeCount: s.EmployeeCount,
		TotalCost:     s.TotalCost,
	}
}

func ToPayrollRecordResponse(r Record) PayrollRecordResponse {
	return PayrollRecordResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		Fullname:    r.Fullname,
		Position:    r.Position,
		BasicSalary: r.BasicSalary,
		OvertimePay: r.OvertimePay,
		Allowances:  r.Allowances,
		Deductions:  r.Deductions,
		NetPay:      r.NetPay,
		Details:     r.Details,
		Status:      r.Status,
	}
}

func ToPayslipResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:          p.Record.ID,
		PayRunID:    p.Record.PayRunID,
		RunName:     p.RunName,
		StartDate:   p.StartDate.Format(dateLayout),
		EndDate:     p.EndDate.Format(dateLayout),
		PayDate:     p.PayDate.Format(dateLayout),
		BasicSalary: p.BasicSalary,
		OvertimePay: p.OvertimePay,
		Allowances:  p.Allowances,
		Deductions:  p.Deductions,
		NetPay:      p.NetPay,
		Details:     p.Record.Details,
	}
}
