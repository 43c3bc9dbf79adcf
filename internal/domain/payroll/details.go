package payroll

import "github.com/shopspring/decimal"

// DetailsSchemaVersion marks the current shape of the details payload.
// Version 1 predates the allowance breakdown.
const DetailsSchemaVersion = 2

// Details is the per-record computation breakdown stored as jsonb alongside
// the money columns. It must round-trip verbatim so finalization can replay
// the deduction lines that were computed at draft time.
type Details struct {
	SchemaVersion      int               `json:"schema_version"`
	AttendanceSummary  AttendanceSummary `json:"attendance_summary"`
	OvertimeBreakdown  []OvertimeLine    `json:"overtime_breakdown"`
	AllowanceBreakdown []AllowanceLine   `json:"allowance_breakdown"`
	DeductionBreakdown []DeductionLine   `json:"deduction_breakdown"`
}

type AttendanceSummary struct {
	DaysPresent      int             `json:"days_present"`
	TotalWorkedHours decimal.Decimal `json:"total_worked_hours"`
	TotalLateHours   decimal.Decimal `json:"total_late_hours"`
	PaidLeaveDays    int             `json:"paid_leave_days"`
	PaidLeaveHours   decimal.Decimal `json:"paid_leave_hours"`
}

type OvertimeLine struct {
	Date   string          `json:"date"`
	Type   string          `json:"type"`
	Hours  decimal.Decimal `json:"hours"`
	Amount decimal.Decimal `json:"amount"`
}

type AllowanceLine struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

type DeductionLine struct {
	PlanID   string          `json:"plan_id"`
	Name     string          `json:"name"`
	Amount   decimal.Decimal `json:"amount"`
	IsGlobal bool            `json:"is_global"`
}
