package payroll

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/kentzie123/LJA-System-Server/internal/domain/allowance"
	"github.com/kentzie123/LJA-System-Server/internal/domain/attendance"
	"github.com/kentzie123/LJA-System-Server/internal/domain/deduction"
	domain "github.com/kentzie123/LJA-System-Server/internal/domain/payroll"
	"github.com/kentzie123/LJA-System-Server/internal/domain/leave"
	"github.com/kentzie123/LJA-System-Server/internal/domain/overtime"
)

// workDayHours is the standard work day used to derive hourly rates and to
// convert paid leave days into payable hours.
var workDayHours = decimal.NewFromInt(8)

var percentBase = decimal.NewFromInt(100)

// Work starts at 08:00. Lateness is only charged once clock-in reaches 08:16,
// but it is measured from 08:00.
const (
	workStartHour      = 8
	graceCutoffMinutes = 16
)

// HourlyRate derives the hourly rate from a daily rate over an 8 hour work
// day. Employees without a usable daily rate get a zero rate rather than an
// error so one misconfigured account cannot sink a whole pay run.
func HourlyRate(dailyRate *decimal.Decimal) decimal.Decimal {
	if dailyRate == nil || !dailyRate.IsPositive() {
		return decimal.Zero
	}
	return dailyRate.Div(workDayHours)
}

// AttendanceTotals summarizes an employee's verified attendance for a period.
type AttendanceTotals struct {
	DaysPresent int
	WorkedHours decimal.Decimal
	LateHours   decimal.Decimal
}

// SummarizeAttendance counts days and sums worked hours over entries where
// both clock legs are verified. The repository already filters on status; the
// check here keeps the function safe on unfiltered input. Lateness per entry
// is rounded to 2dp before summing.
func SummarizeAttendance(entries []attendance.Entry) AttendanceTotals {
	totals := AttendanceTotals{
		WorkedHours: decimal.Zero,
		LateHours:   decimal.Zero,
	}
	for _, e := range entries {
		if !e.IsVerified() {
			continue
		}
		totals.DaysPresent++
		totals.WorkedHours = totals.WorkedHours.Add(e.WorkedHours)
		totals.LateHours = totals.LateHours.Add(latenessHours(e))
	}
	return totals
}

func latenessHours(e attendance.Entry) decimal.Decimal {
	if e.TimeIn == nil {
		return decimal.Zero
	}
	in := *e.TimeIn
	workStart := time.Date(e.Date.Year(), e.Date.Month(), e.Date.Day(), workStartHour, 0, 0, 0, in.Location())
	cutoff := workStart.Add(graceCutoffMinutes * time.Minute)
	if in.Before(cutoff) {
		return decimal.Zero
	}
	late := decimal.NewFromFloat(in.Sub(workStart).Minutes()).Div(decimal.NewFromInt(60))
	return late.Round(2)
}

// SummarizePaidLeave returns the paid leave days and hours that fall inside
// [rangeStart, rangeEnd]. Requests may start before or end after the period;
// only the inclusive overlap counts. Hours are days times the work day.
func SummarizePaidLeave(requests []leave.Request, rangeStart, rangeEnd time.Time) (int, decimal.Decimal) {
	days := 0
	for _, req := range requests {
		start := req.StartDate
		if start.Before(rangeStart) {
			start = rangeStart
		}
		end := req.EndDate
		if end.After(rangeEnd) {
			end = rangeEnd
		}
		if end.Before(start) {
			continue
		}
		days += int(end.Sub(start).Hours()/24) + 1
	}
	return days, decimal.NewFromInt(int64(days)).Mul(workDayHours)
}

// SummarizeOvertime prices approved overtime at hourly rate times the type
// multiplier. Each line is rounded to 2dp; the total is the sum of rounded
// lines so it always matches the breakdown.
func SummarizeOvertime(requests []overtime.Request, hourlyRate decimal.Decimal) (decimal.Decimal, []domain.OvertimeLine) {
	total := decimal.Zero
	var lines []domain.OvertimeLine
	for _, req := range requests {
		amount := hourlyRate.Mul(req.Multiplier).Mul(req.Hours).Round(2)
		lines = append(lines, domain.OvertimeLine{
			Date:   req.Date.Format("2006-01-02"),
			Type:   req.TypeName,
			Hours:  req.Hours,
			Amount: amount,
		})
		total = total.Add(amount)
	}
	return total, lines
}

// SummarizeAllowances turns the applicable subscriptions into payable lines.
// A custom amount overrides the type amount; non-positive amounts are skipped.
func SummarizeAllowances(subs []allowance.Subscription) (decimal.Decimal, []domain.AllowanceLine) {
	total := decimal.Zero
	var lines []domain.AllowanceLine
	for _, s := range subs {
		if !s.Applies() {
			continue
		}
		amount := s.EffectiveAmount().Round(2)
		if !amount.IsPositive() {
			continue
		}
		lines = append(lines, domain.AllowanceLine{
			ID:     s.TypeID,
			Name:   s.Name,
			Amount: amount,
		})
		total = total.Add(amount)
	}
	return total, lines
}

// SummarizeDeductions prices each applicable plan against the basic salary.
// FIXED plans charge their amount; PERCENTAGE plans charge basic times
// amount/100. Capped loans are clamped to the remaining balance and drop to
// zero once exhausted. This is a preview: no balance moves until the run is
// finalized.
func SummarizeDeductions(plans []deduction.ApplicablePlan, basicSalary decimal.Decimal) (decimal.Decimal, []domain.DeductionLine) {
	total := decimal.Zero
	var lines []domain.DeductionLine
	for _, p := range plans {
		if !p.Applies() {
			continue
		}
		var amount decimal.Decimal
		switch p.DeductionType {
		case deduction.TypePercentage:
			amount = basicSalary.Mul(p.Amount).Div(percentBase)
		default:
			amount = p.Amount
		}

		if remaining := p.RemainingBalance(); remaining != nil && amount.GreaterThan(*remaining) {
			amount = *remaining
		}

		amount = amount.Round(2)
		if !amount.IsPositive() {
			continue
		}

		lines = append(lines, domain.DeductionLine{
			PlanID:   p.PlanID,
			Name:     p.Name,
			Amount:   amount,
			IsGlobal: p.IsGlobal,
		})
		total = total.Add(amount)
	}
	return total, lines
}

// BasicSalary pays worked hours plus paid leave hours at the hourly rate.
func BasicSalary(workedHours, paidLeaveHours, hourlyRate decimal.Decimal) decimal.Decimal {
	return workedHours.Add(paidLeaveHours).Mul(hourlyRate).Round(2)
}
