package report

import (
	"bytes"
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/kentzie123/LJA-System-Server/internal/domain/payroll"
)

// Service renders pay runs as downloadable XLSX workbooks.
type Service interface {
	// ExportPayRun returns the workbook bytes and a suggested filename.
	ExportPayRun(ctx context.Context, payRunID string) (*bytes.Buffer, string, error)
}

type reportService struct {
	payrollService payroll.Service
}

func NewReportService(payrollService payroll.Service) Service {
	return &reportService{payrollService: payrollService}
}

var exportColumns = []string{
	"Employee", "Position", "Basic Salary", "Overtime Pay",
	"Allowances", "Deductions", "Net Pay", "Status",
}

func (s *reportService) ExportPayRun(ctx context.Context, payRunID string) (*bytes.Buffer, string, error) {
	run, err := s.payrollService.GetPayRunDetails(ctx, payRunID)
	if err != nil {
		return nil, "", err
	}

	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Payroll"
	f.SetSheetName("Sheet1", sheet)

	title := run.RunName
	if title == "" {
		title = "Pay Run"
	}
	f.SetCellValue(sheet, "A1", fmt.Sprintf("%s (%s to %s)", title, run.StartDate, run.EndDate))
	f.SetCellValue(sheet, "A2", "Pay date: "+run.PayDate)
	f.SetCellValue(sheet, "A3", "Status: "+run.Status)

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Bold: true},
		Alignment: &excelize.Alignment{Horizontal: "center"},
	})

	const headerRow = 5
	for i, col := range exportColumns {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		f.SetCellValue(sheet, cell, col)
		f.SetCellStyle(sheet, cell, cell, headerStyle)
	}

	row := headerRow + 1
	for _, rec := range run.Records {
		values := []interface{}{
			rec.Fullname,
			rec.Position,
			rec.BasicSalary.InexactFloat64(),
			rec.OvertimePay.InexactFloat64(),
			rec.Allowances.InexactFloat64(),
			rec.Deductions.InexactFloat64(),
			rec.NetPay.InexactFloat64(),
			rec.Status,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			f.SetCellValue(sheet, cell, v)
		}
		row++
	}

	// Totals row under the records.
	totalsCell, _ := excelize.CoordinatesToCellName(1, row)
	f.SetCellValue(sheet, totalsCell, "Totals")
	f.SetCellStyle(sheet, totalsCell, totalsCell, headerStyle)
	totals := []struct {
		col int
		v   float64
	}{
		{4, run.Totals.TotalOvertime.InexactFloat64()},
		{5, run.Totals.TotalAllowances.InexactFloat64()},
		{6, run.Totals.TotalDeductions.InexactFloat64()},
		{7, run.Totals.TotalNetPay.InexactFloat64()},
	}
	for _, t := range totals {
		cell, _ := excelize.CoordinatesToCellName(t.col, row)
		f.SetCellValue(sheet, cell, t.v)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate workbook: %w", err)
	}

	filename := fmt.Sprintf("payrun_%s_%s.xlsx", run.StartDate, run.EndDate)
	return buf, filename, nil
}
