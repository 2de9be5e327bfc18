package report

import (
	"fmt"
	"io"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/report"
	"github.com/xuri/excelize/v2"
)

const (
	recordsSheet = "Records"
	summarySheet = "Summary"
)

var (
	recordsHeader = []interface{}{"Date", "Employee ID", "First Name", "Last Name", "Check In", "Check Out", "Status", "Notes"}
	summaryHeader = []interface{}{"Employee ID", "Name", "Present", "Absent", "Half-day", "Leave"}
)

func str(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// writeAttendanceWorkbook renders the report as an .xlsx file with one
// sheet of raw rows and one of per-employee totals.
func writeAttendanceWorkbook(w io.Writer, data report.AttendanceReportResponse) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", recordsSheet); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(summarySheet); err != nil {
		return fmt.Errorf("create summary sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}

	if err := writeRow(f, recordsSheet, 1, recordsHeader); err != nil {
		return err
	}
	for i, r := range data.Records {
		row := []interface{}{r.Date, str(r.EmployeeID), str(r.FirstName), str(r.LastName), str(r.CheckIn), str(r.CheckOut), string(r.Status), str(r.Notes)}
		if err := writeRow(f, recordsSheet, i+2, row); err != nil {
			return err
		}
	}

	if err := writeRow(f, summarySheet, 1, summaryHeader); err != nil {
		return err
	}
	for i, s := range data.Summary {
		row := []interface{}{s.EmployeeID, s.Name, s.Present, s.Absent, s.HalfDay, s.Leave}
		if err := writeRow(f, summarySheet, i+2, row); err != nil {
			return err
		}
	}

	for _, sheet := range []string{recordsSheet, summarySheet} {
		if err := f.SetRowStyle(sheet, 1, 1, bold); err != nil {
			return fmt.Errorf("style %s header: %w", sheet, err)
		}
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("write workbook: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(sheet, cell, &values); err != nil {
		return fmt.Errorf("write %s row %d: %w", sheet, row, err)
	}
	return nil
}
