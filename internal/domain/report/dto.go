package report

import (
	"strconv"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

// ========================================
// ANALYTICS
// ========================================

type AnalyticsResponse struct {
	TotalEmployees  int64           `json:"totalEmployees"`
	PendingLeaves   int64           `json:"pendingLeaves"`
	TodayAttendance int64           `json:"todayAttendance"`
	MonthlyPayroll  decimal.Decimal `json:"monthlyPayroll"`
}

// ========================================
// ATTENDANCE REPORT
// ========================================

type AttendanceReportFilter struct {
	StartDate string
	EndDate   string
	UserID    *int64

	// Parsed by Validate
	Start time.Time
	End   time.Time
}

func (f *AttendanceReportFilter) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(f.StartDate) || validator.IsEmpty(f.EndDate) {
		errs = append(errs, validator.ValidationError{
			Field:   "startDate",
			Message: "Start date and end date are required",
		})
		return errs
	}

	start, ok := validator.IsValidDate(f.StartDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"})
	}
	end, ok := validator.IsValidDate(f.EndDate)
	if !ok {
		errs = append(errs, validator.ValidationError{Field: "endDate", Message: "endDate must be in YYYY-MM-DD format"})
	}
	if len(errs) > 0 {
		return errs
	}
	if start.After(end) {
		return attendance.ErrInvalidRange
	}

	f.Start, f.End = start, end
	return nil
}

// AttendanceSummary counts a user's rows per status over the report window.
type AttendanceSummary struct {
	UserID     int64  `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	Name       string `json:"name"`
	Present    int    `json:"present"`
	Absent     int    `json:"absent"`
	HalfDay    int    `json:"half-day"`
	Leave      int    `json:"leave"`
}

func (s *AttendanceSummary) Count(status attendance.Status) {
	switch status {
	case attendance.StatusPresent:
		s.Present++
	case attendance.StatusAbsent:
		s.Absent++
	case attendance.StatusHalfDay:
		s.HalfDay++
	case attendance.StatusLeave:
		s.Leave++
	}
}

type AttendanceReportResponse struct {
	Records []attendance.AttendanceResponse `json:"records"`
	Summary []AttendanceSummary             `json:"summary"`
}

// ========================================
// SALARY SLIP
// ========================================

type SalarySlipRequest struct {
	UserID int64
	Month  string
	Year   string

	// Parsed by Validate
	MonthNum int
	YearNum  int
}

func (r *SalarySlipRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Month) || validator.IsEmpty(r.Year) {
		errs.Add("month", "Month and year are required")
		return errs
	}

	if !validator.IsNumeric(r.Month) {
		errs.Add("month", "month must be a number")
	}
	if !validator.IsNumeric(r.Year) {
		errs.Add("year", "year must be a number")
	}
	if len(errs) > 0 {
		return errs
	}

	month, _ := strconv.Atoi(r.Month)
	year, _ := strconv.Atoi(r.Year)
	if month < 1 || month > 12 {
		errs.Add("month", "month must be between 1 and 12")
	}
	if year < 1900 || year > 9999 {
		errs.Add("year", "year is invalid")
	}
	if len(errs) > 0 {
		return errs
	}

	r.MonthNum, r.YearNum = month, year
	return nil
}

// SlipEmployee carries the identity fields printed on a salary slip.
type SlipEmployee struct {
	EmployeeID string  `json:"employee_id"`
	FirstName  *string `json:"first_name"`
	LastName   *string `json:"last_name"`
	JobTitle   *string `json:"job_title"`
	Department *string `json:"department"`
}

type SalarySlipResponse struct {
	payroll.PayrollResponse
	Employee SlipEmployee `json:"employee"`
}
