package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/report"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"golang.org/x/sync/errgroup"
)

type ReportServiceImpl struct {
	reportRepo  report.ReportRepository
	payrollRepo payroll.PayrollRepository
	loc         *time.Location
	now         func() time.Time
}

func NewReportService(reportRepo report.ReportRepository, payrollRepo payroll.PayrollRepository, loc *time.Location) report.ReportService {
	if loc == nil {
		loc = time.Local
	}
	return &ReportServiceImpl{
		reportRepo:  reportRepo,
		payrollRepo: payrollRepo,
		loc:         loc,
		now:         time.Now,
	}
}

// Analytics implements report.ReportService. The four counts are independent
// and run concurrently.
func (s *ReportServiceImpl) Analytics(ctx context.Context) (report.AnalyticsResponse, error) {
	now := s.now().In(s.loc)
	today := attendance.DateOf(now)

	var resp report.AnalyticsResponse
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		n, err := s.reportRepo.CountUsers(gctx)
		resp.TotalEmployees = n
		return err
	})
	g.Go(func() error {
		n, err := s.reportRepo.CountLeavesByStatus(gctx, leave.StatusPending)
		resp.PendingLeaves = n
		return err
	})
	g.Go(func() error {
		n, err := s.reportRepo.CountAttendanceByStatus(gctx, today, attendance.StatusPresent)
		resp.TodayAttendance = n
		return err
	})
	g.Go(func() error {
		total, err := s.reportRepo.SumNetPayroll(gctx, int(now.Month()), now.Year())
		resp.MonthlyPayroll = total
		return err
	})

	if err := g.Wait(); err != nil {
		return report.AnalyticsResponse{}, fmt.Errorf("failed to compute analytics: %w", err)
	}
	return resp, nil
}

// AttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, filter report.AttendanceReportFilter) (report.AttendanceReportResponse, error) {
	if err := filter.Validate(); err != nil {
		return report.AttendanceReportResponse{}, err
	}

	records, err := s.reportRepo.AttendanceInRange(ctx, filter.Start, filter.End, filter.UserID)
	if err != nil {
		return report.AttendanceReportResponse{}, err
	}

	return report.AttendanceReportResponse{
		Records: attendance.ToResponses(records),
		Summary: summarize(records),
	}, nil
}

// summarize folds the rows into one status count per user, ordered by user id.
func summarize(records []attendance.Attendance) []report.AttendanceSummary {
	byUser := make(map[int64]*report.AttendanceSummary)
	for _, r := range records {
		sum, ok := byUser[r.UserID]
		if !ok {
			sum = &report.AttendanceSummary{UserID: r.UserID, Name: displayName(r.FirstName, r.LastName)}
			if r.EmployeeID != nil {
				sum.EmployeeID = *r.EmployeeID
			}
			byUser[r.UserID] = sum
		}
		sum.Count(r.Status)
	}

	summary := make([]report.AttendanceSummary, 0, len(byUser))
	for _, sum := range byUser {
		summary = append(summary, *sum)
	}
	sort.Slice(summary, func(i, j int) bool { return summary[i].UserID < summary[j].UserID })
	return summary
}

func displayName(first, last *string) string {
	var parts []string
	if first != nil && *first != "" {
		parts = append(parts, *first)
	}
	if last != nil && *last != "" {
		parts = append(parts, *last)
	}
	return strings.Join(parts, " ")
}

// AttendanceReportXLSX implements report.ReportService.
func (s *ReportServiceImpl) AttendanceReportXLSX(ctx context.Context, filter report.AttendanceReportFilter, w io.Writer) error {
	data, err := s.AttendanceReport(ctx, filter)
	if err != nil {
		return err
	}
	return writeAttendanceWorkbook(w, data)
}

// SalarySlip implements report.ReportService.
func (s *ReportServiceImpl) SalarySlip(ctx context.Context, actor user.Identity, req report.SalarySlipRequest) (report.SalarySlipResponse, error) {
	if !actor.CanAccess(req.UserID) {
		return report.SalarySlipResponse{}, user.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return report.SalarySlipResponse{}, err
	}

	record, err := s.payrollRepo.GetByPeriod(ctx, req.UserID, req.MonthNum, req.YearNum)
	if err != nil {
		if errors.Is(err, payroll.ErrPayrollNotFound) {
			return report.SalarySlipResponse{}, report.ErrSalarySlipNotFound
		}
		return report.SalarySlipResponse{}, err
	}

	employee, err := s.reportRepo.GetSlipEmployee(ctx, req.UserID)
	if err != nil {
		return report.SalarySlipResponse{}, err
	}

	return report.SalarySlipResponse{
		PayrollResponse: record.ToResponse(),
		Employee:        employee,
	}, nil
}
