package report

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/report"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hris/dayflow-backend-go/internal/mocks"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func strPtr(s string) *string { return &s }

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func newTestService() (*mocks.ReportRepository, *mocks.PayrollRepository, *ReportServiceImpl) {
	reports := new(mocks.ReportRepository)
	payrolls := new(mocks.PayrollRepository)
	svc := NewReportService(reports, payrolls, time.UTC).(*ReportServiceImpl)
	svc.now = func() time.Time { return time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC) }
	return reports, payrolls, svc
}

func TestAnalytics_EmptyDatabase(t *testing.T) {
	reports, _, svc := newTestService()

	reports.On("CountUsers", mock.Anything).Return(int64(0), nil)
	reports.On("CountLeavesByStatus", mock.Anything, leave.StatusPending).Return(int64(0), nil)
	reports.On("CountAttendanceByStatus", mock.Anything, day(2025, 3, 12), attendance.StatusPresent).Return(int64(0), nil)
	reports.On("SumNetPayroll", mock.Anything, 3, 2025).Return(decimal.Zero, nil)

	resp, err := svc.Analytics(context.Background())
	require.NoError(t, err)
	assert.Zero(t, resp.TotalEmployees)
	assert.Zero(t, resp.PendingLeaves)
	assert.Zero(t, resp.TodayAttendance)
	assert.True(t, resp.MonthlyPayroll.IsZero())
	reports.AssertExpectations(t)
}

func TestAnalytics_PropagatesFailure(t *testing.T) {
	reports, _, svc := newTestService()

	reports.On("CountUsers", mock.Anything).Return(int64(4), nil)
	reports.On("CountLeavesByStatus", mock.Anything, mock.Anything).Return(int64(0), errors.New("timeout"))
	reports.On("CountAttendanceByStatus", mock.Anything, mock.Anything, mock.Anything).Return(int64(1), nil)
	reports.On("SumNetPayroll", mock.Anything, mock.Anything, mock.Anything).Return(decimal.NewFromInt(10), nil)

	_, err := svc.Analytics(context.Background())
	assert.ErrorContains(t, err, "timeout")
}

func reportRows() []attendance.Attendance {
	return []attendance.Attendance{
		{UserID: 2, Date: day(2025, 3, 10), Status: attendance.StatusPresent, EmployeeID: strPtr("EMP002"), FirstName: strPtr("Budi"), LastName: strPtr("Santoso"), CheckIn: strPtr("09:00")},
		{UserID: 1, Date: day(2025, 3, 10), Status: attendance.StatusLeave, EmployeeID: strPtr("EMP001"), FirstName: strPtr("Jane")},
		{UserID: 2, Date: day(2025, 3, 11), Status: attendance.StatusHalfDay, EmployeeID: strPtr("EMP002"), FirstName: strPtr("Budi"), LastName: strPtr("Santoso")},
		{UserID: 2, Date: day(2025, 3, 12), Status: attendance.StatusPresent, EmployeeID: strPtr("EMP002"), FirstName: strPtr("Budi"), LastName: strPtr("Santoso")},
	}
}

func TestAttendanceReport_Summary(t *testing.T) {
	ctx := context.Background()
	reports, _, svc := newTestService()

	reports.On("AttendanceInRange", ctx, day(2025, 3, 10), day(2025, 3, 12), (*int64)(nil)).Return(reportRows(), nil)

	resp, err := svc.AttendanceReport(ctx, report.AttendanceReportFilter{StartDate: "2025-03-10", EndDate: "2025-03-12"})
	require.NoError(t, err)
	assert.Len(t, resp.Records, 4)
	require.Len(t, resp.Summary, 2)

	assert.Equal(t, report.AttendanceSummary{UserID: 1, EmployeeID: "EMP001", Name: "Jane", Leave: 1}, resp.Summary[0])
	assert.Equal(t, report.AttendanceSummary{UserID: 2, EmployeeID: "EMP002", Name: "Budi Santoso", Present: 2, HalfDay: 1}, resp.Summary[1])
}

func TestAttendanceReport_RequiresRange(t *testing.T) {
	reports, _, svc := newTestService()

	_, err := svc.AttendanceReport(context.Background(), report.AttendanceReportFilter{StartDate: "2025-03-10"})
	assert.Error(t, err)

	_, err = svc.AttendanceReport(context.Background(), report.AttendanceReportFilter{StartDate: "2025-03-10", EndDate: "2025-03-01"})
	assert.ErrorIs(t, err, attendance.ErrInvalidRange)

	reports.AssertNotCalled(t, "AttendanceInRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestAttendanceReportXLSX(t *testing.T) {
	ctx := context.Background()
	reports, _, svc := newTestService()

	reports.On("AttendanceInRange", ctx, mock.Anything, mock.Anything, mock.Anything).Return(reportRows(), nil)

	buf := new(bytes.Buffer)
	require.NoError(t, svc.AttendanceReportXLSX(ctx, report.AttendanceReportFilter{StartDate: "2025-03-10", EndDate: "2025-03-12"}, buf))

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Records", "Summary"}, f.GetSheetList())

	records, err := f.GetRows("Records")
	require.NoError(t, err)
	require.Len(t, records, 5)
	assert.Equal(t, "Employee ID", records[0][1])
	assert.Equal(t, "2025-03-10", records[1][0])
	assert.Equal(t, "EMP002", records[1][1])
	assert.Equal(t, "09:00", records[1][4])
	assert.Equal(t, "present", records[1][6])

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, summary, 3)
	assert.Equal(t, []string{"EMP002", "Budi Santoso", "2", "0", "1", "0"}, summary[2])
}

func TestSalarySlip(t *testing.T) {
	ctx := context.Background()
	owner := user.Identity{UserID: 7, Role: user.RoleEmployee}
	hr := user.Identity{UserID: 1, Role: user.RoleHR}

	t.Run("owner sees own slip", func(t *testing.T) {
		reports, payrolls, svc := newTestService()
		payrolls.On("GetByPeriod", ctx, int64(7), 3, 2025).Return(payroll.Payroll{ID: 2, UserID: 7, NetSalary: decimal.NewFromInt(5300)}, nil)
		reports.On("GetSlipEmployee", ctx, int64(7)).Return(report.SlipEmployee{EmployeeID: "EMP007", Department: strPtr("Finance")}, nil)

		resp, err := svc.SalarySlip(ctx, owner, report.SalarySlipRequest{UserID: 7, Month: "3", Year: "2025"})
		require.NoError(t, err)
		assert.Equal(t, "EMP007", resp.Employee.EmployeeID)
		assert.True(t, resp.NetSalary.Equal(decimal.NewFromInt(5300)))
	})

	t.Run("other employee is denied", func(t *testing.T) {
		_, payrolls, svc := newTestService()

		_, err := svc.SalarySlip(ctx, owner, report.SalarySlipRequest{UserID: 8, Month: "3", Year: "2025"})
		assert.ErrorIs(t, err, user.ErrAccessDenied)
		payrolls.AssertNotCalled(t, "GetByPeriod", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing period", func(t *testing.T) {
		_, payrolls, svc := newTestService()
		payrolls.On("GetByPeriod", ctx, int64(8), 4, 2025).Return(payroll.Payroll{}, payroll.ErrPayrollNotFound)

		_, err := svc.SalarySlip(ctx, hr, report.SalarySlipRequest{UserID: 8, Month: "4", Year: "2025"})
		assert.ErrorIs(t, err, report.ErrSalarySlipNotFound)
	})

	t.Run("month and year required", func(t *testing.T) {
		_, _, svc := newTestService()

		_, err := svc.SalarySlip(ctx, hr, report.SalarySlipRequest{UserID: 8})
		assert.Error(t, err)
	})
}
