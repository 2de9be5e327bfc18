package mocks

import (
	"context"
	"io"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/report"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/stretchr/testify/mock"
)

type AuthService struct {
	mock.Mock
}

func (m *AuthService) Signup(ctx context.Context, req auth.SignupRequest) (auth.SignupResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(auth.SignupResponse), args.Error(1)
}

func (m *AuthService) Signin(ctx context.Context, req auth.SigninRequest) (auth.SigninResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(auth.SigninResponse), args.Error(1)
}

func (m *AuthService) Me(ctx context.Context, userID int64) (auth.MeResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(auth.MeResponse), args.Error(1)
}

func (m *AuthService) Signout(ctx context.Context, token string, expiresAt time.Time) error {
	return m.Called(ctx, token, expiresAt).Error(0)
}

type EmployeeService struct {
	mock.Mock
}

func (m *EmployeeService) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).([]employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) Get(ctx context.Context, actor user.Identity, userID int64) (employee.EmployeeResponse, error) {
	args := m.Called(ctx, actor, userID)
	return args.Get(0).(employee.EmployeeResponse), args.Error(1)
}

func (m *EmployeeService) Update(ctx context.Context, actor user.Identity, userID int64, req employee.UpdateProfileRequest) error {
	return m.Called(ctx, actor, userID, req).Error(0)
}

func (m *EmployeeService) Delete(ctx context.Context, userID int64) error {
	return m.Called(ctx, userID).Error(0)
}

func (m *EmployeeService) UploadAvatar(ctx context.Context, actor user.Identity, userID int64, req employee.UploadAvatarRequest) (employee.AvatarResponse, error) {
	args := m.Called(ctx, actor, userID, req)
	return args.Get(0).(employee.AvatarResponse), args.Error(1)
}

type AttendanceService struct {
	mock.Mock
}

func (m *AttendanceService) CheckIn(ctx context.Context, userID int64) (attendance.CheckInResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(attendance.CheckInResponse), args.Error(1)
}

func (m *AttendanceService) CheckOut(ctx context.Context, userID int64) (attendance.CheckOutResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(attendance.CheckOutResponse), args.Error(1)
}

func (m *AttendanceService) Today(ctx context.Context, userID int64) (attendance.AttendanceResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(attendance.AttendanceResponse), args.Error(1)
}

func (m *AttendanceService) Weekly(ctx context.Context, userID int64, startDate string) ([]attendance.AttendanceResponse, error) {
	args := m.Called(ctx, userID, startDate)
	return args.Get(0).([]attendance.AttendanceResponse), args.Error(1)
}

func (m *AttendanceService) RangeForUser(ctx context.Context, userID int64, startDate, endDate string) ([]attendance.AttendanceResponse, error) {
	args := m.Called(ctx, userID, startDate, endDate)
	return args.Get(0).([]attendance.AttendanceResponse), args.Error(1)
}

func (m *AttendanceService) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]attendance.AttendanceResponse), args.Error(1)
}

func (m *AttendanceService) AdminUpdate(ctx context.Context, id int64, req attendance.AdminUpdateRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

type LeaveService struct {
	mock.Mock
}

func (m *LeaveService) Submit(ctx context.Context, userID int64, req leave.SubmitRequest) (leave.SubmitResponse, error) {
	args := m.Called(ctx, userID, req)
	return args.Get(0).(leave.SubmitResponse), args.Error(1)
}

func (m *LeaveService) ListMine(ctx context.Context, userID int64) ([]leave.LeaveResponse, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]leave.LeaveResponse), args.Error(1)
}

func (m *LeaveService) ListAll(ctx context.Context, status string) ([]leave.LeaveResponse, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]leave.LeaveResponse), args.Error(1)
}

func (m *LeaveService) Decide(ctx context.Context, id int64, deciderID int64, req leave.DecideRequest) (leave.DecideResponse, error) {
	args := m.Called(ctx, id, deciderID, req)
	return args.Get(0).(leave.DecideResponse), args.Error(1)
}

type PayrollService struct {
	mock.Mock
}

func (m *PayrollService) Upsert(ctx context.Context, req payroll.UpsertRequest) (payroll.PayrollResponse, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(payroll.PayrollResponse), args.Error(1)
}

func (m *PayrollService) SetStatus(ctx context.Context, id int64, req payroll.SetStatusRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *PayrollService) UpdateFields(ctx context.Context, id int64, req payroll.UpdateFieldsRequest) (payroll.PayrollResponse, error) {
	args := m.Called(ctx, id, req)
	return args.Get(0).(payroll.PayrollResponse), args.Error(1)
}

func (m *PayrollService) Mine(ctx context.Context, userID int64, filter payroll.Filter) ([]payroll.PayrollResponse, error) {
	args := m.Called(ctx, userID, filter)
	return args.Get(0).([]payroll.PayrollResponse), args.Error(1)
}

func (m *PayrollService) All(ctx context.Context, filter payroll.Filter) ([]payroll.PayrollResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payroll.PayrollResponse), args.Error(1)
}

func (m *PayrollService) SetBaseSalary(ctx context.Context, userID int64, req payroll.SetBaseSalaryRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

type ReportService struct {
	mock.Mock
}

func (m *ReportService) Analytics(ctx context.Context) (report.AnalyticsResponse, error) {
	args := m.Called(ctx)
	return args.Get(0).(report.AnalyticsResponse), args.Error(1)
}

func (m *ReportService) AttendanceReport(ctx context.Context, filter report.AttendanceReportFilter) (report.AttendanceReportResponse, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(report.AttendanceReportResponse), args.Error(1)
}

// AttendanceReportXLSX writes the second return argument, when it is a
// []byte, to w before returning the error.
func (m *ReportService) AttendanceReportXLSX(ctx context.Context, filter report.AttendanceReportFilter, w io.Writer) error {
	args := m.Called(ctx, filter, w)
	if body, ok := args.Get(1).([]byte); ok {
		_, _ = w.Write(body)
	}
	return args.Error(0)
}

func (m *ReportService) SalarySlip(ctx context.Context, actor user.Identity, req report.SalarySlipRequest) (report.SalarySlipResponse, error) {
	args := m.Called(ctx, actor, req)
	return args.Get(0).(report.SalarySlipResponse), args.Error(1)
}
