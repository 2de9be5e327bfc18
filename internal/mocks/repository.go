// Package mocks holds testify mocks for the repository and service
// interfaces, shared by the service and handler tests.
package mocks

import (
	"context"
	"io"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/payroll"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/report"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// Transactor runs fn directly on the given context.
type Transactor struct {
	Calls int
}

func (t *Transactor) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	t.Calls++
	return fn(ctx)
}

type UserRepository struct {
	mock.Mock
}

func (m *UserRepository) Create(ctx context.Context, u user.User) (user.User, error) {
	args := m.Called(ctx, u)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetByID(ctx context.Context, id int64) (user.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) GetByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *UserRepository) ExistsByEmployeeID(ctx context.Context, employeeID string) (bool, error) {
	args := m.Called(ctx, employeeID)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *UserRepository) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *UserRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type EmployeeRepository struct {
	mock.Mock
}

func (m *EmployeeRepository) CreateProfile(ctx context.Context, p employee.Profile) (employee.Profile, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(employee.Profile), args.Error(1)
}

func (m *EmployeeRepository) GetProfileByUserID(ctx context.Context, userID int64) (employee.Profile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(employee.Profile), args.Error(1)
}

func (m *EmployeeRepository) GetByUserID(ctx context.Context, userID int64) (employee.Employee, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) List(ctx context.Context) ([]employee.Employee, error) {
	args := m.Called(ctx)
	return args.Get(0).([]employee.Employee), args.Error(1)
}

func (m *EmployeeRepository) UpdateProfile(ctx context.Context, userID int64, req employee.UpdateProfileRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

func (m *EmployeeRepository) SetSalary(ctx context.Context, userID int64, salary decimal.Decimal) error {
	return m.Called(ctx, userID, salary).Error(0)
}

func (m *EmployeeRepository) SetProfilePicture(ctx context.Context, userID int64, url string) error {
	return m.Called(ctx, userID, url).Error(0)
}

type AttendanceRepository struct {
	mock.Mock
}

func (m *AttendanceRepository) GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (attendance.Attendance, error) {
	args := m.Called(ctx, userID, date)
	return args.Get(0).(attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) CheckIn(ctx context.Context, userID int64, date time.Time, clock string) error {
	return m.Called(ctx, userID, date, clock).Error(0)
}

func (m *AttendanceRepository) CheckOut(ctx context.Context, userID int64, date time.Time, clock string) error {
	return m.Called(ctx, userID, date, clock).Error(0)
}

func (m *AttendanceRepository) ListByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]attendance.Attendance, error) {
	args := m.Called(ctx, userID, start, end)
	return args.Get(0).([]attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]attendance.Attendance), args.Error(1)
}

func (m *AttendanceRepository) Update(ctx context.Context, id int64, req attendance.AdminUpdateRequest) error {
	return m.Called(ctx, id, req).Error(0)
}

func (m *AttendanceRepository) MarkLeave(ctx context.Context, userID int64, date time.Time) error {
	return m.Called(ctx, userID, date).Error(0)
}

func (m *AttendanceRepository) ResetToAbsent(ctx context.Context, userID int64, date time.Time) error {
	return m.Called(ctx, userID, date).Error(0)
}

type LeaveRequestRepository struct {
	mock.Mock
}

func (m *LeaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(leave.LeaveRequest), args.Error(1)
}

func (m *LeaveRequestRepository) GetByID(ctx context.Context, id int64) (leave.LeaveRequest, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(leave.LeaveRequest), args.Error(1)
}

func (m *LeaveRequestRepository) ListByUser(ctx context.Context, userID int64) ([]leave.LeaveRequest, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]leave.LeaveRequest), args.Error(1)
}

func (m *LeaveRequestRepository) List(ctx context.Context, status *leave.Status) ([]leave.LeaveRequest, error) {
	args := m.Called(ctx, status)
	return args.Get(0).([]leave.LeaveRequest), args.Error(1)
}

func (m *LeaveRequestRepository) Decide(ctx context.Context, id int64, status leave.Status, deciderID int64, comment string) error {
	return m.Called(ctx, id, status, deciderID, comment).Error(0)
}

type PayrollRepository struct {
	mock.Mock
}

func (m *PayrollRepository) Upsert(ctx context.Context, p payroll.Payroll, status *payroll.Status) (payroll.Payroll, error) {
	args := m.Called(ctx, p, status)
	return args.Get(0).(payroll.Payroll), args.Error(1)
}

func (m *PayrollRepository) GetByID(ctx context.Context, id int64) (payroll.Payroll, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(payroll.Payroll), args.Error(1)
}

func (m *PayrollRepository) GetByPeriod(ctx context.Context, userID int64, month, year int) (payroll.Payroll, error) {
	args := m.Called(ctx, userID, month, year)
	return args.Get(0).(payroll.Payroll), args.Error(1)
}

func (m *PayrollRepository) Update(ctx context.Context, p payroll.Payroll) error {
	return m.Called(ctx, p).Error(0)
}

func (m *PayrollRepository) SetStatus(ctx context.Context, id int64, status payroll.Status) error {
	return m.Called(ctx, id, status).Error(0)
}

func (m *PayrollRepository) List(ctx context.Context, filter payroll.Filter) ([]payroll.Payroll, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]payroll.Payroll), args.Error(1)
}

type ReportRepository struct {
	mock.Mock
}

func (m *ReportRepository) CountUsers(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepository) CountLeavesByStatus(ctx context.Context, status leave.Status) (int64, error) {
	args := m.Called(ctx, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepository) CountAttendanceByStatus(ctx context.Context, date time.Time, status attendance.Status) (int64, error) {
	args := m.Called(ctx, date, status)
	return args.Get(0).(int64), args.Error(1)
}

func (m *ReportRepository) SumNetPayroll(ctx context.Context, month, year int) (decimal.Decimal, error) {
	args := m.Called(ctx, month, year)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *ReportRepository) AttendanceInRange(ctx context.Context, start, end time.Time, userID *int64) ([]attendance.Attendance, error) {
	args := m.Called(ctx, start, end, userID)
	return args.Get(0).([]attendance.Attendance), args.Error(1)
}

func (m *ReportRepository) GetSlipEmployee(ctx context.Context, userID int64) (report.SlipEmployee, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(report.SlipEmployee), args.Error(1)
}

type FileService struct {
	mock.Mock
}

func (m *FileService) UploadAvatar(ctx context.Context, userID int64, file io.Reader) (string, error) {
	args := m.Called(ctx, userID, file)
	return args.String(0), args.Error(1)
}

func (m *FileService) DeleteByURL(ctx context.Context, url string) error {
	return m.Called(ctx, url).Error(0)
}
