package report

import (
	"context"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/leave"
	"github.com/shopspring/decimal"
)

type ReportRepository interface {
	CountUsers(ctx context.Context) (int64, error)
	CountLeavesByStatus(ctx context.Context, status leave.Status) (int64, error)
	CountAttendanceByStatus(ctx context.Context, date time.Time, status attendance.Status) (int64, error)
	SumNetPayroll(ctx context.Context, month, year int) (decimal.Decimal, error)
	// AttendanceInRange returns joined rows ordered by date, then employee ID.
	AttendanceInRange(ctx context.Context, start, end time.Time, userID *int64) ([]attendance.Attendance, error)
	GetSlipEmployee(ctx context.Context, userID int64) (SlipEmployee, error)
}
