package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/report"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type reportRepositoryImpl struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepositoryImpl{db: db}
}

func (r *reportRepositoryImpl) count(ctx context.Context, query string, args ...interface{}) (int64, error) {
	q := GetQuerier(ctx, r.db)

	var n int64
	if err := q.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

// CountUsers implements report.ReportRepository.
func (r *reportRepositoryImpl) CountUsers(ctx context.Context) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM users`)
	if err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return n, nil
}

// CountLeavesByStatus implements report.ReportRepository.
func (r *reportRepositoryImpl) CountLeavesByStatus(ctx context.Context, status leave.Status) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM leave_requests WHERE status = $1`, status)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s leave requests: %w", status, err)
	}
	return n, nil
}

// CountAttendanceByStatus implements report.ReportRepository.
func (r *reportRepositoryImpl) CountAttendanceByStatus(ctx context.Context, date time.Time, status attendance.Status) (int64, error) {
	n, err := r.count(ctx, `SELECT COUNT(*) FROM attendance WHERE date = $1 AND status = $2`, date, status)
	if err != nil {
		return 0, fmt.Errorf("failed to count %s attendance: %w", status, err)
	}
	return n, nil
}

// SumNetPayroll implements report.ReportRepository.
func (r *reportRepositoryImpl) SumNetPayroll(ctx context.Context, month, year int) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx, `SELECT COALESCE(SUM(net_salary), 0) FROM payroll WHERE month = $1 AND year = $2`, month, year).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum payroll for %02d/%d: %w", month, year, err)
	}
	return total, nil
}

// AttendanceInRange implements report.ReportRepository.
func (r *reportRepositoryImpl) AttendanceInRange(ctx context.Context, start, end time.Time, userID *int64) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `, u.employee_id, p.first_name, p.last_name
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN employee_profiles p ON p.user_id = a.user_id
		WHERE a.date BETWEEN $1 AND $2 AND ($3::bigint IS NULL OR a.user_id = $3)
		ORDER BY a.date ASC, u.employee_id ASC
	`

	rows, err := q.Query(ctx, query, start, end, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance report: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var employeeID string
		var firstName, lastName *string
		a, err := scanAttendance(rows, &employeeID, &firstName, &lastName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance report row: %w", err)
		}
		a.EmployeeID = &employeeID
		a.FirstName = firstName
		a.LastName = lastName
		records = append(records, a)
	}
	return records, rows.Err()
}

// GetSlipEmployee implements report.ReportRepository.
func (r *reportRepositoryImpl) GetSlipEmployee(ctx context.Context, userID int64) (report.SlipEmployee, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT u.employee_id, p.first_name, p.last_name, p.job_title, p.department
		FROM users u
		LEFT JOIN employee_profiles p ON p.user_id = u.id
		WHERE u.id = $1
	`

	var e report.SlipEmployee
	err := q.QueryRow(ctx, query, userID).Scan(&e.EmployeeID, &e.FirstName, &e.LastName, &e.JobTitle, &e.Department)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return report.SlipEmployee{}, report.ErrSalarySlipNotFound
		}
		return report.SlipEmployee{}, fmt.Errorf("failed to get employee %d for salary slip: %w", userID, err)
	}
	return e, nil
}
