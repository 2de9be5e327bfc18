package postgresql

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

const attendanceColumns = `a.id, a.user_id, a.date, to_char(a.check_in, 'HH24:MI'), to_char(a.check_out, 'HH24:MI'),
	a.status, a.notes, a.created_at, a.updated_at`

func scanAttendance(row pgx.Row, dest ...any) (attendance.Attendance, error) {
	var a attendance.Attendance
	fields := []any{
		&a.ID,
		&a.UserID,
		&a.Date,
		&a.CheckIn,
		&a.CheckOut,
		&a.Status,
		&a.Notes,
		&a.CreatedAt,
		&a.UpdatedAt,
	}
	err := row.Scan(append(fields, dest...)...)
	return a, err
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance a WHERE a.user_id = $1 AND a.date = $2`

	a, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAttendanceNotFound
		}
		return attendance.Attendance{}, fmt.Errorf("failed to get attendance for user %d: %w", userID, err)
	}
	return a, nil
}

// CheckIn implements attendance.AttendanceRepository. A row left behind by a
// leave day is reused, so long as nobody has checked in on it yet.
func (r *attendanceRepositoryImpl) CheckIn(ctx context.Context, userID int64, date time.Time, clock string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (user_id, date, check_in, status)
		VALUES ($1, $2, $3::text::time, 'present')
		ON CONFLICT (user_id, date) DO UPDATE
		SET check_in = EXCLUDED.check_in, status = 'present', updated_at = NOW()
		WHERE attendance.check_in IS NULL
	`

	tag, err := q.Exec(ctx, query, userID, date, clock)
	if err != nil {
		return fmt.Errorf("failed to check in user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedIn
	}
	return nil
}

// CheckOut implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) CheckOut(ctx context.Context, userID int64, date time.Time, clock string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET check_out = $3::text::time, updated_at = NOW()
		WHERE user_id = $1 AND date = $2 AND check_in IS NOT NULL AND check_out IS NULL
	`

	tag, err := q.Exec(ctx, query, userID, date, clock)
	if err != nil {
		return fmt.Errorf("failed to check out user %d: %w", userID, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAlreadyCheckedOut
	}
	return nil
}

// ListByUserInRange implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance a
		WHERE a.user_id = $1 AND a.date BETWEEN $2 AND $3
		ORDER BY a.date ASC
	`

	rows, err := q.Query(ctx, query, userID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance for user %d: %w", userID, err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		a, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, a)
	}
	return records, rows.Err()
}

// List implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	var (
		conditions []string
		args       []interface{}
	)
	if filter.UserID != nil {
		args = append(args, *filter.UserID)
		conditions = append(conditions, fmt.Sprintf("a.user_id = $%d", len(args)))
	}
	if filter.StartDate != nil && filter.EndDate != nil {
		args = append(args, *filter.StartDate, *filter.EndDate)
		conditions = append(conditions, fmt.Sprintf("a.date BETWEEN $%d::date AND $%d::date", len(args)-1, len(args)))
	}

	query := `
		SELECT ` + attendanceColumns + `, u.employee_id, p.first_name, p.last_name
		FROM attendance a
		JOIN users u ON u.id = a.user_id
		LEFT JOIN employee_profiles p ON p.user_id = a.user_id`
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY a.date DESC, a.user_id ASC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var employeeID string
		var firstName, lastName *string
		a, err := scanAttendance(rows, &employeeID, &firstName, &lastName)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		a.EmployeeID = &employeeID
		a.FirstName = firstName
		a.LastName = lastName
		records = append(records, a)
	}
	return records, rows.Err()
}

func clockOrNull(s *string) *string {
	if s == nil || *s == "" {
		return nil
	}
	return s
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) Update(ctx context.Context, id int64, req attendance.AdminUpdateRequest) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET status = $1, check_in = $2::text::time, check_out = $3::text::time, notes = $4, updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query, req.Status, clockOrNull(req.CheckIn), clockOrNull(req.CheckOut), req.Notes, id)
	if err != nil {
		return fmt.Errorf("failed to update attendance %d: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}
	return nil
}

// MarkLeave implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) MarkLeave(ctx context.Context, userID int64, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO attendance (user_id, date, status)
		VALUES ($1, $2, 'leave')
		ON CONFLICT (user_id, date) DO UPDATE
		SET status = 'leave', updated_at = NOW()
	`

	if _, err := q.Exec(ctx, query, userID, date); err != nil {
		return fmt.Errorf("failed to mark leave for user %d on %s: %w", userID, date.Format("2006-01-02"), err)
	}
	return nil
}

// ResetToAbsent implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ResetToAbsent(ctx context.Context, userID int64, date time.Time) error {
	q := GetQuerier(ctx, r.db)

	query := `UPDATE attendance SET status = 'absent', updated_at = NOW() WHERE user_id = $1 AND date = $2`

	if _, err := q.Exec(ctx, query, userID, date); err != nil {
		return fmt.Errorf("failed to reset attendance for user %d on %s: %w", userID, date.Format("2006-01-02"), err)
	}
	return nil
}
