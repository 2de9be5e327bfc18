package attendance

import (
	"context"
	"time"
)

type AttendanceRepository interface {
	GetByUserAndDate(ctx context.Context, userID int64, date time.Time) (Attendance, error)
	// CheckIn creates or fills today's row. ErrAlreadyCheckedIn if check_in is already set.
	CheckIn(ctx context.Context, userID int64, date time.Time, clock string) error
	// CheckOut sets check_out on a checked-in row. ErrAlreadyCheckedOut if it is already set.
	CheckOut(ctx context.Context, userID int64, date time.Time, clock string) error
	ListByUserInRange(ctx context.Context, userID int64, start, end time.Time) ([]Attendance, error)
	List(ctx context.Context, filter ListFilter) ([]Attendance, error)
	Update(ctx context.Context, id int64, req AdminUpdateRequest) error
	// MarkLeave upserts the day's status to leave, keeping check-in/out times.
	MarkLeave(ctx context.Context, userID int64, date time.Time) error
	// ResetToAbsent rewrites an existing row's status. Missing rows stay missing.
	ResetToAbsent(ctx context.Context, userID int64, date time.Time) error
}
