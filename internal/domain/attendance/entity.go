package attendance

import "time"

type Status string

const (
	StatusPresent Status = "present"
	StatusAbsent  Status = "absent"
	StatusHalfDay Status = "half-day"
	StatusLeave   Status = "leave"
)

var Statuses = []string{string(StatusPresent), string(StatusAbsent), string(StatusHalfDay), string(StatusLeave)}

func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusAbsent, StatusHalfDay, StatusLeave:
		return true
	}
	return false
}

// Attendance is one row per (user, calendar day). A day without a row is
// read as absent and never written back.
type Attendance struct {
	ID        int64
	UserID    int64
	Date      time.Time // midnight UTC of the calendar day
	CheckIn   *string   // "HH:MM"
	CheckOut  *string
	Status    Status
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Join
	EmployeeID *string
	FirstName  *string
	LastName   *string
}

// DateOf returns the calendar day of t, in t's location, as midnight UTC.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WeekStart returns the Monday of the week containing day.
func WeekStart(day time.Time) time.Time {
	offset := (int(day.Weekday()) + 6) % 7
	return DateOf(day).AddDate(0, 0, -offset)
}

// EachDay calls fn for every day in [start, end], inclusive.
func EachDay(start, end time.Time, fn func(day time.Time) error) error {
	for day := DateOf(start); !day.After(DateOf(end)); day = day.AddDate(0, 0, 1) {
		if err := fn(day); err != nil {
			return err
		}
	}
	return nil
}
