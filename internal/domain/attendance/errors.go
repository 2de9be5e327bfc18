package attendance

import "errors"

var (
	ErrAttendanceNotFound = errors.New("Attendance record not found")
	ErrAlreadyCheckedIn   = errors.New("Already checked in today")
	ErrNotCheckedIn       = errors.New("Please check in first")
	ErrAlreadyCheckedOut  = errors.New("Already checked out today")
	ErrInvalidStatus      = errors.New("Invalid attendance status")
	ErrInvalidRange       = errors.New("Start date must be before end date")
)
