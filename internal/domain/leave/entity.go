package leave

import "time"

type LeaveType string

const (
	LeaveTypePaid   LeaveType = "paid"
	LeaveTypeSick   LeaveType = "sick"
	LeaveTypeUnpaid LeaveType = "unpaid"
)

var LeaveTypes = []string{string(LeaveTypePaid), string(LeaveTypeSick), string(LeaveTypeUnpaid)}

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

var Statuses = []string{string(StatusPending), string(StatusApproved), string(StatusRejected)}

// Decisions are the statuses an approver may set.
var Decisions = []string{string(StatusApproved), string(StatusRejected)}

type LeaveRequest struct {
	ID           int64
	UserID       int64
	LeaveType    LeaveType
	StartDate    time.Time
	EndDate      time.Time
	Remarks      string
	Status       Status
	ApprovedBy   *int64
	AdminComment string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Join
	EmployeeID *string
	FirstName  *string
	LastName   *string
}

// Days returns the number of calendar days covered, inclusive.
func (l LeaveRequest) Days() int {
	return int(l.EndDate.Sub(l.StartDate).Hours()/24) + 1
}
