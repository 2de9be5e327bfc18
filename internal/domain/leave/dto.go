package leave

import (
	"fmt"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
)

// MaxLeaveDays caps how many calendar days one request may cover.
const MaxLeaveDays = 366

type SubmitRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	Remarks   string `json:"remarks"`

	// Parsed by Validate
	Start time.Time `json:"-"`
	End   time.Time `json:"-"`
}

func (r *SubmitRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.LeaveType, LeaveTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "leave_type",
			Message: "Invalid leave type",
		})
	}

	start, ok := validator.IsValidDate(r.StartDate)
	if validator.IsEmpty(r.StartDate) {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date is required"})
	} else if !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "Start date must be in YYYY-MM-DD format"})
	}

	end, ok2 := validator.IsValidDate(r.EndDate)
	if validator.IsEmpty(r.EndDate) {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date is required"})
	} else if !ok2 {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "End date must be in YYYY-MM-DD format"})
	}

	if len(r.Remarks) > 1000 {
		errs = append(errs, validator.ValidationError{Field: "remarks", Message: "Remarks must not exceed 1000 characters"})
	}

	if len(errs) > 0 {
		return errs
	}

	if start.After(end) {
		return ErrInvalidRange
	}
	if days := int(end.Sub(start).Hours()/24) + 1; days > MaxLeaveDays {
		return validator.ValidationErrors{{Field: "end_date", Message: fmt.Sprintf("Leave may cover at most %d days", MaxLeaveDays)}}
	}

	r.Start, r.End = start, end
	return nil
}

type SubmitResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
}

type DecideRequest struct {
	Status       string `json:"status"`
	AdminComment string `json:"admin_comment"`
}

func (r *DecideRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsInSlice(r.Status, Decisions) {
		errs.Add("status", "Invalid status")
	}
	if len(r.AdminComment) > 1000 {
		errs.Add("admin_comment", "Admin comment must not exceed 1000 characters")
	}

	return errs.Err()
}

type DecideResponse struct {
	Message string `json:"message"`
}

type LeaveResponse struct {
	ID           int64     `json:"id"`
	UserID       int64     `json:"user_id"`
	LeaveType    LeaveType `json:"leave_type"`
	StartDate    string    `json:"start_date"`
	EndDate      string    `json:"end_date"`
	Remarks      string    `json:"remarks"`
	Status       Status    `json:"status"`
	ApprovedBy   *int64    `json:"approved_by"`
	AdminComment string    `json:"admin_comment"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	EmployeeID   *string   `json:"employee_id,omitempty"`
	FirstName    *string   `json:"first_name,omitempty"`
	LastName     *string   `json:"last_name,omitempty"`
}

func (l LeaveRequest) ToResponse() LeaveResponse {
	return LeaveResponse{
		ID:           l.ID,
		UserID:       l.UserID,
		LeaveType:    l.LeaveType,
		StartDate:    l.StartDate.Format(validator.DateLayout),
		EndDate:      l.EndDate.Format(validator.DateLayout),
		Remarks:      l.Remarks,
		Status:       l.Status,
		ApprovedBy:   l.ApprovedBy,
		AdminComment: l.AdminComment,
		CreatedAt:    l.CreatedAt,
		UpdatedAt:    l.UpdatedAt,
		EmployeeID:   l.EmployeeID,
		FirstName:    l.FirstName,
		LastName:     l.LastName,
	}
}
