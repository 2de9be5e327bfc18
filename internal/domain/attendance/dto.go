package attendance

import (
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
)

type AttendanceResponse struct {
	ID         int64   `json:"id,omitempty"`
	UserID     int64   `json:"user_id,omitempty"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     Status  `json:"status"`
	Notes      *string `json:"notes"`
	EmployeeID *string `json:"employee_id,omitempty"`
	FirstName  *string `json:"first_name,omitempty"`
	LastName   *string `json:"last_name,omitempty"`
}

func (a Attendance) ToResponse() AttendanceResponse {
	return AttendanceResponse{
		ID:         a.ID,
		UserID:     a.UserID,
		Date:       a.Date.Format(validator.DateLayout),
		CheckIn:    a.CheckIn,
		CheckOut:   a.CheckOut,
		Status:     a.Status,
		Notes:      a.Notes,
		EmployeeID: a.EmployeeID,
		FirstName:  a.FirstName,
		LastName:   a.LastName,
	}
}

func ToResponses(records []Attendance) []AttendanceResponse {
	out := make([]AttendanceResponse, 0, len(records))
	for _, a := range records {
		out = append(out, a.ToResponse())
	}
	return out
}

type CheckInResponse struct {
	Message string `json:"message"`
	CheckIn string `json:"check_in"`
}

type CheckOutResponse struct {
	Message  string `json:"message"`
	CheckOut string `json:"check_out"`
}

// AdminUpdateRequest overwrites a row without checking the check-in/out sequence.
type AdminUpdateRequest struct {
	Status   string  `json:"status"`
	CheckIn  *string `json:"check_in"`
	CheckOut *string `json:"check_out"`
	Notes    *string `json:"notes"`
}

func (r *AdminUpdateRequest) Validate() error {
	var errs validator.ValidationErrors

	if !Status(r.Status).Valid() {
		errs = append(errs, validator.ValidationError{
			Field:   "status",
			Message: "status must be one of present, absent, half-day, leave",
		})
	}
	if r.CheckIn != nil && *r.CheckIn != "" && !validator.IsValidClockTime(*r.CheckIn) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_in",
			Message: "check_in must be in HH:MM format",
		})
	}
	if r.CheckOut != nil && *r.CheckOut != "" && !validator.IsValidClockTime(*r.CheckOut) {
		errs = append(errs, validator.ValidationError{
			Field:   "check_out",
			Message: "check_out must be in HH:MM format",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ListFilter narrows the admin listing. Dates only apply when both are set.
type ListFilter struct {
	UserID    *int64
	StartDate *string
	EndDate   *string
}

func (f *ListFilter) Validate() error {
	var errs validator.ValidationErrors

	start, end := f.StartDate, f.EndDate
	if (start == nil) != (end == nil) {
		errs.Add("startDate", "startDate and endDate must be provided together")
		return errs
	}
	if start == nil {
		return nil
	}

	s, ok := validator.IsValidDate(*start)
	if !ok {
		errs.Add("startDate", "startDate must be in YYYY-MM-DD format")
	}
	e, ok2 := validator.IsValidDate(*end)
	if !ok2 {
		errs.Add("endDate", "endDate must be in YYYY-MM-DD format")
	}
	if len(errs) > 0 {
		return errs
	}
	if s.After(e) {
		return ErrInvalidRange
	}
	return nil
}
