package leave

import (
	"testing"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubmitRequest_Validate(t *testing.T) {
	req := SubmitRequest{LeaveType: "sick", StartDate: "2025-01-10", EndDate: "2025-01-12"}
	require.NoError(t, req.Validate())
	assert.Equal(t, time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC), req.Start)
	assert.Equal(t, time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC), req.End)

	single := SubmitRequest{LeaveType: "paid", StartDate: "2025-01-10", EndDate: "2025-01-10"}
	assert.NoError(t, single.Validate())

	reversed := SubmitRequest{LeaveType: "paid", StartDate: "2025-01-12", EndDate: "2025-01-10"}
	assert.ErrorIs(t, reversed.Validate(), ErrInvalidRange)

	bad := SubmitRequest{LeaveType: "vacation", EndDate: "tomorrow"}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, bad.Validate(), &verrs)
	m := verrs.ToMap()
	assert.Equal(t, "Invalid leave type", m["leave_type"])
	assert.Equal(t, "Start date is required", m["start_date"])
	assert.Contains(t, m, "end_date")
}

func TestSubmitRequest_SpanLimit(t *testing.T) {
	leapYear := SubmitRequest{LeaveType: "unpaid", StartDate: "2024-01-01", EndDate: "2024-12-31"}
	assert.NoError(t, leapYear.Validate())

	tooLong := SubmitRequest{LeaveType: "unpaid", StartDate: "2025-01-01", EndDate: "2026-01-02"}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, tooLong.Validate(), &verrs)
	assert.Equal(t, "Leave may cover at most 366 days", verrs.ToMap()["end_date"])

	centuries := SubmitRequest{LeaveType: "unpaid", StartDate: "1900-01-01", EndDate: "9999-12-31"}
	assert.Error(t, centuries.Validate())
}

func TestDecideRequest_Validate(t *testing.T) {
	assert.NoError(t, (&DecideRequest{Status: "approved"}).Validate())
	assert.NoError(t, (&DecideRequest{Status: "rejected", AdminComment: "staffing"}).Validate())
	assert.Error(t, (&DecideRequest{Status: "pending"}).Validate())
	assert.Error(t, (&DecideRequest{}).Validate())
}

func TestLeaveRequest_Days(t *testing.T) {
	l := LeaveRequest{
		StartDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2025, 1, 12, 0, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, 3, l.Days())
}
