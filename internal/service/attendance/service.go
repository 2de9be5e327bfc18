package attendance

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
)

const clockLayout = "15:04"

type AttendanceServiceImpl struct {
	attendance.AttendanceRepository
	loc *time.Location
	now func() time.Time
}

// NewAttendanceService builds the service. loc decides which calendar day
// "today" is and the wall-clock times recorded on check-in and check-out.
func NewAttendanceService(attendanceRepository attendance.AttendanceRepository, loc *time.Location) attendance.AttendanceService {
	if loc == nil {
		loc = time.Local
	}
	return &AttendanceServiceImpl{
		AttendanceRepository: attendanceRepository,
		loc:                  loc,
		now:                  time.Now,
	}
}

func (a *AttendanceServiceImpl) localNow() time.Time {
	return a.now().In(a.loc)
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, userID int64) (attendance.CheckInResponse, error) {
	now := a.localNow()
	clock := now.Format(clockLayout)

	if err := a.AttendanceRepository.CheckIn(ctx, userID, attendance.DateOf(now), clock); err != nil {
		return attendance.CheckInResponse{}, err
	}

	return attendance.CheckInResponse{Message: "Checked in successfully", CheckIn: clock}, nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, userID int64) (attendance.CheckOutResponse, error) {
	now := a.localNow()
	today := attendance.DateOf(now)

	record, err := a.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
		}
		return attendance.CheckOutResponse{}, err
	}
	if record.CheckIn == nil {
		return attendance.CheckOutResponse{}, attendance.ErrNotCheckedIn
	}
	if record.CheckOut != nil {
		return attendance.CheckOutResponse{}, attendance.ErrAlreadyCheckedOut
	}

	clock := now.Format(clockLayout)
	if err := a.AttendanceRepository.CheckOut(ctx, userID, today, clock); err != nil {
		return attendance.CheckOutResponse{}, err
	}

	return attendance.CheckOutResponse{Message: "Checked out successfully", CheckOut: clock}, nil
}

// Today implements attendance.AttendanceService. A day without a row reads
// as absent; nothing is written.
func (a *AttendanceServiceImpl) Today(ctx context.Context, userID int64) (attendance.AttendanceResponse, error) {
	today := attendance.DateOf(a.localNow())

	record, err := a.GetByUserAndDate(ctx, userID, today)
	if err != nil {
		if errors.Is(err, attendance.ErrAttendanceNotFound) {
			return attendance.AttendanceResponse{
				Date:   today.Format(validator.DateLayout),
				Status: attendance.StatusAbsent,
			}, nil
		}
		return attendance.AttendanceResponse{}, err
	}
	return record.ToResponse(), nil
}

// Weekly implements attendance.AttendanceService. An empty startDate means
// the Monday of the current week.
func (a *AttendanceServiceImpl) Weekly(ctx context.Context, userID int64, startDate string) ([]attendance.AttendanceResponse, error) {
	start := attendance.WeekStart(a.localNow())
	if startDate != "" {
		parsed, ok := validator.IsValidDate(startDate)
		if !ok {
			return nil, validator.ValidationErrors{{Field: "startDate", Message: "startDate must be in YYYY-MM-DD format"}}
		}
		start = parsed
	}

	records, err := a.ListByUserInRange(ctx, userID, start, start.AddDate(0, 0, 6))
	if err != nil {
		return nil, err
	}
	return attendance.ToResponses(records), nil
}

// RangeForUser implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) RangeForUser(ctx context.Context, userID int64, startDate, endDate string) ([]attendance.AttendanceResponse, error) {
	filter := attendance.ListFilter{UserID: &userID, StartDate: &startDate, EndDate: &endDate}
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start, _ := validator.IsValidDate(startDate)
	end, _ := validator.IsValidDate(endDate)

	records, err := a.ListByUserInRange(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	return attendance.ToResponses(records), nil
}

// List implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) List(ctx context.Context, filter attendance.ListFilter) ([]attendance.AttendanceResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	records, err := a.AttendanceRepository.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	return attendance.ToResponses(records), nil
}

// AdminUpdate implements attendance.AttendanceService. The check-in/out
// sequence is not enforced here.
func (a *AttendanceServiceImpl) AdminUpdate(ctx context.Context, id int64, req attendance.AdminUpdateRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}
	return a.Update(ctx, id, req)
}
