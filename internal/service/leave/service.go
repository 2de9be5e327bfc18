package leave

import (
	"context"
	"fmt"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/attendance"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/leave"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
)

type LeaveServiceImpl struct {
	database.Transactor
	leave.LeaveRequestRepository
	attendanceRepo attendance.AttendanceRepository
}

func NewLeaveService(transactor database.Transactor, leaveRequestRepository leave.LeaveRequestRepository, attendanceRepository attendance.AttendanceRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		Transactor:             transactor,
		LeaveRequestRepository: leaveRequestRepository,
		attendanceRepo:         attendanceRepository,
	}
}

// Submit implements leave.LeaveService. Every covered day is marked as leave
// right away, before anyone approves the request.
func (l *LeaveServiceImpl) Submit(ctx context.Context, userID int64, req leave.SubmitRequest) (leave.SubmitResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.SubmitResponse{}, err
	}

	var created leave.LeaveRequest
	err := l.WithTransaction(ctx, func(txCtx context.Context) error {
		var err error
		created, err = l.Create(txCtx, leave.LeaveRequest{
			UserID:    userID,
			LeaveType: leave.LeaveType(req.LeaveType),
			StartDate: req.Start,
			EndDate:   req.End,
			Remarks:   req.Remarks,
			Status:    leave.StatusPending,
		})
		if err != nil {
			return err
		}

		return attendance.EachDay(req.Start, req.End, func(day time.Time) error {
			return l.attendanceRepo.MarkLeave(txCtx, userID, day)
		})
	})
	if err != nil {
		return leave.SubmitResponse{}, fmt.Errorf("failed to submit leave request: %w", err)
	}

	return leave.SubmitResponse{Message: "Leave request submitted successfully", ID: created.ID}, nil
}

// ListMine implements leave.LeaveService.
func (l *LeaveServiceImpl) ListMine(ctx context.Context, userID int64) ([]leave.LeaveResponse, error) {
	requests, err := l.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// ListAll implements leave.LeaveService. An empty status lists everything.
func (l *LeaveServiceImpl) ListAll(ctx context.Context, status string) ([]leave.LeaveResponse, error) {
	var filter *leave.Status
	if status != "" {
		if !validator.IsInSlice(status, leave.Statuses) {
			return nil, validator.ValidationErrors{{Field: "status", Message: "status must be pending, approved or rejected"}}
		}
		s := leave.Status(status)
		filter = &s
	}

	requests, err := l.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return toResponses(requests), nil
}

// Decide implements leave.LeaveService. Approval only records the decision,
// the days were marked as leave on submission. Rejection resets the days that
// have a row back to absent, even if another request also covers them. A
// decided request may be decided again.
func (l *LeaveServiceImpl) Decide(ctx context.Context, id int64, deciderID int64, req leave.DecideRequest) (leave.DecideResponse, error) {
	if err := req.Validate(); err != nil {
		return leave.DecideResponse{}, err
	}

	request, err := l.GetByID(ctx, id)
	if err != nil {
		return leave.DecideResponse{}, err
	}

	status := leave.Status(req.Status)
	err = l.WithTransaction(ctx, func(txCtx context.Context) error {
		if err := l.LeaveRequestRepository.Decide(txCtx, id, status, deciderID, req.AdminComment); err != nil {
			return err
		}
		if status != leave.StatusRejected {
			return nil
		}

		return attendance.EachDay(request.StartDate, request.EndDate, func(day time.Time) error {
			return l.attendanceRepo.ResetToAbsent(txCtx, request.UserID, day)
		})
	})
	if err != nil {
		return leave.DecideResponse{}, fmt.Errorf("failed to decide leave request %d: %w", id, err)
	}

	return leave.DecideResponse{Message: fmt.Sprintf("Leave request %s successfully", status)}, nil
}

func toResponses(requests []leave.LeaveRequest) []leave.LeaveResponse {
	resp := make([]leave.LeaveResponse, 0, len(requests))
	for _, r := range requests {
		resp = append(resp, r.ToResponse())
	}
	return resp
}
