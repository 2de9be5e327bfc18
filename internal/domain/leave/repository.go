package leave

import "context"

type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id int64) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID int64) ([]LeaveRequest, error)
	List(ctx context.Context, status *Status) ([]LeaveRequest, error)
	Decide(ctx context.Context, id int64, status Status, deciderID int64, comment string) error
}
