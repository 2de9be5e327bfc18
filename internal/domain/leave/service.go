package leave

import "context"

type LeaveService interface {
	Submit(ctx context.Context, userID int64, req SubmitRequest) (SubmitResponse, error)
	ListMine(ctx context.Context, userID int64) ([]LeaveResponse, error)
	ListAll(ctx context.Context, status string) ([]LeaveResponse, error)
	Decide(ctx context.Context, id int64, deciderID int64, req DecideRequest) (DecideResponse, error)
}
