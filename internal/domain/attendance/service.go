package attendance

import "context"

type AttendanceService interface {
	CheckIn(ctx context.Context, userID int64) (CheckInResponse, error)
	CheckOut(ctx context.Context, userID int64) (CheckOutResponse, error)
	Today(ctx context.Context, userID int64) (AttendanceResponse, error)
	Weekly(ctx context.Context, userID int64, startDate string) ([]AttendanceResponse, error)
	RangeForUser(ctx context.Context, userID int64, startDate, endDate string) ([]AttendanceResponse, error)
	List(ctx context.Context, filter ListFilter) ([]AttendanceResponse, error)
	AdminUpdate(ctx context.Context, id int64, req AdminUpdateRequest) error
}
