package employee

import (
	"context"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
)

type EmployeeService interface {
	List(ctx context.Context) ([]EmployeeResponse, error)
	Get(ctx context.Context, actor user.Identity, userID int64) (EmployeeResponse, error)
	Update(ctx context.Context, actor user.Identity, userID int64, req UpdateProfileRequest) error
	Delete(ctx context.Context, userID int64) error
	UploadAvatar(ctx context.Context, actor user.Identity, userID int64, req UploadAvatarRequest) (AvatarResponse, error)
}
