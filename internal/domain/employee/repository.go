package employee

import (
	"context"

	"github.com/shopspring/decimal"
)

type EmployeeRepository interface {
	CreateProfile(ctx context.Context, profile Profile) (Profile, error)
	GetProfileByUserID(ctx context.Context, userID int64) (Profile, error)
	GetByUserID(ctx context.Context, userID int64) (Employee, error)
	List(ctx context.Context) ([]Employee, error)
	UpdateProfile(ctx context.Context, userID int64, req UpdateProfileRequest) error
	SetSalary(ctx context.Context, userID int64, salary decimal.Decimal) error
	SetProfilePicture(ctx context.Context, userID int64, url string) error
}
