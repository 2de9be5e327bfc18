package employee

import (
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/shopspring/decimal"
)

// Profile is the 1:1 HR record created alongside every user at signup.
type Profile struct {
	ID             int64
	UserID         int64
	FirstName      string
	LastName       string
	Phone          *string
	Address        *string
	ProfilePicture *string
	JobTitle       *string
	Department     *string
	HireDate       *time.Time
	EmploymentType *string
	Salary         *decimal.Decimal
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Employee is a user joined with its profile. Profile is nil for users
// whose profile row is missing.
type Employee struct {
	UserID     int64
	EmployeeID string
	Username   *string
	Email      string
	Role       user.Role
	CreatedAt  time.Time
	Profile    *Profile
}

func (p Profile) FullName() string {
	if p.LastName == "" {
		return p.FirstName
	}
	return p.FirstName + " " + p.LastName
}
