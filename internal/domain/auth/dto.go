package auth

import (
	"strings"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
)

// MaxPasswordBytes is the longest password bcrypt will hash.
const MaxPasswordBytes = 72

type SignupRequest struct {
	EmployeeID string `json:"employee_id"`
	Username   string `json:"username"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Password   string `json:"password"`
	Role       string `json:"role"`
}

func (r *SignupRequest) Normalize() {
	r.EmployeeID = strings.TrimSpace(r.EmployeeID)
	r.Username = strings.TrimSpace(r.Username)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.Phone = strings.TrimSpace(r.Phone)
}

func (r *SignupRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "Employee ID is required",
		})
	}

	if validator.IsEmpty(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "Username is required",
		})
	} else if !validator.IsValidUsername(r.Username) {
		errs = append(errs, validator.ValidationError{
			Field:   "username",
			Message: "Username must be 3-50 characters of letters, numbers, spaces, dots, underscores or hyphens",
		})
	}

	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Valid email is required",
		})
	}

	if !validator.IsEmpty(r.Phone) && !validator.IsValidPhoneNumber(r.Phone) {
		errs = append(errs, validator.ValidationError{
			Field:   "phone",
			Message: "Phone number is invalid",
		})
	}

	if len(r.Password) < 8 {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password must be at least 8 characters",
		})
	} else if len(r.Password) > MaxPasswordBytes {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password must not exceed 72 bytes",
		})
	} else if !validator.IsStrongPassword(r.Password) {
		errs = append(errs, validator.ValidationError{
			Field:   "password",
			Message: "Password must contain uppercase, lowercase, and number",
		})
	}

	if !validator.IsInSlice(r.Role, user.SelfAssignableRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "Role must be employee or hr",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ProfileName derives first and last name from the username: the first
// whitespace-separated word and the rest.
func (r *SignupRequest) ProfileName() (first, last string) {
	parts := strings.Fields(r.Username)
	switch len(parts) {
	case 0:
		return "New", "User"
	case 1:
		return parts[0], ""
	default:
		return parts[0], strings.Join(parts[1:], " ")
	}
}

type SignupResponse struct {
	Message string `json:"message"`
	UserID  int64  `json:"userId"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *SigninRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidEmail(strings.TrimSpace(r.Email)) {
		errs.Add("email", "Valid email is required")
	}
	if r.Password == "" {
		errs.Add("password", "Password is required")
	}

	return errs.Err()
}

// AccountResponse is the public user plus the employee profile.
type AccountResponse struct {
	user.UserResponse
	Profile *employee.ProfileResponse `json:"profile"`
}

type SigninResponse struct {
	Token     string          `json:"token"`
	ExpiresAt int64           `json:"expires_at"`
	User      AccountResponse `json:"user"`
}

type MeResponse struct {
	User AccountResponse `json:"user"`
}
