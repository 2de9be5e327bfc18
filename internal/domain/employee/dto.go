package employee

import (
	"mime/multipart"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

const MaxAvatarSize = 5 << 20

type ProfileResponse struct {
	ID             int64            `json:"id"`
	UserID         int64            `json:"user_id"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Phone          *string          `json:"phone"`
	Address        *string          `json:"address"`
	ProfilePicture *string          `json:"profile_picture"`
	JobTitle       *string          `json:"job_title"`
	Department     *string          `json:"department"`
	HireDate       *string          `json:"hire_date"`
	EmploymentType *string          `json:"employment_type"`
	Salary         *decimal.Decimal `json:"salary"`
}

func (p Profile) ToResponse() ProfileResponse {
	return ProfileResponse{
		ID:             p.ID,
		UserID:         p.UserID,
		FirstName:      p.FirstName,
		LastName:       p.LastName,
		Phone:          p.Phone,
		Address:        p.Address,
		ProfilePicture: p.ProfilePicture,
		JobTitle:       p.JobTitle,
		Department:     p.Department,
		HireDate:       formatDate(p.HireDate),
		EmploymentType: p.EmploymentType,
		Salary:         p.Salary,
	}
}

// EmployeeResponse flattens the user and its profile into one roster row.
type EmployeeResponse struct {
	ID             int64            `json:"id"`
	EmployeeID     string           `json:"employee_id"`
	Username       *string          `json:"username"`
	Email          string           `json:"email"`
	Role           user.Role        `json:"role"`
	FirstName      string           `json:"first_name"`
	LastName       string           `json:"last_name"`
	Phone          *string          `json:"phone"`
	Address        *string          `json:"address"`
	ProfilePicture *string          `json:"profile_picture"`
	JobTitle       *string          `json:"job_title"`
	Department     *string          `json:"department"`
	HireDate       *string          `json:"hire_date"`
	EmploymentType *string          `json:"employment_type"`
	Salary         *decimal.Decimal `json:"salary"`
}

func (e Employee) ToResponse() EmployeeResponse {
	resp := EmployeeResponse{
		ID:         e.UserID,
		EmployeeID: e.EmployeeID,
		Username:   e.Username,
		Email:      e.Email,
		Role:       e.Role,
	}
	if p := e.Profile; p != nil {
		resp.FirstName = p.FirstName
		resp.LastName = p.LastName
		resp.Phone = p.Phone
		resp.Address = p.Address
		resp.ProfilePicture = p.ProfilePicture
		resp.JobTitle = p.JobTitle
		resp.Department = p.Department
		resp.HireDate = formatDate(p.HireDate)
		resp.EmploymentType = p.EmploymentType
		resp.Salary = p.Salary
	}
	return resp
}

// UpdateProfileRequest is a partial update: nil fields keep their stored value.
type UpdateProfileRequest struct {
	FirstName      *string          `json:"first_name"`
	LastName       *string          `json:"last_name"`
	Phone          *string          `json:"phone"`
	Address        *string          `json:"address"`
	ProfilePicture *string          `json:"profile_picture"`
	JobTitle       *string          `json:"job_title"`
	Department     *string          `json:"department"`
	HireDate       *string          `json:"hire_date"`
	EmploymentType *string          `json:"employment_type"`
	Salary         *decimal.Decimal `json:"salary"`
}

func (r *UpdateProfileRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.FirstName != nil && validator.IsEmpty(*r.FirstName) {
		errs.Add("first_name", "first_name must not be empty")
	}
	if r.LastName != nil && len(*r.LastName) > 100 {
		errs.Add("last_name", "last_name must not exceed 100 characters")
	}
	if r.Phone != nil && *r.Phone != "" && !validator.IsValidPhoneNumber(*r.Phone) {
		errs.Add("phone", "phone number is invalid")
	}
	if r.HireDate != nil && *r.HireDate != "" {
		if _, ok := validator.IsValidDate(*r.HireDate); !ok {
			errs.Add("hire_date", "hire_date must be in YYYY-MM-DD format")
		}
	}
	if r.Salary != nil && r.Salary.IsNegative() {
		errs.Add("salary", "salary must not be negative")
	}

	return errs.Err()
}

// SelfService keeps only the fields an employee may change on their own profile.
func (r UpdateProfileRequest) SelfService() UpdateProfileRequest {
	return UpdateProfileRequest{
		Phone:          r.Phone,
		Address:        r.Address,
		ProfilePicture: r.ProfilePicture,
	}
}

type UploadAvatarRequest struct {
	File       multipart.File
	FileHeader *multipart.FileHeader
}

func (r *UploadAvatarRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.File == nil || r.FileHeader == nil {
		errs.Add("file", "file is required")
		return errs
	}
	if r.FileHeader.Size > MaxAvatarSize {
		errs.Add("file", ErrFileTooLarge.Error())
	}
	contentType := r.FileHeader.Header.Get("Content-Type")
	if !validator.IsInSlice(contentType, []string{"image/jpeg", "image/jpg", "image/png"}) {
		errs.Add("file", ErrInvalidFileType.Error())
	}

	return errs.Err()
}

type AvatarResponse struct {
	ProfilePicture string `json:"profile_picture"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(validator.DateLayout)
	return &s
}
