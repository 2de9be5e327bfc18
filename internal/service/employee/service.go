package employee

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hris/dayflow-backend-go/internal/service/file"
)

type EmployeeServiceImpl struct {
	employeeRepo employee.EmployeeRepository
	userRepo     user.UserRepository
	fileService  file.FileService
}

func NewEmployeeService(
	employeeRepo employee.EmployeeRepository,
	userRepo user.UserRepository,
	fileService file.FileService,
) employee.EmployeeService {
	return &EmployeeServiceImpl{
		employeeRepo: employeeRepo,
		userRepo:     userRepo,
		fileService:  fileService,
	}
}

// List implements employee.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]employee.EmployeeResponse, error) {
	employees, err := s.employeeRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]employee.EmployeeResponse, 0, len(employees))
	for _, e := range employees {
		resp = append(resp, e.ToResponse())
	}
	return resp, nil
}

// Get implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Get(ctx context.Context, actor user.Identity, userID int64) (employee.EmployeeResponse, error) {
	if !actor.CanAccess(userID) {
		return employee.EmployeeResponse{}, user.ErrAccessDenied
	}

	e, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return employee.EmployeeResponse{}, err
	}
	return e.ToResponse(), nil
}

// Update implements employee.EmployeeService. Employees editing their own
// profile only reach the contact fields; anything else in req is dropped.
func (s *EmployeeServiceImpl) Update(ctx context.Context, actor user.Identity, userID int64, req employee.UpdateProfileRequest) error {
	if !actor.CanAccess(userID) {
		return user.ErrAccessDenied
	}
	if !actor.IsAdmin() {
		req = req.SelfService()
	}

	if err := req.Validate(); err != nil {
		return err
	}

	return s.employeeRepo.UpdateProfile(ctx, userID, req)
}

// Delete implements employee.EmployeeService.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, userID int64) error {
	e, err := s.employeeRepo.GetByUserID(ctx, userID)
	if err != nil {
		return err
	}

	if err := s.userRepo.Delete(ctx, userID); err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return employee.ErrEmployeeNotFound
		}
		return err
	}

	if e.Profile != nil && e.Profile.ProfilePicture != nil {
		if err := s.fileService.DeleteByURL(ctx, *e.Profile.ProfilePicture); err != nil {
			slog.Warn("failed to delete avatar of removed employee", "user_id", userID, "error", err)
		}
	}
	return nil
}

// UploadAvatar implements employee.EmployeeService.
func (s *EmployeeServiceImpl) UploadAvatar(ctx context.Context, actor user.Identity, userID int64, req employee.UploadAvatarRequest) (employee.AvatarResponse, error) {
	if !actor.CanAccess(userID) {
		return employee.AvatarResponse{}, user.ErrAccessDenied
	}
	if err := req.Validate(); err != nil {
		return employee.AvatarResponse{}, err
	}

	profile, err := s.employeeRepo.GetProfileByUserID(ctx, userID)
	if err != nil {
		return employee.AvatarResponse{}, err
	}

	url, err := s.fileService.UploadAvatar(ctx, userID, req.File)
	if err != nil {
		if errors.Is(err, file.ErrUnsupportedImage) {
			return employee.AvatarResponse{}, employee.ErrInvalidFileType
		}
		return employee.AvatarResponse{}, fmt.Errorf("failed to store avatar: %w", err)
	}

	if err := s.employeeRepo.SetProfilePicture(ctx, userID, url); err != nil {
		if delErr := s.fileService.DeleteByURL(ctx, url); delErr != nil {
			slog.Warn("failed to clean up orphaned avatar", "url", url, "error", delErr)
		}
		return employee.AvatarResponse{}, err
	}

	if old := profile.ProfilePicture; old != nil && *old != url {
		if err := s.fileService.DeleteByURL(ctx, *old); err != nil {
			slog.Warn("failed to delete previous avatar", "user_id", userID, "error", err)
		}
	}

	return employee.AvatarResponse{ProfilePicture: url}, nil
}
