package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/auth"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/employee"
	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hris/dayflow-backend-go/internal/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

const signupMessage = "User created successfully. Please verify your email."

type AuthServiceImpl struct {
	database.Transactor
	user.UserRepository
	employee.EmployeeRepository
	jwt.Service
}

func NewAuthService(transactor database.Transactor, userRepository user.UserRepository, employeeRepository employee.EmployeeRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		Transactor:         transactor,
		UserRepository:     userRepository,
		EmployeeRepository: employeeRepository,
		Service:            jwtService,
	}
}

func (a *AuthServiceImpl) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

// Signup implements auth.AuthService.
func (a *AuthServiceImpl) Signup(ctx context.Context, req auth.SignupRequest) (auth.SignupResponse, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return auth.SignupResponse{}, err
	}

	// Checked one by one so the caller learns which field collided.
	exists, err := a.ExistsByEmployeeID(ctx, req.EmployeeID)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to check employee ID: %w", err)
	}
	if exists {
		return auth.SignupResponse{}, user.ErrEmployeeIDExists
	}

	exists, err = a.ExistsByUsername(ctx, req.Username)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to check username: %w", err)
	}
	if exists {
		return auth.SignupResponse{}, user.ErrUsernameExists
	}

	exists, err = a.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to check email: %w", err)
	}
	if exists {
		return auth.SignupResponse{}, user.ErrEmailExists
	}

	hashed, err := a.hashPassword(req.Password)
	if err != nil {
		return auth.SignupResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	var userID int64
	err = a.WithTransaction(ctx, func(txCtx context.Context) error {
		username := req.Username
		created, err := a.UserRepository.Create(txCtx, user.User{
			EmployeeID:   req.EmployeeID,
			Username:     &username,
			Email:        req.Email,
			PasswordHash: hashed,
			Role:         user.Role(req.Role),
		})
		if err != nil {
			return err
		}

		firstName, lastName := req.ProfileName()
		profile := employee.Profile{
			UserID:    created.ID,
			FirstName: firstName,
			LastName:  lastName,
		}
		if req.Phone != "" {
			phone := req.Phone
			profile.Phone = &phone
		}
		if _, err := a.CreateProfile(txCtx, profile); err != nil {
			return err
		}

		userID = created.ID
		return nil
	})
	if err != nil {
		return auth.SignupResponse{}, err
	}

	return auth.SignupResponse{Message: signupMessage, UserID: userID}, nil
}

// Signin implements auth.AuthService. An unknown email and a wrong password
// fail the same way.
func (a *AuthServiceImpl) Signin(ctx context.Context, req auth.SigninRequest) (auth.SigninResponse, error) {
	userData, err := a.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, user.ErrUserNotFound) {
			return auth.SigninResponse{}, auth.ErrInvalidCredentials
		}
		return auth.SigninResponse{}, fmt.Errorf("failed to get user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(userData.PasswordHash), []byte(req.Password)); err != nil {
		return auth.SigninResponse{}, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := a.GenerateAccessToken(userData.ID, userData.Email, userData.Role)
	if err != nil {
		return auth.SigninResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}

	account, err := a.account(ctx, userData)
	if err != nil {
		return auth.SigninResponse{}, err
	}

	return auth.SigninResponse{Token: token, ExpiresAt: expiresAt, User: account}, nil
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID int64) (auth.MeResponse, error) {
	userData, err := a.GetByID(ctx, userID)
	if err != nil {
		return auth.MeResponse{}, err
	}

	account, err := a.account(ctx, userData)
	if err != nil {
		return auth.MeResponse{}, err
	}
	return auth.MeResponse{User: account}, nil
}

// Signout implements auth.AuthService.
func (a *AuthServiceImpl) Signout(ctx context.Context, token string, expiresAt time.Time) error {
	if err := a.RevokeToken(ctx, token, expiresAt); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (a *AuthServiceImpl) account(ctx context.Context, userData user.User) (auth.AccountResponse, error) {
	account := auth.AccountResponse{UserResponse: userData.ToResponse()}

	profile, err := a.GetProfileByUserID(ctx, userData.ID)
	if err != nil {
		if errors.Is(err, employee.ErrEmployeeNotFound) {
			return account, nil
		}
		return auth.AccountResponse{}, fmt.Errorf("failed to get profile: %w", err)
	}

	resp := profile.ToResponse()
	account.Profile = &resp
	return account, nil
}
