package auth

import (
	"context"
	"time"
)

type AuthService interface {
	Signup(ctx context.Context, req SignupRequest) (SignupResponse, error)
	Signin(ctx context.Context, req SigninRequest) (SigninResponse, error)
	Me(ctx context.Context, userID int64) (MeResponse, error)
	Signout(ctx context.Context, token string, expiresAt time.Time) error
}
