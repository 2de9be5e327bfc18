package jwt

import (
	"context"
	"errors"
	"strconv"
	"time"

	"github.com/dayflow-hris/dayflow-backend-go/internal/domain/user"
	"github.com/go-chi/jwtauth/v5"
	"github.com/lestrrat-go/jwx/v2/jwt"
)

var ErrInvalidClaims = errors.New("token claims are invalid")

type Service interface {
	GenerateAccessToken(userID int64, email string, role user.Role) (token string, expiresAt int64, err error)
	JWTAuth() *jwtauth.JWTAuth
	RevokeToken(ctx context.Context, token string, expiresAt time.Time) error
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}

type JWTService struct {
	tokenAuth  *jwtauth.JWTAuth
	expiration time.Duration
	revoked    RevocationStore
	now        func() time.Time
}

func (j *JWTService) JWTAuth() *jwtauth.JWTAuth {
	return j.tokenAuth
}

func NewJWTService(secretKey string, expiration time.Duration, revoked RevocationStore) Service {
	return &JWTService{
		tokenAuth:  jwtauth.New("HS256", []byte(secretKey), nil, jwt.WithAcceptableSkew(30*time.Second)),
		expiration: expiration,
		revoked:    revoked,
		now:        time.Now,
	}
}

func (j *JWTService) GenerateAccessToken(userID int64, email string, role user.Role) (token string, expiresAt int64, err error) {
	expiresAt = j.now().Add(j.expiration).Unix()

	claims := map[string]interface{}{
		"user_id": strconv.FormatInt(userID, 10),
		"email":   email,
		"role":    string(role),
		"type":    "access",
		"iat":     j.now().Unix(),
		"exp":     expiresAt,
	}

	_, tokenString, err := j.tokenAuth.Encode(claims)
	return tokenString, expiresAt, err
}

// RevokeToken blocks token until it would have expired anyway.
func (j *JWTService) RevokeToken(ctx context.Context, token string, expiresAt time.Time) error {
	ttl := expiresAt.Sub(j.now())
	if ttl <= 0 {
		return nil
	}
	return j.revoked.Revoke(ctx, token, ttl)
}

func (j *JWTService) IsTokenRevoked(ctx context.Context, token string) (bool, error) {
	return j.revoked.IsRevoked(ctx, token)
}

// IdentityFromClaims reads the caller out of verified access-token claims.
func IdentityFromClaims(claims map[string]interface{}) (user.Identity, error) {
	tokenType, _ := claims["type"].(string)
	if tokenType != "access" {
		return user.Identity{}, ErrInvalidClaims
	}

	rawID, ok := claims["user_id"].(string)
	if !ok {
		return user.Identity{}, ErrInvalidClaims
	}
	userID, err := strconv.ParseInt(rawID, 10, 64)
	if err != nil || userID <= 0 {
		return user.Identity{}, ErrInvalidClaims
	}

	role, _ := claims["role"].(string)
	if !user.Role(role).Valid() {
		return user.Identity{}, ErrInvalidClaims
	}

	email, _ := claims["email"].(string)

	return user.Identity{UserID: userID, Role: user.Role(role), Email: email}, nil
}
