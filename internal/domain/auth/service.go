package auth

import (
	"context"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/user"
)

type AuthService interface {
	// ObtainToken exchanges a username and password for an access token.
	ObtainToken(ctx context.Context, req ObtainTokenRequest) (TokenResponse, error)
	CreateUser(ctx context.Context, req user.CreateUserRequest) (user.UserResponse, error)
}
