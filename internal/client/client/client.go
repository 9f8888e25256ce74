package client

import (
	"context"

	"github.com/dmitrijs2005/hotelhub/internal/client/models"
)

type Client interface {
	Signup(ctx context.Context, creds models.SignupCredentials) (*models.AuthResponse, error)
	Login(ctx context.Context, creds models.LoginCredentials) (*models.LoginResponse, error)
	CurrentUser(ctx context.Context, accessToken string) (*models.User, error)
	Close() error
}
