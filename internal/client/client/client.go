package client

import (
	"context"

	"github.com/dmitrijs2005/palace/internal/client/models"
)

// Client is the transport-agnostic contract of the auth backend.
type Client interface {
	Close() error
	Signup(ctx context.Context, form models.SignupForm) (string, *models.User, error)
	Login(ctx context.Context, email, password string) (string, *models.User, error)
	GetMe(ctx context.Context, token string) (*models.User, error)
	UpdateRegions(ctx context.Context, token string, regions []string) (*models.User, error)
	DeleteMe(ctx context.Context, token string) error
	Ping(ctx context.Context) error
}
