package client

import (
	"context"

	"github.com/dmitrijs2005/odontofast/internal/client/models"
)

// Client is the transport-agnostic contract of the remote auth backend.
type Client interface {
	// Login posts the credentials. A rejected login yields *AuthRejectedError;
	// transport problems yield ErrNetworkFailure.
	Login(ctx context.Context, nrCarteira, senha string) (*models.LoginResponse, error)
}
