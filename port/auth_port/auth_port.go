package auth_port

import (
	"context"

	"cosmowatch/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=auth_port.go -destination=../../mocks/mock_auth_port.go -package=mocks

// RegisterUserPort stores a new account. Password hashing happens behind
// this port; the plaintext never reaches persistence.
type RegisterUserPort interface {
	CreateUser(ctx context.Context, username, password string) (*domain.User, error)
}

// AuthenticateUserPort verifies credentials and returns the matching user.
type AuthenticateUserPort interface {
	Authenticate(ctx context.Context, username, password string) (*domain.User, error)
}
