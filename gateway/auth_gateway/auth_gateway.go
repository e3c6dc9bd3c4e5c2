package auth_gateway

import (
	"context"
	"errors"

	"cosmowatch/domain"
	"cosmowatch/driver/astro_db"
	"cosmowatch/driver/models"
	"cosmowatch/utils/logger"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so callers cannot distinguish the two.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUsernameTaken re-exports the driver sentinel for usecase-level checks.
var ErrUsernameTaken = astro_db.ErrUsernameTaken

// AuthGateway adapts the users table and bcrypt hashing to the auth ports.
// Plaintext passwords never cross this boundary outward.
type AuthGateway struct {
	astroDB *astro_db.AstroDBRepository
}

func NewAuthGateway(astroDB *astro_db.AstroDBRepository) *AuthGateway {
	return &AuthGateway{astroDB: astroDB}
}

func (g *AuthGateway) CreateUser(ctx context.Context, username, password string) (*domain.User, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Logger.Error("error hashing password", "error", err)
		return nil, errors.New("error hashing password")
	}

	user := models.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: string(hash),
		CreatedAt:    domain.Clock().Now(),
	}

	if err := g.astroDB.InsertUser(ctx, user); err != nil {
		return nil, err
	}

	return &domain.User{
		ID:        user.ID,
		Username:  user.Username,
		CreatedAt: user.CreatedAt,
	}, nil
}

func (g *AuthGateway) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	row, err := g.astroDB.FindUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		logger.Logger.Error("error looking up user", "error", err, "username", username)
		return nil, errors.New("error looking up user")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(row.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return &domain.User{
		ID:        row.ID,
		Username:  row.Username,
		CreatedAt: row.CreatedAt,
	}, nil
}
