package auth_usecase

import (
	"context"
	"time"

	"cosmowatch/config"
	"cosmowatch/domain"
	"cosmowatch/port/auth_port"

	"github.com/golang-jwt/jwt/v5"
)

// tokenClaims represents the JWT claims issued to authenticated users.
type tokenClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// AuthUsecase handles account registration and login, issuing HS256 bearer
// tokens consumed by the watchlist and alert endpoints.
type AuthUsecase struct {
	registerUserPort     auth_port.RegisterUserPort
	authenticateUserPort auth_port.AuthenticateUserPort
	secret               []byte
	issuer               string
	tokenTTL             time.Duration
}

func NewAuthUsecase(registerUserPort auth_port.RegisterUserPort, authenticateUserPort auth_port.AuthenticateUserPort, cfg config.AuthConfig) *AuthUsecase {
	return &AuthUsecase{
		registerUserPort:     registerUserPort,
		authenticateUserPort: authenticateUserPort,
		secret:               []byte(cfg.Secret),
		issuer:               cfg.Issuer,
		tokenTTL:             cfg.TokenTTL,
	}
}

// Register creates a new account and immediately issues a token for it.
func (u *AuthUsecase) Register(ctx context.Context, username, password string) (string, error) {
	user, err := u.registerUserPort.CreateUser(ctx, username, password)
	if err != nil {
		return "", err
	}

	return u.issueToken(user)
}

// Login verifies credentials and issues a token.
func (u *AuthUsecase) Login(ctx context.Context, username, password string) (string, error) {
	user, err := u.authenticateUserPort.Authenticate(ctx, username, password)
	if err != nil {
		return "", err
	}

	return u.issueToken(user)
}

func (u *AuthUsecase) issueToken(user *domain.User) (string, error) {
	now := domain.Clock().Now()
	claims := tokenClaims{
		Username: user.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    u.issuer,
			Subject:   user.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(u.tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(u.secret)
}
