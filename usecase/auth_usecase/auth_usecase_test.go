package auth_usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"cosmowatch/config"
	"cosmowatch/domain"
	"cosmowatch/mocks"
	"cosmowatch/utils/logger"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"go.uber.org/mock/gomock"
)

var testAuthConfig = config.AuthConfig{
	Secret:   "test-secret-key-for-signing",
	Issuer:   "cosmowatch",
	TokenTTL: 24 * time.Hour,
}

func parseTestToken(t *testing.T, tokenString string) *tokenClaims {
	t.Helper()
	claims := &tokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testAuthConfig.Secret), nil
	})
	if err != nil {
		t.Fatalf("failed to parse issued token: %v", err)
	}
	if !token.Valid {
		t.Fatal("issued token is not valid")
	}
	return claims
}

func TestAuthUsecase_Register(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegister := mocks.NewMockRegisterUserPort(ctrl)
	mockAuthenticate := mocks.NewMockAuthenticateUserPort(ctrl)
	usecase := NewAuthUsecase(mockRegister, mockAuthenticate, testAuthConfig)

	userID := uuid.New()
	mockRegister.EXPECT().
		CreateUser(gomock.Any(), "stargazer", "correct horse battery").
		Return(&domain.User{ID: userID, Username: "stargazer"}, nil)

	tokenString, err := usecase.Register(context.Background(), "stargazer", "correct horse battery")
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}

	claims := parseTestToken(t, tokenString)
	if claims.Subject != userID.String() {
		t.Errorf("sub = %s, want %s", claims.Subject, userID)
	}
	if claims.Username != "stargazer" {
		t.Errorf("username claim = %s, want stargazer", claims.Username)
	}
	if claims.Issuer != "cosmowatch" {
		t.Errorf("iss = %s, want cosmowatch", claims.Issuer)
	}
}

func TestAuthUsecase_Register_CreateFails(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegister := mocks.NewMockRegisterUserPort(ctrl)
	mockAuthenticate := mocks.NewMockAuthenticateUserPort(ctrl)
	usecase := NewAuthUsecase(mockRegister, mockAuthenticate, testAuthConfig)

	createErr := errors.New("username already taken")
	mockRegister.EXPECT().
		CreateUser(gomock.Any(), "stargazer", gomock.Any()).
		Return(nil, createErr)

	_, err := usecase.Register(context.Background(), "stargazer", "pw12345678")
	if !errors.Is(err, createErr) {
		t.Errorf("Register() error = %v, want %v", err, createErr)
	}
}

func TestAuthUsecase_Login(t *testing.T) {
	logger.InitLogger()

	frozen := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	domain.SetClock(clockwork.NewFakeClockAt(frozen))
	defer domain.SetClock(nil)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegister := mocks.NewMockRegisterUserPort(ctrl)
	mockAuthenticate := mocks.NewMockAuthenticateUserPort(ctrl)
	usecase := NewAuthUsecase(mockRegister, mockAuthenticate, testAuthConfig)

	userID := uuid.New()
	mockAuthenticate.EXPECT().
		Authenticate(gomock.Any(), "stargazer", "correct horse battery").
		Return(&domain.User{ID: userID, Username: "stargazer"}, nil)

	tokenString, err := usecase.Login(context.Background(), "stargazer", "correct horse battery")
	if err != nil {
		t.Fatalf("Login() error = %v", err)
	}

	// Validate against the frozen clock, not wall time.
	claims := &tokenClaims{}
	_, err = jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(testAuthConfig.Secret), nil
	}, jwt.WithTimeFunc(func() time.Time { return frozen }))
	if err != nil {
		t.Fatalf("failed to parse issued token: %v", err)
	}
	if !claims.ExpiresAt.Time.Equal(frozen.Add(24 * time.Hour)) {
		t.Errorf("exp = %v, want %v", claims.ExpiresAt.Time, frozen.Add(24*time.Hour))
	}
}

func TestAuthUsecase_Login_InvalidCredentials(t *testing.T) {
	logger.InitLogger()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRegister := mocks.NewMockRegisterUserPort(ctrl)
	mockAuthenticate := mocks.NewMockAuthenticateUserPort(ctrl)
	usecase := NewAuthUsecase(mockRegister, mockAuthenticate, testAuthConfig)

	authErr := errors.New("invalid credentials")
	mockAuthenticate.EXPECT().
		Authenticate(gomock.Any(), "stargazer", "wrong").
		Return(nil, authErr)

	_, err := usecase.Login(context.Background(), "stargazer", "wrong")
	if !errors.Is(err, authErr) {
		t.Errorf("Login() error = %v, want %v", err, authErr)
	}
}
