package rest

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"cosmowatch/config"
	"cosmowatch/di"
	"cosmowatch/domain"
	"cosmowatch/gateway/auth_gateway"
	"cosmowatch/mocks"
	"cosmowatch/usecase/auth_usecase"
	"cosmowatch/utils/logger"
	"cosmowatch/utils/validation"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newJSONContext(t *testing.T, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	logger.InitLogger()

	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func newAuthContainer(t *testing.T) (*di.ApplicationComponents, *mocks.MockRegisterUserPort, *mocks.MockAuthenticateUserPort) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRegister := mocks.NewMockRegisterUserPort(ctrl)
	mockAuthenticate := mocks.NewMockAuthenticateUserPort(ctrl)
	container := &di.ApplicationComponents{
		AuthUsecase: auth_usecase.NewAuthUsecase(mockRegister, mockAuthenticate, config.AuthConfig{
			Secret:   "test-secret-key-for-signing",
			Issuer:   "cosmowatch",
			TokenTTL: 24 * time.Hour,
		}),
	}
	return container, mockRegister, mockAuthenticate
}

func TestHandleRegister(t *testing.T) {
	container, mockRegister, _ := newAuthContainer(t)
	handler := handleRegister(container, validation.New())

	t.Run("success issues bearer token", func(t *testing.T) {
		c, rec := newJSONContext(t, "/auth/register", `{"username":"stargazer","password":"longenoughpw"}`)

		mockRegister.EXPECT().
			CreateUser(gomock.Any(), "stargazer", "longenoughpw").
			Return(&domain.User{ID: uuid.New(), Username: "stargazer"}, nil)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusCreated, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
		assert.Equal(t, "bearer", resp.TokenType)
	})

	t.Run("duplicate username conflicts", func(t *testing.T) {
		c, rec := newJSONContext(t, "/auth/register", `{"username":"stargazer","password":"longenoughpw"}`)

		mockRegister.EXPECT().
			CreateUser(gomock.Any(), "stargazer", gomock.Any()).
			Return(nil, auth_gateway.ErrUsernameTaken)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("short password rejected", func(t *testing.T) {
		c, rec := newJSONContext(t, "/auth/register", `{"username":"stargazer","password":"short"}`)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestHandleLogin(t *testing.T) {
	container, _, mockAuthenticate := newAuthContainer(t)
	handler := handleLogin(container, validation.New())

	t.Run("success", func(t *testing.T) {
		c, rec := newJSONContext(t, "/auth/login", `{"username":"stargazer","password":"longenoughpw"}`)

		mockAuthenticate.EXPECT().
			Authenticate(gomock.Any(), "stargazer", "longenoughpw").
			Return(&domain.User{ID: uuid.New(), Username: "stargazer"}, nil)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusOK, rec.Code)

		var resp TokenResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
		assert.NotEmpty(t, resp.AccessToken)
	})

	t.Run("wrong credentials unauthorized", func(t *testing.T) {
		c, rec := newJSONContext(t, "/auth/login", `{"username":"stargazer","password":"wrong"}`)

		mockAuthenticate.EXPECT().
			Authenticate(gomock.Any(), "stargazer", "wrong").
			Return(nil, auth_gateway.ErrInvalidCredentials)

		require.NoError(t, handler(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
