package rest

import (
	"errors"
	"net/http"

	"cosmowatch/di"
	"cosmowatch/gateway/auth_gateway"
	apperrors "cosmowatch/utils/errors"
	"cosmowatch/utils/validation"

	"github.com/labstack/echo/v4"
)

func registerAuthRoutes(e *echo.Echo, container *di.ApplicationComponents, validate *validation.Validator) {
	auth := e.Group("/auth")
	auth.POST("/register", handleRegister(container, validate))
	auth.POST("/login", handleLogin(container, validate))
}

func handleRegister(container *di.ApplicationComponents, validate *validation.Validator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req RegisterRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request body", "body", nil)
		}
		if err := validate.Validate(&req); err != nil {
			return handleValidationError(c, err.Error(), "body", nil)
		}

		token, err := container.AuthUsecase.Register(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth_gateway.ErrUsernameTaken) {
				return handleError(c, apperrors.NewAppContextError(
					string(apperrors.ErrCodeConflict),
					"username already taken",
					"rest", "AuthHandler", "register",
					err,
					map[string]interface{}{"username": req.Username},
				), "register")
			}
			return handleError(c, err, "register")
		}

		return c.JSON(http.StatusCreated, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}

func handleLogin(container *di.ApplicationComponents, validate *validation.Validator) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req LoginRequest
		if err := c.Bind(&req); err != nil {
			return handleValidationError(c, "Invalid request body", "body", nil)
		}
		if err := validate.Validate(&req); err != nil {
			return handleValidationError(c, err.Error(), "body", nil)
		}

		token, err := container.AuthUsecase.Login(c.Request().Context(), req.Username, req.Password)
		if err != nil {
			if errors.Is(err, auth_gateway.ErrInvalidCredentials) {
				return handleError(c, apperrors.NewAuthContextError(
					"invalid username or password",
					"rest", "AuthHandler", "login",
					err,
					nil,
				), "login")
			}
			return handleError(c, err, "login")
		}

		return c.JSON(http.StatusOK, TokenResponse{AccessToken: token, TokenType: "bearer"})
	}
}
