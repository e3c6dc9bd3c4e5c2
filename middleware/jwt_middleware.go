package middleware

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"cosmowatch/config"
	"cosmowatch/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

var (
	errMissingToken  = errors.New("missing bearer token")
	errInvalidToken  = errors.New("invalid bearer token")
	errInvalidClaims = errors.New("invalid claims")
	errInvalidIssuer = errors.New("invalid issuer")
)

// userClaims represents the JWT claims issued at login.
type userClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// JWTAuthMiddleware validates bearer tokens and installs the authenticated
// user context before any business logic runs.
type JWTAuthMiddleware struct {
	logger *slog.Logger
	secret []byte
	issuer string
}

// NewJWTAuthMiddleware creates a new JWT authentication middleware
func NewJWTAuthMiddleware(logger *slog.Logger, cfg *config.Config) *JWTAuthMiddleware {
	secret := []byte(cfg.Auth.Secret)
	if len(secret) == 0 {
		if logger != nil {
			logger.Warn("SECRET_KEY not set, JWT auth will deny all requests")
		}
	}

	return &JWTAuthMiddleware{
		logger: logger,
		secret: secret,
		issuer: cfg.Auth.Issuer,
	}
}

// RequireJWT ensures that a valid JWT token is present before allowing the request to proceed
func (m *JWTAuthMiddleware) RequireJWT() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			userCtx, err := m.validateJWT(c)
			if err != nil {
				switch {
				case errors.Is(err, errMissingToken):
					return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
				case errors.Is(err, errInvalidToken), errors.Is(err, errInvalidClaims):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid bearer token")
				case errors.Is(err, errInvalidIssuer):
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid token issuer")
				default:
					if m.logger != nil {
						m.logger.Error("JWT validation error", "error", err)
					}
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication failed")
				}
			}

			// Attach user context to request
			ctx := domain.SetUserContext(c.Request().Context(), userCtx)
			c.SetRequest(c.Request().WithContext(ctx))

			return next(c)
		}
	}
}

// validateJWT validates the Authorization header and returns user context
func (m *JWTAuthMiddleware) validateJWT(c echo.Context) (*domain.UserContext, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return nil, errMissingToken
	}

	tokenStr, found := strings.CutPrefix(header, "Bearer ")
	if !found || tokenStr == "" {
		return nil, errMissingToken
	}

	if len(m.secret) == 0 {
		return nil, fmt.Errorf("JWT secret not configured")
	}

	parsed, err := jwt.ParseWithClaims(tokenStr, &userClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, errInvalidToken
	}

	claims, ok := parsed.Claims.(*userClaims)
	if !ok {
		return nil, errInvalidClaims
	}

	if m.issuer != "" && claims.Issuer != m.issuer {
		return nil, errInvalidIssuer
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errInvalidClaims
	}

	userCtx := &domain.UserContext{
		UserID:   userID,
		Username: claims.Username,
	}
	if claims.IssuedAt != nil {
		userCtx.LoginAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		userCtx.ExpiresAt = claims.ExpiresAt.Time
	}

	if !userCtx.IsValid() {
		return nil, errInvalidClaims
	}

	return userCtx, nil
}

// GetUserFromEchoContext is a convenience for handlers that need the
// authenticated user after RequireJWT ran.
func GetUserFromEchoContext(c echo.Context) (*domain.UserContext, error) {
	return domain.GetUserFromContext(c.Request().Context())
}
