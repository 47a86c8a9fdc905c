package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/kernel"
	"github.com/NegritaW/Sistema-Comandas/internal/core/domain/model/staff"
	"github.com/NegritaW/Sistema-Comandas/internal/generated/servers"
	"github.com/NegritaW/Sistema-Comandas/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

const (
	staffIDContextKey   = "staffID"
	staffRoleContextKey = "staffRole"

	relayTokenHeader = "X-Relay-Token"
)

// staffClaims is the JWT payload issued on login. The subject carries the
// staff member's ID.
type staffClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies the bearer tokens handed out on login.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates a TokenIssuer signing with the given HS256 secret.
// Tokens expire after ttl.
func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errs.NewValueIsRequiredError("secret")
	}
	if ttl <= 0 {
		return nil, errs.NewValueIsRequiredError("ttl")
	}

	return &TokenIssuer{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs a token identifying the given staff member.
func (i *TokenIssuer) Issue(staffID, username, role string, now time.Time) (string, error) {
	claims := staffClaims{
		Username: username,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   staffID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies a token's signature and expiry and returns its claims.
func (i *TokenIssuer) Parse(tokenString string) (*staffClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &staffClaims{}, func(token *jwt.Token) (any, error) {
		return i.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*staffClaims)
	if !ok {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return claims, nil
}

// NewAuthMiddleware guards the API surface by route prefix. Login,
// registration and the health check are public. The kitchen ingest
// endpoint authenticates relay instances with a shared token instead of
// a staff credential. Everything else requires a bearer token whose role
// grants the matching workflow permission; the menu is readable by any
// authenticated staff member.
func NewAuthMiddleware(issuer *TokenIssuer, relayToken string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			path := ctx.Request().URL.Path

			if isPublicPath(path) {
				return next(ctx)
			}

			if path == "/kitchen/ingest" {
				if relayToken != "" && ctx.Request().Header.Get(relayTokenHeader) != relayToken {
					return authError(ctx, http.StatusUnauthorized, "Invalid relay token")
				}
				return next(ctx)
			}

			tokenString, ok := bearerToken(ctx.Request())
			if !ok {
				return authError(ctx, http.StatusUnauthorized, "Missing bearer token")
			}

			claims, err := issuer.Parse(tokenString)
			if err != nil {
				return authError(ctx, http.StatusUnauthorized, "Invalid or expired token")
			}

			role, err := staff.ParseRole(claims.Role)
			if err != nil {
				return authError(ctx, http.StatusUnauthorized, "Invalid or expired token")
			}

			staffID, err := kernel.UUIDFromString(claims.Subject)
			if err != nil {
				return authError(ctx, http.StatusUnauthorized, "Invalid or expired token")
			}

			if !permits(path, role) {
				return authError(ctx, http.StatusForbidden, "Role is not allowed to use this endpoint")
			}

			ctx.Set(staffIDContextKey, staffID)
			ctx.Set(staffRoleContextKey, role)

			return next(ctx)
		}
	}
}

func isPublicPath(path string) bool {
	switch path {
	case "/health", "/auth/login", "/auth/register":
		return true
	}
	return false
}

// permits maps a route prefix to the role permission it requires.
// Prefixes without a workflow permission, the menu and the customer
// directory, admit any authenticated staff member.
func permits(path string, role staff.Role) bool {
	switch {
	case strings.HasPrefix(path, "/orders"):
		return role.CanServe()
	case strings.HasPrefix(path, "/kitchen"):
		return role.CanCook()
	case strings.HasPrefix(path, "/management"):
		return role.CanManage()
	}
	return role.Validate() == nil
}

func bearerToken(r *http.Request) (string, bool) {
	const prefix = "Bearer "
	header := r.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(header, prefix) {
		return "", false
	}
	return strings.TrimPrefix(header, prefix), true
}

func authError(ctx echo.Context, status int, message string) error {
	return ctx.JSON(status, servers.Error{Code: status, Message: message})
}

// currentStaffID returns the staff identity placed on the context by the
// auth middleware.
func currentStaffID(ctx echo.Context) (kernel.UUID, error) {
	id, ok := ctx.Get(staffIDContextKey).(kernel.UUID)
	if !ok {
		return kernel.UUID{}, errs.NewValueIsRequiredError("staffID")
	}
	return id, nil
}
