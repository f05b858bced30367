package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// AccessVerifier is the slice of the token service the middleware needs.
type AccessVerifier interface {
	VerifyAccess(token string) (id, role string, err error)
}

// Auth validates the bearer token and injects the caller's id and role into
// the request context. The role comes straight from the token claims; it is
// not re-checked against the store.
func Auth(verifier AccessVerifier) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			id, role, err := verifier.VerifyAccess(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set("user_id", id)
			c.Set("role", role)

			return next(c)
		}
	}
}
