package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RBAC enforces a coarse role gate on a route. Finer rules that need the
// resource (ownership on edits) are decided in the service layer.
func RBAC(allowedRoles ...string) echo.MiddlewareFunc {
	allowed := make(map[string]struct{}, len(allowedRoles))
	for _, r := range allowedRoles {
		allowed[r] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("role").(string)
			if _, ok := allowed[role]; !ok {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "insufficient-role"})
			}
			return next(c)
		}
	}
}
