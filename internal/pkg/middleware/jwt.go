package middleware

import (
	"github.com/labstack/echo/v4"
	"github.com/parsab/daryaban/internal/utils"
)

// RequireRoles rejects callers whose token role is not in the allowed set.
// Expects the JWT middleware to have placed "user_role" in the context.
func RequireRoles(roles ...string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			role, _ := c.Get("user_role").(string)
			for _, r := range roles {
				if role == r {
					return next(c)
				}
			}
			return utils.ForbiddenResponse(c, "Insufficient role")
		}
	}
}
