package middleware

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"movie_catalog/helper"
	"movie_catalog/utils"
)

// Protected gates every mutating route. It accepts the session cookie or an
// Authorization: Bearer header, so browser pages and API clients go through
// the same check.
func Protected() fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := c.Cookies("token")

		if token == "" {
			auth := c.Get("Authorization")
			if strings.HasPrefix(auth, "Bearer ") {
				token = strings.TrimPrefix(auth, "Bearer ")
			}
		}

		if token == "" {
			return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authorization token is required", nil)
		}

		adminId, err := helper.VerifyToken(token)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Invalid or expired token", err)
		}

		c.Locals("adminId", adminId)
		return c.Next()
	}
}
