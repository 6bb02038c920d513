package handler

import "github.com/gofiber/fiber/v2"

// Welcome is the liveness endpoint.
func Welcome(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "Welcome to the API",
	})
}
