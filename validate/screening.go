package validate

import (
	"github.com/gofiber/fiber/v2"

	"movie_catalog/model"
	"movie_catalog/utils"
)

func CreateScreening() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateScreeningInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields", err)
		}

		c.Locals("createScreeningInput", input)
		return c.Next()
	}
}

func UpdateScreening() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateScreeningInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}

		c.Locals("updateScreeningInput", input)
		return c.Next()
	}
}
