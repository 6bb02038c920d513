package validate

import (
	"github.com/gofiber/fiber/v2"

	"movie_catalog/model"
	"movie_catalog/utils"
)

func CreateActor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateActorInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields", err)
		}

		c.Locals("createActorInput", input)
		return c.Next()
	}
}

func UpdateActor() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateActorInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields", err)
		}

		c.Locals("updateActorInput", input)
		return c.Next()
	}
}
