package validate

import (
	"github.com/gofiber/fiber/v2"

	"movie_catalog/model"
	"movie_catalog/utils"
)

// CreateMovie parses and validates the movie creation body into
// c.Locals("createMovieInput"). Database checks (duplicate title) belong to
// the handler.
func CreateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.CreateMovieInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Duration and age limit must be integers", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields", err)
		}

		c.Locals("createMovieInput", input)
		return c.Next()
	}
}

func UpdateMovie() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var input model.UpdateMovieInput

		if err := c.BodyParser(&input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Duration and age limit must be integers", err)
		}

		if err := validate.Struct(input); err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid field values", err)
		}

		c.Locals("updateMovieInput", input)
		return c.Next()
	}
}
