package utils

import (
	"math"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"

	"movie_catalog/model"
)

// ErrorResponse writes the `{error}` failure body. The underlying error is
// logged, never exposed to the caller.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		log.Error().Err(err).Int("status", status).Str("path", c.Path()).Msg(message)
	}
	return c.Status(status).JSON(fiber.Map{
		"error": message,
	})
}

// MessageResponse writes the `{message}` confirmation body.
func MessageResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"message": message,
	})
}

// ParsePage reads the 1-based `page` query parameter, defaulting to 1.
func ParsePage(c *fiber.Ctx) int {
	page, err := strconv.Atoi(c.Query("page", "1"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

func TotalPages(totalItem int64) int {
	return int(math.Ceil(float64(totalItem) / float64(model.PageSize)))
}

// Paged wraps a page of hits in the list envelope.
func Paged(hits any, page int, totalItem int64) model.PagedResponse {
	return model.PagedResponse{
		Hits:        hits,
		Page:        page,
		TotalItem:   totalItem,
		TotalPages:  TotalPages(totalItem),
		ItemPerPage: model.PageSize,
	}
}
