package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"movie_catalog/model"
	"movie_catalog/utils"
)

type ScreeningHandler struct {
	DB *gorm.DB
}

func NewScreeningHandler(db *gorm.DB) *ScreeningHandler {
	return &ScreeningHandler{DB: db}
}

func toScreeningResponse(s model.Screening) model.ScreeningResponse {
	resp := model.ScreeningResponse{
		ID:        s.ID,
		MovieId:   s.MovieId,
		CinemaId:  s.CinemaId,
		StartTime: s.StartTime,
		Subtitle:  s.Subtitle,
	}
	if s.Movie != nil {
		resp.Movie = model.ScreeningMovieRef{Slug: s.Movie.Slug, Title: s.Movie.Title}
	}
	if s.Cinema != nil {
		resp.Cinema = model.ScreeningCinemaRef{Name: s.Cinema.Name, City: s.Cinema.City, Address: s.Cinema.Address}
	}
	return resp
}

func (h *ScreeningHandler) GetScreenings(c *fiber.Ctx) error {
	page := utils.ParsePage(c)

	var total int64
	if err := h.DB.Model(&model.Screening{}).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch screenings", err)
	}

	screenings := []model.Screening{}
	if err := h.DB.
		Preload("Movie").
		Preload("Cinema").
		Order("id").
		Offset((page - 1) * model.PageSize).
		Limit(model.PageSize).
		Find(&screenings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch screenings", err)
	}

	hits := make([]model.ScreeningResponse, 0, len(screenings))
	for _, s := range screenings {
		hits = append(hits, toScreeningResponse(s))
	}

	return c.JSON(utils.Paged(hits, page, total))
}

func (h *ScreeningHandler) GetScreeningById(c *fiber.Ctx) error {
	screeningId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid screening ID", err)
	}

	var screening model.Screening
	if err := h.DB.Preload("Movie").Preload("Cinema").First(&screening, screeningId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Screening not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch screening", err)
	}

	return c.JSON(toScreeningResponse(screening))
}

func (h *ScreeningHandler) CreateScreening(c *fiber.Ctx) error {
	input, ok := c.Locals("createScreeningInput").(model.CreateScreeningInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create screening", errors.New("missing validated input"))
	}

	var movie model.Movie
	if err := h.DB.First(&movie, input.MovieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create screening", err)
	}
	var cinema model.Cinema
	if err := h.DB.First(&cinema, input.CinemaId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Cinema not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create screening", err)
	}

	newScreening := model.Screening{
		MovieId:   input.MovieId,
		CinemaId:  input.CinemaId,
		StartTime: input.StartTime,
		Subtitle:  input.Subtitle,
	}
	if err := h.DB.Create(&newScreening).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create screening", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newScreening)
}

func (h *ScreeningHandler) UpdateScreening(c *fiber.Ctx) error {
	screeningId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid screening ID", err)
	}
	input, ok := c.Locals("updateScreeningInput").(model.UpdateScreeningInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update screening", errors.New("missing validated input"))
	}

	var screening model.Screening
	if err := h.DB.First(&screening, screeningId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Screening not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update screening", err)
	}

	if input.MovieId != nil {
		var movie model.Movie
		if err := h.DB.First(&movie, *input.MovieId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update screening", err)
		}
		screening.MovieId = *input.MovieId
	}
	if input.CinemaId != nil {
		var cinema model.Cinema
		if err := h.DB.First(&cinema, *input.CinemaId).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return utils.ErrorResponse(c, fiber.StatusNotFound, "Cinema not found", err)
			}
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update screening", err)
		}
		screening.CinemaId = *input.CinemaId
	}
	if input.StartTime != nil {
		screening.StartTime = *input.StartTime
	}
	if input.Subtitle != nil {
		screening.Subtitle = *input.Subtitle
	}

	if err := h.DB.Save(&screening).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update screening", err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Screening updated successfully")
}

func (h *ScreeningHandler) DeleteScreening(c *fiber.Ctx) error {
	screeningId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid screening ID", err)
	}

	var screening model.Screening
	if err := h.DB.First(&screening, screeningId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Screening not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete screening", err)
	}

	if err := h.DB.Delete(&screening).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete screening", err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Screening deleted successfully")
}
