package handler

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"movie_catalog/helper"
	"movie_catalog/model"
	"movie_catalog/utils"
)

type MovieHandler struct {
	DB      *gorm.DB
	SiteURL string
	Cld     *cloudinary.Cloudinary
}

func NewMovieHandler(db *gorm.DB, siteURL string, cld *cloudinary.Cloudinary) *MovieHandler {
	return &MovieHandler{DB: db, SiteURL: siteURL, Cld: cld}
}

// withAssociations applies the eager loads every movie listing and detail
// response carries: screenings with their cinema, and actors.
func (h *MovieHandler) withAssociations(db *gorm.DB) *gorm.DB {
	return db.
		Preload("Screenings.Cinema").
		Preload("Screenings").
		Preload("Actors")
}

func (h *MovieHandler) GetMovies(c *fiber.Ctx) error {
	page := utils.ParsePage(c)

	var total int64
	if err := h.DB.Model(&model.Movie{}).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movies", err)
	}

	movies := []model.Movie{}
	if err := h.withAssociations(h.DB).
		Order("id").
		Offset((page - 1) * model.PageSize).
		Limit(model.PageSize).
		Find(&movies).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movies", err)
	}

	return c.JSON(utils.Paged(movies, page, total))
}

// GetMovieDetail resolves the path segment as a numeric id when it parses
// fully as an integer, and as a slug otherwise.
func (h *MovieHandler) GetMovieDetail(c *fiber.Ctx) error {
	identifier := c.Params("id")
	if identifier == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Movie identifier is required", nil)
	}

	var movie model.Movie
	var err error
	if id, convErr := strconv.Atoi(identifier); convErr == nil {
		err = h.withAssociations(h.DB).First(&movie, id).Error
	} else {
		err = h.withAssociations(h.DB).Where("slug = ?", identifier).First(&movie).Error
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movie", err)
	}

	return c.JSON(movie)
}

// searchQuery builds a fresh joined query matching the search term against
// movie title, screening cinema city and name, and actor name.
func (h *MovieHandler) searchQuery(pattern string) *gorm.DB {
	return h.DB.Model(&model.Movie{}).
		Joins("LEFT JOIN screenings ON screenings.movie_id = movies.id").
		Joins("LEFT JOIN cinemas ON cinemas.id = screenings.cinema_id").
		Joins("LEFT JOIN movie_actors ON movie_actors.movie_id = movies.id").
		Joins("LEFT JOIN actors ON actors.id = movie_actors.actor_id").
		Where("movies.title LIKE ? OR cinemas.city LIKE ? OR cinemas.name LIKE ? OR actors.name LIKE ?",
			pattern, pattern, pattern, pattern)
}

// SearchMovies runs the substring OR-search. Hits are de-duplicated by movie
// id and the totals are computed from the same de-duplicated set.
func (h *MovieHandler) SearchMovies(c *fiber.Ctx) error {
	search := strings.TrimSpace(c.Query("search"))
	if search == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Search parameter is required", nil)
	}
	page := utils.ParsePage(c)
	pattern := "%" + search + "%"

	var total int64
	if err := h.searchQuery(pattern).Distinct("movies.id").Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movies", err)
	}

	var rows []struct{ ID uint }
	if err := h.searchQuery(pattern).
		Select("DISTINCT movies.id AS id").
		Order("movies.id").
		Offset((page - 1) * model.PageSize).
		Limit(model.PageSize).
		Scan(&rows).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movies", err)
	}

	movies := []model.Movie{}
	if len(rows) > 0 {
		ids := make([]uint, 0, len(rows))
		for _, r := range rows {
			ids = append(ids, r.ID)
		}
		if err := h.withAssociations(h.DB).Where("id IN ?", ids).Order("id").Find(&movies).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movies", err)
		}
	}

	return c.JSON(utils.Paged(movies, page, total))
}

func (h *MovieHandler) CreateMovie(c *fiber.Ctx) error {
	input, ok := c.Locals("createMovieInput").(model.CreateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create movie", errors.New("missing validated input"))
	}

	var existing model.Movie
	err := h.DB.Where("title = ?", input.Title).First(&existing).Error
	if err == nil {
		return utils.ErrorResponse(c, fiber.StatusConflict, "Movie already exists", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create movie", err)
	}

	newMovie := new(model.Movie)
	if err := copier.Copy(newMovie, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create movie", err)
	}

	tx := h.DB.Begin()
	newMovie.Slug = helper.GenerateUniqueMovieSlug(tx, input.Title, 0)
	if err := tx.Create(newMovie).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create movie", err)
	}
	tx.Commit()

	return c.Status(fiber.StatusCreated).JSON(newMovie)
}

func (h *MovieHandler) UpdateMovie(c *fiber.Ctx) error {
	movieId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID", err)
	}
	input, ok := c.Locals("updateMovieInput").(model.UpdateMovieInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update movie", errors.New("missing validated input"))
	}

	var movie model.Movie
	if err := h.DB.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update movie", err)
	}

	if input.Title != nil && *input.Title != movie.Title {
		movie.Title = *input.Title
		movie.Slug = helper.GenerateUniqueMovieSlug(h.DB, *input.Title, movie.ID)
	}
	if input.Duration != nil {
		movie.Duration = *input.Duration
	}
	if input.Language != nil {
		movie.Language = *input.Language
	}
	if input.AgeLimit != nil {
		movie.AgeLimit = *input.AgeLimit
	}
	if input.Director != nil {
		movie.Director = *input.Director
	}
	if input.Synopsis != nil {
		movie.Synopsis = *input.Synopsis
	}
	if input.Photo != nil {
		movie.Photo = input.Photo
	}
	if input.Video != nil {
		movie.Video = input.Video
	}

	if err := h.DB.Save(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update movie", err)
	}

	return utils.MessageResponse(c, fiber.StatusOK, "Movie updated successfully")
}

// DeleteMovie removes the movie's screenings first, then the movie; no
// automatic cascade is relied upon.
func (h *MovieHandler) DeleteMovie(c *fiber.Ctx) error {
	movieId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID", err)
	}

	var movie model.Movie
	if err := h.DB.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movie", err)
	}

	tx := h.DB.Begin()
	if err := tx.Where("movie_id = ?", movie.ID).Delete(&model.Screening{}).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movie", err)
	}
	if err := tx.Model(&movie).Association("Actors").Clear(); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movie", err)
	}
	if err := tx.Delete(&movie).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete movie", err)
	}
	tx.Commit()

	return utils.MessageResponse(c, fiber.StatusOK, "Movie deleted successfully")
}

// GetMovieQR renders a QR code pointing at the movie's public page.
func (h *MovieHandler) GetMovieQR(c *fiber.Ctx) error {
	movieId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID", err)
	}

	var movie model.Movie
	if err := h.DB.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movie", err)
	}

	png, err := utils.GenerateQRCode(fmt.Sprintf("%s/movies/%s", h.SiteURL, movie.Slug), 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to generate QR code", err)
	}

	c.Set(fiber.HeaderContentType, "image/png")
	return c.Send(png)
}

// UploadPoster stores an uploaded poster on cloudinary and points
// Movie.Photo at it.
func (h *MovieHandler) UploadPoster(c *fiber.Ctx) error {
	if h.Cld == nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Poster uploads are not configured", nil)
	}

	movieId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid movie ID", err)
	}

	var movie model.Movie
	if err := h.DB.First(&movie, movieId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Movie not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch movie", err)
	}

	file, err := c.FormFile("poster")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Poster file is required", err)
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if ext != ".png" && ext != ".jpg" && ext != ".jpeg" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Unsupported file format (PNG, JPG, JPEG only)", nil)
	}

	reader, err := file.Open()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to read poster file", err)
	}
	defer reader.Close()

	uploadResult, err := h.Cld.Upload.Upload(context.Background(), reader, uploader.UploadParams{
		Folder:       "movie_posters",
		PublicID:     fmt.Sprintf("poster_%d_%s", movie.ID, uuid.NewString()),
		ResourceType: "image",
	})
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to upload poster", err)
	}

	movie.Photo = &uploadResult.SecureURL
	if err := h.DB.Save(&movie).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update movie", err)
	}

	return c.JSON(movie)
}
