package handler

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"

	"movie_catalog/model"
	"movie_catalog/utils"
)

type ActorHandler struct {
	DB *gorm.DB
}

func NewActorHandler(db *gorm.DB) *ActorHandler {
	return &ActorHandler{DB: db}
}

func (h *ActorHandler) GetActors(c *fiber.Ctx) error {
	page := utils.ParsePage(c)

	var total int64
	if err := h.DB.Model(&model.Actor{}).Count(&total).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch actors", err)
	}

	actors := []model.Actor{}
	if err := h.DB.
		Order("id").
		Offset((page - 1) * model.PageSize).
		Limit(model.PageSize).
		Find(&actors).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch actors", err)
	}

	return c.JSON(utils.Paged(actors, page, total))
}

func (h *ActorHandler) GetActorById(c *fiber.Ctx) error {
	actorId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID", err)
	}

	var actor model.Actor
	if err := h.DB.First(&actor, actorId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Actor not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch actor", err)
	}

	return c.JSON(actor)
}

func (h *ActorHandler) CreateActor(c *fiber.Ctx) error {
	input, ok := c.Locals("createActorInput").(model.CreateActorInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create actor", errors.New("missing validated input"))
	}

	newActor := new(model.Actor)
	if err := copier.Copy(newActor, &input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create actor", err)
	}
	if err := h.DB.Create(newActor).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create actor", err)
	}

	return c.Status(fiber.StatusCreated).JSON(newActor)
}

// UpdateActor replaces the record wholesale: an omitted profile clears the
// stored one.
func (h *ActorHandler) UpdateActor(c *fiber.Ctx) error {
	actorId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID", err)
	}
	input, ok := c.Locals("updateActorInput").(model.UpdateActorInput)
	if !ok {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update actor", errors.New("missing validated input"))
	}

	var actor model.Actor
	if err := h.DB.First(&actor, actorId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Actor not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update actor", err)
	}

	actor.Name = input.Name
	actor.Profile = input.Profile
	if err := h.DB.Save(&actor).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update actor", err)
	}

	return c.JSON(actor)
}

// DeleteActor returns the removed record.
func (h *ActorHandler) DeleteActor(c *fiber.Ctx) error {
	actorId, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid actor ID", err)
	}

	var actor model.Actor
	if err := h.DB.First(&actor, actorId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "Actor not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete actor", err)
	}

	tx := h.DB.Begin()
	if err := tx.Model(&actor).Association("Movies").Clear(); err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete actor", err)
	}
	if err := tx.Delete(&actor).Error; err != nil {
		tx.Rollback()
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete actor", err)
	}
	tx.Commit()

	return c.JSON(actor)
}
