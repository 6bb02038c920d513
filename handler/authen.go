package handler

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"movie_catalog/config"
	"movie_catalog/helper"
	"movie_catalog/model"
	"movie_catalog/utils"
)

const sessionLifetime = 72 * time.Hour

type AuthHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

func NewAuthHandler(db *gorm.DB, cfg *config.Config) *AuthHandler {
	return &AuthHandler{DB: db, Cfg: cfg}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var input model.SignupInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields", err)
	}
	if input.Email == "" || input.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields", nil)
	}
	if !helper.IsValidEmail(input.Email) || !helper.IsValidPassword(input.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email or password", nil)
	}

	var existing model.Administrator
	err := h.DB.Where("email = ?", input.Email).First(&existing).Error
	if err == nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "User already exists", nil)
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user", err)
	}

	hash, err := helper.HashPassword(input.Password)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user", err)
	}
	admin := model.Administrator{Email: input.Email, Password: hash}
	if err := h.DB.Create(&admin).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user", err)
	}

	utils.SendWelcomeEmail(h.Cfg, admin.Email, localPart(admin.Email))

	return utils.MessageResponse(c, fiber.StatusOK, "User created successfully")
}

// Login responds with the same message for an unknown email, a malformed
// one, and a wrong password, so the endpoint does not leak which accounts
// exist.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var input model.LoginInput
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields", err)
	}
	if input.Email == "" || input.Password == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing required fields", nil)
	}
	if !helper.IsValidEmail(input.Email) || !helper.IsValidPassword(input.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email or password", nil)
	}

	var admin model.Administrator
	if err := h.DB.Where("email = ?", input.Email).First(&admin).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email or password", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in", err)
	}
	if !helper.CheckPasswordHash(input.Password, admin.Password) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid email or password", nil)
	}

	token, err := helper.GenerateToken(admin.ID)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to log in", err)
	}

	expires := time.Now().Add(sessionLifetime)
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    token,
		Expires:  expires,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "username",
		Value:    localPart(admin.Email),
		Expires:  expires,
		Secure:   true,
		SameSite: "Strict",
	})

	return c.JSON(fiber.Map{"token": token})
}

func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	expired := time.Now().Add(-time.Hour)
	c.Cookie(&fiber.Cookie{
		Name:     "token",
		Value:    "",
		Expires:  expired,
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Strict",
	})
	c.Cookie(&fiber.Cookie{
		Name:     "username",
		Value:    "",
		Expires:  expired,
		Secure:   true,
		SameSite: "Strict",
	})

	return utils.MessageResponse(c, fiber.StatusOK, "Logged out successfully")
}

// Session reports the authenticated administrator behind the token cookie.
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	token := c.Cookies("token")
	if token == "" {
		return utils.ErrorResponse(c, fiber.StatusUnauthorized, "Authorization token is required", nil)
	}
	adminId, err := helper.VerifyToken(token)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusForbidden, "Invalid or expired token", err)
	}

	var admin model.Administrator
	if err := h.DB.First(&admin, adminId).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Invalid or expired token", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to fetch session", err)
	}

	return c.JSON(fiber.Map{"id": admin.ID, "email": admin.Email})
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}
