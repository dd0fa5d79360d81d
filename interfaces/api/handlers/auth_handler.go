package handlers

import (
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	"event-gallery/domain/dto"
	"event-gallery/domain/services"
	"event-gallery/pkg/utils"
)

var validate = validator.New()

type AuthHandler struct {
	authService services.AuthService
}

func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

type registerRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Register creates a new user account
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	user, err := h.authService.Register(c.Context(), req.Email, req.Password, req.FullName)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			return utils.ErrorResponse(c, fiber.StatusConflict, "Email is already registered", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Registration failed", err)
	}

	return utils.CreatedResponse(c, "User registered", dto.ToUserResponse(user))
}

// Login authenticates a user and returns a token
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	token, user, err := h.authService.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrInvalidCredentials):
			return utils.UnauthorizedResponse(c, "Invalid email or password")
		case errors.Is(err, services.ErrUserInactive):
			return utils.ErrorResponse(c, fiber.StatusForbidden, "Account is inactive", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Login failed", err)
		}
	}

	return utils.SuccessResponse(c, "Login successful", dto.LoginResponse{
		Token: token,
		User:  dto.ToUserResponse(user),
	})
}

// Me returns the authenticated user
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *fiber.Ctx) error {
	token := utils.ExtractTokenFromHeader(c.Get("Authorization"))
	user, err := h.authService.GetCurrentUser(c.Context(), token)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.UnauthorizedResponse(c, "User no longer exists")
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to load user", err)
	}

	return utils.SuccessResponse(c, "Current user", dto.ToUserResponse(user))
}
