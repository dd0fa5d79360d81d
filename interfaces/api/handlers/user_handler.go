package handlers

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"event-gallery/domain/dto"
	"event-gallery/domain/services"
	"event-gallery/pkg/utils"
)

// UserHandler is the admin user-management surface.
type UserHandler struct {
	userService services.UserService
}

func NewUserHandler(userService services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

type createUserRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name" validate:"required"`
	Role     string `json:"role" validate:"required,oneof=admin user"`
}

type updateRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=admin user"`
}

// ListUsers returns a paginated user listing
// GET /api/v1/users
func (h *UserHandler) ListUsers(c *fiber.Ctx) error {
	page, _ := strconv.Atoi(c.Query("page", "1"))
	limit, _ := strconv.Atoi(c.Query("limit", "20"))

	users, total, err := h.userService.ListUsers(c.Context(), page, limit)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to list users", err)
	}

	out := make([]dto.UserResponse, len(users))
	for i, u := range users {
		out[i] = dto.ToUserResponse(u)
	}
	return utils.SuccessResponse(c, "Users retrieved", dto.UserListResponse{
		Users: out,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// CreateUser creates a user with an explicit role
// POST /api/v1/users
func (h *UserHandler) CreateUser(c *fiber.Ctx) error {
	var req createUserRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	user, err := h.userService.CreateUser(c.Context(), req.Email, req.Password, req.FullName, req.Role)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmailTaken):
			return utils.ErrorResponse(c, fiber.StatusConflict, "Email is already registered", err)
		case errors.Is(err, services.ErrInvalidRole):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid role", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create user", err)
		}
	}

	return utils.CreatedResponse(c, "User created", dto.ToUserResponse(user))
}

// UpdateRole changes a user's role
// PUT /api/v1/users/:id/role
func (h *UserHandler) UpdateRole(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id", err)
	}

	var req updateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := validate.Struct(&req); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	if err := h.userService.UpdateRole(c.Context(), userID, req.Role); err != nil {
		switch {
		case errors.Is(err, services.ErrUserNotFound):
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
		case errors.Is(err, services.ErrInvalidRole):
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid role", err)
		default:
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to update role", err)
		}
	}

	return utils.SuccessResponse(c, "Role updated", nil)
}

// DeleteUser removes a user account
// DELETE /api/v1/users/:id
func (h *UserHandler) DeleteUser(c *fiber.Ctx) error {
	userID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid user id", err)
	}

	// Admins cannot delete themselves; it would orphan the admin panel.
	if userCtx, err := utils.GetUserFromContext(c); err == nil && userCtx.ID == userID {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Cannot delete your own account", nil)
	}

	if err := h.userService.DeleteUser(c.Context(), userID); err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "User not found", err)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete user", err)
	}

	return utils.SuccessResponse(c, "User deleted", nil)
}
