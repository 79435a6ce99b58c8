package http

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"

	"botdesk/internal/delivery/http/dto"
	"botdesk/internal/service"
)

// UserHandler handles profile requests for the current session.
type UserHandler struct {
	auth *service.AuthService
}

// NewUserHandler creates a new UserHandler
func NewUserHandler(auth *service.AuthService) *UserHandler {
	return &UserHandler{auth: auth}
}

// GetMe returns current user details
// GET /api/user/me
func (h *UserHandler) GetMe(c echo.Context) error {
	user := h.auth.CurrentUser()
	if user == nil {
		return UnauthorizedResponse(c, "No active session")
	}
	return SuccessResponse(c, dto.NewUserOutput(user))
}

// UpdateMe merges the given profile fields into the current user
// PATCH /api/user/me
func (h *UserHandler) UpdateMe(c echo.Context) error {
	var req dto.UpdateUserRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if !h.auth.IsAuthenticated() {
		return UnauthorizedResponse(c, "No active session")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.auth.UpdateUser(ctx, req.ToDomain()); err != nil {
		return InternalServerErrorResponse(c, "Failed to update profile", err)
	}

	return SuccessResponse(c, dto.NewUserOutput(h.auth.CurrentUser()))
}
