package http

import (
	"context"
	"errors"
	"time"

	"github.com/labstack/echo/v4"

	"botdesk/internal/delivery/http/dto"
	"botdesk/internal/domain"
	"botdesk/internal/middleware"
	"botdesk/internal/service"
)

// BotHandler handles bot-registry requests.
type BotHandler struct {
	bots *service.BotService
}

// NewBotHandler creates a new BotHandler
func NewBotHandler(bots *service.BotService) *BotHandler {
	return &BotHandler{bots: bots}
}

// List returns all bots owned by the authenticated user
// GET /api/bots
func (h *BotHandler) List(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	bots := h.bots.GetUserBots(userID)
	if bots == nil {
		bots = []*domain.Bot{}
	}
	return SuccessResponse(c, bots)
}

// Create creates a new bot from the submitted form
// POST /api/bots
func (h *BotHandler) Create(c echo.Context) error {
	userID, err := middleware.GetUserID(c)
	if err != nil {
		return UnauthorizedResponse(c, "User not authenticated")
	}

	var req dto.CreateBotRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if req.Name == "" || req.Pair == "" {
		return BadRequestResponse(c, "Name and pair are required")
	}
	if !domain.ValidStrategy(req.Type) {
		return BadRequestResponse(c, "Unknown strategy type")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	bot, err := h.bots.CreateBot(ctx, req.ToConfig(), userID)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to save bot", err)
	}

	return CreatedResponse(c, bot)
}

// Get returns a single bot by ID
// GET /api/bots/:id
func (h *BotHandler) Get(c echo.Context) error {
	bot, err := h.bots.GetBotByID(c.Param("id"))
	if errors.Is(err, domain.ErrBotNotFound) {
		return NotFoundResponse(c, "Bot not found")
	}
	return SuccessResponse(c, bot)
}

// Update merges the given fields into a bot
// PATCH /api/bots/:id
func (h *BotHandler) Update(c echo.Context) error {
	var req dto.UpdateBotRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.bots.UpdateBot(ctx, c.Param("id"), req.ToDomain())
	if errors.Is(err, domain.ErrBotNotFound) {
		return NotFoundResponse(c, "Bot not found")
	}
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to save bot", err)
	}

	bot, err := h.bots.GetBotByID(c.Param("id"))
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to read bot", err)
	}
	return SuccessResponse(c, bot)
}

// Delete removes a bot; deleting an unknown ID is a no-op
// DELETE /api/bots/:id
func (h *BotHandler) Delete(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.bots.DeleteBot(ctx, c.Param("id")); err != nil {
		return InternalServerErrorResponse(c, "Failed to save registry", err)
	}
	return SuccessMessageResponse(c, "Bot deleted", nil)
}

// Toggle flips a bot between active and inactive
// POST /api/bots/:id/toggle
func (h *BotHandler) Toggle(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	err := h.bots.ToggleBotStatus(ctx, c.Param("id"))
	if errors.Is(err, domain.ErrBotNotFound) {
		return NotFoundResponse(c, "Bot not found")
	}
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to save bot", err)
	}

	bot, err := h.bots.GetBotByID(c.Param("id"))
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to read bot", err)
	}
	return SuccessResponse(c, bot)
}

// Refresh reloads the registry from storage
// POST /api/bots/refresh
func (h *BotHandler) Refresh(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	h.bots.Refresh(ctx)
	return SuccessMessageResponse(c, "Registry refreshed", nil)
}
