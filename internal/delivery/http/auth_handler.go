package http

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"botdesk/internal/delivery/http/dto"
	"botdesk/internal/service"
)

// AuthHandler handles authentication-related requests
type AuthHandler struct {
	auth *service.AuthService
	bots *service.BotService
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(auth *service.AuthService, bots *service.BotService) *AuthHandler {
	return &AuthHandler{auth: auth, bots: bots}
}

// Login handles user login
// POST /api/auth/login
func (h *AuthHandler) Login(c echo.Context) error {
	var req dto.LoginRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	// Syntactic validation belongs to the caller side of the store
	// boundary, so it lives here rather than in the service.
	if req.Email == "" || req.Password == "" {
		return BadRequestResponse(c, "Email and password are required")
	}
	if !strings.Contains(req.Email, "@") {
		return BadRequestResponse(c, "Email must be a valid address")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ok, err := h.auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to save session", err)
	}
	if !ok {
		return UnauthorizedResponse(c, "Invalid credentials")
	}

	return h.sessionResponse(c, http.StatusOK)
}

// Signup handles account creation
// POST /api/auth/signup
func (h *AuthHandler) Signup(c echo.Context) error {
	var req dto.SignupRequest
	if err := c.Bind(&req); err != nil {
		return BadRequestResponse(c, "Invalid request payload")
	}

	if req.Email == "" || req.Password == "" || req.FirstName == "" || req.LastName == "" {
		return BadRequestResponse(c, "All fields are required")
	}
	if !strings.Contains(req.Email, "@") {
		return BadRequestResponse(c, "Email must be a valid address")
	}
	if len(req.Password) < 6 {
		return BadRequestResponse(c, "Password must be at least 6 characters")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	ok, err := h.auth.Signup(ctx, req.Email, req.Password, req.FirstName, req.LastName)
	if err != nil {
		return InternalServerErrorResponse(c, "Failed to save session", err)
	}
	if !ok {
		return ConflictResponse(c, "An account with this email already exists")
	}

	return h.sessionResponse(c, http.StatusCreated)
}

// Logout handles user logout
// POST /api/auth/logout
func (h *AuthHandler) Logout(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	h.auth.Logout(ctx)

	// Clear the session cookie
	cookie := &http.Cookie{
		Name:     "token",
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	}
	c.SetCookie(cookie)

	return SuccessMessageResponse(c, "Logged out", nil)
}

// sessionResponse issues a token for the freshly established session,
// seeds starter bots for an otherwise empty registry and writes the
// session payload.
func (h *AuthHandler) sessionResponse(c echo.Context, status int) error {
	user := h.auth.CurrentUser()
	token := h.auth.Token()
	if user == nil || token == "" {
		return InternalServerErrorResponse(c, "Session not established", nil)
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.bots.SeedDemoBots(ctx, user.ID); err != nil {
		// Starter bots are cosmetic; the session itself is fine.
		c.Logger().Warnf("failed to seed demo bots: %v", err)
	}

	cookie := &http.Cookie{
		Name:     "token",
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   false, // Set to true in production with HTTPS
		SameSite: http.SameSiteStrictMode,
		MaxAge:   86400, // 24 hours
	}
	c.SetCookie(cookie)

	payload := dto.SessionResponse{
		Token: token,
		User:  dto.NewUserOutput(user),
	}

	if status == http.StatusCreated {
		return CreatedResponse(c, payload)
	}
	return SuccessResponse(c, payload)
}
