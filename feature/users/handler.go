package users

import (
	"errors"

	"reorder/core/logger"
	"reorder/core/middleware/owner"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for users.
type Handler struct {
	service     *Service
	ownerHeader string
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, ownerHeader string) *Handler {
	return &Handler{service: service, ownerHeader: ownerHeader}
}

// LoginRequest is the body of a login.
type LoginRequest struct {
	Username string `json:"username"`
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/auth", owner.New(owner.Config{Header: h.ownerHeader, Optional: true}))
	group.Post("/login", h.HandleLogin)
	group.Get("/me", h.HandleMe)
}

// HandleLogin logs a user in by username.
// @Summary Login
// @Description Returns the user for a username. On first login the user is created with a seeded item list.
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Username"
// @Success 200 {object} models.User "User"
// @Failure 400 {object} map[string]string "Invalid username"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "body must be {\"username\": string}"})
	}

	user, err := h.service.Login(c.Context(), req.Username)
	if err != nil {
		if errors.Is(err, ErrInvalidUsername) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		l.Error("Login failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(user)
}

// HandleMe returns the user identified by the owner header.
// @Summary Current User
// @Description Returns the user named by the x-user-id header, or null.
// @Tags auth
// @Produce json
// @Param x-user-id header string false "User ID"
// @Success 200 {object} models.User "User or null"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /auth/me [get]
func (h *Handler) HandleMe(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)

	user, err := h.service.Me(c.Context(), owner.FromCtx(c))
	if err != nil {
		l.Error("User lookup failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if user == nil {
		return c.JSON(nil)
	}
	return c.JSON(user)
}
