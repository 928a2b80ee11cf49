package items

import (
	"errors"

	"reorder/core/logger"
	"reorder/core/middleware/owner"
	"reorder/core/ordering"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for an owner's items.
type Handler struct {
	service     *Service
	ownerHeader string
}

// NewHandler creates a new HTTP handler. ownerHeader names the header carrying the owner id.
func NewHandler(service *Service, ownerHeader string) *Handler {
	return &Handler{service: service, ownerHeader: ownerHeader}
}

// MoveRequest is the body of a position update.
type MoveRequest struct {
	NewPosition *float64 `json:"newPosition"`
}

// RegisterRoutes registers the items routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	// Settings are not owner specific and are registered ahead of the owner guard.
	app.Get("/items/settings", h.HandleSettings)

	group := app.Group("/items", owner.New(owner.Config{Header: h.ownerHeader}))
	group.Get("/", h.HandleList)
	group.Get("/snapshots", h.HandleSnapshots)
	group.Patch("/:id/position", h.HandleMove)
	group.Post("/reset", h.HandleReset)
	group.Post("/normalize", h.HandleNormalize)
}

// HandleList returns the owner's items.
// @Summary List Items
// @Description Returns the owner's items ascending by position.
// @Tags items
// @Produce json
// @Param x-user-id header string true "Owner ID"
// @Success 200 {array} ordering.Item "Items"
// @Failure 401 {object} map[string]string "Missing owner"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)

	items, err := h.service.List(c.Context(), owner.FromCtx(c))
	if err != nil {
		l.Error("Listing items failed", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(items)
}

// HandleMove moves an item to a new position.
// @Summary Move Item
// @Description Moves an item to newPosition. Writes a single row unless the position collides with a neighbour, in which case the whole list is renumbered.
// @Tags items
// @Accept json
// @Produce json
// @Param x-user-id header string true "Owner ID"
// @Param id path string true "Item ID"
// @Param body body MoveRequest true "New position"
// @Success 200 {object} ordering.Item "Moved item"
// @Failure 400 {object} map[string]string "Invalid position"
// @Failure 404 {object} map[string]string "Item not found"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/{id}/position [patch]
func (h *Handler) HandleMove(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)
	id := c.Params("id")

	var req MoveRequest
	if err := c.BodyParser(&req); err != nil || req.NewPosition == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "body must be {\"newPosition\": number}",
		})
	}

	item, err := h.service.Move(c.Context(), owner.FromCtx(c), id, *req.NewPosition)
	if err != nil {
		l.Error("Move failed", zap.String("item", id), zap.Float64("position", *req.NewPosition), zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(item)
}

// HandleReset recreates the owner's list.
// @Summary Reset Items
// @Description Deletes the owner's items and recreates the seeded list. The previous list is snapshotted when storage is enabled.
// @Tags items
// @Produce json
// @Param x-user-id header string true "Owner ID"
// @Success 200 {object} map[string]bool "Reset result"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)

	if _, err := h.service.Reset(c.Context(), owner.FromCtx(c)); err != nil {
		l.Error("Reset failed", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// HandleNormalize renumbers the owner's list.
// @Summary Normalize Items
// @Description Reassigns evenly spaced positions to the owner's items, keeping their order.
// @Tags items
// @Produce json
// @Param x-user-id header string true "Owner ID"
// @Success 200 {array} ordering.Item "Items"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/normalize [post]
func (h *Handler) HandleNormalize(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)

	items, err := h.service.Normalize(c.Context(), owner.FromCtx(c))
	if err != nil {
		l.Error("Normalize failed", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(items)
}

// HandleSettings returns the seeding parameters.
// @Summary Ordering Settings
// @Description Returns step, threshold, seeded item count and palette.
// @Tags items
// @Produce json
// @Success 200 {object} ordering.Settings "Settings"
// @Router /items/settings [get]
func (h *Handler) HandleSettings(c *fiber.Ctx) error {
	return c.JSON(h.service.Settings())
}

// HandleSnapshots lists the owner's stored snapshots.
// @Summary List Snapshots
// @Description Returns the object keys of the owner's list snapshots, oldest first.
// @Tags items
// @Produce json
// @Param x-user-id header string true "Owner ID"
// @Success 200 {object} map[string][]string "Snapshot keys"
// @Failure 404 {object} map[string]string "Snapshots disabled"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /items/snapshots [get]
func (h *Handler) HandleSnapshots(c *fiber.Ctx) error {
	l := logger.WithRequest(h.service.logger, c)

	keys, err := h.service.Snapshots(c.Context(), owner.FromCtx(c))
	if err != nil {
		l.Error("Listing snapshots failed", zap.Error(err))
		return writeError(c, err)
	}
	return c.JSON(fiber.Map{"snapshots": keys})
}

func writeError(c *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	switch {
	case errors.Is(err, ordering.ErrNotFound), errors.Is(err, ErrSnapshotsDisabled):
		status = fiber.StatusNotFound
	case errors.Is(err, ordering.ErrInvalidPosition):
		status = fiber.StatusBadRequest
	}
	return c.Status(status).JSON(fiber.Map{"error": err.Error()})
}
