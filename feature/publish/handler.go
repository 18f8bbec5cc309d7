package publish

import (
	"l10n-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the publish routes.
type Handler struct {
	publisher *Publisher
}

// NewHandler creates a Handler.
func NewHandler(publisher *Publisher) *Handler {
	return &Handler{publisher: publisher}
}

// RegisterRoutes registers the publish routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/published", h.HandleList)
}

// HandleList lists the published strings files.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.publisher.logger, c)

	objects, err := h.publisher.List(c.Context())
	if err != nil {
		l.Error("Listing published files failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"objects": objects})
}
