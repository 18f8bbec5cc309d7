package localize

import (
	"l10n-manager/core/errs"
	"l10n-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the export routes.
type Handler struct {
	service *Service
}

// NewHandler creates a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/localize/:locale", h.HandlePending)
}

// HandlePending lists the canonical strings a locale has not translated yet.
func (h *Handler) HandlePending(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	locale := c.Params("locale")

	pending, err := h.service.Pending(c.Context(), locale)
	if err != nil {
		l.Error("Pending lookup failed", zap.String("locale", locale), zap.Error(err))
		status := fiber.StatusInternalServerError
		if errs.IsKind(err, errs.KindSyntax) {
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"locale":  locale,
		"count":   len(pending),
		"pending": pending,
	})
}
