package validate

import (
	"l10n-manager/core/errs"
	"l10n-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles validation requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new validation handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the validation routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/validate/:locale", h.HandleValidate)
}

// HandleValidate validates one strings file.
func (h *Handler) HandleValidate(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	target := c.Params("locale")

	report, err := h.service.Validate(target)
	if err != nil {
		l.Error("Validation failed", zap.String("target", target), zap.Error(err))
		switch errs.KindOf(err) {
		case errs.KindResource:
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": err.Error()})
		case errs.KindSyntax:
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"valid":  report.Valid(),
		"report": report,
	})
}
