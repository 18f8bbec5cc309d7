package localized

import (
	"l10n-manager/core/errs"
	"l10n-manager/core/logger"
	"l10n-manager/core/translation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Request is the body of POST /localized.
type Request struct {
	// Mapping maps import file names to locale ids, e.g. {"french": "fr"}.
	Mapping map[string]string `json:"mapping"`
}

// Handler serves the import route.
type Handler struct {
	service *Service
}

// NewHandler creates a Handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the import routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/localized", h.HandleImport)
}

// HandleImport runs an import for the mapping in the request body.
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid request body"})
	}

	mappings, err := translation.MappingFromMap(req.Mapping)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	report, err := h.service.Run(c.Context(), mappings, Options{DryRun: c.Query("dry_run") == "true"})
	if report == nil {
		status := fiber.StatusInternalServerError
		if errs.IsKind(err, errs.KindArgument) {
			status = fiber.StatusBadRequest
		}
		l.Error("Import could not start", zap.Error(err))
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	if err != nil {
		l.Warn("Import finished with failures", zap.Int("failed", len(report.Failed())))
		return c.Status(fiber.StatusUnprocessableEntity).JSON(report)
	}
	return c.JSON(report)
}
