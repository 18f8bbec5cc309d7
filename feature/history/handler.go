package history

import (
	"strconv"

	"l10n-manager/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler serves the history routes.
type Handler struct {
	store        *Store
	logger       *zap.Logger
	defaultLimit int
}

// NewHandler creates a Handler.
func NewHandler(store *Store, logger *zap.Logger, defaultLimit int) *Handler {
	return &Handler{store: store, logger: logger, defaultLimit: defaultLimit}
}

// RegisterRoutes registers the history routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Get("/history/:locale", h.HandleList)
}

// HandleList lists history entries of a locale.
func (h *Handler) HandleList(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	limit := h.defaultLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "limit must be a positive integer"})
		}
		limit = n
	}

	entries, err := h.store.List(c.Context(), Query{
		Locale: c.Params("locale"),
		Name:   c.Query("name"),
		Limit:  limit,
	})
	if err != nil {
		l.Error("History listing failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{
		"locale":  c.Params("locale"),
		"entries": entries,
	})
}
