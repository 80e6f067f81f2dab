package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yousseframy/folio/server/internal/settings"
)

// SettingsHandler wires HTTP → the settings store.
type SettingsHandler struct {
	store *settings.Store
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{store: store}
}

// Register mounts GET and PUT /settings/theme on the supplied router group.
func (h *SettingsHandler) Register(r fiber.Router) {
	r.Get("/settings/theme", h.getTheme)
	r.Put("/settings/theme", h.putTheme)
}

// getTheme handles GET /settings/theme
func (h *SettingsHandler) getTheme(c *fiber.Ctx) error {
	return c.JSON(settings.Settings{Theme: h.store.Theme()})
}

// putTheme handles PUT /settings/theme
func (h *SettingsHandler) putTheme(c *fiber.Ctx) error {
	var body settings.Settings
	if err := c.BodyParser(&body); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	if err := h.store.SetTheme(body.Theme); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(settings.Settings{Theme: h.store.Theme()})
}
