package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yousseframy/folio/server/internal/service"
)

// ProfileHandler wires HTTP → ProfileService.
type ProfileHandler struct {
	svc service.ProfileService
}

// NewProfileHandler creates a new ProfileHandler.
func NewProfileHandler(svc service.ProfileService) *ProfileHandler {
	return &ProfileHandler{svc: svc}
}

// Register mounts GET /profile on the supplied router group.
func (h *ProfileHandler) Register(r fiber.Router) {
	r.Get("/profile", h.getProfile)
}

// getProfile handles GET /profile
func (h *ProfileHandler) getProfile(c *fiber.Ctx) error {
	return c.JSON(h.svc.Profile())
}
