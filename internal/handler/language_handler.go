package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/yousseframy/folio/server/internal/service"
)

// LanguageHandler wires HTTP → LanguageService.
type LanguageHandler struct {
	svc service.LanguageService
}

// NewLanguageHandler creates a new LanguageHandler.
func NewLanguageHandler(svc service.LanguageService) *LanguageHandler {
	return &LanguageHandler{svc: svc}
}

// Register mounts GET /projects/:owner/:name/languages on the supplied router group.
func (h *LanguageHandler) Register(r fiber.Router) {
	r.Get("/projects/:owner/:name/languages", h.getLanguages)
}

// getLanguages handles GET /projects/:owner/:name/languages?url=…
// When the url query parameter carries the languages_url from the list
// payload it is used verbatim; otherwise the endpoint is derived from the
// owner/name path. Always 200: an empty list is the fallback for both "no
// languages reported" and a failed upstream fetch.
func (h *LanguageHandler) getLanguages(c *fiber.Ctx) error {
	owner := c.Params("owner")
	name := c.Params("name")
	if owner == "" || name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "owner and name are required")
	}

	if rawURL := c.Query("url"); rawURL != "" {
		// Only GitHub API endpoints; this is not an open proxy.
		if !strings.HasPrefix(rawURL, "https://api.github.com/") {
			return fiber.NewError(fiber.StatusBadRequest, "url must be a GitHub API endpoint")
		}
		return c.JSON(h.svc.TopLanguagesByURL(c.UserContext(), rawURL))
	}

	return c.JSON(h.svc.TopLanguages(c.UserContext(), owner, name))
}
