package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yousseframy/folio/server/internal/service"
)

// ReadmeHandler wires HTTP → ReadmeService.
type ReadmeHandler struct {
	svc service.ReadmeService
}

// NewReadmeHandler creates a new ReadmeHandler.
func NewReadmeHandler(svc service.ReadmeService) *ReadmeHandler {
	return &ReadmeHandler{svc: svc}
}

// Register mounts GET /projects/:owner/:name/readme on the supplied router group.
func (h *ReadmeHandler) Register(r fiber.Router) {
	r.Get("/projects/:owner/:name/readme", h.getReadme)
}

// getReadme handles GET /projects/:owner/:name/readme?branch=…
// The branch query parameter comes from the list payload's default_branch;
// when absent the rewrite falls back to the conventional default.
func (h *ReadmeHandler) getReadme(c *fiber.Ctx) error {
	owner := c.Params("owner")
	name := c.Params("name")
	if owner == "" || name == "" {
		return fiber.NewError(fiber.StatusBadRequest, "owner and name are required")
	}

	doc, err := h.svc.GetReadme(c.UserContext(), owner, name, c.Query("branch"))
	if err != nil {
		// Only cancellation reaches here; upstream failures became the
		// placeholder document already.
		return err
	}

	return c.JSON(doc)
}
