package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yousseframy/folio/server/internal/service"
)

// ProjectHandler wires HTTP → ProjectService.
type ProjectHandler struct {
	svc service.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(svc service.ProjectService) *ProjectHandler {
	return &ProjectHandler{svc: svc}
}

// Register mounts GET /projects on the supplied router group.
func (h *ProjectHandler) Register(r fiber.Router) {
	r.Get("/projects", h.listProjects)
}

// listProjects handles GET /projects
func (h *ProjectHandler) listProjects(c *fiber.Ctx) error {
	projects, err := h.svc.ListProjects(c.UserContext())
	if err != nil {
		// The generic degraded state: the client renders an empty list.
		return fiber.NewError(fiber.StatusBadGateway, "could not load projects")
	}

	return c.JSON(projects)
}
