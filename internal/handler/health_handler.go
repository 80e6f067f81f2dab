package handler

import (
	"github.com/gofiber/fiber/v2"
)

// HealthHandler reports liveness and which GitHub mode the server runs in.
type HealthHandler struct {
	account       string
	authenticated bool
}

// NewHealthHandler creates a new HealthHandler. authenticated should be true
// when a GitHub credential is configured; the credential itself is never
// reported.
func NewHealthHandler(account string, authenticated bool) *HealthHandler {
	return &HealthHandler{
		account:       account,
		authenticated: authenticated,
	}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

func (h *HealthHandler) health(c *fiber.Ctx) error {
	mode := "anonymous"
	if h.authenticated {
		mode = "authenticated"
	}

	return c.JSON(fiber.Map{
		"status":  "ok",
		"account": h.account,
		"github":  mode,
	})
}
