package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FrancescoXX/readme-generator/internal/config"
)

type HealthHandler struct {
	cfg config.Config
}

func NewHealthHandler(cfg config.Config) *HealthHandler {
	return &HealthHandler{cfg: cfg}
}

func (h *HealthHandler) Register(r fiber.Router) {
	r.Get("/health", h.health)
}

// health reports whether each upstream credential is present. Values are
// never echoed.
func (h *HealthHandler) health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "ok",
		"upstreams": fiber.Map{
			"github": configured(h.cfg.GitHubToken != ""),
			"llm":    configured(h.cfg.LLMKey() != ""),
		},
	})
}

func configured(ok bool) string {
	if ok {
		return "configured"
	}
	return "not_configured"
}
