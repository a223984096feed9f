package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FrancescoXX/readme-generator/internal/models"
	"github.com/FrancescoXX/readme-generator/internal/render"
)

// PreviewHandler renders Markdown server-side for the preview pane.
type PreviewHandler struct{}

// NewPreviewHandler creates a new PreviewHandler.
func NewPreviewHandler() *PreviewHandler {
	return &PreviewHandler{}
}

// Register mounts POST /preview on the supplied router group.
func (h *PreviewHandler) Register(r fiber.Router) {
	r.Post("/preview", h.preview)
}

// preview handles POST /preview  { "markdown": "..." }
func (h *PreviewHandler) preview(c *fiber.Ctx) error {
	var req models.PreviewRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if req.Markdown == "" {
		return fiber.NewError(fiber.StatusBadRequest, "markdown is required")
	}

	html, err := render.Markdown(req.Markdown)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(models.PreviewResponse{HTML: html})
}
