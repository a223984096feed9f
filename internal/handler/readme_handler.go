package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/FrancescoXX/readme-generator/internal/models"
	"github.com/FrancescoXX/readme-generator/internal/service"
)

// ReadmeHandler wires HTTP → ReadmeService.
type ReadmeHandler struct {
	svc service.ReadmeService
}

// NewReadmeHandler creates a new ReadmeHandler.
func NewReadmeHandler(svc service.ReadmeService) *ReadmeHandler {
	return &ReadmeHandler{svc: svc}
}

// Register mounts POST /readme on the supplied router group.
func (h *ReadmeHandler) Register(r fiber.Router) {
	r.Post("/readme", h.generate)
}

// generate handles POST /readme  { "repoUrl": "..." }
func (h *ReadmeHandler) generate(c *fiber.Ctx) error {
	var req models.GenerateReadmeRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid JSON body")
	}
	if req.RepoURL == "" {
		return fiber.NewError(fiber.StatusBadRequest, "repoUrl is required")
	}

	readme, err := h.svc.Generate(c.UserContext(), req.RepoURL)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRepoURL):
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		case errors.Is(err, service.ErrNotConfigured):
			// Generic on purpose: never reveal which credential is missing.
			return fiber.NewError(fiber.StatusInternalServerError, service.ErrNotConfigured.Error())
		default:
			return fiber.NewError(fiber.StatusInternalServerError, err.Error())
		}
	}

	return c.JSON(models.GenerateReadmeResponse{Readme: readme})
}
