package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/FrancescoXX/readme-generator/internal/models"
	"github.com/FrancescoXX/readme-generator/internal/service"
)

// RegisterRoutes mounts all API handlers under /api/v1.
func RegisterRoutes(app *fiber.App, readmeSvc service.ReadmeService) {
	v1 := app.Group("/api/v1")
	NewReadmeHandler(readmeSvc).Register(v1)
	NewPreviewHandler().Register(v1)
}

// ErrorHandler turns every error into a JSON {"error": "..."} body so the
// client never has to parse plain-text failures.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if fe, ok := err.(*fiber.Error); ok {
		code = fe.Code
	}
	return c.Status(code).JSON(models.ErrorResponse{Error: err.Error()})
}
