package main

import (
	"net/http"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/FrancescoXX/readme-generator/internal/config"
	"github.com/FrancescoXX/readme-generator/internal/github"
	"github.com/FrancescoXX/readme-generator/internal/handler"
	"github.com/FrancescoXX/readme-generator/internal/llm"
	"github.com/FrancescoXX/readme-generator/internal/middleware"
	"github.com/FrancescoXX/readme-generator/internal/service"
	"github.com/FrancescoXX/readme-generator/web"
)

// main is the single entry-point for the server.
func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})

	cfg := config.Load()
	log.Info().
		Str("port", cfg.Port).
		Str("llm_provider", cfg.LLMProvider).
		Bool("github_token_set", cfg.GitHubToken != "").
		Bool("llm_key_set", cfg.LLMKey() != "").
		Msg("configuration loaded")

	// Missing secrets are not fatal: the service answers with a generic
	// configuration error instead of crashing or leaking which one is gone.
	var gh service.RepoFetcher
	if cfg.GitHubToken != "" {
		gh = github.NewClient(cfg.GitHubToken)
	} else {
		log.Warn().Msg("GITHUB_TOKEN not set; readme generation is disabled")
	}

	gen, err := llm.New(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("generation provider unavailable; readme generation is disabled")
	}

	readmeSvc := service.NewReadmeService(gh, gen)

	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		ErrorHandler: handler.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(middleware.Logging())

	handler.RegisterRoutes(app, readmeSvc)
	handler.NewHealthHandler(cfg).Register(app)

	app.Use("/", filesystem.New(filesystem.Config{
		Root:   http.FS(web.Static),
		Index:  "index.html",
		MaxAge: 3600,
	}))

	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server failed to start")
	}
}
