package main

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/yousseframy/folio/server/internal/config"
	"github.com/yousseframy/folio/server/internal/github"
	"github.com/yousseframy/folio/server/internal/handler"
	"github.com/yousseframy/folio/server/internal/middleware"
	"github.com/yousseframy/folio/server/internal/service"
	"github.com/yousseframy/folio/server/internal/settings"
)

// main is the single entry‑point for the REST API.
func main() {
	// Load configuration
	cfg := config.Load()
	log.Printf("Configuration loaded:")
	log.Printf("  - GitHub account: %s", cfg.GitHubUser)
	log.Printf("  - Profile file: %s", cfg.ProfilePath)
	log.Printf("  - Settings file: %s", cfg.SettingsPath)
	if cfg.GitHubToken == "" {
		log.Printf("  - GitHub token: not set (unauthenticated, low rate-limits)")
	} else {
		log.Printf("  - GitHub token: set")
	}

	// Load the profile content file
	profileSvc, err := service.NewProfileService(cfg.ProfilePath)
	if err != nil {
		log.Fatalf("Failed to load profile: %v", err)
	}
	log.Printf("Profile loaded")

	// Load (or initialise) the theme settings file
	store, err := settings.NewStore(cfg.SettingsPath)
	if err != nil {
		log.Fatalf("Failed to load settings: %v", err)
	}
	log.Printf("Settings loaded (theme: %s)", store.Theme())

	// Initialize the GitHub client and services
	gh := github.NewClient(cfg.GitHubToken)
	projectSvc := service.NewProjectService(gh, cfg.GitHubUser)
	readmeSvc := service.NewReadmeService(gh)
	languageSvc := service.NewLanguageService(gh)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})

	// Add middleware
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{AllowOrigins: cfg.AllowOrigins}))
	app.Use(middleware.Logging())

	// Register routes
	handler.RegisterRoutes(app, projectSvc, readmeSvc, languageSvc, profileSvc, store)

	// Add health check
	healthHandler := handler.NewHealthHandler(cfg.GitHubUser, cfg.GitHubToken != "")
	healthHandler.Register(app)

	// Optionally serve the built SPA bundle
	if cfg.StaticDir != "" {
		app.Static("/", cfg.StaticDir)
		log.Printf("Serving static files from %s", cfg.StaticDir)
	}

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
