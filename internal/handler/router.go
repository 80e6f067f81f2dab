package handler

import (
	"github.com/gofiber/fiber/v2"

	"github.com/yousseframy/folio/server/internal/service"
	"github.com/yousseframy/folio/server/internal/settings"
)

func RegisterRoutes(app *fiber.App,
	projectSvc service.ProjectService,
	readmeSvc service.ReadmeService,
	languageSvc service.LanguageService,
	profileSvc service.ProfileService,
	settingsStore *settings.Store,
) {

	v1 := app.Group("/api/v1")
	NewProjectHandler(projectSvc).Register(v1)
	NewReadmeHandler(readmeSvc).Register(v1)
	NewLanguageHandler(languageSvc).Register(v1)
	NewProfileHandler(profileSvc).Register(v1)
	NewSettingsHandler(settingsStore).Register(v1)
}
