package app

import (
	"net/http"

	_ "github.com/DIMO-Network/linear-reflect-relay/docs" // Import Swagger docs
	"github.com/DIMO-Network/linear-reflect-relay/internal/clients/reflectapi"
	"github.com/DIMO-Network/linear-reflect-relay/internal/config"
	"github.com/DIMO-Network/linear-reflect-relay/internal/controllers/linear"
	"github.com/DIMO-Network/server-garage/pkg/fibercommon"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/rs/zerolog"
)

// CreateServers builds the Reflect client from settings and returns the API app.
func CreateServers(settings *config.Settings, logger zerolog.Logger) *fiber.App {
	notesClient := reflectapi.New(settings.ReflectAPIURL, settings.GraphID, settings.AccessToken, &http.Client{
		Timeout: settings.ReflectTimeout,
	})
	return CreateFiberApp(logger, settings, notesClient)
}

// CreateFiberApp sets up the API routes.
func CreateFiberApp(logger zerolog.Logger, settings *config.Settings, notes linear.NotesClient) *fiber.App {
	logger.Info().Msg("Starting Linear Reflect Relay...")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return fibercommon.ErrorHandler(c, err)
		},
		DisableStartupMessage: true,
	})
	app.Use(recover.New())
	app.Use(fibercommon.ContextLoggerMiddleware)

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Welcome to the Linear Reflect Relay!")
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"data": "Server is up and running",
		})
	})

	linearController := linear.NewLinearController(settings.WebhookSecret, notes)
	logger.Info().Msg("Registering routes...")

	app.Post("/", linearController.HandleWebhook)

	return app
}
