package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberSwagger "github.com/swaggo/fiber-swagger"
	"go.uber.org/zap"

	"github.com/findhelp-service/internal/config"
	"github.com/findhelp-service/internal/delivery/http/handler"
	"github.com/findhelp-service/internal/delivery/http/middleware"
)

// Server is the Fiber HTTP server.
type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger

	// Handlers
	referenceHandler   *handler.ReferenceHandler
	catalogHandler     *handler.CatalogHandler
	deviceHandler      *handler.DeviceHandler
	languageHandler    *handler.LanguageHandler
	sessionHandler     *handler.SessionHandler
	interactionHandler *handler.InteractionHandler
}

func NewServer(
	cfg *config.Config,
	logger *zap.Logger,
	referenceHandler *handler.ReferenceHandler,
	catalogHandler *handler.CatalogHandler,
	deviceHandler *handler.DeviceHandler,
	languageHandler *handler.LanguageHandler,
	sessionHandler *handler.SessionHandler,
	interactionHandler *handler.InteractionHandler,
) *Server {
	app := fiber.New(fiber.Config{
		AppName:      "FindHelp Service",
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
		ErrorHandler: customErrorHandler(logger),
	})

	s := &Server{
		app:                app,
		config:             cfg,
		logger:             logger,
		referenceHandler:   referenceHandler,
		catalogHandler:     catalogHandler,
		deviceHandler:      deviceHandler,
		languageHandler:    languageHandler,
		sessionHandler:     sessionHandler,
		interactionHandler: interactionHandler,
	}

	s.setupMiddlewares()
	s.setupRoutes()

	return s
}

func (s *Server) setupMiddlewares() {
	s.app.Use(middleware.Recovery())
	s.app.Use(middleware.Logger(s.logger))
	s.app.Use(middleware.CORS())
	s.app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
}

func (s *Server) setupRoutes() {
	// Swagger documentation route
	s.app.Get("/swagger/*", fiberSwagger.WrapHandler)

	api := s.app.Group("/api/v1")

	// Health check
	api.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status": "healthy",
			"time":   time.Now(),
		})
	})

	// Reference data
	api.Get("/reference/emergency-numbers", s.referenceHandler.GetEmergencyNumbers)
	api.Get("/reference/resources", s.referenceHandler.GetResources)

	// Catalog. The nearby route must register before the id route so
	// "nearby" is not captured as a place id.
	api.Get("/places", s.catalogHandler.GetPlaces)
	api.Get("/places/nearby", s.catalogHandler.GetNearbyPlaces)
	api.Get("/places/:id", s.catalogHandler.GetPlace)
	api.Get("/categories", s.catalogHandler.GetCategories)
	api.Get("/region", s.catalogHandler.GetRegion)

	// Device identity and language
	api.Post("/device", s.deviceHandler.GetOrCreate)
	api.Get("/language", s.languageHandler.Get)
	api.Put("/language", s.languageHandler.Set)

	// Map sessions
	api.Post("/sessions", s.sessionHandler.Create)
	api.Get("/sessions/:id", s.sessionHandler.Get)
	api.Delete("/sessions/:id", s.sessionHandler.Close)
	api.Post("/sessions/:id/select", s.sessionHandler.SelectPlace)
	api.Get("/sessions/:id/selection", s.sessionHandler.GetSelection)
	api.Post("/sessions/:id/clear", s.sessionHandler.ClearSelection)
	api.Post("/sessions/:id/filter", s.sessionHandler.SetFilter)
	api.Get("/sessions/:id/places", s.sessionHandler.GetVisiblePlaces)
	api.Post("/sessions/:id/map-ready", s.sessionHandler.MapReady)
	api.Post("/sessions/:id/tile-error", s.sessionHandler.TileError)
	api.Get("/sessions/:id/directions", s.sessionHandler.GetDirections)

	// Interactions. The stats route must register before the device route so
	// "stats" is not captured as a device id.
	api.Post("/interactions/click", s.interactionHandler.RecordClick)
	api.Get("/interactions/stats", s.interactionHandler.GetStats)
	api.Get("/interactions/:device_id", s.interactionHandler.GetDeviceLedger)
}

func (s *Server) Start() error {
	addr := s.config.GetServerAddr()
	s.logger.Info("Starting HTTP server", zap.String("address", addr))
	return s.app.Listen(addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down HTTP server")
	return s.app.ShutdownWithContext(ctx)
}

// App exposes the Fiber app for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

func customErrorHandler(logger *zap.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError

		if e, ok := err.(*fiber.Error); ok {
			code = e.Code
		}

		logger.Error("HTTP Error",
			zap.String("path", c.Path()),
			zap.Int("status", code),
			zap.Error(err),
		)

		return c.Status(code).JSON(fiber.Map{
			"error": fiber.Map{
				"code":    "INTERNAL_SERVER_ERROR",
				"message": err.Error(),
			},
		})
	}
}
