package server

import (
	"context"

	"recruai-web/internal/auth"
	"recruai-web/internal/bootstrap"
	"recruai-web/internal/config"
	"recruai-web/internal/pkg/serverutils"
	"recruai-web/internal/view"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Server struct {
	app       *fiber.App
	cfg       *config.Config
	container *bootstrap.Container
}

func New(cfg *config.Config, container *bootstrap.Container) *Server {
	app := fiber.New(fiber.Config{
		AppName:   "recruai-web",
		BodyLimit: 1 * 1024 * 1024,
		Views:     view.NewEngine(!cfg.IsProduction()),
	})

	app.Use(serverutils.RequestContext(cfg.App.RequestTimeout))

	// OpenTelemetry tracing middleware (no-op unless a provider is installed)
	app.Use(otelfiber.Middleware())

	app.Use(serverutils.ErrorHandlerMiddleware())
	app.Use(serverutils.RequestLogger(container.Logger))

	// Ops endpoints stay outside the session cookie.
	app.Get("/healthz", func(c *fiber.Ctx) error {
		return c.JSON(serverutils.SuccessResponse[any]("ok", nil))
	})
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(auth.SessionCookie(cfg.Session))

	registerRoutes(app, container)

	return &Server{
		app:       app,
		cfg:       cfg,
		container: container,
	}
}

func (s *Server) GetApp() *fiber.App {
	return s.app
}

func (s *Server) Run() error {
	s.container.Logger.Info("Server", "listening", map[string]interface{}{"url": "http://localhost:" + s.cfg.App.Port})
	return s.app.Listen(":" + s.cfg.App.Port)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

func registerRoutes(app *fiber.App, c *bootstrap.Container) {
	// Public pages
	c.MarketingController.RegisterRoutes(app)
	c.AuthController.RegisterRoutes(app)

	api := app.Group("/api")
	c.SessionController.RegisterRoutes(api)

	// Everything under /dashboard renders only for a verified session.
	dashboard := app.Group("/dashboard", c.Guard.Protect())
	c.DashboardController.RegisterRoutes(dashboard)
	c.InterviewController.RegisterRoutes(dashboard)
	c.OrganizationController.RegisterRoutes(dashboard)
	c.TeamController.RegisterRoutes(dashboard)
	c.PipelineController.RegisterRoutes(dashboard)

	c.RefreshHandler.RegisterRoutes(app, c.Guard.Protect())
}
