package handlers

import (
	"clubmanager/internal/app"
	"clubmanager/internal/handlers/middleware"
	"clubmanager/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/websocket/v2"
)

type Handler struct {
	middleware middleware.Middleware
	log        logger.Logger
	router     fiber.Router
}

func newHandler(app app.App, router fiber.Router, file string) Handler {
	return Handler{
		log:        logger.New("handlers").File(file),
		router:     router,
		middleware: app.Middleware,
	}
}

func Router(router fiber.Router, app *app.App) (err error) {
	setupWebSocketRoute(router, app)
	router.Get("/metrics", adaptor.HTTPHandler(app.Metrics.Handler()))

	api := router.Group("/api")
	HealthHandler(api, app)
	NewLocationHandler(*app, api).Register()
	NewLookupHandler(*app, api).Register()
	NewPersonnelHandler(*app, api).Register()
	NewMemberHandler(*app, api).Register()
	NewFamilyHandler(*app, api).Register()
	NewTeamHandler(*app, api).Register()
	NewSessionHandler(*app, api).Register()
	NewPaymentHandler(*app, api).Register()
	NewEmailLogHandler(*app, api).Register()
	NewDashboardHandler(*app, api).Register()

	return nil
}

func setupWebSocketRoute(router fiber.Router, app *app.App) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			c.Locals("allowed", true)
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	router.Get("/ws", websocket.New(func(c *websocket.Conn) {
		app.Websocket.HandleWebSocket(c)
	}))
}
