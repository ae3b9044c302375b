package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clubmanager/internal/app"
	"clubmanager/internal/handlers"
	"clubmanager/internal/logger"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
)

const shutdownTimeout = 10 * time.Second

func main() {
	log := logger.New("main").Function("main")

	app, err := app.New()
	if err != nil {
		log.Er("failed to initialize app", err)
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Er("failed to close app", err)
		}
	}()

	server := fiber.New(fiber.Config{
		AppName:      "clubmanager",
		ErrorHandler: handlers.ErrorHandler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	})

	server.Use(recover.New())
	server.Use(cors.New(cors.Config{
		AllowOrigins:  app.Config.CorsAllowOrigins,
		AllowHeaders:  "Origin, Content-Type, Accept, X-Request-ID",
		ExposeHeaders: "X-Request-ID",
	}))
	server.Use(app.Middleware.RequestID())
	server.Use(app.Middleware.AccessLog())

	if err := handlers.Router(server, app); err != nil {
		log.Er("failed to register routes", err)
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		address := fmt.Sprintf(":%d", app.Config.ServerPort)
		log.Info("Server listening", "address", address, "environment", app.Config.Environment)
		if err := server.Listen(address); err != nil {
			log.Er("server stopped", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("Shutting down")

	if err := server.ShutdownWithTimeout(shutdownTimeout); err != nil {
		log.Er("failed to shut down server", err)
	}
}
