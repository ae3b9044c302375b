package middleware

import (
	"time"

	"clubmanager/config"
	"clubmanager/internal/logger"
	"clubmanager/internal/metrics"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

type Middleware struct {
	Metrics *metrics.Metrics
	Config  config.Config
	log     logger.Logger
}

func New(metrics *metrics.Metrics, config config.Config) Middleware {
	return Middleware{
		Metrics: metrics,
		Config:  config,
		log:     logger.New("middleware"),
	}
}

// RequestID reuses the caller's request id or assigns a new one, and
// echoes it on the response.
func (m Middleware) RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(RequestIDHeader)
		if id == "" {
			id = uuid.New().String()
		}

		c.Locals("requestID", id)
		c.Set(RequestIDHeader, id)
		return c.Next()
	}
}

// AccessLog writes one line per request and records it in the metrics.
func (m Middleware) AccessLog() fiber.Handler {
	log := m.log.Function("AccessLog")

	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		elapsed := time.Since(start)
		status := c.Response().StatusCode()

		route := c.Path()
		if r := c.Route(); r != nil && r.Path != "" {
			route = r.Path
		}

		if m.Metrics != nil {
			m.Metrics.ObserveRequest(c.Method(), route, status, elapsed)
		}

		log.Info("request",
			"requestID", c.Locals("requestID"),
			"method", c.Method(),
			"path", c.Path(),
			"status", status,
			"latency", elapsed.String(),
		)

		return nil
	}
}
