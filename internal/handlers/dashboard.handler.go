package handlers

import (
	"clubmanager/internal/app"
	dashboardController "clubmanager/internal/controllers/dashboard"

	"github.com/gofiber/fiber/v2"
)

type DashboardHandler struct {
	Handler
	controller *dashboardController.DashboardController
}

func NewDashboardHandler(app app.App, router fiber.Router) *DashboardHandler {
	return &DashboardHandler{
		controller: app.DashboardController,
		Handler:    newHandler(app, router, "dashboard_handler"),
	}
}

func (h *DashboardHandler) Register() {
	dashboard := h.router.Group("/dashboard")
	dashboard.Get("/stats", h.getStats)
	dashboard.Get("/recent-activity", h.getRecentActivity)
}

func (h *DashboardHandler) getStats(c *fiber.Ctx) error {
	stats, err := h.controller.Stats(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "stats": stats})
}

func (h *DashboardHandler) getRecentActivity(c *fiber.Ctx) error {
	activity, err := h.controller.RecentActivity(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "activity": activity})
}
