package handlers

import (
	"clubmanager/internal/app"
	emailLogController "clubmanager/internal/controllers/emailLog"

	"github.com/gofiber/fiber/v2"
)

type EmailLogHandler struct {
	Handler
	controller *emailLogController.EmailLogController
}

func NewEmailLogHandler(app app.App, router fiber.Router) *EmailLogHandler {
	return &EmailLogHandler{
		controller: app.EmailLogController,
		Handler:    newHandler(app, router, "email_log_handler"),
	}
}

func (h *EmailLogHandler) Register() {
	h.router.Get("/email-logs", h.getEmailLogs)
}

func (h *EmailLogHandler) getEmailLogs(c *fiber.Ctx) error {
	logs, err := h.controller.GetAll(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "emailLogs": logs})
}
