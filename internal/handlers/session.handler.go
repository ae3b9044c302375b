package handlers

import (
	"clubmanager/internal/app"
	sessionController "clubmanager/internal/controllers/session"
	. "clubmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

type SessionHandler struct {
	Handler
	controller *sessionController.SessionController
}

func NewSessionHandler(app app.App, router fiber.Router) *SessionHandler {
	return &SessionHandler{
		controller: app.SessionController,
		Handler:    newHandler(app, router, "session_handler"),
	}
}

func (h *SessionHandler) Register() {
	sessions := h.router.Group("/sessions")
	sessions.Get("/", h.getSessions)
	sessions.Get("/upcoming", h.getUpcoming)
	sessions.Get("/:id", h.getSession)
	sessions.Post("/", h.createSession)
	sessions.Put("/:id", h.updateSession)
	sessions.Delete("/:id", h.deleteSession)
}

func (h *SessionHandler) getSessions(c *fiber.Ctx) error {
	sessions, err := h.controller.GetAll(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "sessions": sessions})
}

func (h *SessionHandler) getUpcoming(c *fiber.Ctx) error {
	sessions, err := h.controller.GetUpcoming(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "sessions": sessions})
}

func (h *SessionHandler) getSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	session, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "session": session})
}

func (h *SessionHandler) createSession(c *fiber.Ctx) error {
	var req SessionRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	session, err := h.controller.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "session": session})
}

func (h *SessionHandler) updateSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	existing, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	req := NewSessionRequest(*existing)
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	session, err := h.controller.Update(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "session": session})
}

func (h *SessionHandler) deleteSession(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.controller.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}
