package handlers

import (
	"clubmanager/internal/app"
	lookupController "clubmanager/internal/controllers/lookup"
	. "clubmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

// LookupHandler serves the role and hobby reference lists.
type LookupHandler struct {
	Handler
	controller *lookupController.LookupController
}

func NewLookupHandler(app app.App, router fiber.Router) *LookupHandler {
	return &LookupHandler{
		controller: app.LookupController,
		Handler:    newHandler(app, router, "lookup_handler"),
	}
}

func (h *LookupHandler) Register() {
	roles := h.router.Group("/roles")
	roles.Get("/", h.getRoles)
	roles.Post("/", h.createRole)
	roles.Delete("/:id", h.deleteRole)

	hobbies := h.router.Group("/hobbies")
	hobbies.Get("/", h.getHobbies)
	hobbies.Post("/", h.createHobby)
	hobbies.Delete("/:id", h.deleteHobby)
}

func (h *LookupHandler) getRoles(c *fiber.Ctx) error {
	roles, err := h.controller.Roles(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "roles": roles})
}

func (h *LookupHandler) createRole(c *fiber.Ctx) error {
	var req NameRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	role, err := h.controller.CreateRole(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "role": role})
}

func (h *LookupHandler) deleteRole(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.controller.DeleteRole(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}

func (h *LookupHandler) getHobbies(c *fiber.Ctx) error {
	hobbies, err := h.controller.Hobbies(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "hobbies": hobbies})
}

func (h *LookupHandler) createHobby(c *fiber.Ctx) error {
	var req NameRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	hobby, err := h.controller.CreateHobby(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "hobby": hobby})
}

func (h *LookupHandler) deleteHobby(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.controller.DeleteHobby(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}
