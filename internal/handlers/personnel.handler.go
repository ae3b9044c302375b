package handlers

import (
	"clubmanager/internal/app"
	personnelController "clubmanager/internal/controllers/personnel"
	. "clubmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

type PersonnelHandler struct {
	Handler
	controller *personnelController.PersonnelController
}

func NewPersonnelHandler(app app.App, router fiber.Router) *PersonnelHandler {
	return &PersonnelHandler{
		controller: app.PersonnelController,
		Handler:    newHandler(app, router, "personnel_handler"),
	}
}

func (h *PersonnelHandler) Register() {
	personnel := h.router.Group("/personnel")
	personnel.Get("/", h.getAllPersonnel)
	personnel.Get("/:id", h.getPersonnel)
	personnel.Get("/:id/locations", h.getLocationHistory)
	personnel.Post("/", h.createPersonnel)
	personnel.Put("/:id", h.updatePersonnel)
	personnel.Delete("/:id", h.deletePersonnel)
}

func (h *PersonnelHandler) getAllPersonnel(c *fiber.Ctx) error {
	personnel, err := h.controller.GetAll(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "personnel": personnel})
}

func (h *PersonnelHandler) getPersonnel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	personnel, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "personnel": personnel})
}

func (h *PersonnelHandler) getLocationHistory(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	history, err := h.controller.LocationHistory(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "history": history})
}

func (h *PersonnelHandler) createPersonnel(c *fiber.Ctx) error {
	var req PersonnelRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	personnel, err := h.controller.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "personnel": personnel})
}

func (h *PersonnelHandler) updatePersonnel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	existing, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	req := NewPersonnelRequest(*existing)
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	personnel, err := h.controller.Update(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "personnel": personnel})
}

func (h *PersonnelHandler) deletePersonnel(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.controller.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}
