package handlers

import (
	"clubmanager/internal/app"
	locationController "clubmanager/internal/controllers/location"
	. "clubmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

type LocationHandler struct {
	Handler
	controller *locationController.LocationController
}

func NewLocationHandler(app app.App, router fiber.Router) *LocationHandler {
	return &LocationHandler{
		controller: app.LocationController,
		Handler:    newHandler(app, router, "location_handler"),
	}
}

func (h *LocationHandler) Register() {
	locations := h.router.Group("/locations")
	locations.Get("/", h.getLocations)
	locations.Get("/:id", h.getLocation)
	locations.Post("/", h.createLocation)
	locations.Put("/:id", h.updateLocation)
	locations.Delete("/:id", h.deleteLocation)
}

func (h *LocationHandler) getLocations(c *fiber.Ctx) error {
	locations, err := h.controller.GetAll(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "locations": locations})
}

func (h *LocationHandler) getLocation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	location, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "location": location})
}

func (h *LocationHandler) createLocation(c *fiber.Ctx) error {
	var req LocationRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	location, err := h.controller.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "location": location})
}

func (h *LocationHandler) updateLocation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	existing, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	req := NewLocationRequest(*existing)
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	location, err := h.controller.Update(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "location": location})
}

func (h *LocationHandler) deleteLocation(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.controller.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}
