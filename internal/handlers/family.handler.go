package handlers

import (
	"clubmanager/internal/app"
	familyController "clubmanager/internal/controllers/family"
	. "clubmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

type FamilyHandler struct {
	Handler
	controller *familyController.FamilyController
}

func NewFamilyHandler(app app.App, router fiber.Router) *FamilyHandler {
	return &FamilyHandler{
		controller: app.FamilyController,
		Handler:    newHandler(app, router, "family_handler"),
	}
}

func (h *FamilyHandler) Register() {
	families := h.router.Group("/families")
	families.Get("/", h.getFamilies)
	families.Get("/:id", h.getFamily)
	families.Post("/", h.createFamily)
	families.Put("/:id", h.updateFamily)
	families.Delete("/:id", h.deleteFamily)

	families.Post("/:id/children", h.addChild)
	families.Delete("/:id/children/:memberId", h.removeChild)

	families.Post("/:id/secondary", h.addSecondary)
	families.Get("/secondary/:id", h.getSecondary)
	families.Put("/secondary/:id", h.updateSecondary)
	families.Delete("/secondary/:id", h.deleteSecondary)
}

func (h *FamilyHandler) getFamilies(c *fiber.Ctx) error {
	families, err := h.controller.GetAll(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "families": families})
}

func (h *FamilyHandler) getFamily(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	family, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "family": family})
}

func (h *FamilyHandler) createFamily(c *fiber.Ctx) error {
	var req FamilyMemberRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	family, err := h.controller.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "family": family})
}

func (h *FamilyHandler) updateFamily(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	existing, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	req := NewFamilyMemberRequest(existing.FamilyMember)
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	family, err := h.controller.Update(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "family": family})
}

func (h *FamilyHandler) deleteFamily(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.controller.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}

func (h *FamilyHandler) addChild(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req FamilyChildRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	family, err := h.controller.AddChild(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "family": family})
}

func (h *FamilyHandler) removeChild(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	memberID, err := paramID(c, "memberId")
	if err != nil {
		return h.fail(c, err)
	}

	family, err := h.controller.RemoveChild(c.UserContext(), id, memberID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "family": family})
}

func (h *FamilyHandler) addSecondary(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req SecondaryFamilyMemberRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	secondary, err := h.controller.AddSecondary(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "secondary": secondary})
}

func (h *FamilyHandler) getSecondary(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	secondary, err := h.controller.GetSecondary(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "secondary": secondary})
}

func (h *FamilyHandler) updateSecondary(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	existing, err := h.controller.GetSecondary(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	req := NewSecondaryFamilyMemberRequest(*existing)
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	secondary, err := h.controller.UpdateSecondary(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "secondary": secondary})
}

func (h *FamilyHandler) deleteSecondary(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.controller.DeleteSecondary(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}
