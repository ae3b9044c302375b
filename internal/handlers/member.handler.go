package handlers

import (
	"clubmanager/internal/app"
	memberController "clubmanager/internal/controllers/member"
	. "clubmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

type MemberHandler struct {
	Handler
	controller *memberController.MemberController
}

func NewMemberHandler(app app.App, router fiber.Router) *MemberHandler {
	return &MemberHandler{
		controller: app.MemberController,
		Handler:    newHandler(app, router, "member_handler"),
	}
}

func (h *MemberHandler) Register() {
	members := h.router.Group("/members")
	members.Get("/", h.getMembers)
	members.Get("/active", h.getActiveMembers)
	members.Get("/:id", h.getMember)
	members.Post("/", h.createMember)
	members.Put("/:id", h.updateMember)
	members.Delete("/:id", h.deleteMember)

	members.Get("/:id/hobbies", h.getHobbies)
	members.Post("/:id/hobbies/:hobbyId", h.addHobby)
	members.Delete("/:id/hobbies/:hobbyId", h.removeHobby)

	members.Get("/:id/payments", h.getPayments)
	members.Get("/:id/fees", h.getFees)
	members.Get("/:id/availability", h.getAvailability)
	members.Get("/:id/locations", h.getLocationHistory)
}

func (h *MemberHandler) getMembers(c *fiber.Ctx) error {
	members, err := h.controller.GetAll(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "members": members})
}

func (h *MemberHandler) getActiveMembers(c *fiber.Ctx) error {
	members, err := h.controller.GetActive(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "members": members})
}

func (h *MemberHandler) getMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	member, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "member": member})
}

func (h *MemberHandler) createMember(c *fiber.Ctx) error {
	var req MemberRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	member, err := h.controller.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "member": member})
}

func (h *MemberHandler) updateMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	existing, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	req := NewMemberRequest(existing.ClubMember)
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	member, err := h.controller.Update(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "member": member})
}

func (h *MemberHandler) deleteMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.controller.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}

func (h *MemberHandler) getHobbies(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	hobbies, err := h.controller.Hobbies(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "hobbies": hobbies})
}

func (h *MemberHandler) addHobby(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	hobbyID, err := paramID(c, "hobbyId")
	if err != nil {
		return h.fail(c, err)
	}

	hobbies, err := h.controller.AddHobby(c.UserContext(), id, hobbyID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "hobbies": hobbies})
}

func (h *MemberHandler) removeHobby(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	hobbyID, err := paramID(c, "hobbyId")
	if err != nil {
		return h.fail(c, err)
	}

	hobbies, err := h.controller.RemoveHobby(c.UserContext(), id, hobbyID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "hobbies": hobbies})
}

func (h *MemberHandler) getPayments(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	payments, err := h.controller.Payments(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "payments": payments})
}

func (h *MemberHandler) getFees(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	year, err := queryYear(c)
	if err != nil {
		return h.fail(c, err)
	}

	fees, err := h.controller.Fees(c.UserContext(), id, year)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "fees": fees})
}

func (h *MemberHandler) getAvailability(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	date, err := queryDate(c, "date")
	if err != nil {
		return h.fail(c, err)
	}
	start, err := queryClockTime(c, "startTime")
	if err != nil {
		return h.fail(c, err)
	}

	availability, err := h.controller.Availability(c.UserContext(), id, date, start)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "availability": availability})
}

func (h *MemberHandler) getLocationHistory(c *fiber.Ctx) error {
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
