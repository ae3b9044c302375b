package handlers

import (
	"clubmanager/internal/app"
	teamController "clubmanager/internal/controllers/team"
	. "clubmanager/internal/models"

	"github.com/gofiber/fiber/v2"
)

type TeamHandler struct {
	Handler
	controller *teamController.TeamController
}

func NewTeamHandler(app app.App, router fiber.Router) *TeamHandler {
	return &TeamHandler{
		controller: app.TeamController,
		Handler:    newHandler(app, router, "team_handler"),
	}
}

func (h *TeamHandler) Register() {
	teams := h.router.Group("/teams")
	teams.Get("/", h.getTeams)
	teams.Get("/:id", h.getTeam)
	teams.Post("/", h.createTeam)
	teams.Put("/:id", h.updateTeam)
	teams.Delete("/:id", h.deleteTeam)

	teams.Get("/:id/members", h.getMembers)
	teams.Post("/:id/members", h.addMember)
	teams.Delete("/:id/members/:memberId", h.removeMember)
}

func (h *TeamHandler) getTeams(c *fiber.Ctx) error {
	teams, err := h.controller.GetAll(c.UserContext())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "teams": teams})
}

func (h *TeamHandler) getTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	team, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "team": team})
}

func (h *TeamHandler) createTeam(c *fiber.Ctx) error {
	var req TeamRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	team, err := h.controller.Create(c.UserContext(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "team": team})
}

func (h *TeamHandler) updateTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	existing, err := h.controller.Get(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}

	req := NewTeamRequest(existing.TeamFormation)
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	team, err := h.controller.Update(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "team": team})
}

func (h *TeamHandler) deleteTeam(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	if err := h.controller.Delete(c.UserContext(), id); err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success"})
}

func (h *TeamHandler) getMembers(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	members, err := h.controller.Members(c.UserContext(), id)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "members": members})
}

func (h *TeamHandler) addMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}

	var req TeamMemberRequest
	if err := h.parseBody(c, &req); err != nil {
		return h.fail(c, err)
	}

	members, err := h.controller.AddMember(c.UserContext(), id, req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "success", "members": members})
}

func (h *TeamHandler) removeMember(c *fiber.Ctx) error {
	id, err := paramID(c, "id")
	if err != nil {
		return h.fail(c, err)
	}
	memberID, err := paramID(c, "memberId")
	if err != nil {
		return h.fail(c, err)
	}

	members, err := h.controller.RemoveMember(c.UserContext(), id, memberID)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"message": "success", "members": members})
}
