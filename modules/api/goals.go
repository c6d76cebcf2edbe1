package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laibaTLD/logic-camp/modules/goal"
)

// ListGoals handles GET /goals. An optional projectId query parameter
// scopes the list to one project and must parse as a positive integer.
func (h *Handlers) ListGoals(c *fiber.Ctx) error {
	var projectID *uint
	if raw := c.Query("projectId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return badRequest(c, "projectId must be a positive integer")
		}
		projectID = &id
	}

	resp, err := h.goals.ListGoals(c.UserContext(), projectID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetGoal handles GET /goals/:id.
func (h *Handlers) GetGoal(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return badRequest(c, "id must be a positive integer")
	}

	resp, err := h.goals.GetGoal(c.UserContext(), id)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"goal": resp})
}

// CreateGoal handles POST /goals.
func (h *Handlers) CreateGoal(c *fiber.Ctx) error {
	var req goal.CreateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	resp, err := h.goals.CreateGoal(c.UserContext(), &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"goal": resp})
}

// UpdateGoal handles PATCH /goals and PATCH /goals/:id.
func (h *Handlers) UpdateGoal(c *fiber.Ctx) error {
	var req goal.UpdateGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if raw := c.Params("id"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return badRequest(c, "id must be a positive integer")
		}
		req.ID = id
	}
	if req.ID == 0 {
		return badRequest(c, "id is required")
	}

	resp, err := h.goals.UpdateGoal(c.UserContext(), &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"goal": resp})
}

// DeleteGoal handles DELETE /goals?id=<id>. Deleting a goal removes its
// tasks and their assignments in the same transaction.
func (h *Handlers) DeleteGoal(c *fiber.Ctx) error {
	raw := c.Query("id")
	if raw == "" {
		return badRequest(c, "id query parameter is required")
	}
	id, err := parseID(raw)
	if err != nil {
		return badRequest(c, "id must be a positive integer")
	}

	if err := h.goals.DeleteGoal(c.UserContext(), id); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: "Goal deleted successfully"})
}
