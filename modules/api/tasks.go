package api

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/laibaTLD/logic-camp/modules/task"
)

// ListTasks handles GET /tasks. An optional goalId query parameter scopes
// the list to one goal and must parse as a positive integer.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	var goalID *uint
	if raw := c.Query("goalId"); raw != "" {
		id, err := parseID(raw)
		if err != nil {
			return badRequest(c, "goalId must be a positive integer")
		}
		goalID = &id
	}

	resp, err := h.tasks.ListTasks(c.UserContext(), goalID)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetTask handles GET /tasks/:id.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return badRequest(c, "id must be a positive integer")
	}

	resp, err := h.tasks.GetTask(c.UserContext(), id)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"task": resp})
}

// CreateTask handles POST /tasks. The creator is always the authenticated
// caller, regardless of what the body claims.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	var req task.CreateTaskRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	claims := currentClaims(c)
	if claims == nil {
		return c.Status(fiber.StatusUnauthorized).JSON(ErrorResponse{
			Error:   "unauthorized",
			Message: "User not authenticated",
		})
	}
	req.CreatedByID = claims.UserID

	resp, err := h.tasks.CreateTask(c.UserContext(), &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"task": resp})
}

// UpdateTask handles PATCH /tasks and PATCH /tasks/:id. The body carries the
// fields to change; absent fields keep their prior value. The id comes from
// the path when present, from the body otherwise.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	var req task.UpdateTaskRequest
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

	resp, err := h.tasks.UpdateTask(c.UserContext(), &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"task": resp})
}

// DeleteTask handles DELETE /tasks?id=<id>.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	raw := c.Query("id")
	if raw == "" {
		return badRequest(c, "id query parameter is required")
	}
	id, err := parseID(raw)
	if err != nil {
		return badRequest(c, "id must be a positive integer")
	}

	if err := h.tasks.DeleteTask(c.UserContext(), id); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: "Task deleted successfully"})
}

// parseID parses a decimal id that must be a positive integer.
func parseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	if id == 0 {
		return 0, strconv.ErrRange
	}
	return uint(id), nil
}
