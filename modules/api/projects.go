package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/laibaTLD/logic-camp/modules/project"
)

// ListProjects handles GET /projects.
func (h *Handlers) ListProjects(c *fiber.Ctx) error {
	resp, err := h.projects.ListProjects(c.UserContext())
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(resp)
}

// GetProject handles GET /projects/:id.
func (h *Handlers) GetProject(c *fiber.Ctx) error {
	id, err := parseID(c.Params("id"))
	if err != nil {
		return badRequest(c, "id must be a positive integer")
	}

	resp, err := h.projects.GetProject(c.UserContext(), id)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"project": resp})
}

// CreateProject handles POST /projects. Admin only; the owner is the
// authenticated caller.
func (h *Handlers) CreateProject(c *fiber.Ctx) error {
	var req project.CreateProjectRequest
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
	req.OwnerID = claims.UserID

	resp, err := h.projects.CreateProject(c.UserContext(), &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"project": resp})
}

// UpdateProject handles PATCH /projects and PATCH /projects/:id. Admin only.
func (h *Handlers) UpdateProject(c *fiber.Ctx) error {
	var req project.UpdateProjectRequest
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

	resp, err := h.projects.UpdateProject(c.UserContext(), &req)
	if err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"project": resp})
}

// DeleteProject handles DELETE /projects?id=<id>. Admin only; removes the
// project's goals, their tasks, and the task assignments.
func (h *Handlers) DeleteProject(c *fiber.Ctx) error {
	raw := c.Query("id")
	if raw == "" {
		return badRequest(c, "id query parameter is required")
	}
	id, err := parseID(raw)
	if err != nil {
		return badRequest(c, "id must be a positive integer")
	}

	if err := h.projects.DeleteProject(c.UserContext(), id); err != nil {
		return h.handleServiceError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(MessageResponse{Message: "Project deleted successfully"})
}
