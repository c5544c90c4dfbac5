package api

import (
	"github.com/example/taskboard/modules/tracker"
	"github.com/gofiber/fiber/v2"
)

// CreateProject handles project creation. The owner is always the
// authenticated user; the body carries no owner field.
func (h *Handlers) CreateProject(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	var body ProjectBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req := tracker.CreateProjectRequest{
		Actor:       claims.UserID,
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		DueDate:     body.DueDate,
	}
	var resp tracker.ProjectResponse
	if err := h.callTracker(c, "project-create", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusCreated, "Project created", resp)
}

// ListProjects returns the authenticated user's projects, newest first.
func (h *Handlers) ListProjects(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	req := tracker.ListProjectsRequest{Actor: claims.UserID}
	var resp tracker.ListProjectsResponse
	if err := h.callTracker(c, "project-list", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondList(c, "Projects retrieved", resp.Projects, resp.Total)
}

// GetProject returns one of the authenticated user's projects.
func (h *Handlers) GetProject(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	req := tracker.GetProjectRequest{Actor: claims.UserID, ID: c.Params("id")}
	var resp tracker.ProjectResponse
	if err := h.callTracker(c, "project-get", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Project retrieved", resp)
}

// UpdateProject partially updates a project. Absent body fields are left
// untouched.
func (h *Handlers) UpdateProject(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	var body ProjectPatchBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req := tracker.UpdateProjectRequest{
		Actor:       claims.UserID,
		ID:          c.Params("id"),
		Title:       body.Title,
		Description: body.Description,
		Status:      body.Status,
		DueDate:     body.DueDate,
	}
	var resp tracker.ProjectResponse
	if err := h.callTracker(c, "project-update", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Project updated", resp)
}

// DeleteProject deletes a project together with all of its tasks.
func (h *Handlers) DeleteProject(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	req := tracker.DeleteProjectRequest{Actor: claims.UserID, ID: c.Params("id")}
	var resp tracker.DeleteProjectResponse
	if err := h.callTracker(c, "project-delete", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateProjectStatus sets a project's status.
func (h *Handlers) UpdateProjectStatus(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	var body UpdateStatusBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req := tracker.SetProjectStatusRequest{
		Actor:  claims.UserID,
		ID:     c.Params("id"),
		Status: body.Status,
	}
	var resp tracker.ProjectResponse
	if err := h.callTracker(c, "project-set-status", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Project status updated", resp)
}
