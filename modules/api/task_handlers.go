package api

import (
	"github.com/example/taskboard/modules/tracker"
	"github.com/gofiber/fiber/v2"
)

// CreateTask handles task creation. The target project must exist and
// belong to the authenticated user.
func (h *Handlers) CreateTask(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	var body TaskBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req := tracker.CreateTaskRequest{
		Actor:       claims.UserID,
		Title:       body.Title,
		Description: body.Description,
		ProjectID:   body.ProjectID,
		Status:      body.Status,
		Priority:    body.Priority,
		DueDate:     body.DueDate,
	}
	var resp tracker.TaskResponse
	if err := h.callTracker(c, "task-create", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusCreated, "Task created", resp)
}

// ListTasks returns the authenticated user's tasks. Query parameters
// project, status and priority narrow the result conjunctively.
func (h *Handlers) ListTasks(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	req := tracker.ListTasksRequest{
		Actor:     claims.UserID,
		ProjectID: c.Query("project"),
		Status:    c.Query("status"),
		Priority:  c.Query("priority"),
	}
	var resp tracker.ListTasksResponse
	if err := h.callTracker(c, "task-list", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondList(c, "Tasks retrieved", resp.Tasks, resp.Total)
}

// ListOverdueTasks returns the authenticated user's open tasks whose due
// date has passed.
func (h *Handlers) ListOverdueTasks(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	req := tracker.ListOverdueRequest{Actor: claims.UserID}
	var resp tracker.ListTasksResponse
	if err := h.callTracker(c, "task-overdue", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondList(c, "Overdue tasks retrieved", resp.Tasks, resp.Total)
}

// GetTask returns one of the authenticated user's tasks.
func (h *Handlers) GetTask(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	req := tracker.GetTaskRequest{Actor: claims.UserID, ID: c.Params("id")}
	var resp tracker.TaskResponse
	if err := h.callTracker(c, "task-get", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Task retrieved", resp)
}

// UpdateTask partially updates a task.
func (h *Handlers) UpdateTask(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	var body TaskPatchBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req := tracker.UpdateTaskRequest{
		Actor:       claims.UserID,
		ID:          c.Params("id"),
		Title:       body.Title,
		Description: body.Description,
		ProjectID:   body.ProjectID,
		Status:      body.Status,
		Priority:    body.Priority,
		DueDate:     body.DueDate,
	}
	var resp tracker.TaskResponse
	if err := h.callTracker(c, "task-update", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Task updated", resp)
}

// DeleteTask deletes a task.
func (h *Handlers) DeleteTask(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	req := tracker.DeleteTaskRequest{Actor: claims.UserID, ID: c.Params("id")}
	var resp tracker.DeleteTaskResponse
	if err := h.callTracker(c, "task-delete", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// UpdateTaskStatus sets a task's status.
func (h *Handlers) UpdateTaskStatus(c *fiber.Ctx) error {
	claims, ok := actorFromContext(c)
	if !ok {
		return respondError(c, fiber.StatusUnauthorized, "User not authenticated")
	}

	var body UpdateStatusBody
	if err := c.BodyParser(&body); err != nil {
		return respondError(c, fiber.StatusBadRequest, "Invalid request body")
	}

	req := tracker.SetTaskStatusRequest{
		Actor:  claims.UserID,
		ID:     c.Params("id"),
		Status: body.Status,
	}
	var resp tracker.TaskResponse
	if err := h.callTracker(c, "task-set-status", &req, &resp); err != nil {
		return serviceError(c, err)
	}

	return respondData(c, fiber.StatusOK, "Task status updated", resp)
}
