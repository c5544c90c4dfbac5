package api

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Errors cross the service container as plain strings, so mapping works by
// matching the known sentinel messages rather than errors.Is.

// respondData writes a successful envelope.
func respondData(c *fiber.Ctx, status int, message string, data any) error {
	return c.Status(status).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// respondList writes a successful envelope with a count.
func respondList(c *fiber.Ctx, message string, data any, count int) error {
	return c.Status(fiber.StatusOK).JSON(Response{
		Success: true,
		Message: message,
		Data:    data,
		Count:   &count,
	})
}

// respondError writes a failure envelope.
func respondError(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(Response{
		Success: false,
		Message: message,
		Errors:  []string{message},
	})
}

// serviceError maps a tracker or auth service error to an HTTP response.
func serviceError(c *fiber.Ctx, err error) error {
	msg := err.Error()

	switch {
	case strings.Contains(msg, "not found"):
		return respondError(c, fiber.StatusNotFound, trimServicePrefix(msg))
	case strings.Contains(msg, "not authorized"):
		return respondError(c, fiber.StatusForbidden, trimServicePrefix(msg))
	case strings.Contains(msg, "invalid username or password"),
		strings.Contains(msg, "account is disabled"),
		strings.Contains(msg, "token has expired"),
		strings.Contains(msg, "token has been revoked"),
		strings.Contains(msg, "invalid token"):
		return respondError(c, fiber.StatusUnauthorized, trimServicePrefix(msg))
	case strings.Contains(msg, "already exists"),
		strings.Contains(msg, "is required"),
		strings.Contains(msg, "must be at least"),
		strings.Contains(msg, "must be at most"),
		strings.Contains(msg, "invalid status"),
		strings.Contains(msg, "invalid priority"),
		strings.Contains(msg, "invalid due date"):
		return respondError(c, fiber.StatusBadRequest, trimServicePrefix(msg))
	default:
		log.Printf("[api] Internal error: %v", err)
		return respondError(c, fiber.StatusInternalServerError, "an internal error occurred")
	}
}

// trimServicePrefix strips the request-reply plumbing prefix so clients see
// only the final cause, e.g. "call failed: project not found" becomes
// "project not found".
func trimServicePrefix(msg string) string {
	if i := strings.LastIndex(msg, ": "); i >= 0 {
		return msg[i+2:]
	}
	return msg
}
