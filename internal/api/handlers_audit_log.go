package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/caioaraujo/grana/internal/services"
	"github.com/gofiber/fiber/v2"
)

func (handler *Handler) GetAuditLog(c *fiber.Ctx) error {
	entries, err := handler.adminService.ListAuditLog()
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to list audit log")
	}

	payload := make([]fiber.Map, 0, len(entries))
	for _, entry := range entries {
		payload = append(payload, fiber.Map{
			"id":        entry.ID,
			"_id":       strconv.FormatUint(uint64(entry.ID), 10),
			"user_id":   entry.UserID,
			"action":    entry.Action,
			"item_type": entry.ItemType,
			"item_id":   entry.ItemID,
			"details":   entry.Details,
			"timestamp": entry.Timestamp.Format(time.RFC3339),
		})
	}
	return c.JSON(payload)
}

func (handler *Handler) DeleteAuditLogEntry(c *fiber.Ctx) error {
	entryID, err := parseIDParam(c, "id")
	if err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid log id")
	}

	if err := handler.adminService.DeleteAuditLogEntry(entryID); err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return apiError(c, fiber.StatusNotFound, "Log not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete log entry")
	}

	return c.JSON(fiber.Map{"message": "Log deleted successfully"})
}
