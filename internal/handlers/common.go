package handlers

import (
	"errors"
	"log"

	"github.com/cintasign/hse-portal/internal/models"
	"github.com/cintasign/hse-portal/internal/types"
	"github.com/cintasign/hse-portal/internal/utils"
	"github.com/gofiber/fiber/v2"
)

// getIdentity extracts the caller identity from context (set by auth middleware)
func getIdentity(c *fiber.Ctx) (models.Identity, error) {
	identity, ok := c.Locals("identity").(models.Identity)
	if !ok {
		return models.Identity{}, types.AuthenticationError("Identity not found in request context")
	}
	return identity, nil
}

// ErrorHandler converts errors to the { error, details? } JSON body. Installed
// as the global Fiber error handler; nothing propagates as an unhandled fault.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var portalErr *types.PortalError
	if errors.As(err, &portalErr) {
		if portalErr.Type == "storage" {
			log.Printf("Storage error on %s: %s", c.OriginalURL(), portalErr.Details)
		}
		return utils.ErrorResponse(c, portalErr.Code, portalErr.Message, portalErr.Details)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return utils.ErrorResponse(c, fiberErr.Code, fiberErr.Message, "")
	}

	log.Printf("Unhandled error on %s: %v", c.OriginalURL(), err)
	return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Internal server error", "")
}
