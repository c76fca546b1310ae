package types

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// PortalError is the error taxonomy surfaced at the endpoint boundary.
// Type is one of: validation, authentication, authorization, not_found, storage.
type PortalError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
	Details string `json:"details,omitempty"`
}

func (e *PortalError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// ValidationError signals a missing or malformed required field (400).
func ValidationError(message string) *PortalError {
	return &PortalError{Code: fiber.StatusBadRequest, Message: message, Type: "validation"}
}

// AuthenticationError signals an absent or invalid session (401).
func AuthenticationError(message string) *PortalError {
	return &PortalError{Code: fiber.StatusUnauthorized, Message: message, Type: "authentication"}
}

// AuthorizationError signals an authenticated caller with insufficient role (403).
func AuthorizationError(message string) *PortalError {
	return &PortalError{Code: fiber.StatusForbidden, Message: message, Type: "authorization"}
}

// NotFoundError signals a referenced id that does not exist (404).
func NotFoundError(message string) *PortalError {
	return &PortalError{Code: fiber.StatusNotFound, Message: message, Type: "not_found"}
}

// StorageError wraps a backing-store failure (502). The original cause is kept
// in Details for diagnostics; the client-facing message stays generic.
func StorageError(cause error) *PortalError {
	return &PortalError{
		Code:    fiber.StatusBadGateway,
		Message: "Storage operation failed",
		Type:    "storage",
		Details: fmt.Sprintf("%v", cause),
	}
}
