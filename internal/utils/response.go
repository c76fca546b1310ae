package utils

import (
	"github.com/gofiber/fiber/v2"
)

// ErrorResponse sends the standard error body: { error, details? }
func ErrorResponse(c *fiber.Ctx, status int, message, details string) error {
	body := fiber.Map{"error": message}
	if details != "" {
		body["details"] = details
	}
	return c.Status(status).JSON(body)
}

// CreatedResponse acknowledges a newly persisted record
func CreatedResponse(c *fiber.Ctx, id string) error {
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"id":      id,
	})
}

// SuccessResponse sends a plain success acknowledgment
func SuccessResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
	})
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}

// CreatedResponseStruct defines the schema for creation acknowledgments
type CreatedResponseStruct struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// SuccessResponseStruct defines the schema for success acknowledgments
type SuccessResponseStruct struct {
	Success bool `json:"success"`
}

// NextNumberResponseStruct defines the schema for document number responses
type NextNumberResponseStruct struct {
	NextNumber int `json:"nextNumber"`
}
