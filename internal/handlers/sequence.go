package handlers

import (
	"time"

	"github.com/cintasign/hse-portal/internal/models"
	"github.com/cintasign/hse-portal/internal/services"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SequenceHandler handles document number routes
type SequenceHandler struct {
	DB *gorm.DB
}

// NextDocumentNumber handles GET /next-document?formType=X
// @Summary Peek the next document number
// @Description Compute the next document number for a form type today without advancing the counter
// @Tags Sequence
// @Produce json
// @Param formType query string true "Form type identifier"
// @Success 200 {object} utils.NextNumberResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Router /next-document [get]
func (h *SequenceHandler) NextDocumentNumber(c *fiber.Ctx) error {
	formType := c.Query("formType")
	today := time.Now().UTC().Format(models.SequenceDateFormat)

	nextNumber, err := services.PeekNextDocumentNumber(h.DB, formType, today)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"nextNumber": nextNumber,
	})
}
