package handlers

import (
	"github.com/cintasign/hse-portal/internal/config"
	"github.com/cintasign/hse-portal/internal/services"
	"github.com/cintasign/hse-portal/internal/types"
	"github.com/cintasign/hse-portal/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SubmissionHandler handles submission routes
type SubmissionHandler struct {
	DB  *gorm.DB
	Cfg *config.Config
}

// ListSubmissions handles GET /submissions
// @Summary List submissions
// @Description List all submissions, newest first, filtered to the caller's brand when one is set
// @Tags Submissions
// @Produce json
// @Success 200 {array} models.Submission
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /submissions [get]
func (h *SubmissionHandler) ListSubmissions(c *fiber.Ctx) error {
	identity, err := getIdentity(c)
	if err != nil {
		return err
	}

	// Profiles without a brand see everything; a set brand scopes the listing,
	// with legacy unbranded rows counting as the default tenant.
	brandFilter := ""
	if identity.Brand != nil && *identity.Brand != "" {
		brandFilter = services.ResolveBrand(identity.Brand, "")
	}

	submissions, err := services.ListSubmissions(h.DB, brandFilter)
	if err != nil {
		return err
	}

	return c.Status(fiber.StatusOK).JSON(submissions)
}

// CreateSubmission handles POST /submissions
// @Summary Submit a completed inspection form
// @Description Validate and persist a new submission with server-derived metadata
// @Tags Submissions
// @Accept json
// @Produce json
// @Param body body services.SubmissionInput true "Submission"
// @Success 201 {object} utils.CreatedResponseStruct
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /submissions [post]
func (h *SubmissionHandler) CreateSubmission(c *fiber.Ctx) error {
	identity, err := getIdentity(c)
	if err != nil {
		return err
	}

	var input services.SubmissionInput
	if err := c.BodyParser(&input); err != nil {
		return types.ValidationError("Invalid request body")
	}

	submission, err := services.CreateSubmission(h.DB, &input, identity)
	if err != nil {
		return err
	}

	// Advisory third-party notification; never part of the success contract.
	utils.NotifyWebhook(h.Cfg.WebhookURL, submission)

	return utils.CreatedResponse(c, submission.ID)
}

// DeleteSubmission handles DELETE /submissions/:id
// @Summary Delete a submission
// @Description Delete a submission by id (admin only)
// @Tags Submissions
// @Produce json
// @Param id path string true "Submission ID"
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 403 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /submissions/{id} [delete]
func (h *SubmissionHandler) DeleteSubmission(c *fiber.Ctx) error {
	identity, err := getIdentity(c)
	if err != nil {
		return err
	}

	// Role is re-checked here, independent of the route middleware, and before
	// the id is looked up so non-admins learn nothing about existence.
	if !identity.IsAdmin() {
		return types.AuthorizationError("Admin role required")
	}

	if err := services.DeleteSubmission(h.DB, c.Params("id")); err != nil {
		return err
	}

	return utils.SuccessResponse(c)
}
