package handlers

import (
	"github.com/cintasign/hse-portal/internal/middleware"
	"github.com/cintasign/hse-portal/internal/services"
	"github.com/cintasign/hse-portal/internal/types"
	"github.com/cintasign/hse-portal/internal/utils"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SessionHandler handles session routes
type SessionHandler struct {
	DB *gorm.DB
}

// Logout handles POST /logout
// @Summary Sign out
// @Description Terminate the session and clear the stored brand so the next sign-in re-selects the tenant
// @Tags Session
// @Produce json
// @Success 200 {object} utils.SuccessResponseStruct
// @Failure 401 {object} utils.ErrorResponseStruct
// @Failure 502 {object} utils.ErrorResponseStruct
// @Security CookieAuth
// @Router /logout [post]
func (h *SessionHandler) Logout(c *fiber.Ctx) error {
	identity, err := getIdentity(c)
	if err != nil {
		return err
	}

	if err := services.ClearBrand(h.DB, identity.UserID); err != nil {
		return types.StorageError(err)
	}

	c.ClearCookie(middleware.SessionCookie, middleware.BrandCookie)

	return utils.SuccessResponse(c)
}
