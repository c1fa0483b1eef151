package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
)

// callerID extracts the authenticated user's id set by the JWT middleware
func callerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("user_id").(uuid.UUID)
	return id, ok
}

// GetProfile retrieves the caller's own account
func (h *AuthHandler) GetProfile(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	user, err := h.authUC.GetProfile(c.Request().Context(), userID)
	if err != nil {
		return writeAuthError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile retrieved", user)
}

// UpdateProfile changes the caller's display name
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateProfileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.UpdateProfile(c.Request().Context(), userID, &req)
	if err != nil {
		return writeAuthError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Profile updated", user)
}
