package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
)

// SendSailorLoginOTP issues a login challenge for a crew account
func (h *AuthHandler) SendSailorLoginOTP(c echo.Context) error {
	var req models.SendLoginOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	challenge, user, err := h.authUC.SendSailorLoginOTP(c.Request().Context(), req.Mobile)
	if err != nil {
		return writeAuthError(c, err)
	}

	body := h.challengeBody(challenge)
	body["name"] = user.Name
	body["role"] = user.Role
	return utils.SuccessResponse(c, http.StatusOK, "Login code sent", body)
}

// SailorLoginWithOTP verifies a crew login code and opens a session
func (h *AuthHandler) SailorLoginWithOTP(c echo.Context) error {
	var req models.LoginOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.SailorLoginWithOTP(c.Request().Context(), req.Mobile, req.Code)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// RequestMobileChange starts the change-mobile flow by challenging the
// current number.
func (h *AuthHandler) RequestMobileChange(c echo.Context) error {
	var req models.ChangeMobileRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	challenge, err := h.authUC.RequestMobileChange(c.Request().Context(), &req)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent to current number", h.challengeBody(challenge))
}

// VerifyCurrentMobile verifies the current number and returns the step token
// that unlocks challenging the new number.
func (h *AuthHandler) VerifyCurrentMobile(c echo.Context) error {
	var req models.VerifyCurrentRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	token, err := h.authUC.VerifyCurrentMobile(c.Request().Context(), &req)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Current number verified", map[string]string{
		"step_token": token,
	})
}

// SendCodeToNewMobile challenges the new number
func (h *AuthHandler) SendCodeToNewMobile(c echo.Context) error {
	var req models.SendToNewRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	challenge, err := h.authUC.SendCodeToNewMobile(c.Request().Context(), &req)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent to new number", h.challengeBody(challenge))
}

// ConfirmMobileChange consumes the new-number challenge and rewrites the
// account's mobile.
func (h *AuthHandler) ConfirmMobileChange(c echo.Context) error {
	var req models.ConfirmChangeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.ConfirmMobileChange(c.Request().Context(), &req)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Mobile number updated", user)
}
