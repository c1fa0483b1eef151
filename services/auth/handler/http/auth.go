package http

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/parsab/daryaban/internal/pkg/logger"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
	"github.com/parsab/daryaban/services/auth"
)

// AuthHandler handles HTTP requests for verification and account operations
type AuthHandler struct {
	authUC auth.AuthUC
	cfg    *models.Config
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authUC auth.AuthUC, cfg *models.Config) *AuthHandler {
	return &AuthHandler{
		authUC: authUC,
		cfg:    cfg,
	}
}

// challengeBody shapes the issued-challenge response. The raw code is only
// included when the reveal knob is on, or as a fallback when delivery failed
// in a deployment without a live SMS provider.
func (h *AuthHandler) challengeBody(ch *models.ChallengeIssued) map[string]interface{} {
	body := map[string]interface{}{
		"mobile":        ch.Mobile,
		"expires_at":    ch.ExpiresAt,
		"ttl_sec":       ch.TTLSec,
		"sms_delivered": ch.Delivery.Success,
	}
	if h.cfg.Verification.RevealCode {
		body["code"] = ch.Code
	} else if !ch.Delivery.Success && ch.Delivery.FallbackCode != "" && !h.cfg.SMS.Enabled {
		body["fallback_code"] = ch.Delivery.FallbackCode
	}
	if !ch.Delivery.Success && h.cfg.SMS.Enabled {
		// Soft failure: issuance succeeded, the caller just did not get an SMS
		body["delivery_error"] = auth.ErrDeliveryFailed.Error()
	}
	return body
}

// writeAuthError maps domain errors onto HTTP statuses
func writeAuthError(c echo.Context, err error) error {
	if mismatch, ok := auth.IsCodeMismatch(err); ok {
		return utils.ErrorResponseWithDetails(c, http.StatusBadRequest, "Verification code is incorrect",
			map[string]int{"remaining_attempts": mismatch.Remaining})
	}

	switch {
	case errors.Is(err, auth.ErrInvalidMobile),
		errors.Is(err, auth.ErrInvalidNationalCode),
		errors.Is(err, auth.ErrInvalidName),
		errors.Is(err, auth.ErrChallengeNotFound),
		errors.Is(err, auth.ErrAttemptsExhausted):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, auth.ErrAccountNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, auth.ErrAccountNotVerified),
		errors.Is(err, auth.ErrNotCrewAccount),
		errors.Is(err, auth.ErrStepNotVerified):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, auth.ErrMobileTaken),
		errors.Is(err, auth.ErrNationalCodeTaken):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.Error("auth request failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}

// SendCode issues a verification challenge for a mobile number
func (h *AuthHandler) SendCode(c echo.Context) error {
	var req models.SendCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	challenge, err := h.authUC.IssueChallenge(c.Request().Context(), req.Mobile, req.Purpose)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Verification code sent", h.challengeBody(challenge))
}

// VerifyCode consumes an outstanding challenge
func (h *AuthHandler) VerifyCode(c echo.Context) error {
	var req models.VerifyCodeRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	record, err := h.authUC.VerifyChallenge(c.Request().Context(), req.Mobile, req.Code, req.Purpose)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Code verified", map[string]interface{}{
		"mobile":  record.Mobile,
		"purpose": record.Purpose,
	})
}

// VerifyAndRegister consumes a challenge and creates the account in one step
func (h *AuthHandler) VerifyAndRegister(c echo.Context) error {
	var req models.VerifyAndRegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.VerifyAndRegister(c.Request().Context(), &req)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account registered", user)
}

// Register creates an account without code verification
func (h *AuthHandler) Register(c echo.Context) error {
	var req models.RegisterRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.Register(c.Request().Context(), &req)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusCreated, "Account registered", user)
}

// SendLoginOTP issues a login challenge for an existing account
func (h *AuthHandler) SendLoginOTP(c echo.Context) error {
	var req models.SendLoginOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	challenge, user, err := h.authUC.SendLoginOTP(c.Request().Context(), req.Mobile)
	if err != nil {
		return writeAuthError(c, err)
	}

	body := h.challengeBody(challenge)
	body["name"] = user.Name
	return utils.SuccessResponse(c, http.StatusOK, "Login code sent", body)
}

// LoginWithOTP verifies a login code and opens a session
func (h *AuthHandler) LoginWithOTP(c echo.Context) error {
	var req models.LoginOTPRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	resp, err := h.authUC.LoginWithOTP(c.Request().Context(), req.Mobile, req.Code)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Login successful", resp)
}

// CheckUser looks up an account by mobile and/or national code
func (h *AuthHandler) CheckUser(c echo.Context) error {
	var req models.CheckUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	user, err := h.authUC.CheckUser(c.Request().Context(), &req)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Account found", user)
}

// CheckDuplicate reports which identifiers are already registered
func (h *AuthHandler) CheckDuplicate(c echo.Context) error {
	var req models.CheckUserRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}

	taken, err := h.authUC.CheckDuplicate(c.Request().Context(), &req)
	if err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Duplicate check complete", map[string]interface{}{
		"duplicate": len(taken) > 0,
		"fields":    taken,
	})
}

// UpdatePassword stores a client-supplied password hash
func (h *AuthHandler) UpdatePassword(c echo.Context) error {
	var req models.UpdatePasswordRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PasswordHash == "" {
		return utils.BadRequestResponse(c, "password_hash is required")
	}

	if err := h.authUC.UpdatePassword(c.Request().Context(), &req); err != nil {
		return writeAuthError(c, err)
	}

	return utils.SuccessResponse(c, http.StatusOK, "Password updated", nil)
}
