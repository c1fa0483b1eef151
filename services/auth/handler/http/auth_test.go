package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/auth"
	"github.com/parsab/daryaban/services/auth/mocks"
)

func setupHandlerTest(t *testing.T) (*AuthHandler, *mocks.MockAuthUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockAuthUC(ctrl)

	cfg := &models.Config{
		Verification: models.VerificationConfig{
			TTLSec:      120,
			MaxAttempts: 3,
		},
		SMS: models.SMSConfig{Enabled: true},
	}
	return NewAuthHandler(mockUC, cfg), mockUC, ctrl
}

func doRequest(t *testing.T, handler echo.HandlerFunc, body string) *httptest.ResponseRecorder {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, handler(c))
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestSendCode(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		IssueChallenge(gomock.Any(), "09123456789", models.PurposeLogin).
		Return(&models.ChallengeIssued{
			Mobile:    "09123456789",
			Code:      "123456",
			ExpiresAt: time.Now().Add(2 * time.Minute),
			TTLSec:    120,
			Delivery:  models.DeliveryResult{Success: true},
		}, nil)

	rec := doRequest(t, h.SendCode, `{"mobile":"09123456789","purpose":"login"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, true, body["success"])

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "09123456789", data["mobile"])
	assert.Equal(t, float64(120), data["ttl_sec"])
	// Codes never leak unless the reveal knob is on.
	assert.NotContains(t, data, "code")
	assert.NotContains(t, data, "fallback_code")
}

func TestSendCode_RevealCode(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()
	h.cfg.Verification.RevealCode = true

	mockUC.EXPECT().
		IssueChallenge(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ChallengeIssued{
			Mobile:   "09123456789",
			Code:     "123456",
			TTLSec:   120,
			Delivery: models.DeliveryResult{Success: true},
		}, nil)

	rec := doRequest(t, h.SendCode, `{"mobile":"09123456789"}`)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "123456", data["code"])
}

func TestSendCode_FallbackCodeWhenSMSDisabled(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()
	h.cfg.SMS.Enabled = false

	mockUC.EXPECT().
		IssueChallenge(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ChallengeIssued{
			Mobile: "09123456789",
			Code:   "123456",
			TTLSec: 120,
			Delivery: models.DeliveryResult{
				Success:      false,
				Error:        "sms disabled",
				FallbackCode: "123456",
			},
		}, nil)

	rec := doRequest(t, h.SendCode, `{"mobile":"09123456789"}`)

	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "123456", data["fallback_code"])
}

func TestSendCode_SurfacesDeliveryFailure(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		IssueChallenge(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&models.ChallengeIssued{
			Mobile: "09123456789",
			Code:   "123456",
			TTLSec: 120,
			Delivery: models.DeliveryResult{
				Success:      false,
				Error:        "provider returned status 500",
				FallbackCode: "123456",
			},
		}, nil)

	rec := doRequest(t, h.SendCode, `{"mobile":"09123456789"}`)

	// Issuance still succeeds; the failure is reported softly in the body.
	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, false, data["sms_delivered"])
	assert.Equal(t, auth.ErrDeliveryFailed.Error(), data["delivery_error"])
	assert.NotContains(t, data, "code")
	assert.NotContains(t, data, "fallback_code")
}

func TestSendCode_InvalidMobile(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		IssueChallenge(gomock.Any(), "12345", models.Purpose("")).
		Return(nil, auth.ErrInvalidMobile)

	rec := doRequest(t, h.SendCode, `{"mobile":"12345"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyCode_Mismatch(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		VerifyChallenge(gomock.Any(), "09123456789", "000000", models.Purpose("")).
		Return(nil, &auth.CodeMismatchError{Remaining: 2})

	rec := doRequest(t, h.VerifyCode, `{"mobile":"09123456789","code":"000000"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	details := body["details"].(map[string]interface{})
	assert.Equal(t, float64(2), details["remaining_attempts"])
}

func TestVerifyCode_NotFound(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		VerifyChallenge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrChallengeNotFound)

	rec := doRequest(t, h.VerifyCode, `{"mobile":"09123456789","code":"123456"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyCode_Exhausted(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		VerifyChallenge(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrAttemptsExhausted)

	rec := doRequest(t, h.VerifyCode, `{"mobile":"09123456789","code":"000000"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestVerifyAndRegister_Conflict(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		VerifyAndRegister(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrMobileTaken)

	rec := doRequest(t, h.VerifyAndRegister,
		`{"mobile":"09123456789","code":"123456","national_code":"1234567890","name":"Hassan"}`)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestSendLoginOTP_AccountNotFound(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		SendLoginOTP(gomock.Any(), "09123456789").
		Return(nil, nil, auth.ErrAccountNotFound)

	rec := doRequest(t, h.SendLoginOTP, `{"mobile":"09123456789"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSendLoginOTP_Unverified(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		SendLoginOTP(gomock.Any(), "09123456789").
		Return(nil, nil, auth.ErrAccountNotVerified)

	rec := doRequest(t, h.SendLoginOTP, `{"mobile":"09123456789"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestLoginWithOTP_Success(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		LoginWithOTP(gomock.Any(), "09123456789", "123456").
		Return(&models.AuthResponse{
			Token:     "signed-token",
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
			User:      &models.User{Mobile: "09123456789", Role: models.RoleOwner},
		}, nil)

	rec := doRequest(t, h.LoginWithOTP, `{"mobile":"09123456789","code":"123456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "signed-token", data["token"])
}

func TestSailorLogin_NotCrew(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		SendSailorLoginOTP(gomock.Any(), "09123456789").
		Return(nil, nil, auth.ErrNotCrewAccount)

	rec := doRequest(t, h.SendSailorLoginOTP, `{"mobile":"09123456789"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSendCodeToNewMobile_StepNotVerified(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		SendCodeToNewMobile(gomock.Any(), gomock.Any()).
		Return(nil, auth.ErrStepNotVerified)

	rec := doRequest(t, h.SendCodeToNewMobile,
		`{"national_code":"1234567890","current_mobile":"09123456789","new_mobile":"09111111111","step_token":"bogus"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestVerifyCurrentMobile_ReturnsStepToken(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		VerifyCurrentMobile(gomock.Any(), gomock.Any()).
		Return("step-token-abc", nil)

	rec := doRequest(t, h.VerifyCurrentMobile, `{"current_mobile":"09123456789","code":"123456"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, "step-token-abc", data["step_token"])
}

func TestCheckDuplicate(t *testing.T) {
	h, mockUC, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		CheckDuplicate(gomock.Any(), gomock.Any()).
		Return([]string{"mobile"}, nil)

	rec := doRequest(t, h.CheckDuplicate, `{"mobile":"09123456789"}`)

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeBody(t, rec)["data"].(map[string]interface{})
	assert.Equal(t, true, data["duplicate"])
}

func TestUpdatePassword_MissingHash(t *testing.T) {
	h, _, ctrl := setupHandlerTest(t)
	defer ctrl.Finish()

	rec := doRequest(t, h.UpdatePassword, `{"mobile":"09123456789","national_code":"1234567890"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
