package models

import (
	"time"
)

// Purpose distinguishes concurrent challenges held by the same mobile number.
type Purpose string

const (
	PurposeVerification  Purpose = "verification"
	PurposePasswordReset Purpose = "password_reset"
	PurposeLogin         Purpose = "login"
	PurposeRegister      Purpose = "register"
	PurposeChangeCurrent Purpose = "change_mobile_verify_current"
	PurposeChangeNew     Purpose = "change_mobile_verify_new"
)

// Purposes lists every known purpose. Unscoped lookups walk this slice in
// order, so the generic verification purpose is checked first.
var Purposes = []Purpose{
	PurposeVerification,
	PurposeRegister,
	PurposeLogin,
	PurposePasswordReset,
	PurposeChangeCurrent,
	PurposeChangeNew,
}

// Valid reports whether p is a known purpose
func (p Purpose) Valid() bool {
	for _, known := range Purposes {
		if p == known {
			return true
		}
	}
	return false
}

// Verification tracks one OTP challenge for a (mobile, purpose) pair. At most
// one unconsumed, unexpired record exists per pair; issuing a new challenge
// overwrites the previous one.
type Verification struct {
	Mobile    string            `json:"mobile"`
	Code      string            `json:"code"`
	Purpose   Purpose           `json:"purpose"`
	Attempts  int               `json:"attempts"`
	Consumed  bool              `json:"consumed"`
	CreatedAt time.Time         `json:"created_at"`
	ExpiresAt time.Time         `json:"expires_at"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// Active reports whether the record can still accept verification attempts
func (v *Verification) Active() bool {
	return !v.Consumed && time.Now().Before(v.ExpiresAt)
}

// Metadata keys used by the change-mobile flow to link steps together.
const (
	MetaNationalCode  = "national_code"
	MetaCurrentMobile = "current_mobile"
)

// DeliveryResult reports the outcome of handing a code to the SMS gateway.
// FallbackCode is populated only when delivery failed and the deployment
// allows relaying the code to the caller to keep local development unblocked.
type DeliveryResult struct {
	Success      bool   `json:"success"`
	MessageID    string `json:"message_id,omitempty"`
	Error        string `json:"error,omitempty"`
	FallbackCode string `json:"fallback_code,omitempty"`
}

// SendCodeRequest asks for a challenge to be issued
type SendCodeRequest struct {
	Mobile  string  `json:"mobile"`
	Purpose Purpose `json:"purpose,omitempty"`
}

// VerifyCodeRequest submits a code for an outstanding challenge
type VerifyCodeRequest struct {
	Mobile  string  `json:"mobile"`
	Code    string  `json:"code"`
	Purpose Purpose `json:"purpose,omitempty"`
}

// LoginOTPRequest submits a login code for an existing account
type LoginOTPRequest struct {
	Mobile string `json:"mobile"`
	Code   string `json:"code"`
}

// SendLoginOTPRequest asks for a login challenge for an existing account
type SendLoginOTPRequest struct {
	Mobile string `json:"mobile"`
}

// ChallengeIssued is returned by the engine after a challenge is stored.
// Code is only propagated to API responses when the reveal-code knob is on.
type ChallengeIssued struct {
	Mobile    string         `json:"mobile"`
	Code      string         `json:"-"`
	ExpiresAt time.Time      `json:"expires_at"`
	TTLSec    int            `json:"ttl_sec"`
	Delivery  DeliveryResult `json:"-"`
}

// ChangeMobileRequest starts the change-mobile flow (step 1)
type ChangeMobileRequest struct {
	NationalCode  string `json:"national_code"`
	CurrentMobile string `json:"current_mobile"`
}

// VerifyCurrentRequest verifies the current number (step 2)
type VerifyCurrentRequest struct {
	CurrentMobile string `json:"current_mobile"`
	Code          string `json:"code"`
}

// SendToNewRequest issues a challenge against the new number (step 3)
type SendToNewRequest struct {
	NationalCode  string `json:"national_code"`
	CurrentMobile string `json:"current_mobile"`
	NewMobile     string `json:"new_mobile"`
	StepToken     string `json:"step_token"`
}

// ConfirmChangeRequest finalizes the mobile change (step 4)
type ConfirmChangeRequest struct {
	NationalCode string `json:"national_code"`
	NewMobile    string `json:"new_mobile"`
	Code         string `json:"code"`
}
