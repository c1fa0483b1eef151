package auth

import (
	"errors"
	"fmt"
)

// Domain errors returned by the verification engine and identity gate. All of
// these are expected, user-facing outcomes; anything else bubbling out of the
// usecase is an internal fault.
var (
	ErrInvalidMobile       = errors.New("invalid mobile number")
	ErrInvalidNationalCode = errors.New("invalid national code")
	ErrInvalidName         = errors.New("name must not be empty")
	ErrChallengeNotFound   = errors.New("verification code not found or expired")
	ErrAttemptsExhausted   = errors.New("maximum verification attempts reached")
	ErrMobileTaken         = errors.New("mobile number already registered")
	ErrNationalCodeTaken   = errors.New("national code already registered")
	ErrAccountNotFound     = errors.New("account not found")
	ErrAccountNotVerified  = errors.New("account not verified")
	ErrNotCrewAccount      = errors.New("mobile number is not registered as crew")
	ErrStepNotVerified     = errors.New("current mobile must be verified first")
	ErrDeliveryFailed      = errors.New("sms delivery failed")
)

// CodeMismatchError is returned when a submitted code does not match the
// outstanding challenge. Remaining reports how many attempts are left before
// the challenge is discarded.
type CodeMismatchError struct {
	Remaining int
}

func (e *CodeMismatchError) Error() string {
	return fmt.Sprintf("verification code mismatch, %d attempts remaining", e.Remaining)
}

// IsCodeMismatch extracts a CodeMismatchError from err, if present
func IsCodeMismatch(err error) (*CodeMismatchError, bool) {
	var mismatch *CodeMismatchError
	if errors.As(err, &mismatch) {
		return mismatch, true
	}
	return nil, false
}
