package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_verification_repo.go -package=mocks github.com/parsab/daryaban/services/auth VerificationRepo
//go:generate mockgen -destination=mocks/mock_user_repo.go -package=mocks github.com/parsab/daryaban/services/auth UserRepo

// AttemptOutcome is the result of applying one verification attempt to a
// stored record. The store applies the whole attempt atomically so two
// concurrent attempts can never both pass the attempt limit.
type AttemptOutcome int

const (
	AttemptNotFound AttemptOutcome = iota
	AttemptMatched
	AttemptMismatched
	AttemptExhausted
)

// VerificationRepo persists OTP challenge records and the change-mobile step
// tokens. Records expire passively via TTL.
type VerificationRepo interface {
	// UpsertVerification stores a fresh challenge for (mobile, purpose),
	// overwriting any prior record for the pair.
	UpsertVerification(ctx context.Context, v *models.Verification, ttl time.Duration) error

	// GetVerification returns the record for (mobile, purpose), consumed or
	// not, or nil when absent.
	GetVerification(ctx context.Context, mobile string, purpose models.Purpose) (*models.Verification, error)

	// FindActiveVerification returns the active (unconsumed, unexpired)
	// record for the mobile. When purpose is empty the search walks all
	// known purposes.
	FindActiveVerification(ctx context.Context, mobile string, purpose models.Purpose) (*models.Verification, error)

	// FindConsumedVerification returns a consumed record still inside its
	// grace window, or nil.
	FindConsumedVerification(ctx context.Context, mobile string, purpose models.Purpose) (*models.Verification, error)

	// ApplyAttempt executes one verification attempt as a single atomic
	// operation: on match the record is marked consumed and kept for the
	// grace window; on mismatch the attempt counter is incremented; when the
	// counter reaches maxAttempts the record is deleted.
	ApplyAttempt(ctx context.Context, v *models.Verification, code string, maxAttempts int, grace time.Duration) (AttemptOutcome, *models.Verification, error)

	// DeleteVerification removes the record for (mobile, purpose)
	DeleteVerification(ctx context.Context, mobile string, purpose models.Purpose) error

	// CountActive returns how many purposes currently hold an active record
	// for the mobile. Used only for debug diagnostics.
	CountActive(ctx context.Context, mobile string) (int, error)

	// SaveStepToken stores the change-mobile step token for a national code
	SaveStepToken(ctx context.Context, nationalCode, token string, ttl time.Duration) error

	// GetStepToken returns the stored step token, or empty when absent
	GetStepToken(ctx context.Context, nationalCode string) (string, error)

	// DeleteStepToken removes the step token for a national code
	DeleteStepToken(ctx context.Context, nationalCode string) error
}

// UserRepo is the account store consumed by the identity gate
type UserRepo interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByMobile(ctx context.Context, mobile string) (*models.User, error)
	GetUserByNationalCode(ctx context.Context, nationalCode string) (*models.User, error)
	GetUserByMobileAndNationalCode(ctx context.Context, mobile, nationalCode string) (*models.User, error)

	// GetCrewByMobile returns the account only when it holds a crew role and
	// was registered by an owner.
	GetCrewByMobile(ctx context.Context, mobile string) (*models.User, error)

	// UpdateLoginState stamps last_login_at and optionally flips is_verified
	UpdateLoginState(ctx context.Context, id uuid.UUID, markVerified bool) error

	// UpdateMobile changes the account's mobile number
	UpdateMobile(ctx context.Context, nationalCode, newMobile string) (*models.User, error)

	// UpdateName updates the display name for a national code
	UpdateName(ctx context.Context, nationalCode, name string) (*models.User, error)

	// UpdatePasswordHash stores a client-supplied password hash
	UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error
}
