package auth

import (
	"context"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/parsab/daryaban/services/auth AuthUC

// AuthUC is the verification engine plus the identity gate built on top of
// it. Both the owner-facing and the sailor-facing routes consume this one
// interface, parameterized by purpose and gating rules.
type AuthUC interface {
	// Verification engine
	IssueChallenge(ctx context.Context, mobile string, purpose models.Purpose) (*models.ChallengeIssued, error)
	VerifyChallenge(ctx context.Context, mobile, code string, purpose models.Purpose) (*models.Verification, error)

	// Identity gate
	VerifyAndRegister(ctx context.Context, req *models.VerifyAndRegisterRequest) (*models.User, error)
	Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error)
	SendLoginOTP(ctx context.Context, mobile string) (*models.ChallengeIssued, *models.User, error)
	LoginWithOTP(ctx context.Context, mobile, code string) (*models.AuthResponse, error)
	SendSailorLoginOTP(ctx context.Context, mobile string) (*models.ChallengeIssued, *models.User, error)
	SailorLoginWithOTP(ctx context.Context, mobile, code string) (*models.AuthResponse, error)
	CheckUser(ctx context.Context, req *models.CheckUserRequest) (*models.User, error)
	CheckDuplicate(ctx context.Context, req *models.CheckUserRequest) ([]string, error)
	UpdatePassword(ctx context.Context, req *models.UpdatePasswordRequest) error

	// Profile
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error)

	// Change-mobile flow
	RequestMobileChange(ctx context.Context, req *models.ChangeMobileRequest) (*models.ChallengeIssued, error)
	VerifyCurrentMobile(ctx context.Context, req *models.VerifyCurrentRequest) (string, error)
	SendCodeToNewMobile(ctx context.Context, req *models.SendToNewRequest) (*models.ChallengeIssued, error)
	ConfirmMobileChange(ctx context.Context, req *models.ConfirmChangeRequest) (*models.User, error)
}
