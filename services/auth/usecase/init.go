package usecase

import (
	"time"

	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/auth"
)

// AuthUC implements the verification engine and the identity gate
type AuthUC struct {
	cfg              *models.Config
	verificationRepo auth.VerificationRepo
	userRepo         auth.UserRepo
	smsGW            auth.SMSGateway
}

// NewAuthUC creates a new auth usecase instance
func NewAuthUC(
	cfg *models.Config,
	verificationRepo auth.VerificationRepo,
	userRepo auth.UserRepo,
	smsGW auth.SMSGateway,
) *AuthUC {
	return &AuthUC{
		cfg:              cfg,
		verificationRepo: verificationRepo,
		userRepo:         userRepo,
		smsGW:            smsGW,
	}
}

func (uc *AuthUC) challengeTTL() time.Duration {
	return time.Duration(uc.cfg.Verification.TTLSec) * time.Second
}

func (uc *AuthUC) graceTTL() time.Duration {
	return time.Duration(uc.cfg.Verification.GraceSec) * time.Second
}
