package usecase

import (
	"context"
	"crypto/rand"
	"fmt"
	"math/big"
	"time"

	"github.com/parsab/daryaban/internal/pkg/logger"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
	"github.com/parsab/daryaban/services/auth"
)

// generateCode produces a uniform six-digit code in [100000, 999999]
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", fmt.Errorf("failed to generate verification code: %w", err)
	}
	return fmt.Sprintf("%d", n.Int64()+100000), nil
}

// IssueChallenge stores a fresh challenge for (mobile, purpose) and hands the
// code to the SMS gateway. An outstanding challenge for the same pair is
// silently replaced. Delivery failure does not fail issuance.
func (uc *AuthUC) IssueChallenge(ctx context.Context, mobile string, purpose models.Purpose) (*models.ChallengeIssued, error) {
	return uc.issueChallenge(ctx, mobile, purpose, nil)
}

func (uc *AuthUC) issueChallenge(ctx context.Context, mobile string, purpose models.Purpose, metadata map[string]string) (*models.ChallengeIssued, error) {
	normalized, ok := utils.ValidateMobile(mobile)
	if !ok {
		return nil, auth.ErrInvalidMobile
	}

	if purpose == "" {
		purpose = models.PurposeVerification
	}
	if !purpose.Valid() {
		return nil, fmt.Errorf("unknown verification purpose %q", purpose)
	}

	code, err := generateCode()
	if err != nil {
		return nil, err
	}

	now := time.Now()
	ttl := uc.challengeTTL()
	record := &models.Verification{
		Mobile:    normalized,
		Code:      code,
		Purpose:   purpose,
		CreatedAt: now,
		ExpiresAt: now.Add(ttl),
		Metadata:  metadata,
	}

	if err := uc.verificationRepo.UpsertVerification(ctx, record, ttl); err != nil {
		return nil, err
	}

	delivery := uc.smsGW.SendCode(ctx, normalized, code)

	logger.Info("verification challenge issued",
		logger.String("mobile", utils.MaskMobile(normalized)),
		logger.String("purpose", string(purpose)),
		logger.Bool("delivered", delivery.Success))

	return &models.ChallengeIssued{
		Mobile:    normalized,
		Code:      code,
		ExpiresAt: record.ExpiresAt,
		TTLSec:    int(ttl.Seconds()),
		Delivery:  delivery,
	}, nil
}

// VerifyChallenge applies one verification attempt. An empty purpose verifies
// against whichever challenge is outstanding for the mobile. On success the
// consumed record is returned; it stays queryable for the grace window.
func (uc *AuthUC) VerifyChallenge(ctx context.Context, mobile, code string, purpose models.Purpose) (*models.Verification, error) {
	normalized, ok := utils.ValidateMobile(mobile)
	if !ok {
		return nil, auth.ErrInvalidMobile
	}

	record, err := uc.verificationRepo.FindActiveVerification(ctx, normalized, purpose)
	if err != nil {
		return nil, err
	}
	if record == nil {
		uc.logLookupMiss(ctx, normalized, purpose)
		return nil, auth.ErrChallengeNotFound
	}

	outcome, updated, err := uc.verificationRepo.ApplyAttempt(ctx, record, code, uc.cfg.Verification.MaxAttempts, uc.graceTTL())
	if err != nil {
		return nil, err
	}

	switch outcome {
	case auth.AttemptMatched:
		logger.Info("verification challenge consumed",
			logger.String("mobile", utils.MaskMobile(normalized)),
			logger.String("purpose", string(updated.Purpose)))
		return updated, nil
	case auth.AttemptMismatched:
		remaining := uc.cfg.Verification.MaxAttempts - updated.Attempts
		return nil, &auth.CodeMismatchError{Remaining: remaining}
	case auth.AttemptExhausted:
		logger.Warn("verification attempts exhausted",
			logger.String("mobile", utils.MaskMobile(normalized)),
			logger.String("purpose", string(record.Purpose)))
		return nil, auth.ErrAttemptsExhausted
	default:
		return nil, auth.ErrChallengeNotFound
	}
}

// logLookupMiss emits extra diagnostics on failed lookups when the debug knob
// is on. Production deployments keep this quiet.
func (uc *AuthUC) logLookupMiss(ctx context.Context, mobile string, purpose models.Purpose) {
	if !uc.cfg.Verification.Debug {
		return
	}
	active, err := uc.verificationRepo.CountActive(ctx, mobile)
	if err != nil {
		logger.Warn("failed to count active challenges",
			logger.String("mobile", utils.MaskMobile(mobile)), logger.Err(err))
		return
	}
	logger.Debug("verification lookup miss",
		logger.String("mobile", utils.MaskMobile(mobile)),
		logger.String("purpose", string(purpose)),
		logger.Int("active_challenges", active))
}
