package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/logger"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
	"github.com/parsab/daryaban/services/auth"
)

// The change-mobile flow runs in four steps: challenge the current number,
// verify it, challenge the new number, verify that too. Progress between steps
// is tracked with an opaque step token so a client cannot skip straight to the
// new number without proving control of the current one.

// RequestMobileChange starts the flow by challenging the current number
func (uc *AuthUC) RequestMobileChange(ctx context.Context, req *models.ChangeMobileRequest) (*models.ChallengeIssued, error) {
	current, ok := utils.ValidateMobile(req.CurrentMobile)
	if !ok {
		return nil, auth.ErrInvalidMobile
	}
	if !utils.ValidateNationalCode(req.NationalCode) {
		return nil, auth.ErrInvalidNationalCode
	}

	if _, err := uc.userRepo.GetUserByMobileAndNationalCode(ctx, current, req.NationalCode); err != nil {
		return nil, err
	}

	return uc.issueChallenge(ctx, current, models.PurposeChangeCurrent, map[string]string{
		models.MetaNationalCode: req.NationalCode,
	})
}

// VerifyCurrentMobile consumes the current-number challenge and returns the
// step token that unlocks challenging the new number.
func (uc *AuthUC) VerifyCurrentMobile(ctx context.Context, req *models.VerifyCurrentRequest) (string, error) {
	record, err := uc.VerifyChallenge(ctx, req.CurrentMobile, req.Code, models.PurposeChangeCurrent)
	if err != nil {
		return "", err
	}

	nationalCode := record.Metadata[models.MetaNationalCode]
	if nationalCode == "" {
		return "", auth.ErrChallengeNotFound
	}

	token := uuid.NewString()
	if err := uc.verificationRepo.SaveStepToken(ctx, nationalCode, token, uc.graceTTL()); err != nil {
		return "", err
	}

	logger.Info("current mobile verified for change",
		logger.String("mobile", utils.MaskMobile(record.Mobile)))
	return token, nil
}

// SendCodeToNewMobile challenges the new number. The caller must present the
// step token proving the current number was just verified, and the new number
// must not belong to another account.
func (uc *AuthUC) SendCodeToNewMobile(ctx context.Context, req *models.SendToNewRequest) (*models.ChallengeIssued, error) {
	current, ok := utils.ValidateMobile(req.CurrentMobile)
	if !ok {
		return nil, auth.ErrInvalidMobile
	}
	newMobile, ok := utils.ValidateMobile(req.NewMobile)
	if !ok {
		return nil, auth.ErrInvalidMobile
	}
	if !utils.ValidateNationalCode(req.NationalCode) {
		return nil, auth.ErrInvalidNationalCode
	}

	stored, err := uc.verificationRepo.GetStepToken(ctx, req.NationalCode)
	if err != nil {
		return nil, err
	}
	if stored == "" || stored != req.StepToken {
		return nil, auth.ErrStepNotVerified
	}

	existing, err := uc.userRepo.GetUserByMobile(ctx, newMobile)
	if err != nil && !errors.Is(err, auth.ErrAccountNotFound) {
		return nil, err
	}
	if existing != nil && existing.NationalCode != req.NationalCode {
		return nil, auth.ErrMobileTaken
	}

	return uc.issueChallenge(ctx, newMobile, models.PurposeChangeNew, map[string]string{
		models.MetaNationalCode:  req.NationalCode,
		models.MetaCurrentMobile: current,
	})
}

// ConfirmMobileChange consumes the new-number challenge and rewrites the
// account's mobile. The leftover records for both purposes and the step token
// are purged so the flow cannot be replayed.
func (uc *AuthUC) ConfirmMobileChange(ctx context.Context, req *models.ConfirmChangeRequest) (*models.User, error) {
	if !utils.ValidateNationalCode(req.NationalCode) {
		return nil, auth.ErrInvalidNationalCode
	}

	record, err := uc.VerifyChallenge(ctx, req.NewMobile, req.Code, models.PurposeChangeNew)
	if err != nil {
		return nil, err
	}
	if record.Metadata[models.MetaNationalCode] != req.NationalCode {
		return nil, auth.ErrChallengeNotFound
	}

	user, err := uc.userRepo.UpdateMobile(ctx, req.NationalCode, record.Mobile)
	if err != nil {
		return nil, err
	}

	if oldMobile := record.Metadata[models.MetaCurrentMobile]; oldMobile != "" {
		if err := uc.verificationRepo.DeleteVerification(ctx, oldMobile, models.PurposeChangeCurrent); err != nil {
			logger.Warn("failed to purge current-mobile record",
				logger.String("mobile", utils.MaskMobile(oldMobile)), logger.Err(err))
		}
	}
	if err := uc.verificationRepo.DeleteVerification(ctx, record.Mobile, models.PurposeChangeNew); err != nil {
		logger.Warn("failed to purge new-mobile record",
			logger.String("mobile", utils.MaskMobile(record.Mobile)), logger.Err(err))
	}
	if err := uc.verificationRepo.DeleteStepToken(ctx, req.NationalCode); err != nil {
		logger.Warn("failed to discard step token",
			logger.String("national_code", req.NationalCode), logger.Err(err))
	}

	logger.Info("mobile number changed",
		logger.String("old_mobile", utils.MaskMobile(record.Metadata[models.MetaCurrentMobile])),
		logger.String("new_mobile", utils.MaskMobile(user.Mobile)))
	return user, nil
}
