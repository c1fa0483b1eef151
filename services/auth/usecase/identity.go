package usecase

import (
	"context"
	"errors"

	"github.com/parsab/daryaban/internal/pkg/jwt"
	"github.com/parsab/daryaban/internal/pkg/logger"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
	"github.com/parsab/daryaban/services/auth"
)

// VerifyAndRegister consumes a pending challenge and creates the account in
// one step. A challenge consumed moments ago still counts: the grace window
// lets a client retry registration after a network hiccup without a new code.
func (uc *AuthUC) VerifyAndRegister(ctx context.Context, req *models.VerifyAndRegisterRequest) (*models.User, error) {
	mobile, ok := utils.ValidateMobile(req.Mobile)
	if !ok {
		return nil, auth.ErrInvalidMobile
	}
	if !utils.ValidateNationalCode(req.NationalCode) {
		return nil, auth.ErrInvalidNationalCode
	}

	role := req.Role
	if role == "" {
		role = models.RoleOwner
	}

	_, err := uc.VerifyChallenge(ctx, mobile, req.Code, "")
	if err != nil {
		if !errors.Is(err, auth.ErrChallengeNotFound) {
			return nil, err
		}
		// Grace window: accept a record this code already consumed.
		consumed, findErr := uc.verificationRepo.FindConsumedVerification(ctx, mobile, "")
		if findErr != nil {
			return nil, findErr
		}
		if consumed == nil || consumed.Code != req.Code {
			return nil, err
		}
	}

	user := &models.User{
		Mobile:       mobile,
		NationalCode: req.NationalCode,
		Name:         req.Name,
		Role:         role,
		IsVerified:   true,
		IsActive:     true,
	}
	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("account registered",
		logger.String("mobile", utils.MaskMobile(mobile)),
		logger.String("role", role))
	return user, nil
}

// Register creates an account without code verification. Owner accounts
// self-register; crew accounts are created by an owner and must carry the
// owner's national code so the crew login gate can recognize them.
func (uc *AuthUC) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	mobile, ok := utils.ValidateMobile(req.Mobile)
	if !ok {
		return nil, auth.ErrInvalidMobile
	}
	if !utils.ValidateNationalCode(req.NationalCode) {
		return nil, auth.ErrInvalidNationalCode
	}

	role := req.Role
	if role == "" {
		role = models.RoleOwner
	}

	user := &models.User{
		Mobile:       mobile,
		NationalCode: req.NationalCode,
		Name:         req.Name,
		Role:         role,
		IsActive:     true,
	}
	if models.IsCrewRole(role) {
		if !utils.ValidateNationalCode(req.CreatedBy) {
			return nil, auth.ErrInvalidNationalCode
		}
		createdBy := req.CreatedBy
		user.CreatedBy = &createdBy
	} else {
		// Self-registered owners are trusted on first login.
		user.IsVerified = true
	}

	if err := uc.userRepo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	logger.Info("account registered",
		logger.String("mobile", utils.MaskMobile(mobile)),
		logger.String("role", role))
	return user, nil
}

// SendLoginOTP issues a login challenge for an existing, verified account
func (uc *AuthUC) SendLoginOTP(ctx context.Context, mobile string) (*models.ChallengeIssued, *models.User, error) {
	normalized, ok := utils.ValidateMobile(mobile)
	if !ok {
		return nil, nil, auth.ErrInvalidMobile
	}

	user, err := uc.userRepo.GetUserByMobile(ctx, normalized)
	if err != nil {
		return nil, nil, err
	}
	if !user.IsVerified {
		return nil, nil, auth.ErrAccountNotVerified
	}

	challenge, err := uc.IssueChallenge(ctx, normalized, models.PurposeLogin)
	if err != nil {
		return nil, nil, err
	}
	return challenge, user, nil
}

// LoginWithOTP verifies a login code and returns a signed session token
func (uc *AuthUC) LoginWithOTP(ctx context.Context, mobile, code string) (*models.AuthResponse, error) {
	normalized, ok := utils.ValidateMobile(mobile)
	if !ok {
		return nil, auth.ErrInvalidMobile
	}

	user, err := uc.userRepo.GetUserByMobile(ctx, normalized)
	if err != nil {
		return nil, err
	}
	if !user.IsVerified {
		return nil, auth.ErrAccountNotVerified
	}

	if _, err := uc.VerifyChallenge(ctx, normalized, code, models.PurposeLogin); err != nil {
		return nil, err
	}

	return uc.openSession(ctx, user, false)
}

// SendSailorLoginOTP issues a login challenge for a crew account. Only
// accounts holding a crew role that were registered by an owner qualify.
func (uc *AuthUC) SendSailorLoginOTP(ctx context.Context, mobile string) (*models.ChallengeIssued, *models.User, error) {
	normalized, ok := utils.ValidateMobile(mobile)
	if !ok {
		return nil, nil, auth.ErrInvalidMobile
	}

	user, err := uc.userRepo.GetCrewByMobile(ctx, normalized)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return nil, nil, auth.ErrNotCrewAccount
		}
		return nil, nil, err
	}

	challenge, err := uc.IssueChallenge(ctx, normalized, models.PurposeLogin)
	if err != nil {
		return nil, nil, err
	}
	return challenge, user, nil
}

// SailorLoginWithOTP verifies a crew login code. A successful crew login also
// marks the account verified, since the number was provisioned by the owner
// and this is the first proof the crew member controls it.
func (uc *AuthUC) SailorLoginWithOTP(ctx context.Context, mobile, code string) (*models.AuthResponse, error) {
	normalized, ok := utils.ValidateMobile(mobile)
	if !ok {
		return nil, auth.ErrInvalidMobile
	}

	user, err := uc.userRepo.GetCrewByMobile(ctx, normalized)
	if err != nil {
		if errors.Is(err, auth.ErrAccountNotFound) {
			return nil, auth.ErrNotCrewAccount
		}
		return nil, err
	}

	if _, err := uc.VerifyChallenge(ctx, normalized, code, models.PurposeLogin); err != nil {
		return nil, err
	}

	return uc.openSession(ctx, user, true)
}

func (uc *AuthUC) openSession(ctx context.Context, user *models.User, markVerified bool) (*models.AuthResponse, error) {
	if err := uc.userRepo.UpdateLoginState(ctx, user.ID, markVerified); err != nil {
		return nil, err
	}
	if markVerified {
		user.IsVerified = true
	}

	token, expiresAt, err := jwt.GenerateToken(user, uc.cfg)
	if err != nil {
		return nil, err
	}

	logger.Info("login succeeded",
		logger.String("mobile", utils.MaskMobile(user.Mobile)),
		logger.String("role", user.Role))

	return &models.AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// CheckUser looks up an account by mobile and/or national code
func (uc *AuthUC) CheckUser(ctx context.Context, req *models.CheckUserRequest) (*models.User, error) {
	switch {
	case req.Mobile != "" && req.NationalCode != "":
		mobile, ok := utils.ValidateMobile(req.Mobile)
		if !ok {
			return nil, auth.ErrInvalidMobile
		}
		if !utils.ValidateNationalCode(req.NationalCode) {
			return nil, auth.ErrInvalidNationalCode
		}
		return uc.userRepo.GetUserByMobileAndNationalCode(ctx, mobile, req.NationalCode)
	case req.Mobile != "":
		mobile, ok := utils.ValidateMobile(req.Mobile)
		if !ok {
			return nil, auth.ErrInvalidMobile
		}
		return uc.userRepo.GetUserByMobile(ctx, mobile)
	case req.NationalCode != "":
		if !utils.ValidateNationalCode(req.NationalCode) {
			return nil, auth.ErrInvalidNationalCode
		}
		return uc.userRepo.GetUserByNationalCode(ctx, req.NationalCode)
	default:
		return nil, auth.ErrInvalidMobile
	}
}

// CheckDuplicate reports which identifiers are already registered. The result
// lists the conflicting fields so registration forms can flag both at once.
func (uc *AuthUC) CheckDuplicate(ctx context.Context, req *models.CheckUserRequest) ([]string, error) {
	taken := []string{}

	if req.Mobile != "" {
		mobile, ok := utils.ValidateMobile(req.Mobile)
		if !ok {
			return nil, auth.ErrInvalidMobile
		}
		_, err := uc.userRepo.GetUserByMobile(ctx, mobile)
		switch {
		case err == nil:
			taken = append(taken, "mobile")
		case !errors.Is(err, auth.ErrAccountNotFound):
			return nil, err
		}
	}

	if req.NationalCode != "" {
		if !utils.ValidateNationalCode(req.NationalCode) {
			return nil, auth.ErrInvalidNationalCode
		}
		_, err := uc.userRepo.GetUserByNationalCode(ctx, req.NationalCode)
		switch {
		case err == nil:
			taken = append(taken, "national_code")
		case !errors.Is(err, auth.ErrAccountNotFound):
			return nil, err
		}
	}

	return taken, nil
}

// UpdatePassword stores a client-supplied password hash for an account
// identified by both mobile and national code.
func (uc *AuthUC) UpdatePassword(ctx context.Context, req *models.UpdatePasswordRequest) error {
	mobile, ok := utils.ValidateMobile(req.Mobile)
	if !ok {
		return auth.ErrInvalidMobile
	}
	if !utils.ValidateNationalCode(req.NationalCode) {
		return auth.ErrInvalidNationalCode
	}

	user, err := uc.userRepo.GetUserByMobileAndNationalCode(ctx, mobile, req.NationalCode)
	if err != nil {
		return err
	}
	return uc.userRepo.UpdatePasswordHash(ctx, user.ID, req.PasswordHash)
}
