package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/auth"
)

func activeRecord(mobile, code string, purpose models.Purpose) *models.Verification {
	return &models.Verification{
		Mobile:    mobile,
		Code:      code,
		Purpose:   purpose,
		ExpiresAt: time.Now().Add(time.Minute),
	}
}

func TestVerifyAndRegister_Success(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	record := activeRecord("09123456789", "123456", models.PurposeRegister)
	consumed := *record
	consumed.Consumed = true

	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.Purpose("")).
		Return(record, nil)
	m.verificationRepo.EXPECT().
		ApplyAttempt(gomock.Any(), record, "123456", 3, gomock.Any()).
		Return(auth.AttemptMatched, &consumed, nil)
	m.userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			u.ID = uuid.New()
			return nil
		})

	user, err := uc.VerifyAndRegister(context.Background(), &models.VerifyAndRegisterRequest{
		Mobile:       "09123456789",
		Code:         "123456",
		NationalCode: "1234567890",
		Name:         "Hassan Daryaei",
	})

	assert.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, models.RoleOwner, user.Role)
	assert.True(t, user.IsVerified)
	assert.True(t, user.IsActive)
}

func TestVerifyAndRegister_GraceWindowAcceptsConsumedCode(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	consumed := activeRecord("09123456789", "123456", models.PurposeRegister)
	consumed.Consumed = true

	// No active challenge left, but the code consumed a record moments ago.
	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.Purpose("")).
		Return(nil, nil)
	m.verificationRepo.EXPECT().
		FindConsumedVerification(gomock.Any(), "09123456789", models.Purpose("")).
		Return(consumed, nil)
	m.userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(nil)

	user, err := uc.VerifyAndRegister(context.Background(), &models.VerifyAndRegisterRequest{
		Mobile:       "09123456789",
		Code:         "123456",
		NationalCode: "1234567890",
		Name:         "Hassan Daryaei",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestVerifyAndRegister_GraceWindowRejectsWrongCode(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	consumed := activeRecord("09123456789", "123456", models.PurposeRegister)
	consumed.Consumed = true

	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.Purpose("")).
		Return(nil, nil)
	m.verificationRepo.EXPECT().
		FindConsumedVerification(gomock.Any(), "09123456789", models.Purpose("")).
		Return(consumed, nil)

	user, err := uc.VerifyAndRegister(context.Background(), &models.VerifyAndRegisterRequest{
		Mobile:       "09123456789",
		Code:         "999999",
		NationalCode: "1234567890",
		Name:         "Hassan Daryaei",
	})

	assert.ErrorIs(t, err, auth.ErrChallengeNotFound)
	assert.Nil(t, user)
}

func TestVerifyAndRegister_DuplicateMobile(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	record := activeRecord("09123456789", "123456", models.PurposeRegister)
	consumed := *record
	consumed.Consumed = true

	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(record, nil)
	m.verificationRepo.EXPECT().
		ApplyAttempt(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(auth.AttemptMatched, &consumed, nil)
	m.userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		Return(auth.ErrMobileTaken)

	user, err := uc.VerifyAndRegister(context.Background(), &models.VerifyAndRegisterRequest{
		Mobile:       "09123456789",
		Code:         "123456",
		NationalCode: "1234567890",
		Name:         "Hassan Daryaei",
	})

	assert.ErrorIs(t, err, auth.ErrMobileTaken)
	assert.Nil(t, user)
}

func TestRegister_CrewRequiresCreatedBy(t *testing.T) {
	uc, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	user, err := uc.Register(context.Background(), &models.RegisterRequest{
		Mobile:       "09123456789",
		NationalCode: "1234567890",
		Name:         "Karim Sayyad",
		Role:         models.RoleSailor,
	})

	assert.ErrorIs(t, err, auth.ErrInvalidNationalCode)
	assert.Nil(t, user)
}

func TestRegister_CrewAccount(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		CreateUser(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, u *models.User) error {
			assert.Equal(t, models.RoleSailor, u.Role)
			require.NotNil(t, u.CreatedBy)
			assert.Equal(t, "0987654321", *u.CreatedBy)
			assert.False(t, u.IsVerified)
			return nil
		})

	user, err := uc.Register(context.Background(), &models.RegisterRequest{
		Mobile:       "09123456789",
		NationalCode: "1234567890",
		Name:         "Karim Sayyad",
		Role:         models.RoleSailor,
		CreatedBy:    "0987654321",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
}

func TestSendLoginOTP_AccountNotFound(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		GetUserByMobile(gomock.Any(), "09123456789").
		Return(nil, auth.ErrAccountNotFound)

	challenge, user, err := uc.SendLoginOTP(context.Background(), "09123456789")

	assert.ErrorIs(t, err, auth.ErrAccountNotFound)
	assert.Nil(t, challenge)
	assert.Nil(t, user)
}

func TestSendLoginOTP_Unverified(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		GetUserByMobile(gomock.Any(), "09123456789").
		Return(&models.User{ID: uuid.New(), Mobile: "09123456789", IsVerified: false}, nil)

	_, _, err := uc.SendLoginOTP(context.Background(), "09123456789")
	assert.ErrorIs(t, err, auth.ErrAccountNotVerified)
}

func TestLoginWithOTP_Success(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	user := &models.User{
		ID:         userID,
		Mobile:     "09123456789",
		Role:       models.RoleOwner,
		IsVerified: true,
	}
	record := activeRecord("09123456789", "123456", models.PurposeLogin)
	consumed := *record
	consumed.Consumed = true

	m.userRepo.EXPECT().
		GetUserByMobile(gomock.Any(), "09123456789").
		Return(user, nil)
	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.PurposeLogin).
		Return(record, nil)
	m.verificationRepo.EXPECT().
		ApplyAttempt(gomock.Any(), record, "123456", 3, gomock.Any()).
		Return(auth.AttemptMatched, &consumed, nil)
	m.userRepo.EXPECT().
		UpdateLoginState(gomock.Any(), userID, false).
		Return(nil)

	resp, err := uc.LoginWithOTP(context.Background(), "09123456789", "123456")

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.NotEmpty(t, resp.Token)
	assert.Greater(t, resp.ExpiresAt, time.Now().Unix())
	assert.Equal(t, user, resp.User)
}

func TestLoginWithOTP_WrongCode(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	record := activeRecord("09123456789", "123456", models.PurposeLogin)
	bumped := *record
	bumped.Attempts = 1

	m.userRepo.EXPECT().
		GetUserByMobile(gomock.Any(), "09123456789").
		Return(&models.User{ID: uuid.New(), Mobile: "09123456789", IsVerified: true}, nil)
	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.PurposeLogin).
		Return(record, nil)
	m.verificationRepo.EXPECT().
		ApplyAttempt(gomock.Any(), record, "000000", 3, gomock.Any()).
		Return(auth.AttemptMismatched, &bumped, nil)

	resp, err := uc.LoginWithOTP(context.Background(), "09123456789", "000000")

	assert.Nil(t, resp)
	_, ok := auth.IsCodeMismatch(err)
	assert.True(t, ok)
}

func TestSendSailorLoginOTP_NotCrew(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		GetCrewByMobile(gomock.Any(), "09123456789").
		Return(nil, auth.ErrAccountNotFound)

	_, _, err := uc.SendSailorLoginOTP(context.Background(), "09123456789")
	assert.ErrorIs(t, err, auth.ErrNotCrewAccount)
}

func TestSailorLoginWithOTP_MarksVerified(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	createdBy := "0987654321"
	user := &models.User{
		ID:        userID,
		Mobile:    "09123456789",
		Role:      models.RoleSailor,
		CreatedBy: &createdBy,
	}
	record := activeRecord("09123456789", "123456", models.PurposeLogin)
	consumed := *record
	consumed.Consumed = true

	m.userRepo.EXPECT().
		GetCrewByMobile(gomock.Any(), "09123456789").
		Return(user, nil)
	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.PurposeLogin).
		Return(record, nil)
	m.verificationRepo.EXPECT().
		ApplyAttempt(gomock.Any(), record, "123456", 3, gomock.Any()).
		Return(auth.AttemptMatched, &consumed, nil)
	m.userRepo.EXPECT().
		UpdateLoginState(gomock.Any(), userID, true).
		Return(nil)

	resp, err := uc.SailorLoginWithOTP(context.Background(), "09123456789", "123456")

	assert.NoError(t, err)
	require.NotNil(t, resp)
	assert.True(t, resp.User.IsVerified)
}

func TestCheckDuplicate(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	m.userRepo.EXPECT().
		GetUserByMobile(gomock.Any(), "09123456789").
		Return(&models.User{Mobile: "09123456789"}, nil)
	m.userRepo.EXPECT().
		GetUserByNationalCode(gomock.Any(), "1234567890").
		Return(nil, auth.ErrAccountNotFound)

	taken, err := uc.CheckDuplicate(context.Background(), &models.CheckUserRequest{
		Mobile:       "09123456789",
		NationalCode: "1234567890",
	})

	assert.NoError(t, err)
	assert.Equal(t, []string{"mobile"}, taken)
}

func TestUpdatePassword(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	userID := uuid.New()
	m.userRepo.EXPECT().
		GetUserByMobileAndNationalCode(gomock.Any(), "09123456789", "1234567890").
		Return(&models.User{ID: userID}, nil)
	m.userRepo.EXPECT().
		UpdatePasswordHash(gomock.Any(), userID, "sha256:abcdef").
		Return(nil)

	err := uc.UpdatePassword(context.Background(), &models.UpdatePasswordRequest{
		Mobile:       "09123456789",
		NationalCode: "1234567890",
		PasswordHash: "sha256:abcdef",
	})
	assert.NoError(t, err)
}
