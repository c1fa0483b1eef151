package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/auth"
	"github.com/parsab/daryaban/services/auth/mocks"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "daryaban-test",
		},
		Verification: models.VerificationConfig{
			TTLSec:      120,
			GraceSec:    300,
			MaxAttempts: 3,
		},
	}
}

type ucMocks struct {
	verificationRepo *mocks.MockVerificationRepo
	userRepo         *mocks.MockUserRepo
	smsGW            *mocks.MockSMSGateway
}

func setupAuthUCTest(t *testing.T) (*AuthUC, *ucMocks, *gomock.Controller) {
	ctrl := gomock.NewController(t)

	m := &ucMocks{
		verificationRepo: mocks.NewMockVerificationRepo(ctrl),
		userRepo:         mocks.NewMockUserRepo(ctrl),
		smsGW:            mocks.NewMockSMSGateway(ctrl),
	}
	uc := NewAuthUC(testConfig(), m.verificationRepo, m.userRepo, m.smsGW)
	return uc, m, ctrl
}

func TestGenerateCode(t *testing.T) {
	for i := 0; i < 100; i++ {
		code, err := generateCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		require.GreaterOrEqual(t, code, "100000")
		require.LessOrEqual(t, code, "999999")
	}
}

func TestIssueChallenge(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	var stored *models.Verification
	m.verificationRepo.EXPECT().
		UpsertVerification(gomock.Any(), gomock.Any(), 120*time.Second).
		DoAndReturn(func(_ context.Context, v *models.Verification, _ time.Duration) error {
			stored = v
			return nil
		})
	m.smsGW.EXPECT().
		SendCode(gomock.Any(), "09123456789", gomock.Any()).
		Return(models.DeliveryResult{Success: true, MessageID: "42"})

	challenge, err := uc.IssueChallenge(context.Background(), "09123456789", models.PurposeLogin)

	assert.NoError(t, err)
	require.NotNil(t, challenge)
	require.NotNil(t, stored)
	assert.Equal(t, "09123456789", stored.Mobile)
	assert.Equal(t, models.PurposeLogin, stored.Purpose)
	assert.Equal(t, stored.Code, challenge.Code)
	assert.Equal(t, 120, challenge.TTLSec)
	assert.True(t, challenge.Delivery.Success)
}

func TestIssueChallenge_NormalizesMobile(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	m.verificationRepo.EXPECT().
		UpsertVerification(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	m.smsGW.EXPECT().
		SendCode(gomock.Any(), "09123456789", gomock.Any()).
		Return(models.DeliveryResult{Success: true})

	challenge, err := uc.IssueChallenge(context.Background(), "+98 912 345-6789", models.PurposeVerification)

	assert.NoError(t, err)
	assert.Equal(t, "09123456789", challenge.Mobile)
}

func TestIssueChallenge_InvalidMobile(t *testing.T) {
	uc, _, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	challenge, err := uc.IssueChallenge(context.Background(), "12345", models.PurposeLogin)

	assert.ErrorIs(t, err, auth.ErrInvalidMobile)
	assert.Nil(t, challenge)
}

func TestIssueChallenge_DefaultPurpose(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	m.verificationRepo.EXPECT().
		UpsertVerification(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, v *models.Verification, _ time.Duration) error {
			assert.Equal(t, models.PurposeVerification, v.Purpose)
			return nil
		})
	m.smsGW.EXPECT().
		SendCode(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DeliveryResult{Success: true})

	_, err := uc.IssueChallenge(context.Background(), "09123456789", "")
	assert.NoError(t, err)
}

func TestIssueChallenge_DeliveryFailureDoesNotFail(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	m.verificationRepo.EXPECT().
		UpsertVerification(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil)
	m.smsGW.EXPECT().
		SendCode(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(models.DeliveryResult{Success: false, Error: "provider down", FallbackCode: "123456"})

	challenge, err := uc.IssueChallenge(context.Background(), "09123456789", models.PurposeLogin)

	assert.NoError(t, err)
	require.NotNil(t, challenge)
	assert.False(t, challenge.Delivery.Success)
	assert.NotEmpty(t, challenge.Delivery.FallbackCode)
}

func TestVerifyChallenge_Match(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	record := &models.Verification{
		Mobile:    "09123456789",
		Code:      "123456",
		Purpose:   models.PurposeLogin,
		ExpiresAt: time.Now().Add(time.Minute),
	}
	consumed := *record
	consumed.Consumed = true

	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.PurposeLogin).
		Return(record, nil)
	m.verificationRepo.EXPECT().
		ApplyAttempt(gomock.Any(), record, "123456", 3, 300*time.Second).
		Return(auth.AttemptMatched, &consumed, nil)

	got, err := uc.VerifyChallenge(context.Background(), "09123456789", "123456", models.PurposeLogin)

	assert.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Consumed)
}

func TestVerifyChallenge_NotFound(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.Purpose("")).
		Return(nil, nil)

	got, err := uc.VerifyChallenge(context.Background(), "09123456789", "123456", "")

	assert.ErrorIs(t, err, auth.ErrChallengeNotFound)
	assert.Nil(t, got)
}

func TestVerifyChallenge_Mismatch(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	record := &models.Verification{
		Mobile:    "09123456789",
		Code:      "123456",
		Purpose:   models.PurposeLogin,
		ExpiresAt: time.Now().Add(time.Minute),
	}
	bumped := *record
	bumped.Attempts = 1

	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.PurposeLogin).
		Return(record, nil)
	m.verificationRepo.EXPECT().
		ApplyAttempt(gomock.Any(), record, "000000", 3, gomock.Any()).
		Return(auth.AttemptMismatched, &bumped, nil)

	got, err := uc.VerifyChallenge(context.Background(), "09123456789", "000000", models.PurposeLogin)

	assert.Nil(t, got)
	mismatch, ok := auth.IsCodeMismatch(err)
	require.True(t, ok)
	assert.Equal(t, 2, mismatch.Remaining)
}

func TestVerifyChallenge_Exhausted(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()

	record := &models.Verification{
		Mobile:    "09123456789",
		Code:      "123456",
		Purpose:   models.PurposeLogin,
		Attempts:  2,
		ExpiresAt: time.Now().Add(time.Minute),
	}

	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.PurposeLogin).
		Return(record, nil)
	m.verificationRepo.EXPECT().
		ApplyAttempt(gomock.Any(), record, "000000", 3, gomock.Any()).
		Return(auth.AttemptExhausted, nil, nil)

	got, err := uc.VerifyChallenge(context.Background(), "09123456789", "000000", models.PurposeLogin)

	assert.ErrorIs(t, err, auth.ErrAttemptsExhausted)
	assert.Nil(t, got)
}

func TestVerifyChallenge_DebugCountsActive(t *testing.T) {
	uc, m, ctrl := setupAuthUCTest(t)
	defer ctrl.Finish()
	uc.cfg.Verification.Debug = true

	m.verificationRepo.EXPECT().
		FindActiveVerification(gomock.Any(), "09123456789", models.Purpose("")).
		Return(nil, nil)
	m.verificationRepo.EXPECT().
		CountActive(gomock.Any(), "09123456789").
		Return(0, nil)

	_, err := uc.VerifyChallenge(context.Background(), "09123456789", "123456", "")
	assert.ErrorIs(t, err, auth.ErrChallengeNotFound)
}
