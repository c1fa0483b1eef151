package jwt

import (
	"testing"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *models.Config {
	return &models.Config{
		JWT: models.JWTConfig{
			Secret:     "test-secret",
			Expiration: 60,
			Issuer:     "daryaban-test",
		},
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	cfg := testConfig()
	userID := uuid.New()

	user := &models.User{
		ID:           userID,
		Mobile:       "09123456789",
		NationalCode: "1234567890",
		Role:         models.RoleOwner,
	}

	token, expiresAt, err := GenerateToken(user, cfg)
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Greater(t, expiresAt, int64(0))

	claims, err := ValidateToken(token, cfg.JWT.Secret)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims["user_id"])
	assert.Equal(t, "09123456789", claims["mobile"])
	assert.Equal(t, "1234567890", claims["national_code"])
	assert.Equal(t, models.RoleOwner, claims["role"])
	assert.Equal(t, "daryaban-test", claims["iss"])
}

func TestValidateToken_WrongSecret(t *testing.T) {
	cfg := testConfig()

	token, _, err := GenerateToken(&models.User{ID: uuid.New(), Mobile: "09123456789", Role: models.RoleSailor}, cfg)
	require.NoError(t, err)

	_, err = ValidateToken(token, "different-secret")
	assert.Error(t, err)
}

func TestValidateToken_Garbage(t *testing.T) {
	_, err := ValidateToken("not-a-token", "test-secret")
	assert.Error(t, err)
}
