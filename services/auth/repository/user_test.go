package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/auth"
)

func setupUserRepoTest(t *testing.T) (*AuthRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &AuthRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func userRows(user *models.User) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "mobile", "national_code", "name", "avatar", "role",
		"is_verified", "created_by", "last_login_at", "is_active",
		"password_hash", "created_at", "updated_at",
	}).AddRow(
		user.ID, user.Mobile, user.NationalCode, user.Name, user.Avatar, user.Role,
		user.IsVerified, user.CreatedBy, user.LastLoginAt, user.IsActive,
		user.PasswordHash, user.CreatedAt, user.UpdatedAt,
	)
}

func TestCreateUser(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Duplicate Mobile",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(&pq.Error{Code: "23505", Constraint: "users_mobile_key"})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, auth.ErrMobileTaken)
			},
		},
		{
			name: "Duplicate National Code",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(&pq.Error{Code: "23505", Constraint: "users_national_code_key"})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, auth.ErrNationalCodeTaken)
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to create user")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user := &models.User{
				Mobile:       "09123456789",
				NationalCode: "1234567890",
				Name:         "Hassan Daryaei",
				Role:         models.RoleOwner,
				IsActive:     true,
			}
			err := repo.CreateUser(context.Background(), user)

			tc.assertFunc(t, err)
			assert.NotEqual(t, uuid.Nil, user.ID)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUserByMobile(t *testing.T) {
	testCases := []struct {
		name       string
		mobile     string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:   "Success",
			mobile: "09123456789",
			mockSetup: func(mock sqlmock.Sqlmock) {
				u := &models.User{
					ID:           uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
					Mobile:       "09123456789",
					NationalCode: "1234567890",
					Name:         "Hassan Daryaei",
					Role:         models.RoleOwner,
					IsVerified:   true,
					IsActive:     true,
					CreatedAt:    time.Now(),
					UpdatedAt:    time.Now(),
				}
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE mobile").
					WithArgs("09123456789").
					WillReturnRows(userRows(u))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "09123456789", user.Mobile)
				assert.Equal(t, "1234567890", user.NationalCode)
				assert.Equal(t, models.RoleOwner, user.Role)
				assert.True(t, user.IsActive)
			},
		},
		{
			name:   "Not Found",
			mobile: "09999999999",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE mobile").
					WithArgs("09999999999").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.ErrorIs(t, err, auth.ErrAccountNotFound)
				assert.Nil(t, user)
			},
		},
		{
			name:   "Database Error",
			mobile: "09123456789",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users WHERE mobile").
					WithArgs("09123456789").
					WillReturnError(errors.New("connection refused"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Error(t, err)
				assert.Nil(t, user)
				assert.NotErrorIs(t, err, auth.ErrAccountNotFound)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetUserByMobile(context.Background(), tc.mobile)

			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetCrewByMobile(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name: "Success - Sailor Registered By Owner",
			mockSetup: func(mock sqlmock.Sqlmock) {
				createdBy := "0987654321"
				u := &models.User{
					ID:           uuid.MustParse("550e8400-e29b-41d4-a716-446655440001"),
					Mobile:       "09123456788",
					NationalCode: "1111111111",
					Name:         "Karim Sayyad",
					Role:         models.RoleSailor,
					CreatedBy:    &createdBy,
					IsActive:     true,
					CreatedAt:    time.Now(),
					UpdatedAt:    time.Now(),
				}
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WillReturnRows(userRows(u))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, models.RoleSailor, user.Role)
				require.NotNil(t, user.CreatedBy)
				assert.Equal(t, "0987654321", *user.CreatedBy)
			},
		},
		{
			name: "No Crew Account",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.ErrorIs(t, err, auth.ErrAccountNotFound)
				assert.Nil(t, user)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetCrewByMobile(context.Background(), "09123456788")

			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestUpdateLoginState(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	t.Run("Stamp Only", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE users SET last_login_at").
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateLoginState(context.Background(), userID, false)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Mark Verified", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE users SET last_login_at = NOW\\(\\), is_verified").
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdateLoginState(context.Background(), userID, true)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE users SET last_login_at").
			WithArgs(userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdateLoginState(context.Background(), userID, false)
		assert.ErrorIs(t, err, auth.ErrAccountNotFound)
	})
}

func TestUpdateMobile(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		u := &models.User{
			ID:           uuid.MustParse("550e8400-e29b-41d4-a716-446655440000"),
			Mobile:       "09111111111",
			NationalCode: "1234567890",
			Name:         "Hassan Daryaei",
			Role:         models.RoleOwner,
			IsActive:     true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		mock.ExpectQuery("^UPDATE users SET mobile").
			WithArgs("09111111111", "1234567890").
			WillReturnRows(userRows(u))

		user, err := repo.UpdateMobile(context.Background(), "1234567890", "09111111111")
		assert.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, "09111111111", user.Mobile)
	})

	t.Run("Mobile Taken", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE users SET mobile").
			WithArgs("09111111111", "1234567890").
			WillReturnError(&pq.Error{Code: "23505", Constraint: "users_mobile_key"})

		user, err := repo.UpdateMobile(context.Background(), "1234567890", "09111111111")
		assert.ErrorIs(t, err, auth.ErrMobileTaken)
		assert.Nil(t, user)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectQuery("^UPDATE users SET mobile").
			WithArgs("09111111111", "0000000000").
			WillReturnError(sql.ErrNoRows)

		user, err := repo.UpdateMobile(context.Background(), "0000000000", "09111111111")
		assert.ErrorIs(t, err, auth.ErrAccountNotFound)
		assert.Nil(t, user)
	})
}

func TestUpdatePasswordHash(t *testing.T) {
	userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")

	t.Run("Success", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE users SET password_hash").
			WithArgs("sha256:abcdef", userID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.UpdatePasswordHash(context.Background(), userID, "sha256:abcdef")
		assert.NoError(t, err)
	})

	t.Run("Not Found", func(t *testing.T) {
		repo, mock, cleanup := setupUserRepoTest(t)
		defer cleanup()

		mock.ExpectExec("^UPDATE users SET password_hash").
			WithArgs("sha256:abcdef", userID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.UpdatePasswordHash(context.Background(), userID, "sha256:abcdef")
		assert.ErrorIs(t, err, auth.ErrAccountNotFound)
	})
}
