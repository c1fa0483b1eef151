package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/auth"
)

// pq unique_violation
const uniqueViolation = "23505"

func mapUniqueViolation(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		switch {
		case strings.Contains(pqErr.Constraint, "national_code"):
			return auth.ErrNationalCodeTaken
		case strings.Contains(pqErr.Constraint, "mobile"):
			return auth.ErrMobileTaken
		}
	}
	return err
}

// CreateUser inserts a new account. Unique-index violations on mobile or
// national code surface as the matching domain error.
func (r *AuthRepo) CreateUser(ctx context.Context, user *models.User) error {
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	now := time.Now()
	user.CreatedAt = now
	user.UpdatedAt = now

	query := `
		INSERT INTO users (id, mobile, national_code, name, avatar, role,
			is_verified, created_by, last_login_at, is_active, password_hash,
			created_at, updated_at)
		VALUES (:id, :mobile, :national_code, :name, :avatar, :role,
			:is_verified, :created_by, :last_login_at, :is_active, :password_hash,
			:created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, user)
	if err != nil {
		if mapped := mapUniqueViolation(err); mapped != err {
			return mapped
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID
func (r *AuthRepo) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE id = $1 AND is_active = TRUE`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetUserByMobile retrieves a user by their mobile number
func (r *AuthRepo) GetUserByMobile(ctx context.Context, mobile string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE mobile = $1 AND is_active = TRUE`, mobile)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get user by mobile: %w", err)
	}
	return &user, nil
}

// GetUserByNationalCode retrieves a user by their national code
func (r *AuthRepo) GetUserByNationalCode(ctx context.Context, nationalCode string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user, `SELECT * FROM users WHERE national_code = $1 AND is_active = TRUE`, nationalCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get user by national code: %w", err)
	}
	return &user, nil
}

// GetUserByMobileAndNationalCode retrieves a user matching both identifiers
func (r *AuthRepo) GetUserByMobileAndNationalCode(ctx context.Context, mobile, nationalCode string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user,
		`SELECT * FROM users WHERE mobile = $1 AND national_code = $2 AND is_active = TRUE`,
		mobile, nationalCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// GetCrewByMobile returns the account only when it holds a crew role and was
// registered by an owner. Self-registered owners never match.
func (r *AuthRepo) GetCrewByMobile(ctx context.Context, mobile string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user,
		`SELECT * FROM users
		 WHERE mobile = $1 AND is_active = TRUE
		   AND role = ANY($2) AND created_by IS NOT NULL`,
		mobile, pq.Array(models.CrewRoles))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get crew account: %w", err)
	}
	return &user, nil
}

// UpdateLoginState stamps last_login_at and optionally flips is_verified
func (r *AuthRepo) UpdateLoginState(ctx context.Context, id uuid.UUID, markVerified bool) error {
	query := `UPDATE users SET last_login_at = NOW(), updated_at = NOW() WHERE id = $1`
	if markVerified {
		query = `UPDATE users SET last_login_at = NOW(), is_verified = TRUE, updated_at = NOW() WHERE id = $1`
	}

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to update login state: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update login state: %w", err)
	}
	if rows == 0 {
		return auth.ErrAccountNotFound
	}
	return nil
}

// UpdateMobile changes the account's mobile number, keyed by national code
func (r *AuthRepo) UpdateMobile(ctx context.Context, nationalCode, newMobile string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user,
		`UPDATE users SET mobile = $1, updated_at = NOW()
		 WHERE national_code = $2 AND is_active = TRUE
		 RETURNING *`,
		newMobile, nationalCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		if mapped := mapUniqueViolation(err); mapped != err {
			return nil, mapped
		}
		return nil, fmt.Errorf("failed to update mobile: %w", err)
	}
	return &user, nil
}

// UpdateName updates the display name for a national code
func (r *AuthRepo) UpdateName(ctx context.Context, nationalCode, name string) (*models.User, error) {
	var user models.User
	err := r.db.GetContext(ctx, &user,
		`UPDATE users SET name = $1, updated_at = NOW()
		 WHERE national_code = $2 AND is_active = TRUE
		 RETURNING *`,
		name, nationalCode)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to update name: %w", err)
	}
	return &user, nil
}

// UpdatePasswordHash stores a client-supplied password hash
func (r *AuthRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE users SET password_hash = $1, updated_at = NOW() WHERE id = $2`,
		passwordHash, id)
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update password hash: %w", err)
	}
	if rows == 0 {
		return auth.ErrAccountNotFound
	}
	return nil
}
