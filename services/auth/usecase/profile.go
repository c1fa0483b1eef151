package usecase

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/auth"
)

// GetProfile retrieves the caller's own account
func (uc *AuthUC) GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error) {
	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, auth.ErrAccountNotFound
	}
	return user, nil
}

// UpdateProfile changes the caller's display name
func (uc *AuthUC) UpdateProfile(ctx context.Context, userID uuid.UUID, req *models.UpdateProfileRequest) (*models.User, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, auth.ErrInvalidName
	}

	user, err := uc.userRepo.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, auth.ErrAccountNotFound
	}
	return uc.userRepo.UpdateName(ctx, user.NationalCode, name)
}
