package repository

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
)

// Catalog listings return approved, active entries only. Owner-submitted
// custom entries stay invisible until approved.

// ListBoatTypes retrieves the approved boat type catalog
func (r *FleetRepo) ListBoatTypes(ctx context.Context) ([]*models.BoatType, error) {
	entries := []*models.BoatType{}
	err := r.db.SelectContext(ctx, &entries,
		`SELECT * FROM boat_types WHERE is_active = TRUE AND approval_status = $1 ORDER BY name`,
		models.ApprovalApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list boat types: %w", err)
	}
	return entries, nil
}

// ListFishingMethods retrieves the approved fishing method catalog
func (r *FleetRepo) ListFishingMethods(ctx context.Context) ([]*models.FishingMethod, error) {
	entries := []*models.FishingMethod{}
	err := r.db.SelectContext(ctx, &entries,
		`SELECT * FROM fishing_methods WHERE is_active = TRUE AND approval_status = $1 ORDER BY name`,
		models.ApprovalApproved)
	if err != nil {
		return nil, fmt.Errorf("failed to list fishing methods: %w", err)
	}
	return entries, nil
}

// ListFishingTools retrieves the active fishing tool catalog
func (r *FleetRepo) ListFishingTools(ctx context.Context) ([]*models.FishingTool, error) {
	entries := []*models.FishingTool{}
	err := r.db.SelectContext(ctx, &entries,
		`SELECT * FROM fishing_tools WHERE is_active = TRUE ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list fishing tools: %w", err)
	}
	return entries, nil
}

// CreateBoatType inserts a boat type catalog entry
func (r *FleetRepo) CreateBoatType(ctx context.Context, bt *models.BoatType) error {
	if bt.ID == uuid.Nil {
		bt.ID = uuid.New()
	}
	now := time.Now()
	bt.CreatedAt = now
	bt.UpdatedAt = now

	query := `
		INSERT INTO boat_types (id, name, name_en, description, min_crew, max_crew,
			custom_added_by, is_active, approval_status, created_at, updated_at)
		VALUES (:id, :name, :name_en, :description, :min_crew, :max_crew,
			:custom_added_by, :is_active, :approval_status, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, bt); err != nil {
		return fmt.Errorf("failed to create boat type: %w", err)
	}
	return nil
}

// CreateFishingMethod inserts a fishing method catalog entry
func (r *FleetRepo) CreateFishingMethod(ctx context.Context, fm *models.FishingMethod) error {
	if fm.ID == uuid.Nil {
		fm.ID = uuid.New()
	}
	now := time.Now()
	fm.CreatedAt = now
	fm.UpdatedAt = now

	query := `
		INSERT INTO fishing_methods (id, name, name_en, description, requires_tools,
			min_crew_size, max_crew_size, custom_added_by, is_active, approval_status,
			created_at, updated_at)
		VALUES (:id, :name, :name_en, :description, :requires_tools,
			:min_crew_size, :max_crew_size, :custom_added_by, :is_active, :approval_status,
			:created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, fm); err != nil {
		return fmt.Errorf("failed to create fishing method: %w", err)
	}
	return nil
}

// CreateFishingTool inserts a fishing tool catalog entry
func (r *FleetRepo) CreateFishingTool(ctx context.Context, ft *models.FishingTool) error {
	if ft.ID == uuid.Nil {
		ft.ID = uuid.New()
	}
	now := time.Now()
	ft.CreatedAt = now
	ft.UpdatedAt = now

	query := `
		INSERT INTO fishing_tools (id, name, name_en, description, category,
			is_default, creator_id, is_active, created_at, updated_at)
		VALUES (:id, :name, :name_en, :description, :category,
			:is_default, :creator_id, :is_active, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, ft); err != nil {
		return fmt.Errorf("failed to create fishing tool: %w", err)
	}
	return nil
}
