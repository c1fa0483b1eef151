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
	"github.com/parsab/daryaban/services/fleet"
)

const uniqueViolation = "23505"

// CreateBoat inserts a new boat. The unique index on (code, fishing_method_id)
// surfaces as ErrBoatCodeTaken.
func (r *FleetRepo) CreateBoat(ctx context.Context, boat *models.Boat) error {
	if boat.ID == uuid.Nil {
		boat.ID = uuid.New()
	}
	now := time.Now()
	boat.CreatedAt = now
	boat.UpdatedAt = now

	query := `
		INSERT INTO boats (id, name, code, registration_date, documents, fuel_quota,
			boat_type_id, fishing_method_id, status, owner_id, captain_id,
			invoice_period, settlement_period, min_crew, max_crew, created_at, updated_at)
		VALUES (:id, :name, :code, :registration_date, :documents, :fuel_quota,
			:boat_type_id, :fishing_method_id, :status, :owner_id, :captain_id,
			:invoice_period, :settlement_period, :min_crew, :max_crew, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, boat)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fleet.ErrBoatCodeTaken
		}
		return fmt.Errorf("failed to create boat: %w", err)
	}
	return nil
}

// GetBoatByID retrieves a boat by its ID
func (r *FleetRepo) GetBoatByID(ctx context.Context, id uuid.UUID) (*models.Boat, error) {
	var boat models.Boat
	err := r.db.GetContext(ctx, &boat, `SELECT * FROM boats WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleet.ErrBoatNotFound
		}
		return nil, fmt.Errorf("failed to get boat: %w", err)
	}
	return &boat, nil
}

// ListBoatsByOwner retrieves all boats registered to an owner
func (r *FleetRepo) ListBoatsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Boat, error) {
	boats := []*models.Boat{}
	err := r.db.SelectContext(ctx, &boats,
		`SELECT * FROM boats WHERE owner_id = $1 ORDER BY created_at DESC`, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list boats: %w", err)
	}
	return boats, nil
}

// UpdateBoat rewrites a boat's editable fields
func (r *FleetRepo) UpdateBoat(ctx context.Context, boat *models.Boat) error {
	boat.UpdatedAt = time.Now()

	query := `
		UPDATE boats SET name = :name, code = :code, registration_date = :registration_date,
			documents = :documents, fuel_quota = :fuel_quota, boat_type_id = :boat_type_id,
			fishing_method_id = :fishing_method_id, captain_id = :captain_id,
			invoice_period = :invoice_period, settlement_period = :settlement_period,
			min_crew = :min_crew, max_crew = :max_crew, updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, boat)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fleet.ErrBoatCodeTaken
		}
		return fmt.Errorf("failed to update boat: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update boat: %w", err)
	}
	if rows == 0 {
		return fleet.ErrBoatNotFound
	}
	return nil
}

// UpdateBoatStatus changes only the boat status
func (r *FleetRepo) UpdateBoatStatus(ctx context.Context, id uuid.UUID, status int) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE boats SET status = $1, updated_at = NOW() WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update boat status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update boat status: %w", err)
	}
	if rows == 0 {
		return fleet.ErrBoatNotFound
	}
	return nil
}

// DeleteBoat removes a boat and its crew assignments
func (r *FleetRepo) DeleteBoat(ctx context.Context, id uuid.UUID) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to delete boat: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM crew_members WHERE boat_id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete boat crew: %w", err)
	}

	result, err := tx.ExecContext(ctx, `DELETE FROM boats WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete boat: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete boat: %w", err)
	}
	if rows == 0 {
		return fleet.ErrBoatNotFound
	}

	return tx.Commit()
}

// AddCrewMember assigns a person to a boat. The unique index on
// (boat_id, national_code) surfaces as ErrCrewMemberOnBoard.
func (r *FleetRepo) AddCrewMember(ctx context.Context, member *models.CrewMember) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}
	now := time.Now()
	member.CreatedAt = now
	member.UpdatedAt = now

	query := `
		INSERT INTO crew_members (id, boat_id, national_code, name, role,
			share_percentage, assignment_date, end_date, is_active, notes,
			owner_code, created_at, updated_at)
		VALUES (:id, :boat_id, :national_code, :name, :role,
			:share_percentage, :assignment_date, :end_date, :is_active, :notes,
			:owner_code, :created_at, :updated_at)`

	_, err := r.db.NamedExecContext(ctx, query, member)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return fleet.ErrCrewMemberOnBoard
		}
		return fmt.Errorf("failed to add crew member: %w", err)
	}
	return nil
}

// ListCrewByBoat retrieves the active crew roster of a boat
func (r *FleetRepo) ListCrewByBoat(ctx context.Context, boatID uuid.UUID) ([]*models.CrewMember, error) {
	members := []*models.CrewMember{}
	err := r.db.SelectContext(ctx, &members,
		`SELECT * FROM crew_members WHERE boat_id = $1 AND is_active = TRUE ORDER BY created_at`, boatID)
	if err != nil {
		return nil, fmt.Errorf("failed to list crew: %w", err)
	}
	return members, nil
}

// ListBoatsByCrew retrieves the boats a national code is actively assigned to
func (r *FleetRepo) ListBoatsByCrew(ctx context.Context, nationalCode string) ([]*models.Boat, error) {
	boats := []*models.Boat{}
	err := r.db.SelectContext(ctx, &boats,
		`SELECT b.* FROM boats b
		 JOIN crew_members cm ON cm.boat_id = b.id
		 WHERE cm.national_code = $1 AND cm.is_active = TRUE
		 ORDER BY b.created_at DESC`, nationalCode)
	if err != nil {
		return nil, fmt.Errorf("failed to list boats by crew: %w", err)
	}
	return boats, nil
}

// UpdateCrewMember rewrites a crew assignment
func (r *FleetRepo) UpdateCrewMember(ctx context.Context, member *models.CrewMember) error {
	member.UpdatedAt = time.Now()

	query := `
		UPDATE crew_members SET name = :name, role = :role,
			share_percentage = :share_percentage, assignment_date = :assignment_date,
			end_date = :end_date, is_active = :is_active, notes = :notes,
			updated_at = :updated_at
		WHERE id = :id AND boat_id = :boat_id`

	result, err := r.db.NamedExecContext(ctx, query, member)
	if err != nil {
		return fmt.Errorf("failed to update crew member: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update crew member: %w", err)
	}
	if rows == 0 {
		return fleet.ErrCrewMemberNotFound
	}
	return nil
}

// RemoveCrewMember deletes a crew assignment
func (r *FleetRepo) RemoveCrewMember(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM crew_members WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to remove crew member: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to remove crew member: %w", err)
	}
	if rows == 0 {
		return fleet.ErrCrewMemberNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a Postgres unique-index violation
// on a constraint whose name contains needle.
func isUniqueViolation(err error, needle string) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation &&
		strings.Contains(pqErr.Constraint, needle)
}
