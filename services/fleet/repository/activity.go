package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/fleet"
)

// CreateActivity inserts a fishing trip with its crew shares and documents
func (r *FleetRepo) CreateActivity(ctx context.Context, activity *models.FishingActivity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	now := time.Now()
	activity.CreatedAt = now
	activity.UpdatedAt = now
	if activity.Status == "" {
		activity.Status = models.ActivityPlanned
	}
	if activity.SettlementStatus == "" {
		activity.SettlementStatus = models.SettlementPending
	}

	query := `
		INSERT INTO fishing_activities (id, boat_id, fishing_method_id, start_date,
			end_date, status, crew, catch_results, expenses, revenue, total_income,
			total_expense, settlement_status, notes, disputes, created_by,
			created_at, updated_at)
		VALUES (:id, :boat_id, :fishing_method_id, :start_date,
			:end_date, :status, :crew, :catch_results, :expenses, :revenue, :total_income,
			:total_expense, :settlement_status, :notes, :disputes, :created_by,
			:created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, activity); err != nil {
		return fmt.Errorf("failed to create activity: %w", err)
	}
	return nil
}

// GetActivityByID retrieves a fishing trip by its ID
func (r *FleetRepo) GetActivityByID(ctx context.Context, id uuid.UUID) (*models.FishingActivity, error) {
	var activity models.FishingActivity
	err := r.db.GetContext(ctx, &activity, `SELECT * FROM fishing_activities WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleet.ErrActivityNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return &activity, nil
}

// ListActivitiesByBoat retrieves a boat's trips newest first, with the total
// count for paging.
func (r *FleetRepo) ListActivitiesByBoat(ctx context.Context, boatID uuid.UUID, filter *models.ActivityFilter) ([]*models.FishingActivity, int, error) {
	where := `WHERE boat_id = $1`
	args := []interface{}{boatID}

	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		where += fmt.Sprintf(` AND start_date >= $%d`, len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		where += fmt.Sprintf(` AND start_date <= $%d`, len(args))
	}

	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM fishing_activities `+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count activities: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(
		`SELECT * FROM fishing_activities %s ORDER BY start_date DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	activities := []*models.FishingActivity{}
	if err := r.db.SelectContext(ctx, &activities, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, total, nil
}

// ListActivitiesBySailor retrieves the trips whose crew document contains the
// sailor's national code, using a JSONB containment match.
func (r *FleetRepo) ListActivitiesBySailor(ctx context.Context, filter *models.ActivityFilter) ([]*models.FishingActivity, int, error) {
	crewMatch, err := json.Marshal([]map[string]string{{"national_code": filter.NationalCode}})
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build crew match: %w", err)
	}

	where := `WHERE crew @> $1::jsonb`
	args := []interface{}{string(crewMatch)}

	if filter.BoatID != nil {
		args = append(args, *filter.BoatID)
		where += fmt.Sprintf(` AND boat_id = $%d`, len(args))
	}
	if filter.StartDate != "" {
		args = append(args, filter.StartDate)
		where += fmt.Sprintf(` AND start_date >= $%d`, len(args))
	}
	if filter.EndDate != "" {
		args = append(args, filter.EndDate)
		where += fmt.Sprintf(` AND start_date <= $%d`, len(args))
	}

	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM fishing_activities `+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count sailor activities: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(
		`SELECT * FROM fishing_activities %s ORDER BY start_date DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	activities := []*models.FishingActivity{}
	if err := r.db.SelectContext(ctx, &activities, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list sailor activities: %w", err)
	}
	return activities, total, nil
}

// UpdateActivity rewrites a fishing trip
func (r *FleetRepo) UpdateActivity(ctx context.Context, activity *models.FishingActivity) error {
	activity.UpdatedAt = time.Now()

	query := `
		UPDATE fishing_activities SET fishing_method_id = :fishing_method_id,
			start_date = :start_date, end_date = :end_date, status = :status,
			crew = :crew, catch_results = :catch_results, expenses = :expenses,
			revenue = :revenue, total_income = :total_income,
			total_expense = :total_expense, settlement_status = :settlement_status,
			notes = :notes, disputes = :disputes, updated_at = :updated_at
		WHERE id = :id`

	result, err := r.db.NamedExecContext(ctx, query, activity)
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update activity: %w", err)
	}
	if rows == 0 {
		return fleet.ErrActivityNotFound
	}
	return nil
}

// DeleteActivity removes a fishing trip
func (r *FleetRepo) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM fishing_activities WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete activity: %w", err)
	}
	if rows == 0 {
		return fleet.ErrActivityNotFound
	}
	return nil
}

// AddDispute appends a dispute to a trip's dispute document
func (r *FleetRepo) AddDispute(ctx context.Context, activityID uuid.UUID, dispute *models.Dispute) error {
	doc, err := json.Marshal(dispute)
	if err != nil {
		return fmt.Errorf("failed to marshal dispute: %w", err)
	}

	result, err := r.db.ExecContext(ctx,
		`UPDATE fishing_activities
		 SET disputes = COALESCE(disputes, '[]'::jsonb) || $1::jsonb, updated_at = NOW()
		 WHERE id = $2`,
		string(doc), activityID)
	if err != nil {
		return fmt.Errorf("failed to add dispute: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to add dispute: %w", err)
	}
	if rows == 0 {
		return fleet.ErrActivityNotFound
	}
	return nil
}

// GetSailorStats aggregates a sailor's trip history across all boats
func (r *FleetRepo) GetSailorStats(ctx context.Context, nationalCode string) (*models.SailorStats, error) {
	crewMatch, err := json.Marshal([]map[string]string{{"national_code": nationalCode}})
	if err != nil {
		return nil, fmt.Errorf("failed to build crew match: %w", err)
	}

	var stats models.SailorStats
	err = r.db.GetContext(ctx, &stats, `
		SELECT COUNT(*) AS total_activities,
		       COUNT(DISTINCT fa.boat_id) AS total_boats,
		       COALESCE(SUM((c.entry->>'income')::numeric), 0) AS total_income
		FROM fishing_activities fa,
		     LATERAL jsonb_array_elements(fa.crew) AS c(entry)
		WHERE fa.crew @> $1::jsonb AND c.entry->>'national_code' = $2`,
		string(crewMatch), nationalCode)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate sailor stats: %w", err)
	}

	var last struct {
		StartDate string `db:"start_date"`
		BoatName  string `db:"boat_name"`
	}
	err = r.db.GetContext(ctx, &last, `
		SELECT fa.start_date, b.name AS boat_name
		FROM fishing_activities fa
		JOIN boats b ON b.id = fa.boat_id
		WHERE fa.crew @> $1::jsonb
		ORDER BY fa.start_date DESC
		LIMIT 1`, string(crewMatch))
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("failed to get last activity: %w", err)
	}
	if err == nil {
		stats.LastActivity = &last.StartDate
		stats.LastBoatName = &last.BoatName
	}

	return &stats, nil
}
