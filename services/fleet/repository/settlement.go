package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/fleet"
)

// CreateSettlement inserts a revenue-share statement. The settlement number
// is generated from the year and a random suffix when absent.
func (r *FleetRepo) CreateSettlement(ctx context.Context, s *models.Settlement) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	if s.SettlementNumber == "" {
		s.SettlementNumber = fmt.Sprintf("STL-%d-%s", time.Now().Year(), s.ID.String()[:8])
	}
	if s.Status == "" {
		s.Status = models.SettlementStatusPending
	}
	now := time.Now()
	s.CreatedAt = now
	s.UpdatedAt = now

	query := `
		INSERT INTO settlements (id, settlement_number, boat_id, user_national_code,
			user_role, period_start, period_end, total_income, share_percentage,
			share_amount, expenses, net_amount, status, confirmed_by_user_at,
			confirmed_by_owner_at, payment_date, payment_method, payment_reference,
			notes, created_at, updated_at)
		VALUES (:id, :settlement_number, :boat_id, :user_national_code,
			:user_role, :period_start, :period_end, :total_income, :share_percentage,
			:share_amount, :expenses, :net_amount, :status, :confirmed_by_user_at,
			:confirmed_by_owner_at, :payment_date, :payment_method, :payment_reference,
			:notes, :created_at, :updated_at)`

	if _, err := r.db.NamedExecContext(ctx, query, s); err != nil {
		if isUniqueViolation(err, "settlement_number") {
			return fmt.Errorf("settlement number %s already exists: %w", s.SettlementNumber, err)
		}
		return fmt.Errorf("failed to create settlement: %w", err)
	}
	return nil
}

// GetSettlementByID retrieves a settlement by its ID
func (r *FleetRepo) GetSettlementByID(ctx context.Context, id uuid.UUID) (*models.Settlement, error) {
	var s models.Settlement
	err := r.db.GetContext(ctx, &s, `SELECT * FROM settlements WHERE id = $1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fleet.ErrSettlementNotFound
		}
		return nil, fmt.Errorf("failed to get settlement: %w", err)
	}
	return &s, nil
}

// ListSettlements retrieves settlements matching the filter, newest first
func (r *FleetRepo) ListSettlements(ctx context.Context, filter *models.SettlementFilter) ([]*models.Settlement, int, error) {
	where := `WHERE 1=1`
	args := []interface{}{}

	if filter.BoatID != nil {
		args = append(args, *filter.BoatID)
		where += fmt.Sprintf(` AND boat_id = $%d`, len(args))
	}
	if filter.NationalCode != "" {
		args = append(args, filter.NationalCode)
		where += fmt.Sprintf(` AND user_national_code = $%d`, len(args))
	}
	if filter.Status != "" {
		args = append(args, filter.Status)
		where += fmt.Sprintf(` AND status = $%d`, len(args))
	}

	var total int
	if err := r.db.GetContext(ctx, &total,
		`SELECT COUNT(*) FROM settlements `+where, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to count settlements: %w", err)
	}

	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)
	query := fmt.Sprintf(
		`SELECT * FROM settlements %s ORDER BY created_at DESC LIMIT $%d OFFSET $%d`,
		where, len(args)-1, len(args))

	settlements := []*models.Settlement{}
	if err := r.db.SelectContext(ctx, &settlements, query, args...); err != nil {
		return nil, 0, fmt.Errorf("failed to list settlements: %w", err)
	}
	return settlements, total, nil
}

// UpdateSettlementStatus advances a settlement through its confirmation and
// payment states, stamping the matching timestamp columns.
func (r *FleetRepo) UpdateSettlementStatus(ctx context.Context, id uuid.UUID, status string, paymentMethod, paymentReference *string) error {
	var query string
	args := []interface{}{status, id}

	switch status {
	case models.SettlementStatusConfirmedByUser:
		query = `UPDATE settlements SET status = $1, confirmed_by_user_at = NOW(), updated_at = NOW() WHERE id = $2`
	case models.SettlementStatusConfirmedByOwner:
		query = `UPDATE settlements SET status = $1, confirmed_by_owner_at = NOW(), updated_at = NOW() WHERE id = $2`
	case models.SettlementStatusPaid:
		query = `UPDATE settlements SET status = $1, payment_date = NOW()::date::text,
			payment_method = $3, payment_reference = $4, updated_at = NOW() WHERE id = $2`
		args = append(args, paymentMethod, paymentReference)
	default:
		query = `UPDATE settlements SET status = $1, updated_at = NOW() WHERE id = $2`
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update settlement status: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update settlement status: %w", err)
	}
	if rows == 0 {
		return fleet.ErrSettlementNotFound
	}
	return nil
}
