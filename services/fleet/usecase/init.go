package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/fleet"
)

// FleetUC implements the owner fleet-management surface and the sailor read
// surface.
type FleetUC struct {
	cfg       *models.Config
	fleetRepo fleet.FleetRepo
}

// NewFleetUC creates a new fleet usecase instance
func NewFleetUC(cfg *models.Config, fleetRepo fleet.FleetRepo) *FleetUC {
	return &FleetUC{
		cfg:       cfg,
		fleetRepo: fleetRepo,
	}
}

// ownedBoat loads a boat and verifies the caller owns it
func (uc *FleetUC) ownedBoat(ctx context.Context, ownerID, boatID uuid.UUID) (*models.Boat, error) {
	boat, err := uc.fleetRepo.GetBoatByID(ctx, boatID)
	if err != nil {
		return nil, err
	}
	if boat.OwnerID == nil || *boat.OwnerID != ownerID {
		return nil, fleet.ErrNotBoatOwner
	}
	return boat, nil
}

func buildPagination(page, limit, total int) *models.Pagination {
	if limit <= 0 {
		limit = 20
	}
	if page <= 0 {
		page = 1
	}
	pages := total / limit
	if total%limit != 0 {
		pages++
	}
	return &models.Pagination{
		Page:  page,
		Limit: limit,
		Total: total,
		Pages: pages,
	}
}

// normalizeFilterPaging fills paging defaults in place
func normalizePaging(page, limit *int) {
	if *page <= 0 {
		*page = 1
	}
	if *limit <= 0 || *limit > 100 {
		*limit = 20
	}
}
