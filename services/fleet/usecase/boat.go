package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/logger"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/fleet"
)

// CreateBoat registers a new boat under the calling owner
func (uc *FleetUC) CreateBoat(ctx context.Context, ownerID uuid.UUID, boat *models.Boat) error {
	boat.OwnerID = &ownerID
	boat.Status = models.BoatStatusActive

	if err := uc.fleetRepo.CreateBoat(ctx, boat); err != nil {
		return err
	}
	logger.Info("boat registered",
		logger.String("boat_id", boat.ID.String()),
		logger.String("code", boat.Code))
	return nil
}

// GetBoat retrieves a boat the caller owns
func (uc *FleetUC) GetBoat(ctx context.Context, ownerID, boatID uuid.UUID) (*models.Boat, error) {
	return uc.ownedBoat(ctx, ownerID, boatID)
}

// ListBoats retrieves all boats registered to the caller
func (uc *FleetUC) ListBoats(ctx context.Context, ownerID uuid.UUID) ([]*models.Boat, error) {
	return uc.fleetRepo.ListBoatsByOwner(ctx, ownerID)
}

// UpdateBoat rewrites a boat the caller owns
func (uc *FleetUC) UpdateBoat(ctx context.Context, ownerID uuid.UUID, boat *models.Boat) error {
	if _, err := uc.ownedBoat(ctx, ownerID, boat.ID); err != nil {
		return err
	}
	return uc.fleetRepo.UpdateBoat(ctx, boat)
}

// DeleteBoat removes a boat the caller owns, along with its crew roster
func (uc *FleetUC) DeleteBoat(ctx context.Context, ownerID, boatID uuid.UUID) error {
	if _, err := uc.ownedBoat(ctx, ownerID, boatID); err != nil {
		return err
	}
	return uc.fleetRepo.DeleteBoat(ctx, boatID)
}

// AddCrewMember assigns a person to a boat the caller owns. The new member's
// share may not push the roster total past 100 percent.
func (uc *FleetUC) AddCrewMember(ctx context.Context, ownerID uuid.UUID, member *models.CrewMember) error {
	if _, err := uc.ownedBoat(ctx, ownerID, member.BoatID); err != nil {
		return err
	}

	roster, err := uc.fleetRepo.ListCrewByBoat(ctx, member.BoatID)
	if err != nil {
		return err
	}
	total := member.SharePercentage
	for _, m := range roster {
		total += m.SharePercentage
	}
	if total > 100 {
		return fleet.ErrInvalidShareTotal
	}

	member.IsActive = true
	return uc.fleetRepo.AddCrewMember(ctx, member)
}

// ListCrew retrieves the active roster of a boat the caller owns
func (uc *FleetUC) ListCrew(ctx context.Context, ownerID, boatID uuid.UUID) ([]*models.CrewMember, error) {
	if _, err := uc.ownedBoat(ctx, ownerID, boatID); err != nil {
		return nil, err
	}
	return uc.fleetRepo.ListCrewByBoat(ctx, boatID)
}

// UpdateCrewMember rewrites a crew assignment on a boat the caller owns
func (uc *FleetUC) UpdateCrewMember(ctx context.Context, ownerID uuid.UUID, member *models.CrewMember) error {
	if _, err := uc.ownedBoat(ctx, ownerID, member.BoatID); err != nil {
		return err
	}

	roster, err := uc.fleetRepo.ListCrewByBoat(ctx, member.BoatID)
	if err != nil {
		return err
	}
	total := member.SharePercentage
	for _, m := range roster {
		if m.ID != member.ID {
			total += m.SharePercentage
		}
	}
	if total > 100 {
		return fleet.ErrInvalidShareTotal
	}

	return uc.fleetRepo.UpdateCrewMember(ctx, member)
}

// RemoveCrewMember deletes a crew assignment from a boat the caller owns
func (uc *FleetUC) RemoveCrewMember(ctx context.Context, ownerID, boatID, memberID uuid.UUID) error {
	if _, err := uc.ownedBoat(ctx, ownerID, boatID); err != nil {
		return err
	}
	return uc.fleetRepo.RemoveCrewMember(ctx, memberID)
}

// ListBoatTypes retrieves the approved boat type catalog
func (uc *FleetUC) ListBoatTypes(ctx context.Context) ([]*models.BoatType, error) {
	return uc.fleetRepo.ListBoatTypes(ctx)
}

// ListFishingMethods retrieves the approved fishing method catalog
func (uc *FleetUC) ListFishingMethods(ctx context.Context) ([]*models.FishingMethod, error) {
	return uc.fleetRepo.ListFishingMethods(ctx)
}

// ListFishingTools retrieves the active fishing tool catalog
func (uc *FleetUC) ListFishingTools(ctx context.Context) ([]*models.FishingTool, error) {
	return uc.fleetRepo.ListFishingTools(ctx)
}

// SubmitBoatType records an owner-submitted boat type, pending approval
func (uc *FleetUC) SubmitBoatType(ctx context.Context, ownerID uuid.UUID, bt *models.BoatType) error {
	bt.CustomAddedBy = &ownerID
	bt.IsActive = true
	bt.ApprovalStatus = models.ApprovalPending
	return uc.fleetRepo.CreateBoatType(ctx, bt)
}

// SubmitFishingMethod records an owner-submitted fishing method, pending approval
func (uc *FleetUC) SubmitFishingMethod(ctx context.Context, ownerID uuid.UUID, fm *models.FishingMethod) error {
	fm.CustomAddedBy = &ownerID
	fm.IsActive = true
	fm.ApprovalStatus = models.ApprovalPending
	return uc.fleetRepo.CreateFishingMethod(ctx, fm)
}

// SubmitFishingTool records an owner-submitted fishing tool
func (uc *FleetUC) SubmitFishingTool(ctx context.Context, ownerID uuid.UUID, ft *models.FishingTool) error {
	ft.CreatorID = &ownerID
	ft.IsActive = true
	ft.IsDefault = false
	return uc.fleetRepo.CreateFishingTool(ctx, ft)
}
