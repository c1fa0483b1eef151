package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/parsab/daryaban/services/fleet FleetUC

// FleetUC is the owner-facing fleet management surface plus the sailor-facing
// read surface. Owner operations enforce that the caller owns the boat they
// touch; sailor operations are scoped by the caller's national code.
type FleetUC interface {
	// Boats (owner)
	CreateBoat(ctx context.Context, ownerID uuid.UUID, boat *models.Boat) error
	GetBoat(ctx context.Context, ownerID, boatID uuid.UUID) (*models.Boat, error)
	ListBoats(ctx context.Context, ownerID uuid.UUID) ([]*models.Boat, error)
	UpdateBoat(ctx context.Context, ownerID uuid.UUID, boat *models.Boat) error
	DeleteBoat(ctx context.Context, ownerID, boatID uuid.UUID) error

	// Crew (owner)
	AddCrewMember(ctx context.Context, ownerID uuid.UUID, member *models.CrewMember) error
	ListCrew(ctx context.Context, ownerID, boatID uuid.UUID) ([]*models.CrewMember, error)
	UpdateCrewMember(ctx context.Context, ownerID uuid.UUID, member *models.CrewMember) error
	RemoveCrewMember(ctx context.Context, ownerID, boatID, memberID uuid.UUID) error

	// Catalogs
	ListBoatTypes(ctx context.Context) ([]*models.BoatType, error)
	ListFishingMethods(ctx context.Context) ([]*models.FishingMethod, error)
	ListFishingTools(ctx context.Context) ([]*models.FishingTool, error)
	SubmitBoatType(ctx context.Context, ownerID uuid.UUID, bt *models.BoatType) error
	SubmitFishingMethod(ctx context.Context, ownerID uuid.UUID, fm *models.FishingMethod) error
	SubmitFishingTool(ctx context.Context, ownerID uuid.UUID, ft *models.FishingTool) error

	// Activities (owner)
	CreateActivity(ctx context.Context, ownerID uuid.UUID, activity *models.FishingActivity) error
	GetActivity(ctx context.Context, ownerID, activityID uuid.UUID) (*models.FishingActivity, error)
	ListActivities(ctx context.Context, ownerID, boatID uuid.UUID, filter *models.ActivityFilter) ([]*models.FishingActivity, *models.Pagination, error)
	UpdateActivity(ctx context.Context, ownerID uuid.UUID, activity *models.FishingActivity) error
	DeleteActivity(ctx context.Context, ownerID, activityID uuid.UUID) error

	// Settlements (owner)
	CreateSettlement(ctx context.Context, ownerID uuid.UUID, s *models.Settlement) error
	ListSettlements(ctx context.Context, ownerID uuid.UUID, filter *models.SettlementFilter) ([]*models.Settlement, *models.Pagination, error)
	ConfirmSettlementByOwner(ctx context.Context, ownerID, settlementID uuid.UUID) error
	MarkSettlementPaid(ctx context.Context, ownerID, settlementID uuid.UUID, method, reference string) error

	// Sailor read surface
	SailorBoats(ctx context.Context, nationalCode string) ([]*models.Boat, error)
	SailorBoatCrew(ctx context.Context, nationalCode string, boatID uuid.UUID) ([]*models.CrewMember, error)
	SailorActivities(ctx context.Context, filter *models.ActivityFilter) ([]*models.SailorSettlementView, *models.Pagination, error)
	SailorActivityDetail(ctx context.Context, nationalCode string, activityID uuid.UUID) (*models.FishingActivity, error)
	SailorSettlements(ctx context.Context, nationalCode string, filter *models.SettlementFilter) ([]*models.Settlement, *models.Pagination, error)
	ConfirmSettlementBySailor(ctx context.Context, nationalCode string, settlementID uuid.UUID) error
	SailorStats(ctx context.Context, nationalCode string) (*models.SailorStats, error)
	FileDispute(ctx context.Context, nationalCode string, activityID uuid.UUID, dispute *models.Dispute) error

	// Vessel positions
	UpdateVesselLocation(ctx context.Context, req *models.UpdateVesselLocationRequest) (*models.VesselLocation, error)
	NearbyVessels(ctx context.Context, req *models.NearbyVesselsRequest) ([]*models.VesselLocation, error)
}
