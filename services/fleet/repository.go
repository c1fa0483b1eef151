package fleet

import (
	"context"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/parsab/daryaban/services/fleet FleetRepo

// FleetRepo persists boats, crew assignments, catalogs, fishing activities and
// settlements in Postgres, and vessel positions in Redis.
type FleetRepo interface {
	// Boats
	CreateBoat(ctx context.Context, boat *models.Boat) error
	GetBoatByID(ctx context.Context, id uuid.UUID) (*models.Boat, error)
	ListBoatsByOwner(ctx context.Context, ownerID uuid.UUID) ([]*models.Boat, error)
	UpdateBoat(ctx context.Context, boat *models.Boat) error
	UpdateBoatStatus(ctx context.Context, id uuid.UUID, status int) error
	DeleteBoat(ctx context.Context, id uuid.UUID) error

	// Crew assignments
	AddCrewMember(ctx context.Context, member *models.CrewMember) error
	ListCrewByBoat(ctx context.Context, boatID uuid.UUID) ([]*models.CrewMember, error)
	ListBoatsByCrew(ctx context.Context, nationalCode string) ([]*models.Boat, error)
	UpdateCrewMember(ctx context.Context, member *models.CrewMember) error
	RemoveCrewMember(ctx context.Context, id uuid.UUID) error

	// Catalogs
	ListBoatTypes(ctx context.Context) ([]*models.BoatType, error)
	ListFishingMethods(ctx context.Context) ([]*models.FishingMethod, error)
	ListFishingTools(ctx context.Context) ([]*models.FishingTool, error)
	CreateBoatType(ctx context.Context, bt *models.BoatType) error
	CreateFishingMethod(ctx context.Context, fm *models.FishingMethod) error
	CreateFishingTool(ctx context.Context, ft *models.FishingTool) error

	// Fishing activities
	CreateActivity(ctx context.Context, activity *models.FishingActivity) error
	GetActivityByID(ctx context.Context, id uuid.UUID) (*models.FishingActivity, error)
	ListActivitiesByBoat(ctx context.Context, boatID uuid.UUID, filter *models.ActivityFilter) ([]*models.FishingActivity, int, error)
	ListActivitiesBySailor(ctx context.Context, filter *models.ActivityFilter) ([]*models.FishingActivity, int, error)
	UpdateActivity(ctx context.Context, activity *models.FishingActivity) error
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	AddDispute(ctx context.Context, activityID uuid.UUID, dispute *models.Dispute) error

	// Settlements
	CreateSettlement(ctx context.Context, s *models.Settlement) error
	GetSettlementByID(ctx context.Context, id uuid.UUID) (*models.Settlement, error)
	ListSettlements(ctx context.Context, filter *models.SettlementFilter) ([]*models.Settlement, int, error)
	UpdateSettlementStatus(ctx context.Context, id uuid.UUID, status string, paymentMethod, paymentReference *string) error

	// Sailor aggregates
	GetSailorStats(ctx context.Context, nationalCode string) (*models.SailorStats, error)

	// Vessel positions
	SaveVesselLocation(ctx context.Context, loc *models.VesselLocation) error
	GetNearbyVessels(ctx context.Context, lat, lng, radiusKm float64) ([]*models.VesselLocation, error)
}
