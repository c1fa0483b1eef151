package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/logger"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/fleet"
)

// CreateActivity records a fishing trip on a boat the caller owns. Crew
// incomes are derived from each member's share of the net figure.
func (uc *FleetUC) CreateActivity(ctx context.Context, ownerID uuid.UUID, activity *models.FishingActivity) error {
	if _, err := uc.ownedBoat(ctx, ownerID, activity.BoatID); err != nil {
		return err
	}
	if err := validateCrewShares(activity.Crew); err != nil {
		return err
	}

	activity.CreatedBy = ownerID
	applyCrewIncomes(activity)

	if err := uc.fleetRepo.CreateActivity(ctx, activity); err != nil {
		return err
	}
	logger.Info("fishing activity recorded",
		logger.String("activity_id", activity.ID.String()),
		logger.String("boat_id", activity.BoatID.String()))
	return nil
}

// GetActivity retrieves a trip on a boat the caller owns
func (uc *FleetUC) GetActivity(ctx context.Context, ownerID, activityID uuid.UUID) (*models.FishingActivity, error) {
	activity, err := uc.fleetRepo.GetActivityByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.ownedBoat(ctx, ownerID, activity.BoatID); err != nil {
		return nil, err
	}
	return activity, nil
}

// ListActivities retrieves a boat's trips with paging
func (uc *FleetUC) ListActivities(ctx context.Context, ownerID, boatID uuid.UUID, filter *models.ActivityFilter) ([]*models.FishingActivity, *models.Pagination, error) {
	if _, err := uc.ownedBoat(ctx, ownerID, boatID); err != nil {
		return nil, nil, err
	}
	normalizePaging(&filter.Page, &filter.Limit)

	activities, total, err := uc.fleetRepo.ListActivitiesByBoat(ctx, boatID, filter)
	if err != nil {
		return nil, nil, err
	}
	return activities, buildPagination(filter.Page, filter.Limit, total), nil
}

// UpdateActivity rewrites a trip on a boat the caller owns
func (uc *FleetUC) UpdateActivity(ctx context.Context, ownerID uuid.UUID, activity *models.FishingActivity) error {
	existing, err := uc.fleetRepo.GetActivityByID(ctx, activity.ID)
	if err != nil {
		return err
	}
	if _, err := uc.ownedBoat(ctx, ownerID, existing.BoatID); err != nil {
		return err
	}
	if err := validateCrewShares(activity.Crew); err != nil {
		return err
	}

	activity.BoatID = existing.BoatID
	applyCrewIncomes(activity)
	return uc.fleetRepo.UpdateActivity(ctx, activity)
}

// DeleteActivity removes a trip on a boat the caller owns
func (uc *FleetUC) DeleteActivity(ctx context.Context, ownerID, activityID uuid.UUID) error {
	activity, err := uc.fleetRepo.GetActivityByID(ctx, activityID)
	if err != nil {
		return err
	}
	if _, err := uc.ownedBoat(ctx, ownerID, activity.BoatID); err != nil {
		return err
	}
	return uc.fleetRepo.DeleteActivity(ctx, activityID)
}

// CreateSettlement issues a revenue-share statement for a boat the caller owns
func (uc *FleetUC) CreateSettlement(ctx context.Context, ownerID uuid.UUID, s *models.Settlement) error {
	if _, err := uc.ownedBoat(ctx, ownerID, s.BoatID); err != nil {
		return err
	}
	s.ShareAmount = s.TotalIncome * s.SharePercentage / 100
	s.NetAmount = s.ShareAmount - s.Expenses
	return uc.fleetRepo.CreateSettlement(ctx, s)
}

// ListSettlements retrieves the settlements of a boat the caller owns
func (uc *FleetUC) ListSettlements(ctx context.Context, ownerID uuid.UUID, filter *models.SettlementFilter) ([]*models.Settlement, *models.Pagination, error) {
	if filter.BoatID != nil {
		if _, err := uc.ownedBoat(ctx, ownerID, *filter.BoatID); err != nil {
			return nil, nil, err
		}
	}
	normalizePaging(&filter.Page, &filter.Limit)

	settlements, total, err := uc.fleetRepo.ListSettlements(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return settlements, buildPagination(filter.Page, filter.Limit, total), nil
}

// ConfirmSettlementByOwner marks a settlement confirmed on the owner side
func (uc *FleetUC) ConfirmSettlementByOwner(ctx context.Context, ownerID, settlementID uuid.UUID) error {
	s, err := uc.fleetRepo.GetSettlementByID(ctx, settlementID)
	if err != nil {
		return err
	}
	if _, err := uc.ownedBoat(ctx, ownerID, s.BoatID); err != nil {
		return err
	}
	return uc.fleetRepo.UpdateSettlementStatus(ctx, settlementID, models.SettlementStatusConfirmedByOwner, nil, nil)
}

// MarkSettlementPaid records the payment of a settlement
func (uc *FleetUC) MarkSettlementPaid(ctx context.Context, ownerID, settlementID uuid.UUID, method, reference string) error {
	s, err := uc.fleetRepo.GetSettlementByID(ctx, settlementID)
	if err != nil {
		return err
	}
	if _, err := uc.ownedBoat(ctx, ownerID, s.BoatID); err != nil {
		return err
	}
	return uc.fleetRepo.UpdateSettlementStatus(ctx, settlementID, models.SettlementStatusPaid, &method, &reference)
}

// SailorBoats retrieves the boats the sailor is actively assigned to
func (uc *FleetUC) SailorBoats(ctx context.Context, nationalCode string) ([]*models.Boat, error) {
	return uc.fleetRepo.ListBoatsByCrew(ctx, nationalCode)
}

// SailorBoatCrew retrieves a boat's roster for a sailor serving on it
func (uc *FleetUC) SailorBoatCrew(ctx context.Context, nationalCode string, boatID uuid.UUID) ([]*models.CrewMember, error) {
	crew, err := uc.fleetRepo.ListCrewByBoat(ctx, boatID)
	if err != nil {
		return nil, err
	}

	onBoard := false
	for _, m := range crew {
		if m.NationalCode == nationalCode {
			onBoard = true
			break
		}
	}
	if !onBoard {
		return nil, fleet.ErrBoatNotFound
	}
	return crew, nil
}

// SailorActivityDetail retrieves one trip for a sailor on its crew
func (uc *FleetUC) SailorActivityDetail(ctx context.Context, nationalCode string, activityID uuid.UUID) (*models.FishingActivity, error) {
	activity, err := uc.fleetRepo.GetActivityByID(ctx, activityID)
	if err != nil {
		return nil, err
	}
	for _, c := range activity.Crew {
		if c.NationalCode == nationalCode {
			return activity, nil
		}
	}
	return nil, fleet.ErrActivityNotFound
}

// SailorActivities retrieves the sailor's trips projected through their
// revenue share.
func (uc *FleetUC) SailorActivities(ctx context.Context, filter *models.ActivityFilter) ([]*models.SailorSettlementView, *models.Pagination, error) {
	normalizePaging(&filter.Page, &filter.Limit)

	activities, total, err := uc.fleetRepo.ListActivitiesBySailor(ctx, filter)
	if err != nil {
		return nil, nil, err
	}

	boatNames := map[string]string{}
	if boats, err := uc.fleetRepo.ListBoatsByCrew(ctx, filter.NationalCode); err == nil {
		for _, b := range boats {
			boatNames[b.ID.String()] = b.Name
		}
	}

	views := make([]*models.SailorSettlementView, 0, len(activities))
	for _, a := range activities {
		view := &models.SailorSettlementView{
			ActivityID:   a.ID,
			BoatID:       a.BoatID,
			BoatName:     boatNames[a.BoatID.String()],
			Date:         a.StartDate,
			TotalIncome:  a.TotalIncome,
			TotalExpense: a.TotalExpense,
			Status:       a.SettlementStatus,
		}
		for _, c := range a.Crew {
			if c.NationalCode == filter.NationalCode {
				view.SailorShare = c.Share
				view.SailorIncome = c.Income
				break
			}
		}
		views = append(views, view)
	}
	return views, buildPagination(filter.Page, filter.Limit, total), nil
}

// SailorSettlements retrieves the sailor's own settlements
func (uc *FleetUC) SailorSettlements(ctx context.Context, nationalCode string, filter *models.SettlementFilter) ([]*models.Settlement, *models.Pagination, error) {
	filter.NationalCode = nationalCode
	filter.BoatID = nil
	normalizePaging(&filter.Page, &filter.Limit)

	settlements, total, err := uc.fleetRepo.ListSettlements(ctx, filter)
	if err != nil {
		return nil, nil, err
	}
	return settlements, buildPagination(filter.Page, filter.Limit, total), nil
}

// ConfirmSettlementBySailor marks a settlement confirmed on the crew side.
// Only the settlement's addressee may confirm it.
func (uc *FleetUC) ConfirmSettlementBySailor(ctx context.Context, nationalCode string, settlementID uuid.UUID) error {
	s, err := uc.fleetRepo.GetSettlementByID(ctx, settlementID)
	if err != nil {
		return err
	}
	if s.UserNationalCode != nationalCode {
		return fleet.ErrNotSettlementOwner
	}
	return uc.fleetRepo.UpdateSettlementStatus(ctx, settlementID, models.SettlementStatusConfirmedByUser, nil, nil)
}

// SailorStats aggregates the sailor's trip history
func (uc *FleetUC) SailorStats(ctx context.Context, nationalCode string) (*models.SailorStats, error) {
	return uc.fleetRepo.GetSailorStats(ctx, nationalCode)
}

// FileDispute records a sailor's objection to a trip's figures. The sailor
// must appear in the trip's crew.
func (uc *FleetUC) FileDispute(ctx context.Context, nationalCode string, activityID uuid.UUID, dispute *models.Dispute) error {
	activity, err := uc.fleetRepo.GetActivityByID(ctx, activityID)
	if err != nil {
		return err
	}

	onBoard := false
	for _, c := range activity.Crew {
		if c.NationalCode == nationalCode {
			onBoard = true
			break
		}
	}
	if !onBoard {
		return fleet.ErrActivityNotFound
	}

	dispute.SailorNationalCode = nationalCode
	dispute.Status = "open"
	dispute.CreatedAt = time.Now()
	return uc.fleetRepo.AddDispute(ctx, activityID, dispute)
}

// validateCrewShares rejects rosters whose shares exceed 100 percent
func validateCrewShares(crew models.CrewShares) error {
	total := 0.0
	for _, c := range crew {
		total += c.Share
	}
	if total > 100 {
		return fleet.ErrInvalidShareTotal
	}
	return nil
}

// applyCrewIncomes recomputes each member's income from the trip's net figure
func applyCrewIncomes(activity *models.FishingActivity) {
	net := activity.TotalIncome - activity.TotalExpense
	if net < 0 {
		net = 0
	}
	for i := range activity.Crew {
		activity.Crew[i].Income = net * activity.Crew[i].Share / 100
	}
}
