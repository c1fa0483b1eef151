package usecase

import (
	"context"

	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
	"github.com/parsab/daryaban/services/fleet"
)

// defaultNearbyRadiusKm is used when a search omits the radius
const defaultNearbyRadiusKm = 50.0

// UpdateVesselLocation upserts the caller's vessel position
func (uc *FleetUC) UpdateVesselLocation(ctx context.Context, req *models.UpdateVesselLocationRequest) (*models.VesselLocation, error) {
	if !utils.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, fleet.ErrInvalidCoordinates
	}

	loc := &models.VesselLocation{
		UserID:    req.UserID,
		Name:      req.Name,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if err := uc.fleetRepo.SaveVesselLocation(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// NearbyVessels finds vessels within the requested radius, nearest first
func (uc *FleetUC) NearbyVessels(ctx context.Context, req *models.NearbyVesselsRequest) ([]*models.VesselLocation, error) {
	if !utils.ValidCoordinates(req.Latitude, req.Longitude) {
		return nil, fleet.ErrInvalidCoordinates
	}
	radius := req.RadiusKm
	if radius <= 0 {
		radius = defaultNearbyRadiusKm
	}

	return uc.fleetRepo.GetNearbyVessels(ctx, req.Latitude, req.Longitude, radius)
}
