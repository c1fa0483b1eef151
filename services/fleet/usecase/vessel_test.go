package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/fleet"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateVesselLocation_InvalidCoordinates(t *testing.T) {
	uc, _ := setupFleetUCTest(t)

	_, err := uc.UpdateVesselLocation(context.Background(), &models.UpdateVesselLocationRequest{
		UserID:    "user-1",
		Latitude:  91,
		Longitude: 56.27,
	})
	assert.ErrorIs(t, err, fleet.ErrInvalidCoordinates)
}

func TestUpdateVesselLocation_Saves(t *testing.T) {
	uc, repo := setupFleetUCTest(t)

	repo.EXPECT().SaveVesselLocation(gomock.Any(), gomock.Any()).Return(nil)

	loc, err := uc.UpdateVesselLocation(context.Background(), &models.UpdateVesselLocationRequest{
		UserID:    "user-1",
		Name:      "Morvarid",
		Latitude:  27.18,
		Longitude: 56.27,
	})
	require.NoError(t, err)
	assert.Equal(t, "user-1", loc.UserID)
	assert.Equal(t, 27.18, loc.Latitude)
}

func TestNearbyVessels_DefaultRadius(t *testing.T) {
	uc, repo := setupFleetUCTest(t)

	repo.EXPECT().GetNearbyVessels(gomock.Any(), 27.18, 56.27, defaultNearbyRadiusKm).
		Return([]*models.VesselLocation{{UserID: "user-2"}}, nil)

	vessels, err := uc.NearbyVessels(context.Background(), &models.NearbyVesselsRequest{
		Latitude:  27.18,
		Longitude: 56.27,
	})
	require.NoError(t, err)
	require.Len(t, vessels, 1)
	assert.Equal(t, "user-2", vessels[0].UserID)
}

func TestNearbyVessels_InvalidCoordinates(t *testing.T) {
	uc, _ := setupFleetUCTest(t)

	_, err := uc.NearbyVessels(context.Background(), &models.NearbyVesselsRequest{
		Latitude:  27.18,
		Longitude: 181,
	})
	assert.ErrorIs(t, err, fleet.ErrInvalidCoordinates)
}
