package usecase

import (
	"context"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/fleet"
	"github.com/parsab/daryaban/services/fleet/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupFleetUCTest(t *testing.T) (*FleetUC, *mocks.MockFleetRepo) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	repo := mocks.NewMockFleetRepo(ctrl)
	uc := NewFleetUC(&models.Config{}, repo)
	return uc, repo
}

func ownedBoatFixture(ownerID uuid.UUID) *models.Boat {
	return &models.Boat{
		ID:      uuid.New(),
		Name:    "Morvarid",
		Code:    "BND-1234",
		Status:  models.BoatStatusActive,
		OwnerID: &ownerID,
	}
}

func TestCreateBoat_StampsOwnerAndStatus(t *testing.T) {
	uc, repo := setupFleetUCTest(t)
	ownerID := uuid.New()

	var stored *models.Boat
	repo.EXPECT().CreateBoat(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, b *models.Boat) error {
			stored = b
			return nil
		})

	err := uc.CreateBoat(context.Background(), ownerID, &models.Boat{Name: "Morvarid", Code: "BND-1234"})
	require.NoError(t, err)
	require.NotNil(t, stored.OwnerID)
	assert.Equal(t, ownerID, *stored.OwnerID)
	assert.Equal(t, models.BoatStatusActive, stored.Status)
}

func TestGetBoat_NotOwner(t *testing.T) {
	uc, repo := setupFleetUCTest(t)
	boat := ownedBoatFixture(uuid.New())

	repo.EXPECT().GetBoatByID(gomock.Any(), boat.ID).Return(boat, nil)

	_, err := uc.GetBoat(context.Background(), uuid.New(), boat.ID)
	assert.ErrorIs(t, err, fleet.ErrNotBoatOwner)
}

func TestGetBoat_Owner(t *testing.T) {
	uc, repo := setupFleetUCTest(t)
	ownerID := uuid.New()
	boat := ownedBoatFixture(ownerID)

	repo.EXPECT().GetBoatByID(gomock.Any(), boat.ID).Return(boat, nil)

	got, err := uc.GetBoat(context.Background(), ownerID, boat.ID)
	require.NoError(t, err)
	assert.Equal(t, boat.ID, got.ID)
}

func TestAddCrewMember_ShareTotalCapped(t *testing.T) {
	uc, repo := setupFleetUCTest(t)
	ownerID := uuid.New()
	boat := ownedBoatFixture(ownerID)

	repo.EXPECT().GetBoatByID(gomock.Any(), boat.ID).Return(boat, nil)
	repo.EXPECT().ListCrewByBoat(gomock.Any(), boat.ID).Return([]*models.CrewMember{
		{BoatID: boat.ID, NationalCode: "1111111111", SharePercentage: 40},
		{BoatID: boat.ID, NationalCode: "2222222222", SharePercentage: 40},
	}, nil)

	err := uc.AddCrewMember(context.Background(), ownerID, &models.CrewMember{
		BoatID:          boat.ID,
		NationalCode:    "3333333333",
		SharePercentage: 30,
	})
	assert.ErrorIs(t, err, fleet.ErrInvalidShareTotal)
}

func TestAddCrewMember_WithinShareTotal(t *testing.T) {
	uc, repo := setupFleetUCTest(t)
	ownerID := uuid.New()
	boat := ownedBoatFixture(ownerID)

	repo.EXPECT().GetBoatByID(gomock.Any(), boat.ID).Return(boat, nil)
	repo.EXPECT().ListCrewByBoat(gomock.Any(), boat.ID).Return([]*models.CrewMember{
		{BoatID: boat.ID, NationalCode: "1111111111", SharePercentage: 40},
	}, nil)

	var stored *models.CrewMember
	repo.EXPECT().AddCrewMember(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, m *models.CrewMember) error {
			stored = m
			return nil
		})

	err := uc.AddCrewMember(context.Background(), ownerID, &models.CrewMember{
		BoatID:          boat.ID,
		NationalCode:    "3333333333",
		SharePercentage: 30,
	})
	require.NoError(t, err)
	assert.True(t, stored.IsActive)
}

func TestUpdateCrewMember_ExcludesSelfFromShareTotal(t *testing.T) {
	uc, repo := setupFleetUCTest(t)
	ownerID := uuid.New()
	boat := ownedBoatFixture(ownerID)
	memberID := uuid.New()

	repo.EXPECT().GetBoatByID(gomock.Any(), boat.ID).Return(boat, nil)
	repo.EXPECT().ListCrewByBoat(gomock.Any(), boat.ID).Return([]*models.CrewMember{
		{ID: memberID, BoatID: boat.ID, NationalCode: "1111111111", SharePercentage: 40},
		{ID: uuid.New(), BoatID: boat.ID, NationalCode: "2222222222", SharePercentage: 40},
	}, nil)
	repo.EXPECT().UpdateCrewMember(gomock.Any(), gomock.Any()).Return(nil)

	// raising own share from 40 to 60 keeps the roster at 100
	err := uc.UpdateCrewMember(context.Background(), ownerID, &models.CrewMember{
		ID:              memberID,
		BoatID:          boat.ID,
		NationalCode:    "1111111111",
		SharePercentage: 60,
	})
	assert.NoError(t, err)
}

func TestDeleteBoat_NotOwner(t *testing.T) {
	uc, repo := setupFleetUCTest(t)
	boat := ownedBoatFixture(uuid.New())

	repo.EXPECT().GetBoatByID(gomock.Any(), boat.ID).Return(boat, nil)

	err := uc.DeleteBoat(context.Background(), uuid.New(), boat.ID)
	assert.ErrorIs(t, err, fleet.ErrNotBoatOwner)
}

func TestSubmitBoatType_PendingApproval(t *testing.T) {
	uc, repo := setupFleetUCTest(t)
	ownerID := uuid.New()

	var stored *models.BoatType
	repo.EXPECT().CreateBoatType(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, bt *models.BoatType) error {
			stored = bt
			return nil
		})

	err := uc.SubmitBoatType(context.Background(), ownerID, &models.BoatType{Name: "لنج صیادی"})
	require.NoError(t, err)
	assert.Equal(t, models.ApprovalPending, stored.ApprovalStatus)
	require.NotNil(t, stored.CustomAddedBy)
	assert.Equal(t, ownerID, *stored.CustomAddedBy)
	assert.True(t, stored.IsActive)
}
