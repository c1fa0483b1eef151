package repository

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/fleet"
)

func setupFleetRepoTest(t *testing.T) (*FleetRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")

	repo := &FleetRepo{
		db:  sqlxDB,
		cfg: &models.Config{},
	}

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func boatRows(boat *models.Boat) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "code", "registration_date", "documents", "fuel_quota",
		"boat_type_id", "fishing_method_id", "status", "owner_id", "captain_id",
		"invoice_period", "settlement_period", "min_crew", "max_crew",
		"created_at", "updated_at",
	}).AddRow(
		boat.ID, boat.Name, boat.Code, boat.RegistrationDate, boat.Documents, boat.FuelQuota,
		boat.BoatTypeID, boat.FishingMethodID, boat.Status, boat.OwnerID, boat.CaptainID,
		boat.InvoicePeriod, boat.SettlementPeriod, boat.MinCrew, boat.MaxCrew,
		boat.CreatedAt, boat.UpdatedAt,
	)
}

func TestCreateBoat(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO boats").
					WillReturnResult(sqlmock.NewResult(1, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Duplicate Code",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO boats").
					WillReturnError(&pq.Error{Code: "23505", Constraint: "boats_code_fishing_method_id_key"})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, fleet.ErrBoatCodeTaken)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupFleetRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.CreateBoat(context.Background(), &models.Boat{
				Name:   "Morvarid",
				Code:   "BND-1234",
				Status: models.BoatStatusActive,
			})
			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetBoatByID(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	ownerID := uuid.New()
	boat := &models.Boat{
		ID:        uuid.New(),
		Name:      "Morvarid",
		Code:      "BND-1234",
		Status:    models.BoatStatusActive,
		OwnerID:   &ownerID,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	mock.ExpectQuery("^SELECT \\* FROM boats WHERE id").
		WithArgs(boat.ID).
		WillReturnRows(boatRows(boat))

	got, err := repo.GetBoatByID(context.Background(), boat.ID)
	require.NoError(t, err)
	assert.Equal(t, boat.ID, got.ID)
	assert.Equal(t, "BND-1234", got.Code)
	require.NotNil(t, got.OwnerID)
	assert.Equal(t, ownerID, *got.OwnerID)
}

func TestGetBoatByID_NotFound(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectQuery("^SELECT \\* FROM boats WHERE id").
		WithArgs(id).
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetBoatByID(context.Background(), id)
	assert.ErrorIs(t, err, fleet.ErrBoatNotFound)
}

func TestUpdateBoatStatus_NotFound(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^UPDATE boats SET status").
		WithArgs(models.BoatStatusInactive, id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateBoatStatus(context.Background(), id, models.BoatStatusInactive)
	assert.ErrorIs(t, err, fleet.ErrBoatNotFound)
}

func TestDeleteBoat_RemovesCrewFirst(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectBegin()
	mock.ExpectExec("^DELETE FROM crew_members WHERE boat_id").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("^DELETE FROM boats WHERE id").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.DeleteBoat(context.Background(), id)
	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAddCrewMember_Duplicate(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	mock.ExpectExec("^INSERT INTO crew_members").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "crew_members_boat_id_national_code_key"})

	err := repo.AddCrewMember(context.Background(), &models.CrewMember{
		BoatID:          uuid.New(),
		NationalCode:    "1234567890",
		SharePercentage: 20,
	})
	assert.ErrorIs(t, err, fleet.ErrCrewMemberOnBoard)
}

func TestRemoveCrewMember_NotFound(t *testing.T) {
	repo, mock, cleanup := setupFleetRepoTest(t)
	defer cleanup()

	id := uuid.New()
	mock.ExpectExec("^DELETE FROM crew_members WHERE id").
		WithArgs(id).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.RemoveCrewMember(context.Background(), id)
	assert.ErrorIs(t, err, fleet.ErrCrewMemberNotFound)
}
