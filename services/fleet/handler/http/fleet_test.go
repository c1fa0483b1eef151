package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/fleet"
	"github.com/parsab/daryaban/services/fleet/mocks"
)

func setupFleetHandlerTest(t *testing.T) (*FleetHandler, *mocks.MockFleetUC, *gomock.Controller) {
	ctrl := gomock.NewController(t)
	mockUC := mocks.NewMockFleetUC(ctrl)
	return NewFleetHandler(mockUC, &models.Config{}), mockUC, ctrl
}

type requestOpts struct {
	method     string
	body       string
	userID     *uuid.UUID
	national   string
	paramNames []string
	paramVals  []string
	query      string
}

func doFleetRequest(t *testing.T, handler echo.HandlerFunc, opts requestOpts) *httptest.ResponseRecorder {
	e := echo.New()
	method := opts.method
	if method == "" {
		method = http.MethodPost
	}
	target := "/"
	if opts.query != "" {
		target = "/?" + opts.query
	}
	req := httptest.NewRequest(method, target, strings.NewReader(opts.body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if opts.userID != nil {
		c.Set("user_id", *opts.userID)
	}
	if opts.national != "" {
		c.Set("national_code", opts.national)
	}
	if len(opts.paramNames) > 0 {
		c.SetParamNames(opts.paramNames...)
		c.SetParamValues(opts.paramVals...)
	}

	require.NoError(t, handler(c))
	return rec
}

func decodeFleetBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateBoatHandler(t *testing.T) {
	h, mockUC, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()
	ownerID := uuid.New()

	mockUC.EXPECT().
		CreateBoat(gomock.Any(), ownerID, gomock.Any()).
		Return(nil)

	rec := doFleetRequest(t, h.CreateBoat, requestOpts{
		body:   `{"name":"Morvarid","code":"BND-1234"}`,
		userID: &ownerID,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeFleetBody(t, rec)
	assert.Equal(t, true, body["success"])
}

func TestCreateBoatHandler_MissingFields(t *testing.T) {
	h, _, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()
	ownerID := uuid.New()

	rec := doFleetRequest(t, h.CreateBoat, requestOpts{
		body:   `{"name":"Morvarid"}`,
		userID: &ownerID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateBoatHandler_NoIdentity(t *testing.T) {
	h, _, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()

	rec := doFleetRequest(t, h.CreateBoat, requestOpts{
		body: `{"name":"Morvarid","code":"BND-1234"}`,
	})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGetBoatHandler_NotOwner(t *testing.T) {
	h, mockUC, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()
	ownerID := uuid.New()
	boatID := uuid.New()

	mockUC.EXPECT().
		GetBoat(gomock.Any(), ownerID, boatID).
		Return(nil, fleet.ErrNotBoatOwner)

	rec := doFleetRequest(t, h.GetBoat, requestOpts{
		method:     http.MethodGet,
		userID:     &ownerID,
		paramNames: []string{"id"},
		paramVals:  []string{boatID.String()},
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAddCrewMemberHandler_DuplicateConflict(t *testing.T) {
	h, mockUC, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()
	ownerID := uuid.New()
	boatID := uuid.New()

	mockUC.EXPECT().
		AddCrewMember(gomock.Any(), ownerID, gomock.Any()).
		Return(fleet.ErrCrewMemberOnBoard)

	rec := doFleetRequest(t, h.AddCrewMember, requestOpts{
		body:       `{"national_code":"1234567890","name":"Ali","share_percentage":20}`,
		userID:     &ownerID,
		paramNames: []string{"id"},
		paramVals:  []string{boatID.String()},
	})
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddCrewMemberHandler_BadNationalCode(t *testing.T) {
	h, _, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()
	ownerID := uuid.New()

	rec := doFleetRequest(t, h.AddCrewMember, requestOpts{
		body:       `{"national_code":"12345","name":"Ali"}`,
		userID:     &ownerID,
		paramNames: []string{"id"},
		paramVals:  []string{uuid.NewString()},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateActivityHandler_ShareTotalRejected(t *testing.T) {
	h, mockUC, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()
	ownerID := uuid.New()
	boatID := uuid.New()

	mockUC.EXPECT().
		CreateActivity(gomock.Any(), ownerID, gomock.Any()).
		Return(fleet.ErrInvalidShareTotal)

	rec := doFleetRequest(t, h.CreateActivity, requestOpts{
		body:   `{"boat_id":"` + boatID.String() + `","crew":[{"national_code":"1111111111","share":120}]}`,
		userID: &ownerID,
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListActivitiesHandler(t *testing.T) {
	h, mockUC, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()
	ownerID := uuid.New()
	boatID := uuid.New()

	mockUC.EXPECT().
		ListActivities(gomock.Any(), ownerID, boatID, gomock.Any()).
		DoAndReturn(func(_ interface{}, _, _ uuid.UUID, filter *models.ActivityFilter) ([]*models.FishingActivity, *models.Pagination, error) {
			assert.Equal(t, 2, filter.Page)
			assert.Equal(t, 10, filter.Limit)
			return []*models.FishingActivity{{ID: uuid.New(), BoatID: boatID}},
				&models.Pagination{Page: 2, Limit: 10, Total: 11, Pages: 2}, nil
		})

	rec := doFleetRequest(t, h.ListActivities, requestOpts{
		method:     http.MethodGet,
		userID:     &ownerID,
		paramNames: []string{"id"},
		paramVals:  []string{boatID.String()},
		query:      "page=2&limit=10",
	})

	assert.Equal(t, http.StatusOK, rec.Code)
	data := decodeFleetBody(t, rec)["data"].(map[string]interface{})
	pagination := data["pagination"].(map[string]interface{})
	assert.Equal(t, float64(11), pagination["total"])
}

func TestMarkSettlementPaidHandler_RequiresMethod(t *testing.T) {
	h, _, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()
	ownerID := uuid.New()

	rec := doFleetRequest(t, h.MarkSettlementPaid, requestOpts{
		body:       `{}`,
		userID:     &ownerID,
		paramNames: []string{"id"},
		paramVals:  []string{uuid.NewString()},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSailorSettlementsHandler(t *testing.T) {
	h, mockUC, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		SailorSettlements(gomock.Any(), "1234567890", gomock.Any()).
		Return([]*models.Settlement{{ID: uuid.New(), UserNationalCode: "1234567890"}},
			&models.Pagination{Page: 1, Limit: 20, Total: 1, Pages: 1}, nil)

	rec := doFleetRequest(t, h.SailorSettlements, requestOpts{
		method:   http.MethodGet,
		national: "1234567890",
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestConfirmSettlementBySailorHandler_WrongAddressee(t *testing.T) {
	h, mockUC, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()
	settlementID := uuid.New()

	mockUC.EXPECT().
		ConfirmSettlementBySailor(gomock.Any(), "1234567890", settlementID).
		Return(fleet.ErrNotSettlementOwner)

	rec := doFleetRequest(t, h.ConfirmSettlementBySailor, requestOpts{
		national:   "1234567890",
		paramNames: []string{"id"},
		paramVals:  []string{settlementID.String()},
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestFileDisputeHandler_RequiresReason(t *testing.T) {
	h, _, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()

	rec := doFleetRequest(t, h.FileDispute, requestOpts{
		body:       `{"description":"numbers look wrong"}`,
		national:   "1234567890",
		paramNames: []string{"id"},
		paramVals:  []string{uuid.NewString()},
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateVesselLocationHandler_OverridesUserID(t *testing.T) {
	h, mockUC, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()
	userID := uuid.New()

	mockUC.EXPECT().
		UpdateVesselLocation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ interface{}, req *models.UpdateVesselLocationRequest) (*models.VesselLocation, error) {
			// the token identity wins over whatever the body claims
			assert.Equal(t, userID.String(), req.UserID)
			return &models.VesselLocation{UserID: req.UserID, Latitude: req.Latitude, Longitude: req.Longitude}, nil
		})

	rec := doFleetRequest(t, h.UpdateVesselLocation, requestOpts{
		body:   `{"user_id":"spoofed","latitude":27.18,"longitude":56.27}`,
		userID: &userID,
	})
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestNearbyVesselsHandler_InvalidCoordinates(t *testing.T) {
	h, mockUC, ctrl := setupFleetHandlerTest(t)
	defer ctrl.Finish()

	mockUC.EXPECT().
		NearbyVessels(gomock.Any(), gomock.Any()).
		Return(nil, fleet.ErrInvalidCoordinates)

	rec := doFleetRequest(t, h.NearbyVessels, requestOpts{
		method: http.MethodGet,
		query:  "latitude=91&longitude=56.27",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
