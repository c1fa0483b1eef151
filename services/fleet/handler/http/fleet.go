package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/parsab/daryaban/internal/pkg/logger"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
	"github.com/parsab/daryaban/services/fleet"
)

// FleetHandler handles HTTP requests for boats, crew, activities, settlements
// and vessel positions.
type FleetHandler struct {
	fleetUC fleet.FleetUC
	cfg     *models.Config
}

// NewFleetHandler creates a new fleet handler
func NewFleetHandler(fleetUC fleet.FleetUC, cfg *models.Config) *FleetHandler {
	return &FleetHandler{
		fleetUC: fleetUC,
		cfg:     cfg,
	}
}

// callerID reads the authenticated user ID placed in the context by the JWT
// middleware.
func callerID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get("user_id").(uuid.UUID)
	return id, ok
}

// callerNationalCode reads the authenticated national code from the context
func callerNationalCode(c echo.Context) (string, bool) {
	nc, ok := c.Get("national_code").(string)
	return nc, ok && nc != ""
}

func pathUUID(c echo.Context, name string) (uuid.UUID, error) {
	return uuid.Parse(c.Param(name))
}

func queryInt(c echo.Context, name string) int {
	v, _ := strconv.Atoi(c.QueryParam(name))
	return v
}

// writeFleetError maps domain errors onto HTTP statuses
func writeFleetError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, fleet.ErrInvalidCoordinates),
		errors.Is(err, fleet.ErrInvalidShareTotal):
		return utils.BadRequestResponse(c, err.Error())
	case errors.Is(err, fleet.ErrBoatNotFound),
		errors.Is(err, fleet.ErrCrewMemberNotFound),
		errors.Is(err, fleet.ErrActivityNotFound),
		errors.Is(err, fleet.ErrSettlementNotFound):
		return utils.NotFoundResponse(c, err.Error())
	case errors.Is(err, fleet.ErrNotBoatOwner),
		errors.Is(err, fleet.ErrNotSettlementOwner):
		return utils.ForbiddenResponse(c, err.Error())
	case errors.Is(err, fleet.ErrBoatCodeTaken),
		errors.Is(err, fleet.ErrCrewMemberOnBoard):
		return utils.ConflictResponse(c, err.Error())
	default:
		logger.Error("fleet request failed", logger.Err(err))
		return utils.InternalServerErrorResponse(c, "")
	}
}

// CreateBoat registers a new boat under the caller
func (h *FleetHandler) CreateBoat(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var boat models.Boat
	if err := c.Bind(&boat); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if boat.Name == "" || boat.Code == "" {
		return utils.BadRequestResponse(c, "name and code are required")
	}

	if err := h.fleetUC.CreateBoat(c.Request().Context(), ownerID, &boat); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Boat registered", boat)
}

// ListBoats retrieves the caller's boats
func (h *FleetHandler) ListBoats(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	boats, err := h.fleetUC.ListBoats(c.Request().Context(), ownerID)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Boats retrieved", boats)
}

// GetBoat retrieves one of the caller's boats
func (h *FleetHandler) GetBoat(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	boatID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid boat id")
	}

	boat, err := h.fleetUC.GetBoat(c.Request().Context(), ownerID, boatID)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Boat retrieved", boat)
}

// UpdateBoat rewrites one of the caller's boats
func (h *FleetHandler) UpdateBoat(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	boatID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid boat id")
	}

	var boat models.Boat
	if err := c.Bind(&boat); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	boat.ID = boatID

	if err := h.fleetUC.UpdateBoat(c.Request().Context(), ownerID, &boat); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Boat updated", boat)
}

// DeleteBoat removes one of the caller's boats
func (h *FleetHandler) DeleteBoat(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	boatID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid boat id")
	}

	if err := h.fleetUC.DeleteBoat(c.Request().Context(), ownerID, boatID); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Boat deleted", nil)
}

// AddCrewMember assigns a person to one of the caller's boats
func (h *FleetHandler) AddCrewMember(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	boatID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid boat id")
	}

	var member models.CrewMember
	if err := c.Bind(&member); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	member.BoatID = boatID
	if !utils.ValidateNationalCode(member.NationalCode) {
		return utils.BadRequestResponse(c, "Invalid national code")
	}

	if err := h.fleetUC.AddCrewMember(c.Request().Context(), ownerID, &member); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Crew member added", member)
}

// ListCrew retrieves the roster of one of the caller's boats
func (h *FleetHandler) ListCrew(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	boatID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid boat id")
	}

	members, err := h.fleetUC.ListCrew(c.Request().Context(), ownerID, boatID)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Crew retrieved", members)
}

// UpdateCrewMember rewrites a crew assignment
func (h *FleetHandler) UpdateCrewMember(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	boatID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid boat id")
	}
	memberID, err := pathUUID(c, "memberId")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid crew member id")
	}

	var member models.CrewMember
	if err := c.Bind(&member); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	member.ID = memberID
	member.BoatID = boatID

	if err := h.fleetUC.UpdateCrewMember(c.Request().Context(), ownerID, &member); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Crew member updated", member)
}

// RemoveCrewMember deletes a crew assignment
func (h *FleetHandler) RemoveCrewMember(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	boatID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid boat id")
	}
	memberID, err := pathUUID(c, "memberId")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid crew member id")
	}

	if err := h.fleetUC.RemoveCrewMember(c.Request().Context(), ownerID, boatID, memberID); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Crew member removed", nil)
}

// ListBoatTypes retrieves the boat type catalog
func (h *FleetHandler) ListBoatTypes(c echo.Context) error {
	types, err := h.fleetUC.ListBoatTypes(c.Request().Context())
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Boat types retrieved", types)
}

// ListFishingMethods retrieves the fishing method catalog
func (h *FleetHandler) ListFishingMethods(c echo.Context) error {
	methods, err := h.fleetUC.ListFishingMethods(c.Request().Context())
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fishing methods retrieved", methods)
}

// ListFishingTools retrieves the fishing tool catalog
func (h *FleetHandler) ListFishingTools(c echo.Context) error {
	tools, err := h.fleetUC.ListFishingTools(c.Request().Context())
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Fishing tools retrieved", tools)
}

// SubmitBoatType records an owner-submitted boat type, pending approval
func (h *FleetHandler) SubmitBoatType(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var bt models.BoatType
	if err := c.Bind(&bt); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if bt.Name == "" {
		return utils.BadRequestResponse(c, "name is required")
	}

	if err := h.fleetUC.SubmitBoatType(c.Request().Context(), ownerID, &bt); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Boat type submitted", bt)
}

// SubmitFishingMethod records an owner-submitted fishing method, pending approval
func (h *FleetHandler) SubmitFishingMethod(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var fm models.FishingMethod
	if err := c.Bind(&fm); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if fm.Name == "" {
		return utils.BadRequestResponse(c, "name is required")
	}

	if err := h.fleetUC.SubmitFishingMethod(c.Request().Context(), ownerID, &fm); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Fishing method submitted", fm)
}

// SubmitFishingTool records an owner-submitted fishing tool
func (h *FleetHandler) SubmitFishingTool(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var ft models.FishingTool
	if err := c.Bind(&ft); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if ft.Name == "" {
		return utils.BadRequestResponse(c, "name is required")
	}

	if err := h.fleetUC.SubmitFishingTool(c.Request().Context(), ownerID, &ft); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Fishing tool submitted", ft)
}

// CreateActivity records a fishing trip
func (h *FleetHandler) CreateActivity(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var activity models.FishingActivity
	if err := c.Bind(&activity); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if activity.BoatID == uuid.Nil {
		return utils.BadRequestResponse(c, "boat_id is required")
	}

	if err := h.fleetUC.CreateActivity(c.Request().Context(), ownerID, &activity); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Activity recorded", activity)
}

// GetActivity retrieves a fishing trip
func (h *FleetHandler) GetActivity(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid activity id")
	}

	activity, err := h.fleetUC.GetActivity(c.Request().Context(), ownerID, activityID)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Activity retrieved", activity)
}

// ListActivities retrieves a boat's trips with paging
func (h *FleetHandler) ListActivities(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	boatID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid boat id")
	}

	filter := &models.ActivityFilter{
		StartDate: c.QueryParam("start_date"),
		EndDate:   c.QueryParam("end_date"),
		Page:      queryInt(c, "page"),
		Limit:     queryInt(c, "limit"),
	}

	activities, pagination, err := h.fleetUC.ListActivities(c.Request().Context(), ownerID, boatID, filter)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Activities retrieved", map[string]interface{}{
		"activities": activities,
		"pagination": pagination,
	})
}

// UpdateActivity rewrites a fishing trip
func (h *FleetHandler) UpdateActivity(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid activity id")
	}

	var activity models.FishingActivity
	if err := c.Bind(&activity); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	activity.ID = activityID

	if err := h.fleetUC.UpdateActivity(c.Request().Context(), ownerID, &activity); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Activity updated", activity)
}

// DeleteActivity removes a fishing trip
func (h *FleetHandler) DeleteActivity(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid activity id")
	}

	if err := h.fleetUC.DeleteActivity(c.Request().Context(), ownerID, activityID); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Activity deleted", nil)
}

// CreateSettlement issues a revenue-share statement
func (h *FleetHandler) CreateSettlement(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var s models.Settlement
	if err := c.Bind(&s); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if s.BoatID == uuid.Nil || s.UserNationalCode == "" {
		return utils.BadRequestResponse(c, "boat_id and user_national_code are required")
	}

	if err := h.fleetUC.CreateSettlement(c.Request().Context(), ownerID, &s); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Settlement created", s)
}

// ListSettlements retrieves settlements with paging
func (h *FleetHandler) ListSettlements(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := &models.SettlementFilter{
		Status: c.QueryParam("status"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}
	if raw := c.QueryParam("boat_id"); raw != "" {
		boatID, err := uuid.Parse(raw)
		if err != nil {
			return utils.BadRequestResponse(c, "Invalid boat id")
		}
		filter.BoatID = &boatID
	}

	settlements, pagination, err := h.fleetUC.ListSettlements(c.Request().Context(), ownerID, filter)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settlements retrieved", map[string]interface{}{
		"settlements": settlements,
		"pagination":  pagination,
	})
}

// ConfirmSettlement marks a settlement confirmed on the owner side
func (h *FleetHandler) ConfirmSettlement(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	settlementID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid settlement id")
	}

	if err := h.fleetUC.ConfirmSettlementByOwner(c.Request().Context(), ownerID, settlementID); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settlement confirmed", nil)
}

// MarkSettlementPaid records the payment of a settlement
func (h *FleetHandler) MarkSettlementPaid(c echo.Context) error {
	ownerID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	settlementID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid settlement id")
	}

	var req struct {
		PaymentMethod    string `json:"payment_method"`
		PaymentReference string `json:"payment_reference"`
	}
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if req.PaymentMethod == "" {
		return utils.BadRequestResponse(c, "payment_method is required")
	}

	if err := h.fleetUC.MarkSettlementPaid(c.Request().Context(), ownerID, settlementID,
		req.PaymentMethod, req.PaymentReference); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settlement marked paid", nil)
}
