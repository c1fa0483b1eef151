package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
)

// SailorBoats retrieves the boats the caller is actively assigned to
func (h *FleetHandler) SailorBoats(c echo.Context) error {
	nationalCode, ok := callerNationalCode(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	boats, err := h.fleetUC.SailorBoats(c.Request().Context(), nationalCode)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Boats retrieved", boats)
}

// SailorBoatCrew retrieves the roster of a boat the caller serves on
func (h *FleetHandler) SailorBoatCrew(c echo.Context) error {
	nationalCode, ok := callerNationalCode(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	boatID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid boat id")
	}

	crew, err := h.fleetUC.SailorBoatCrew(c.Request().Context(), nationalCode, boatID)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Crew retrieved", crew)
}

// SailorActivityDetail retrieves one of the caller's trips in full
func (h *FleetHandler) SailorActivityDetail(c echo.Context) error {
	nationalCode, ok := callerNationalCode(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid activity id")
	}

	activity, err := h.fleetUC.SailorActivityDetail(c.Request().Context(), nationalCode, activityID)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Activity retrieved", activity)
}

// SailorActivities retrieves the caller's trips projected through their share
func (h *FleetHandler) SailorActivities(c echo.Context) error {
	nationalCode, ok := callerNationalCode(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := &models.ActivityFilter{
		NationalCode: nationalCode,
		StartDate:    c.QueryParam("start_date"),
		EndDate:      c.QueryParam("end_date"),
		Page:         queryInt(c, "page"),
		Limit:        queryInt(c, "limit"),
	}

	views, pagination, err := h.fleetUC.SailorActivities(c.Request().Context(), filter)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Activities retrieved", map[string]interface{}{
		"activities": views,
		"pagination": pagination,
	})
}

// SailorSettlements retrieves the caller's settlements
func (h *FleetHandler) SailorSettlements(c echo.Context) error {
	nationalCode, ok := callerNationalCode(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter := &models.SettlementFilter{
		Status: c.QueryParam("status"),
		Page:   queryInt(c, "page"),
		Limit:  queryInt(c, "limit"),
	}

	settlements, pagination, err := h.fleetUC.SailorSettlements(c.Request().Context(), nationalCode, filter)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settlements retrieved", map[string]interface{}{
		"settlements": settlements,
		"pagination":  pagination,
	})
}

// ConfirmSettlement marks a settlement confirmed on the crew side
func (h *FleetHandler) ConfirmSettlementBySailor(c echo.Context) error {
	nationalCode, ok := callerNationalCode(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	settlementID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid settlement id")
	}

	if err := h.fleetUC.ConfirmSettlementBySailor(c.Request().Context(), nationalCode, settlementID); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Settlement confirmed", nil)
}

// SailorStats aggregates the caller's trip history
func (h *FleetHandler) SailorStats(c echo.Context) error {
	nationalCode, ok := callerNationalCode(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	stats, err := h.fleetUC.SailorStats(c.Request().Context(), nationalCode)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Stats retrieved", stats)
}

// FileDispute records the caller's objection to a trip's figures
func (h *FleetHandler) FileDispute(c echo.Context) error {
	nationalCode, ok := callerNationalCode(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	activityID, err := pathUUID(c, "id")
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid activity id")
	}

	var dispute models.Dispute
	if err := c.Bind(&dispute); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	if dispute.Reason == "" {
		return utils.BadRequestResponse(c, "reason is required")
	}

	if err := h.fleetUC.FileDispute(c.Request().Context(), nationalCode, activityID, &dispute); err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Dispute filed", dispute)
}
