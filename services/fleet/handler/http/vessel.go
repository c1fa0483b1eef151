package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
)

// UpdateVesselLocation upserts the caller's vessel position
func (h *FleetHandler) UpdateVesselLocation(c echo.Context) error {
	userID, ok := callerID(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.UpdateVesselLocationRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request payload")
	}
	req.UserID = userID.String()

	loc, err := h.fleetUC.UpdateVesselLocation(c.Request().Context(), &req)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Position updated", loc)
}

// NearbyVessels finds vessels within the requested radius, nearest first
func (h *FleetHandler) NearbyVessels(c echo.Context) error {
	var req models.NearbyVesselsRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request parameters")
	}

	vessels, err := h.fleetUC.NearbyVessels(c.Request().Context(), &req)
	if err != nil {
		return writeFleetError(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Nearby vessels retrieved", vessels)
}
