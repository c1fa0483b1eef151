package handler

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/google/uuid"
	"github.com/parsab/daryaban/internal/pkg/middleware"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/fleet/handler/http"
)

// Handler coordinates the HTTP handlers for the fleet service
type Handler struct {
	fleetHandler *http.FleetHandler
	cfg          *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(fleetHandler *http.FleetHandler, cfg *models.Config) *Handler {
	return &Handler{
		fleetHandler: fleetHandler,
		cfg:          cfg,
	}
}

// GetJWTMiddleware returns the configured JWT middleware for HTTP requests
func (h *Handler) GetJWTMiddleware() echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		SigningKey: []byte(h.cfg.JWT.Secret),
		SuccessHandler: func(c echo.Context) {
			// Parse the token directly from the Authorization header to avoid
			// type conflicts with the library's claim types
			authHeader := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				return
			}
			token, err := jwt.Parse(strings.TrimPrefix(authHeader, "Bearer "), func(token *jwt.Token) (interface{}, error) {
				return []byte(h.cfg.JWT.Secret), nil
			})
			if err != nil || !token.Valid {
				return
			}
			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				return
			}
			if raw, exists := claims["user_id"]; exists {
				if userID, err := uuid.Parse(fmt.Sprintf("%v", raw)); err == nil {
					c.Set("user_id", userID)
				}
			}
			if role, exists := claims["role"]; exists {
				c.Set("user_role", fmt.Sprintf("%v", role))
			}
			if nc, exists := claims["national_code"]; exists {
				c.Set("national_code", fmt.Sprintf("%v", nc))
			}
			if mobile, exists := claims["mobile"]; exists {
				c.Set("mobile", fmt.Sprintf("%v", mobile))
			}
		},
	})
}

// RegisterRoutes registers the fleet routes. Owner routes require an owner
// token; sailor routes require a crew token; vessel routes accept either.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	auth := h.GetJWTMiddleware()

	owner := e.Group("/fleet", auth, middleware.RequireRoles(models.RoleOwner))

	owner.POST("/boats", h.fleetHandler.CreateBoat)
	owner.GET("/boats", h.fleetHandler.ListBoats)
	owner.GET("/boats/:id", h.fleetHandler.GetBoat)
	owner.PUT("/boats/:id", h.fleetHandler.UpdateBoat)
	owner.DELETE("/boats/:id", h.fleetHandler.DeleteBoat)

	owner.POST("/boats/:id/crew", h.fleetHandler.AddCrewMember)
	owner.GET("/boats/:id/crew", h.fleetHandler.ListCrew)
	owner.PUT("/boats/:id/crew/:memberId", h.fleetHandler.UpdateCrewMember)
	owner.DELETE("/boats/:id/crew/:memberId", h.fleetHandler.RemoveCrewMember)

	owner.GET("/boats/:id/activities", h.fleetHandler.ListActivities)
	owner.POST("/activities", h.fleetHandler.CreateActivity)
	owner.GET("/activities/:id", h.fleetHandler.GetActivity)
	owner.PUT("/activities/:id", h.fleetHandler.UpdateActivity)
	owner.DELETE("/activities/:id", h.fleetHandler.DeleteActivity)

	owner.POST("/settlements", h.fleetHandler.CreateSettlement)
	owner.GET("/settlements", h.fleetHandler.ListSettlements)
	owner.POST("/settlements/:id/confirm", h.fleetHandler.ConfirmSettlement)
	owner.POST("/settlements/:id/pay", h.fleetHandler.MarkSettlementPaid)

	owner.POST("/catalog/boat-types", h.fleetHandler.SubmitBoatType)
	owner.POST("/catalog/fishing-methods", h.fleetHandler.SubmitFishingMethod)
	owner.POST("/catalog/fishing-tools", h.fleetHandler.SubmitFishingTool)

	// catalog reads serve the registration forms before any account exists
	catalog := e.Group("/catalog")
	catalog.GET("/boat-types", h.fleetHandler.ListBoatTypes)
	catalog.GET("/fishing-methods", h.fleetHandler.ListFishingMethods)
	catalog.GET("/fishing-tools", h.fleetHandler.ListFishingTools)

	sailor := e.Group("/sailor", auth, middleware.RequireRoles(models.CrewRoles...))
	sailor.GET("/boats", h.fleetHandler.SailorBoats)
	sailor.GET("/boats/:id/crew", h.fleetHandler.SailorBoatCrew)
	sailor.GET("/activities", h.fleetHandler.SailorActivities)
	sailor.GET("/activities/:id", h.fleetHandler.SailorActivityDetail)
	sailor.GET("/settlements", h.fleetHandler.SailorSettlements)
	sailor.POST("/settlements/:id/confirm", h.fleetHandler.ConfirmSettlementBySailor)
	sailor.GET("/stats", h.fleetHandler.SailorStats)
	sailor.POST("/activities/:id/dispute", h.fleetHandler.FileDispute)

	vessel := e.Group("/vessels", auth)
	vessel.PUT("/location", h.fleetHandler.UpdateVesselLocation)
	vessel.GET("/nearby", h.fleetHandler.NearbyVessels)
}
