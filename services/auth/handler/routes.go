package handler

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/services/auth/handler/http"
)

// Handler coordinates the HTTP handlers for the auth service
type Handler struct {
	authHandler *http.AuthHandler
	cfg         *models.Config
}

// NewHandler creates and initializes all handlers
func NewHandler(authHandler *http.AuthHandler, cfg *models.Config) *Handler {
	return &Handler{
		authHandler: authHandler,
		cfg:         cfg,
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
		},
	})
}

// RegisterRoutes registers the auth routes. The verification and login routes
// are public: the OTP exchange itself is the authentication. Profile routes
// require a valid token.
func (h *Handler) RegisterRoutes(e *echo.Echo) {
	authGroup := e.Group("/auth")
	authGroup.POST("/send-code", h.authHandler.SendCode)
	authGroup.POST("/verify-code", h.authHandler.VerifyCode)
	authGroup.POST("/verify-and-register", h.authHandler.VerifyAndRegister)
	authGroup.POST("/register", h.authHandler.Register)
	authGroup.POST("/send-login-otp", h.authHandler.SendLoginOTP)
	authGroup.POST("/login-with-otp", h.authHandler.LoginWithOTP)
	authGroup.POST("/check-user", h.authHandler.CheckUser)
	authGroup.POST("/check-duplicate", h.authHandler.CheckDuplicate)
	authGroup.POST("/update-password", h.authHandler.UpdatePassword)

	sailorGroup := e.Group("/sailor/auth")
	sailorGroup.POST("/send-login-otp", h.authHandler.SendSailorLoginOTP)
	sailorGroup.POST("/login-with-otp", h.authHandler.SailorLoginWithOTP)

	changeGroup := e.Group("/sailor/change-mobile")
	changeGroup.POST("/request", h.authHandler.RequestMobileChange)
	changeGroup.POST("/verify-current", h.authHandler.VerifyCurrentMobile)
	changeGroup.POST("/send-new", h.authHandler.SendCodeToNewMobile)
	changeGroup.POST("/confirm", h.authHandler.ConfirmMobileChange)

	profileGroup := e.Group("/profile", h.GetJWTMiddleware())
	profileGroup.GET("", h.authHandler.GetProfile)
	profileGroup.PUT("", h.authHandler.UpdateProfile)
}
