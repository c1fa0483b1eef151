package gateway

import (
	"time"

	"github.com/parsab/daryaban/internal/pkg/httpclient"
	"github.com/parsab/daryaban/internal/pkg/models"
)

// AuthGW delivers verification codes through the Kavenegar lookup API
type AuthGW struct {
	cfg    *models.SMSConfig
	client *httpclient.Client
}

// NewAuthGW creates a new auth gateway instance
func NewAuthGW(cfg *models.SMSConfig) *AuthGW {
	return &AuthGW{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.TimeoutSec)*time.Second),
	}
}
