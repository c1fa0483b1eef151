package auth

import (
	"context"

	"github.com/parsab/daryaban/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_sms_gateway.go -package=mocks github.com/parsab/daryaban/services/auth SMSGateway

// SMSGateway delivers verification codes. A failed delivery never fails
// issuance; the result carries the failure and, in development deployments,
// a fallback code for manual relay.
type SMSGateway interface {
	SendCode(ctx context.Context, mobile, code string) models.DeliveryResult
}
