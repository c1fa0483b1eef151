package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/parsab/daryaban/internal/pkg/logger"
	"github.com/parsab/daryaban/internal/pkg/models"
	"github.com/parsab/daryaban/internal/utils"
)

// otpTemplate is the Kavenegar lookup template holding the code placeholder
const otpTemplate = "OTP"

type kavenegarResponse struct {
	Return struct {
		Status  int    `json:"status"`
		Message string `json:"message"`
	} `json:"return"`
	Entries []struct {
		MessageID int64  `json:"messageid"`
		Status    int    `json:"status"`
		Receptor  string `json:"receptor"`
	} `json:"entries"`
}

// SendCode delivers a verification code via the Kavenegar lookup endpoint.
// Delivery failures never propagate as errors: the result carries the failure
// and a fallback code so issuance can proceed in degraded deployments.
func (g *AuthGW) SendCode(ctx context.Context, mobile, code string) models.DeliveryResult {
	if !g.cfg.Enabled {
		logger.Info("SMS disabled, skipping delivery",
			logger.String("mobile", utils.MaskMobile(mobile)))
		return models.DeliveryResult{
			Success:      false,
			Error:        "sms disabled",
			FallbackCode: code,
		}
	}

	endpoint := fmt.Sprintf("%s/v1/%s/verify/lookup.json", g.client.BaseURL, g.cfg.APIKey)
	params := url.Values{}
	params.Set("receptor", mobile)
	params.Set("token", code)
	params.Set("template", otpTemplate)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return g.deliveryFailed(mobile, code, fmt.Sprintf("failed to build request: %v", err))
	}

	resp, err := g.client.HTTPClient.Do(req)
	if err != nil {
		return g.deliveryFailed(mobile, code, fmt.Sprintf("request failed: %v", err))
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return g.deliveryFailed(mobile, code, fmt.Sprintf("failed to read response: %v", err))
	}

	var kr kavenegarResponse
	if err := json.Unmarshal(body, &kr); err != nil {
		return g.deliveryFailed(mobile, code, fmt.Sprintf("failed to decode response: %v", err))
	}

	if resp.StatusCode != http.StatusOK || kr.Return.Status != http.StatusOK {
		return g.deliveryFailed(mobile, code,
			fmt.Sprintf("provider returned status %d: %s", kr.Return.Status, kr.Return.Message))
	}

	result := models.DeliveryResult{Success: true}
	if len(kr.Entries) > 0 {
		result.MessageID = strconv.FormatInt(kr.Entries[0].MessageID, 10)
	}

	logger.Info("verification code delivered",
		logger.String("mobile", utils.MaskMobile(mobile)),
		logger.String("message_id", result.MessageID))
	return result
}

func (g *AuthGW) deliveryFailed(mobile, code, reason string) models.DeliveryResult {
	logger.Warn("SMS delivery failed",
		logger.String("mobile", utils.MaskMobile(mobile)),
		logger.String("reason", reason))
	return models.DeliveryResult{
		Success:      false,
		Error:        reason,
		FallbackCode: code,
	}
}
