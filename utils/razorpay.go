package utils

import (
	"coursehub/config"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrGatewayNotConfigured is returned when the Razorpay keys are missing
var ErrGatewayNotConfigured = errors.New("razorpay is not configured")

// RazorpayOrder represents an order created on the Razorpay orders API
type RazorpayOrder struct {
	ID       string `json:"id"`
	Entity   string `json:"entity"`
	Amount   int    `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// CreateRazorpayOrder creates a remote order for the given amount in minor
// units. It returns the parsed order along with the raw response body.
func CreateRazorpayOrder(amount int, currency, receipt string) (*RazorpayOrder, []byte, error) {
	cfg := config.AppConfig
	if cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "" {
		return nil, nil, ErrGatewayNotConfigured
	}

	client := resty.New().SetTimeout(10 * time.Second)
	resp, err := client.R().
		SetBasicAuth(cfg.RazorpayKeyID, cfg.RazorpayKeySecret).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]interface{}{
			"amount":   amount,
			"currency": currency,
			"receipt":  receipt,
		}).
		Post(cfg.RazorpayApiURL + "/orders")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to reach gateway: %v", err)
	}
	if resp.StatusCode() != 200 {
		return nil, nil, fmt.Errorf("gateway error: %s", resp.String())
	}

	var order RazorpayOrder
	if err := json.Unmarshal(resp.Body(), &order); err != nil {
		return nil, nil, fmt.Errorf("failed to parse gateway response: %v", err)
	}
	if order.ID == "" {
		return nil, nil, fmt.Errorf("gateway returned no order id: %s", resp.String())
	}

	return &order, resp.Body(), nil
}

// VerifyRazorpaySignature recomputes the HMAC-SHA256 callback signature over
// "orderId|paymentId" and compares it in constant time.
func VerifyRazorpaySignature(orderID, paymentID, signature, secret string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	expected := hex.EncodeToString(mac.Sum(nil))

	return hmac.Equal([]byte(expected), []byte(signature))
}
