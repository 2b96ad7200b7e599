package utils_test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"coursehub/config"
	"coursehub/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func signPayload(orderID, paymentID, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

func TestVerifyRazorpaySignature(t *testing.T) {
	secret := "test_gateway_secret"
	signature := signPayload("order_abc", "pay_xyz", secret)

	assert.True(t, utils.VerifyRazorpaySignature("order_abc", "pay_xyz", signature, secret))
	assert.False(t, utils.VerifyRazorpaySignature("order_abc", "pay_xyz", "bogus", secret))
	assert.False(t, utils.VerifyRazorpaySignature("order_other", "pay_xyz", signature, secret))
	assert.False(t, utils.VerifyRazorpaySignature("order_abc", "pay_xyz", signature, "wrong_secret"))
	assert.False(t, utils.VerifyRazorpaySignature("order_abc", "pay_xyz", "", secret))
}

func TestCreateRazorpayOrder(t *testing.T) {
	var gotAuthUser, gotAuthPass string
	var gotBody map[string]interface{}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuthUser, gotAuthPass, _ = r.BasicAuth()
		body, _ := io.ReadAll(r.Body)
		json.Unmarshal(body, &gotBody)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id":"order_abc","entity":"order","amount":50000,"currency":"INR","receipt":"course_1_user_7","status":"created"}`))
	}))
	defer server.Close()

	config.AppConfig = &config.Config{
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "test_gateway_secret",
		RazorpayApiURL:    server.URL,
		Currency:          "INR",
	}

	order, raw, err := utils.CreateRazorpayOrder(50000, "INR", "course_1_user_7")
	require.NoError(t, err)
	require.NotNil(t, order)

	assert.Equal(t, "order_abc", order.ID)
	assert.Equal(t, 50000, order.Amount)
	assert.Equal(t, "INR", order.Currency)
	assert.Equal(t, "course_1_user_7", order.Receipt)
	assert.NotEmpty(t, raw)

	assert.Equal(t, "rzp_test_key", gotAuthUser)
	assert.Equal(t, "test_gateway_secret", gotAuthPass)
	assert.Equal(t, float64(50000), gotBody["amount"])
	assert.Equal(t, "INR", gotBody["currency"])
	assert.Equal(t, "course_1_user_7", gotBody["receipt"])
}

func TestCreateRazorpayOrderNotConfigured(t *testing.T) {
	config.AppConfig = &config.Config{
		RazorpayApiURL: "https://api.razorpay.com/v1",
	}

	_, _, err := utils.CreateRazorpayOrder(50000, "INR", "course_1_user_7")
	assert.ErrorIs(t, err, utils.ErrGatewayNotConfigured)
}

func TestCreateRazorpayOrderGatewayError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"description":"Authentication failed"}}`))
	}))
	defer server.Close()

	config.AppConfig = &config.Config{
		RazorpayKeyID:     "rzp_test_key",
		RazorpayKeySecret: "test_gateway_secret",
		RazorpayApiURL:    server.URL,
	}

	_, _, err := utils.CreateRazorpayOrder(50000, "INR", "course_1_user_7")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, utils.ErrGatewayNotConfigured)
}
