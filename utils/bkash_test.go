package utils

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func gatewayStub(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/bkash/make-payment", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
}

func TestCreatePaymentModernShape(t *testing.T) {
	server := gatewayStub(t, 200, `{"statusCode":200,"url":"https://checkout.bkash.test/abc"}`)
	defer server.Close()

	client := NewBkashClient(server.URL)
	session, err := client.CreatePayment(CreatePaymentRequest{UserID: 1, Amount: 150})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.bkash.test/abc", session.RedirectURL)
	assert.False(t, session.LegacyShape)
}

func TestCreatePaymentLegacyShape(t *testing.T) {
	server := gatewayStub(t, 200, `{"statusCode":200,"data":{"bkashURL":"https://checkout.bkash.test/legacy"}}`)
	defer server.Close()

	client := NewBkashClient(server.URL)
	session, err := client.CreatePayment(CreatePaymentRequest{UserID: 1, Amount: 150})

	require.NoError(t, err)
	assert.Equal(t, "https://checkout.bkash.test/legacy", session.RedirectURL)
	assert.True(t, session.LegacyShape)
}

func TestCreatePaymentGatewayMessageSurfaced(t *testing.T) {
	server := gatewayStub(t, 200, `{"statusCode":500,"statusMessage":"Insufficient merchant balance"}`)
	defer server.Close()

	client := NewBkashClient(server.URL)
	session, err := client.CreatePayment(CreatePaymentRequest{UserID: 1, Amount: 150})

	require.Error(t, err)
	assert.Nil(t, session)
	assert.Equal(t, "Insufficient merchant balance", err.Error())
}

func TestCreatePaymentErrorFieldSurfaced(t *testing.T) {
	server := gatewayStub(t, 400, `{"statusCode":400,"error":"invalid amount"}`)
	defer server.Close()

	client := NewBkashClient(server.URL)
	_, err := client.CreatePayment(CreatePaymentRequest{UserID: 1, Amount: -1})

	require.Error(t, err)
	assert.Equal(t, "invalid amount", err.Error())
}

func TestCreatePaymentGenericFailureMessage(t *testing.T) {
	server := gatewayStub(t, 200, `{"statusCode":200}`)
	defer server.Close()

	client := NewBkashClient(server.URL)
	_, err := client.CreatePayment(CreatePaymentRequest{UserID: 1, Amount: 150})

	// 200 without any URL in either shape is still a failure
	require.Error(t, err)
	assert.Equal(t, "Payment could not be initiated. Please try again.", err.Error())
}

func TestCreatePaymentInvalidJSON(t *testing.T) {
	server := gatewayStub(t, 200, `not-json`)
	defer server.Close()

	client := NewBkashClient(server.URL)
	_, err := client.CreatePayment(CreatePaymentRequest{UserID: 1, Amount: 150})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid gateway response")
}
