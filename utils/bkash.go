package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-resty/resty/v2"
)

// BkashClient talks to the external bKash checkout service
type BkashClient struct {
	baseURL string
	http    *resty.Client
}

// NewBkashClient builds a client for the gateway at baseURL
func NewBkashClient(baseURL string) *BkashClient {
	return &BkashClient{
		baseURL: baseURL,
		http:    resty.New().SetTimeout(30 * time.Second),
	}
}

// CreatePaymentRequest mirrors the gateway's make-payment body. Exactly
// one of WorkshopID/CourseID is set.
type CreatePaymentRequest struct {
	UserID     uint    `json:"user_id"`
	WorkshopID *uint   `json:"workshop_id,omitempty"`
	CourseID   *uint   `json:"course_id,omitempty"`
	Amount     float64 `json:"amount"`
	Email      string  `json:"email"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
}

// PaymentSession is the normalized result of a create-payment call
type PaymentSession struct {
	RedirectURL string
	LegacyShape bool // URL arrived under data.bkashURL instead of url
}

// createPaymentResponse covers both response shapes the gateway has
// been observed to return.
type createPaymentResponse struct {
	StatusCode int    `json:"statusCode"`
	URL        string `json:"url"`
	Data       *struct {
		BkashURL string `json:"bkashURL"`
	} `json:"data"`
	StatusMessage string `json:"statusMessage"`
	Error         string `json:"error"`
}

// CreatePayment requests a checkout session and returns the redirect
// URL the browser must be sent to. Gateway failures come back as errors
// carrying the gateway's own message when one is present.
func (c *BkashClient) CreatePayment(req CreatePaymentRequest) (*PaymentSession, error) {
	resp, err := c.http.R().
		SetHeader("Content-Type", "application/json").
		SetBody(req).
		Post(c.baseURL + "/api/bkash/make-payment")
	if err != nil {
		return nil, fmt.Errorf("gateway unreachable: %w", err)
	}

	var parsed createPaymentResponse
	if err := json.Unmarshal(resp.Body(), &parsed); err != nil {
		return nil, fmt.Errorf("invalid gateway response: %w", err)
	}

	if resp.StatusCode() != 200 || parsed.StatusCode != 200 {
		return nil, errors.New(gatewayErrorMessage(parsed))
	}

	// Normalize the two known shapes into one session
	switch {
	case parsed.URL != "":
		return &PaymentSession{RedirectURL: parsed.URL}, nil
	case parsed.Data != nil && parsed.Data.BkashURL != "":
		log.Printf("[BKASH] Legacy response shape (data.bkashURL) hit for user %d", req.UserID)
		return &PaymentSession{RedirectURL: parsed.Data.BkashURL, LegacyShape: true}, nil
	}

	return nil, errors.New(gatewayErrorMessage(parsed))
}

func gatewayErrorMessage(r createPaymentResponse) string {
	if r.StatusMessage != "" {
		return r.StatusMessage
	}
	if r.Error != "" {
		return r.Error
	}
	return "Payment could not be initiated. Please try again."
}
