package client

import (
	"fmt"
	"time"

	"github.com/bu6wer8/student-services-V4-Docker/internal/domain"
	"github.com/go-resty/resty/v2"
)

// HTTPGatewayClient talks to the card-checkout gateway. The core treats
// it as an opaque create/verify/refund capability and never retries it.
type HTTPGatewayClient struct {
	client *resty.Client
}

func NewHTTPGatewayClient(baseURL, apiKey string, timeout time.Duration) *HTTPGatewayClient {
	return &HTTPGatewayClient{
		client: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(timeout).
			SetAuthToken(apiKey),
	}
}

type checkoutSessionRequest struct {
	OrderNumber   string  `json:"order_number"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	Description   string  `json:"description"`
	CustomerEmail string  `json:"customer_email,omitempty"`
}

type checkoutSessionResponse struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

func (c *HTTPGatewayClient) CreateCheckoutSession(orderNumber string, amount float64, currency, description, customerEmail string) (*domain.CheckoutSession, error) {
	var result checkoutSessionResponse
	resp, err := c.client.R().
		SetBody(checkoutSessionRequest{
			OrderNumber:   orderNumber,
			Amount:        amount,
			Currency:      currency,
			Description:   description,
			CustomerEmail: customerEmail,
		}).
		SetResult(&result).
		Post("/v1/checkout/sessions")
	if err != nil {
		return nil, fmt.Errorf("create checkout session: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create checkout session: gateway returned %s", resp.Status())
	}

	return &domain.CheckoutSession{ID: result.ID, URL: result.URL}, nil
}

type sessionStatusResponse struct {
	PaymentStatus string  `json:"payment_status"`
	Amount        float64 `json:"amount"`
	Currency      string  `json:"currency"`
	PaymentIntent string  `json:"payment_intent"`
}

func (c *HTTPGatewayClient) VerifySession(sessionID string) (*domain.SessionStatus, error) {
	var result sessionStatusResponse
	resp, err := c.client.R().
		SetResult(&result).
		Get(fmt.Sprintf("/v1/checkout/sessions/%s", sessionID))
	if err != nil {
		return nil, fmt.Errorf("verify session: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("verify session: gateway returned %s", resp.Status())
	}

	return &domain.SessionStatus{
		Paid:          result.PaymentStatus == "paid",
		Amount:        result.Amount,
		Currency:      result.Currency,
		PaymentIntent: result.PaymentIntent,
	}, nil
}

type refundRequest struct {
	PaymentIntent string  `json:"payment_intent"`
	Amount        float64 `json:"amount,omitempty"`
}

type refundResponse struct {
	ID     string  `json:"id"`
	Amount float64 `json:"amount"`
}

func (c *HTTPGatewayClient) CreateRefund(paymentIntent string, amount float64) (*domain.RefundResult, error) {
	var result refundResponse
	resp, err := c.client.R().
		SetBody(refundRequest{PaymentIntent: paymentIntent, Amount: amount}).
		SetResult(&result).
		Post("/v1/refunds")
	if err != nil {
		return nil, fmt.Errorf("create refund: %w", err)
	}
	if resp.IsError() {
		return nil, fmt.Errorf("create refund: gateway returned %s", resp.Status())
	}

	return &domain.RefundResult{RefundID: result.ID, Amount: result.Amount}, nil
}
