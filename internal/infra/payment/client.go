package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/config"
	"github.com/GRAMAPHENIA/resio-sub000/internal/pkg/errs"
	"github.com/GRAMAPHENIA/resio-sub000/internal/usecase"
)

// Client talks to the hosted payment provider's REST API. Bookings reference
// payments by the provider's payment id; the booking id travels as the
// preference's external reference and comes back on webhook lookups.
type Client struct {
	httpClient  *http.Client
	baseURL     string
	accessToken string
	successURL  string
	failureURL  string
}

func NewClient(cfg config.PaymentConfig) *Client {
	return &Client{
		httpClient:  &http.Client{Timeout: cfg.Timeout},
		baseURL:     cfg.BaseURL,
		accessToken: cfg.AccessToken,
		successURL:  cfg.SuccessURL,
		failureURL:  cfg.FailureURL,
	}
}

type preferenceItem struct {
	Title     string  `json:"title"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unit_price"`
}

type preferenceRequest struct {
	Items             []preferenceItem  `json:"items"`
	Payer             map[string]string `json:"payer"`
	ExternalReference string            `json:"external_reference"`
	BackURLs          map[string]string `json:"back_urls,omitempty"`
	AutoReturn        string            `json:"auto_return,omitempty"`
}

type preferenceResponse struct {
	ID        string `json:"id"`
	InitPoint string `json:"init_point"`
}

type paymentResponse struct {
	ID                int64  `json:"id"`
	Status            string `json:"status"`
	ExternalReference string `json:"external_reference"`
}

func (c *Client) CreatePreference(ctx context.Context, pref usecase.PaymentPreference) (*usecase.PaymentPreferenceResult, error) {
	reqBody := preferenceRequest{
		Items: []preferenceItem{{
			Title:     pref.Title,
			Quantity:  1,
			UnitPrice: float64(pref.Amount),
		}},
		Payer:             map[string]string{"email": pref.PayerEmail},
		ExternalReference: pref.BookingID.String(),
	}
	if c.successURL != "" && c.failureURL != "" {
		reqBody.BackURLs = map[string]string{
			"success": c.successURL,
			"failure": c.failureURL,
		}
		reqBody.AutoReturn = "approved"
	}

	var resp preferenceResponse
	if err := c.post(ctx, "/checkout/preferences", reqBody, &resp); err != nil {
		return nil, err
	}

	return &usecase.PaymentPreferenceResult{
		ID:        resp.ID,
		InitPoint: resp.InitPoint,
	}, nil
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (*usecase.PaymentInfo, error) {
	var resp paymentResponse
	if err := c.get(ctx, "/v1/payments/"+paymentID, &resp); err != nil {
		return nil, err
	}

	return &usecase.PaymentInfo{
		ID:                fmt.Sprintf("%d", resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errs.Wrap(err, "failed to encode payment request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return errs.Wrap(err, "failed to build payment request")
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return errs.Wrap(err, "failed to build payment request")
	}

	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errs.Wrap(err, "payment gateway request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errs.New(fmt.Sprintf("payment gateway returned status %d", resp.StatusCode))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errs.Wrap(err, "failed to decode payment gateway response")
	}
	return nil
}
