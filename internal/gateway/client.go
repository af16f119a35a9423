package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// statusSuccess is the provider's success marker in response bodies.
const statusSuccess = "success"

// HTTPClient talks to the payment provider over HTTPS.
type HTTPClient struct {
	cfg    Config
	client *http.Client
}

// Ensure the interface is satisfied.
var _ Client = (*HTTPClient)(nil)

// NewHTTPClient creates a gateway client from explicit configuration.
func NewHTTPClient(cfg Config) *HTTPClient {
	return &HTTPClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// initializeBody is the JSON body for the initialize endpoint. The field
// names are fixed by the provider's API.
type initializeBody struct {
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency"`
	TxRef       string  `json:"tx_ref"`
	Email       string  `json:"email"`
	FirstName   string  `json:"first_name"`
	LastName    string  `json:"last_name"`
	CallbackURL string  `json:"callback_url"`
}

// Initialize starts a new transaction for the given reference.
func (c *HTTPClient) Initialize(ctx context.Context, req InitializeRequest) (*Result, error) {
	body, err := json.Marshal(initializeBody{
		Amount:      req.Amount,
		Currency:    c.cfg.Currency,
		TxRef:       req.TxRef,
		Email:       req.Email,
		FirstName:   req.FirstName,
		LastName:    req.LastName,
		CallbackURL: c.cfg.CallbackURL,
	})
	if err != nil {
		return nil, err
	}

	url := c.cfg.BaseURL + "/v1/transaction/initialize"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	httpReq.Header.Set("Content-Type", "application/json")

	return c.do(httpReq)
}

// Verify asks the provider for the current status of a transaction.
func (c *HTTPClient) Verify(ctx context.Context, txRef string) (*Result, error) {
	url := c.cfg.BaseURL + "/v1/transaction/verify/" + txRef
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	return c.do(httpReq)
}

// do executes a request and normalizes the provider's response. A
// reachable provider answering with well-formed JSON never yields an
// error, only Result.OK=false.
func (c *HTTPClient) do(req *http.Request) (*Result, error) {
	req.Header.Set("Authorization", "Bearer "+c.cfg.SecretKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", ErrUnavailable, err)
	}

	var envelope struct {
		Status string `json:"status"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, fmt.Errorf("%w: malformed response: %v", ErrUnavailable, err)
	}

	return &Result{
		OK:     resp.StatusCode == http.StatusOK && envelope.Status == statusSuccess,
		Status: envelope.Status,
		Raw:    raw,
	}, nil
}
