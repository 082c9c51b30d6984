package paystack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/Techevery/Native-admin-dashboard-backend/internal/domain/model"
)

// InitError signals that the gateway rejected the transaction as a business
// decision (declined initialization), as opposed to a transport failure.
type InitError struct {
	Message string
}

func (e *InitError) Error() string {
	return fmt.Sprintf("paystack initialization rejected: %s", e.Message)
}

// Gateway exposes operations to initialize payment transactions.
type Gateway interface {
	Initialize(ctx context.Context, amountMinor int64, email string, metadata map[string]any) (*model.PaymentInit, error)
}

// HTTPClient implements Gateway via the Paystack HTTPS JSON API.
type HTTPClient struct {
	baseURL    *url.URL
	secretKey  string
	httpClient *http.Client
	logger     *slog.Logger
}

// initRequest mirrors the transaction initialize payload.
type initRequest struct {
	Amount   int64          `json:"amount"`
	Email    string         `json:"email"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// initResponse mirrors the JSON envelope returned by Paystack.
type initResponse struct {
	Status  bool            `json:"status"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

type initData struct {
	AuthorizationURL string `json:"authorization_url"`
	AccessCode       string `json:"access_code"`
	Reference        string `json:"reference"`
}

// NewHTTPClient creates a Paystack client with default timeout.
func NewHTTPClient(baseURL, secretKey string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parse paystack url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("paystack url must be absolute")
	}
	if secretKey == "" {
		return nil, fmt.Errorf("paystack secret key must not be empty")
	}
	return &HTTPClient{
		baseURL:   parsed,
		secretKey: secretKey,
		logger:    logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Initialize creates a transaction for the given amount in the gateway's
// minor currency unit and returns the gateway reference on success.
func (c *HTTPClient) Initialize(ctx context.Context, amountMinor int64, email string, metadata map[string]any) (*model.PaymentInit, error) {
	endpoint := *c.baseURL
	endpoint.Path = path.Join(endpoint.Path, "/transaction/initialize")

	payload, err := json.Marshal(initRequest{Amount: amountMinor, Email: email, Metadata: metadata})
	if err != nil {
		return nil, fmt.Errorf("marshal paystack request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Authorization", "Bearer "+c.secretKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	var envelope initResponse
	if err := json.Unmarshal(body, &envelope); err != nil {
		c.logger.Error("paystack returned malformed payload", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("decode paystack response: %w", err)
	}

	if !envelope.Status {
		c.logger.Warn("paystack rejected initialization", slog.Int("status", resp.StatusCode), slog.String("message", envelope.Message))
		return nil, &InitError{Message: envelope.Message}
	}

	if resp.StatusCode != http.StatusOK {
		c.logger.Error("paystack request failed", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return nil, fmt.Errorf("paystack error: %s", resp.Status)
	}

	var data initData
	if err := json.Unmarshal(envelope.Data, &data); err != nil {
		return nil, fmt.Errorf("decode paystack data: %w", err)
	}
	if data.Reference == "" {
		return nil, fmt.Errorf("paystack response missing reference")
	}

	return &model.PaymentInit{
		Reference:        data.Reference,
		AuthorizationURL: data.AuthorizationURL,
		AccessCode:       data.AccessCode,
		Raw:              envelope.Data,
	}, nil
}
