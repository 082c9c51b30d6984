package sms

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const orderPlacedBody = "Hello your order has been successfully placed, a rider will get in touch with you shortly"

// Sender dispatches order notifications over SMS.
type Sender interface {
	SendOrderPlaced(ctx context.Context, phone string) error
}

// HTTPClient implements Sender via the Konnect messaging HTTP API.
type HTTPClient struct {
	endpoint      *url.URL
	apiKey        string
	senderMask    string
	countryPrefix string
	httpClient    *http.Client
	logger        *slog.Logger
}

// message mirrors the Konnect JSON payload.
type message struct {
	ID         string   `json:"id"`
	To         []string `json:"to"`
	SenderMask string   `json:"sender_mask"`
	Priority   string   `json:"priority"`
	Body       string   `json:"body"`
	Unicode    string   `json:"unicode"`
}

// NewHTTPClient creates an SMS client with default timeout.
func NewHTTPClient(endpoint, apiKey, senderMask, countryPrefix string, logger *slog.Logger) (*HTTPClient, error) {
	parsed, err := url.Parse(endpoint)
	if err != nil {
		return nil, fmt.Errorf("parse sms gateway url: %w", err)
	}
	if !parsed.IsAbs() {
		return nil, fmt.Errorf("sms gateway url must be absolute")
	}
	return &HTTPClient{
		endpoint:      parsed,
		apiKey:        apiKey,
		senderMask:    senderMask,
		countryPrefix: countryPrefix,
		logger:        logger,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}, nil
}

// SendOrderPlaced notifies the customer that the order was accepted. The
// local phone number is normalized to international form using the configured
// country prefix.
func (c *HTTPClient) SendOrderPlaced(ctx context.Context, phone string) error {
	payload, err := json.Marshal(message{
		ID:         fmt.Sprintf("%d", time.Now().UnixNano()),
		To:         []string{c.normalize(phone)},
		SenderMask: c.senderMask,
		Priority:   "high",
		Body:       orderPlacedBody,
		Unicode:    "0",
	})
	if err != nil {
		return fmt.Errorf("marshal sms payload: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint.String(), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("send sms: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("sms gateway rejected message", slog.Int("status", resp.StatusCode), slog.String("body", string(body)))
		return fmt.Errorf("sms gateway error: %s", resp.Status)
	}

	return nil
}

func (c *HTTPClient) normalize(phone string) string {
	phone = strings.TrimSpace(phone)
	if strings.HasPrefix(phone, "+") {
		return phone[1:]
	}
	if strings.HasPrefix(phone, c.countryPrefix) {
		return phone
	}
	return c.countryPrefix + strings.TrimPrefix(phone, "0")
}
