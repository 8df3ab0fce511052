package fulfill

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"

	"muse/internal/domain"
)

// Options configures the print-fulfillment client.
type Options struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client
	Logger     zerolog.Logger
}

// Client talks to the print-fulfillment provider. Like the other external
// boundaries, a missing credential selects mock mode with deterministic
// synthetic ids instead of failing.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	logger     zerolog.Logger
	mockSeq    atomic.Int64
}

// Recipient is the shipping destination for a fulfillment order.
type Recipient struct {
	Name        string `json:"name"`
	Address1    string `json:"address1"`
	City        string `json:"city"`
	StateCode   string `json:"state_code"`
	CountryCode string `json:"country_code"`
	Zip         string `json:"zip"`
}

// OrderItem is one print in a fulfillment order.
type OrderItem struct {
	VariantID   int    `json:"variant_id"`
	Quantity    int    `json:"quantity"`
	FileID      int64  `json:"-"`
	RetailPrice string `json:"retail_price"`
}

// Order is the provider's acknowledgment of a created order.
type Order struct {
	OrderID int64  `json:"order_id"`
	Status  string `json:"status"`
	IsMock  bool   `json:"is_mock"`
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = "https://api.printful.com"
	}
	return &Client{
		apiKey:     strings.TrimSpace(opts.APIKey),
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     opts.Logger,
	}
}

// Configured reports whether the provider credential is present.
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// UploadPrintFile registers the print-ready image with the provider and
// returns the provider's file id.
func (c *Client) UploadPrintFile(ctx context.Context, imageURL, filename string) (int64, error) {
	if !c.Configured() {
		c.logger.Warn().Str("url", imageURL).Msg("fulfill: provider not configured; returning mock file id")
		return 100000 + c.mockSeq.Add(1), nil
	}

	payload := map[string]any{
		"type":     "default",
		"url":      imageURL,
		"filename": filename,
		"options":  map[string]any{"dpi": 300},
	}
	var result struct {
		Result struct {
			ID int64 `json:"id"`
		} `json:"result"`
	}
	if err := c.post(ctx, "/files", payload, &result); err != nil {
		return 0, err
	}
	return result.Result.ID, nil
}

// CreateOrder submits a fulfillment order for the uploaded files.
func (c *Client) CreateOrder(ctx context.Context, recipient Recipient, items []OrderItem) (Order, error) {
	if len(items) == 0 {
		return Order{}, domain.ErrInvalidInput
	}
	if !c.Configured() {
		c.logger.Warn().Str("recipient", recipient.Name).Msg("fulfill: provider not configured; returning mock order")
		return Order{OrderID: 200000 + c.mockSeq.Add(1), Status: "pending", IsMock: true}, nil
	}

	wireItems := make([]map[string]any, len(items))
	for i, item := range items {
		wireItems[i] = map[string]any{
			"variant_id":   item.VariantID,
			"quantity":     item.Quantity,
			"files":        []map[string]any{{"type": "default", "id": item.FileID}},
			"retail_price": item.RetailPrice,
		}
	}
	payload := map[string]any{
		"recipient": recipient,
		"items":     wireItems,
	}
	var result struct {
		Result struct {
			ID     int64  `json:"id"`
			Status string `json:"status"`
		} `json:"result"`
	}
	if err := c.post(ctx, "/orders", payload, &result); err != nil {
		return Order{}, err
	}
	return Order{OrderID: result.Result.ID, Status: result.Result.Status}, nil
}

func (c *Client) post(ctx context.Context, path string, payload, out any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("%w: marshal request: %v", domain.ErrFulfillFailed, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("%w: create request: %v", domain.ErrFulfillFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrFulfillFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		return fmt.Errorf("%w: provider status %d: %s", domain.ErrFulfillFailed, resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: decode response: %v", domain.ErrFulfillFailed, err)
	}
	return nil
}
