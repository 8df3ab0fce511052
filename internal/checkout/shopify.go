package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"muse/internal/cart"
	"muse/internal/domain"
)

// Options configures the Shopify Admin client.
type Options struct {
	StoreDomain string
	AccessToken string
	APIVersion  string
	HTTPClient  *http.Client
	Logger      zerolog.Logger
}

// Client creates Shopify draft orders, whose invoice URL doubles as the
// hosted checkout page. When credentials are absent the client runs in mock
// mode: a deterministic placeholder redirect and a synthetic order id. Mock
// mode is a supported deployment state, not an error path.
type Client struct {
	storeDomain string
	accessToken string
	apiVersion  string
	httpClient  *http.Client
	logger      zerolog.Logger
}

// Result is the checkout handoff returned to the caller.
type Result struct {
	CheckoutURL string `json:"checkout_url"`
	OrderID     string `json:"order_id"`
	IsMock      bool   `json:"is_mock"`
}

func NewClient(opts Options) *Client {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	apiVersion := opts.APIVersion
	if apiVersion == "" {
		apiVersion = "2024-01"
	}
	domainName := strings.TrimPrefix(strings.TrimPrefix(opts.StoreDomain, "https://"), "http://")
	domainName = strings.TrimRight(domainName, "/")
	return &Client{
		storeDomain: domainName,
		accessToken: strings.TrimSpace(opts.AccessToken),
		apiVersion:  apiVersion,
		httpClient:  httpClient,
		logger:      opts.Logger,
	}
}

// Configured reports whether the commerce platform credentials are present.
func (c *Client) Configured() bool {
	return c.storeDomain != "" && c.accessToken != ""
}

type lineItem struct {
	Title            string     `json:"title"`
	Quantity         int        `json:"quantity"`
	Price            string     `json:"price"`
	VariantID        int64      `json:"variant_id,omitempty"`
	Properties       []property `json:"properties,omitempty"`
	RequiresShipping bool       `json:"requires_shipping"`
}

type property struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

type draftOrderRequest struct {
	DraftOrder draftOrder `json:"draft_order"`
}

type draftOrder struct {
	Email                     string     `json:"email"`
	Tags                      string     `json:"tags"`
	LineItems                 []lineItem `json:"line_items"`
	UseCustomerDefaultAddress bool       `json:"use_customer_default_address"`
}

type draftOrderResponse struct {
	DraftOrder struct {
		ID         int64  `json:"id"`
		InvoiceURL string `json:"invoice_url"`
	} `json:"draft_order"`
}

// CreateCheckout turns cart items into a draft order and returns the
// redirect target. Empty items are rejected before any network call.
func (c *Client) CreateCheckout(ctx context.Context, items []cart.Item, email string) (Result, error) {
	if len(items) == 0 {
		return Result{}, domain.ErrCartEmpty
	}

	if !c.Configured() {
		c.logger.Warn().Msg("checkout: commerce platform not configured; returning mock checkout")
		return Result{
			CheckoutURL: cart.PlaceholderCheckoutURL,
			OrderID:     fmt.Sprintf("mock-order-%d", time.Now().UnixMilli()),
			IsMock:      true,
		}, nil
	}

	if email == "" {
		email = "customer@example.com"
	}
	payload := draftOrderRequest{
		DraftOrder: draftOrder{
			Email:     email,
			Tags:      "ai-art, custom-print",
			LineItems: toLineItems(items),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{}, fmt.Errorf("%w: marshal draft order: %v", domain.ErrCheckoutFailed, err)
	}

	endpoint := fmt.Sprintf("https://%s/admin/api/%s/draft_orders.json", c.storeDomain, c.apiVersion)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return Result{}, fmt.Errorf("%w: create request: %v", domain.ErrCheckoutFailed, err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Shopify-Access-Token", c.accessToken)

	c.logger.Info().Int("items", len(items)).Msg("checkout: creating draft order")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", domain.ErrCheckoutFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 2048))
		c.logger.Error().Int("status", resp.StatusCode).Str("detail", string(detail)).Msg("checkout: platform rejected draft order")
		if resp.StatusCode == http.StatusUnauthorized {
			return Result{}, fmt.Errorf("%w: platform authentication failed; check the access token has draft order permissions", domain.ErrCheckoutFailed)
		}
		return Result{}, fmt.Errorf("%w: platform status %d: %s", domain.ErrCheckoutFailed, resp.StatusCode, strings.TrimSpace(string(detail)))
	}

	var decoded draftOrderResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Result{}, fmt.Errorf("%w: decode response: %v", domain.ErrCheckoutFailed, err)
	}

	c.logger.Info().Int64("order_id", decoded.DraftOrder.ID).Msg("checkout: draft order created")
	return Result{
		CheckoutURL: decoded.DraftOrder.InvoiceURL,
		OrderID:     strconv.FormatInt(decoded.DraftOrder.ID, 10),
		IsMock:      false,
	}, nil
}

func toLineItems(items []cart.Item) []lineItem {
	out := make([]lineItem, len(items))
	for i, item := range items {
		out[i] = lineItem{
			Title:    item.Title,
			Quantity: item.Quantity,
			Price:    fmt.Sprintf("%.2f", float64(item.Price)/100),
			Properties: []property{
				{Name: "Image URL", Value: item.ImageURL},
				{Name: "Size", Value: item.Size},
				{Name: "Medium", Value: item.Medium},
				{Name: "Frame", Value: item.Frame},
				{Name: "Mat", Value: item.Mat},
			},
			RequiresShipping: true,
		}
		out[i].VariantID = numericVariantID(item.VariantID)
	}
	return out
}

// numericVariantID extracts the trailing numeric id from a variant GID.
// Synthetic (mock) identifiers yield zero, which omits the field so the
// platform falls back to a custom line item.
func numericVariantID(gid string) int64 {
	if gid == "" || strings.Contains(gid, "mock") {
		return 0
	}
	idx := strings.LastIndex(gid, "/")
	n, err := strconv.ParseInt(gid[idx+1:], 10, 64)
	if err != nil {
		return 0
	}
	return n
}
