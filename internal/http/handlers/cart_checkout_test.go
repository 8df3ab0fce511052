package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"muse/internal/cart"
)

func addItemBody() map[string]any {
	return map[string]any{
		"image_id":  "gen-1-1",
		"image_url": "data:image/png;base64,aGVsbG8=",
		"size":      "16x20",
		"medium":    "canvas",
		"frame":     "black",
		"mat":       "white",
	}
}

func TestCartAddAndGet(t *testing.T) {
	app := newTestApp()
	headers := map[string]string{"X-Client-ID": "client-1"}

	rec := doJSON(t, app.CartAddItem, http.MethodPost, "/v1/cart/items", addItemBody(), headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var c cart.Cart
	decodeBody(t, rec, &c)
	if len(c.Items) != 1 {
		t.Fatalf("items = %d, want 1", len(c.Items))
	}
	item := c.Items[0]
	// 16x20 canvas base plus black frame and white mat upcharges
	if item.Price != 6900+2000+3000+1000 {
		t.Fatalf("price = %d", item.Price)
	}
	if item.Quantity != 1 {
		t.Fatalf("quantity = %d, want default 1", item.Quantity)
	}
	if item.Title != "Canvas Art Print" {
		t.Fatalf("title = %q", item.Title)
	}
	if c.TotalPrice != item.Price {
		t.Fatalf("total = %d, want %d", c.TotalPrice, item.Price)
	}
	if c.CheckoutURL != cart.PlaceholderCheckoutURL {
		t.Fatalf("checkout url = %q", c.CheckoutURL)
	}

	rec = doJSON(t, app.CartGet, http.MethodGet, "/v1/cart", nil, headers)
	var fetched cart.Cart
	decodeBody(t, rec, &fetched)
	if len(fetched.Items) != 1 || fetched.TotalPrice != c.TotalPrice {
		t.Fatalf("fetched cart mismatch: %+v", fetched)
	}
}

func TestCartAddNormalizesFrameNone(t *testing.T) {
	app := newTestApp()
	body := addItemBody()
	body["frame"] = "none"
	body["mat"] = "white"

	rec := doJSON(t, app.CartAddItem, http.MethodPost, "/v1/cart/items", body, map[string]string{"X-Client-ID": "client-1"})
	var c cart.Cart
	decodeBody(t, rec, &c)
	if c.Items[0].Mat != "none" {
		t.Fatalf("mat = %q, want none when frame is none", c.Items[0].Mat)
	}
	if c.Items[0].Price != 6900+2000 {
		t.Fatalf("price = %d, mat should not be charged", c.Items[0].Price)
	}
}

func TestCartAddRejectsUnknownSize(t *testing.T) {
	app := newTestApp()
	body := addItemBody()
	body["size"] = "9x9"

	rec := doJSON(t, app.CartAddItem, http.MethodPost, "/v1/cart/items", body, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}

func TestCartRemoveLastItemLeavesEmptyCart(t *testing.T) {
	app := newTestApp()
	headers := map[string]string{"X-Client-ID": "client-1"}

	rec := doJSON(t, app.CartAddItem, http.MethodPost, "/v1/cart/items", addItemBody(), headers)
	var c cart.Cart
	decodeBody(t, rec, &c)

	req := httptest.NewRequest(http.MethodDelete, "/v1/cart/items/"+c.Items[0].ID, nil)
	req.Header.Set("X-Client-ID", "client-1")
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("item_id", c.Items[0].ID)
	req = req.WithContext(contextWithRoute(req, rctx))
	rec2 := httptest.NewRecorder()
	app.CartRemoveItem(rec2, req)

	var after cart.Cart
	decodeBody(t, rec2, &after)
	if len(after.Items) != 0 || after.TotalPrice != 0 {
		t.Fatalf("cart not emptied: %+v", after)
	}

	rec3 := doJSON(t, app.CartGet, http.MethodGet, "/v1/cart", nil, headers)
	var fetched cart.Cart
	decodeBody(t, rec3, &fetched)
	if len(fetched.Items) != 0 {
		t.Fatalf("cart record should be gone: %+v", fetched)
	}
}

func TestCheckoutEmptyCartRejected(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app.CheckoutCreate, http.MethodPost, "/v1/checkout", map[string]any{}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
	var body map[string]errorBody
	decodeBody(t, rec, &body)
	if body["error"].Message != "no items in cart" {
		t.Fatalf("message = %q", body["error"].Message)
	}
}

func TestCheckoutMockMode(t *testing.T) {
	app := newTestApp()
	headers := map[string]string{"X-Client-ID": "client-1"}
	doJSON(t, app.CartAddItem, http.MethodPost, "/v1/cart/items", addItemBody(), headers)

	rec := doJSON(t, app.CheckoutCreate, http.MethodPost, "/v1/checkout", map[string]any{"email": "a@b.c"}, headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		CheckoutURL string `json:"checkout_url"`
		OrderID     string `json:"order_id"`
		IsMock      bool   `json:"is_mock"`
	}
	decodeBody(t, rec, &resp)
	if !resp.IsMock {
		t.Fatal("expected mock checkout without credentials")
	}
	if resp.CheckoutURL != cart.PlaceholderCheckoutURL {
		t.Fatalf("checkout url = %q", resp.CheckoutURL)
	}
	if resp.OrderID == "" {
		t.Fatal("expected an order id")
	}
}

func TestOrdersFulfillMockMode(t *testing.T) {
	app := newTestApp()
	headers := map[string]string{"X-Client-ID": "client-1"}
	doJSON(t, app.CartAddItem, http.MethodPost, "/v1/cart/items", addItemBody(), headers)

	rec := doJSON(t, app.OrdersFulfill, http.MethodPost, "/v1/orders/fulfill", map[string]any{
		"recipient": map[string]any{"name": "Test", "country_code": "US"},
	}, headers)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d body = %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		OrderID int64  `json:"order_id"`
		Status  string `json:"status"`
		IsMock  bool   `json:"is_mock"`
	}
	decodeBody(t, rec, &resp)
	if !resp.IsMock || resp.OrderID == 0 {
		t.Fatalf("unexpected fulfill result: %+v", resp)
	}
}

func TestOrdersFulfillEmptyCartRejected(t *testing.T) {
	app := newTestApp()

	rec := doJSON(t, app.OrdersFulfill, http.MethodPost, "/v1/orders/fulfill", map[string]any{
		"recipient": map[string]any{"name": "Test"},
	}, nil)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rec.Code, http.StatusBadRequest)
	}
}
