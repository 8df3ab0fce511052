package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"muse/internal/catalog"
	"muse/internal/fulfill"
)

type checkoutRequest struct {
	Email string `json:"email"`
}

// CheckoutCreate hands the cart off to the commerce platform. An empty cart
// is rejected before any network call; an unconfigured platform returns a
// mock result rather than failing.
func (a *App) CheckoutCreate(w http.ResponseWriter, r *http.Request) {
	var req checkoutRequest
	if r.Body != nil {
		// Body is optional; a decode failure on an empty body is fine.
		_ = json.NewDecoder(r.Body).Decode(&req)
	}

	clientID := a.clientID(w, r)
	c, ok := a.Carts.Get(r.Context(), clientID)
	if !ok || len(c.Items) == 0 {
		a.error(w, http.StatusBadRequest, "cart_empty", "no items in cart")
		return
	}

	result, err := a.Checkout.CreateCheckout(r.Context(), c.Items, req.Email)
	if err != nil {
		a.Logger.Error().Err(err).Str("client_id", clientID).Msg("checkout failed")
		a.error(w, http.StatusInternalServerError, "checkout_failed", err.Error())
		return
	}

	a.json(w, http.StatusOK, result)
}

type fulfillRequest struct {
	Recipient fulfill.Recipient `json:"recipient"`
}

// OrdersFulfill uploads each cart image to the print provider and submits a
// fulfillment order. Mock mode yields synthetic ids end to end.
func (a *App) OrdersFulfill(w http.ResponseWriter, r *http.Request) {
	var req fulfillRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}

	clientID := a.clientID(w, r)
	c, ok := a.Carts.Get(r.Context(), clientID)
	if !ok || len(c.Items) == 0 {
		a.error(w, http.StatusBadRequest, "cart_empty", "no items in cart")
		return
	}

	items := make([]fulfill.OrderItem, 0, len(c.Items))
	for _, item := range c.Items {
		fileID, err := a.Fulfill.UploadPrintFile(r.Context(), item.ImageURL, item.ID+".png")
		if err != nil {
			a.Logger.Error().Err(err).Str("item_id", item.ID).Msg("fulfill upload failed")
			a.error(w, http.StatusInternalServerError, "fulfill_failed", err.Error())
			return
		}
		mapping, mapped := catalog.VariantByKey(item.Size, item.Medium, item.Frame)
		if !mapped {
			a.Logger.Warn().Str("item_id", item.ID).Msg("fulfill: no provider variant for item, using zero")
		}
		items = append(items, fulfill.OrderItem{
			VariantID:   mapping.PrintfulVariantID,
			Quantity:    item.Quantity,
			FileID:      fileID,
			RetailPrice: fmt.Sprintf("%.2f", float64(item.Price)/100),
		})
	}

	order, err := a.Fulfill.CreateOrder(r.Context(), req.Recipient, items)
	if err != nil {
		a.Logger.Error().Err(err).Str("client_id", clientID).Msg("fulfill order failed")
		a.error(w, http.StatusInternalServerError, "fulfill_failed", err.Error())
		return
	}
	a.json(w, http.StatusOK, order)
}
