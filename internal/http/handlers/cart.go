package handlers

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"muse/internal/cart"
	"muse/internal/catalog"
)

var titleCaser = cases.Title(language.English)

// CartGet returns the caller's cart. An absent cart reads as empty.
func (a *App) CartGet(w http.ResponseWriter, r *http.Request) {
	clientID := a.clientID(w, r)
	c, _ := a.Carts.Get(r.Context(), clientID)
	a.json(w, http.StatusOK, c)
}

type cartAddRequest struct {
	ImageID  string `json:"image_id"`
	ImageURL string `json:"image_url"`
	Title    string `json:"title"`
	Size     string `json:"size"`
	Medium   string `json:"medium"`
	Frame    string `json:"frame"`
	Mat      string `json:"mat"`
	Quantity int    `json:"quantity"`
}

// CartAddItem prices and adds a configured print. The server owns pricing
// and variant resolution; client-supplied prices are ignored.
func (a *App) CartAddItem(w http.ResponseWriter, r *http.Request) {
	var req cartAddRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.error(w, http.StatusBadRequest, "bad_request", "invalid payload")
		return
	}
	if req.ImageURL == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "image_url required")
		return
	}
	if _, ok := catalog.SizeByID(req.Size); !ok {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown size")
		return
	}
	if _, ok := catalog.MediumByID(req.Medium); !ok {
		a.error(w, http.StatusBadRequest, "bad_request", "unknown medium")
		return
	}

	frame, mat := catalog.NormalizeConfig(req.Frame, req.Mat)
	variantID, mapped := catalog.ResolveVariant(req.Size, req.Medium, frame)
	if !mapped {
		a.Logger.Warn().
			Str("size", req.Size).Str("medium", req.Medium).Str("frame", frame).
			Msg("cart: unmapped variant combination, using synthetic id")
	}

	title := strings.TrimSpace(req.Title)
	if title == "" {
		title = titleCaser.String(req.Medium) + " Art Print"
	}

	clientID := a.clientID(w, r)
	c := a.Carts.AddItem(r.Context(), clientID, cart.Item{
		VariantID: variantID,
		ImageID:   req.ImageID,
		ImageURL:  req.ImageURL,
		Title:     title,
		Size:      req.Size,
		Medium:    req.Medium,
		Frame:     frame,
		Mat:       mat,
		Price:     catalog.Price(req.Size, req.Medium, frame, mat),
		Quantity:  req.Quantity,
	})
	a.json(w, http.StatusOK, c)
}

// CartRemoveItem removes one item. Removing the last item deletes the cart
// record; the response is then an empty cart.
func (a *App) CartRemoveItem(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")
	if itemID == "" {
		a.error(w, http.StatusBadRequest, "bad_request", "item_id required")
		return
	}
	clientID := a.clientID(w, r)
	c, _ := a.Carts.RemoveItem(r.Context(), clientID, itemID)
	a.json(w, http.StatusOK, c)
}

// CartClear empties the cart entirely.
func (a *App) CartClear(w http.ResponseWriter, r *http.Request) {
	clientID := a.clientID(w, r)
	a.Carts.Clear(r.Context(), clientID)
	a.json(w, http.StatusOK, cart.Cart{})
}
