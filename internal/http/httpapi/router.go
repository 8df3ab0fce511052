package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"muse/internal/http/handlers"
	"muse/internal/infra/geoip"
	"muse/internal/middleware"
)

func NewRouter(app *handlers.App, resolver geoip.CountryResolver) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.RequestID,
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logger(app.Logger, resolver),
		middleware.CORS(app.Config.CORSOrigins),
		middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute),
	)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/prompts", func(r chi.Router) {
		r.Post("/enhance", app.EnhancePrompt)
		r.Get("/modifiers", app.Modifiers)
	})

	r.Post("/v1/images/generate", app.ImagesGenerate)

	r.Route("/v1/sessions", func(r chi.Router) {
		r.Get("/current", app.SessionCurrent)
		r.Delete("/current", app.SessionClear)
		r.Post("/select", app.SessionSelect)
		r.Post("/modifiers", app.SessionModifiers)
		r.Delete("/modifiers", app.SessionModifiersReset)
		r.Get("/export", app.SessionExport)
	})

	r.Route("/v1/catalog", func(r chi.Router) {
		r.Get("/", app.Catalog)
		r.Get("/price", app.CatalogPrice)
		r.Post("/resolution", app.CatalogResolution)
	})

	r.Get("/v1/gallery", app.Gallery)
	r.Get("/v1/concepts", app.Concepts)

	r.Route("/v1/profile", func(r chi.Router) {
		r.Get("/", app.ProfileGet)
		r.Put("/", app.ProfilePut)
		r.Delete("/", app.ProfileDelete)
	})

	r.Route("/v1/cart", func(r chi.Router) {
		r.Get("/", app.CartGet)
		r.Delete("/", app.CartClear)
		r.Post("/items", app.CartAddItem)
		r.Delete("/items/{item_id}", app.CartRemoveItem)
	})

	r.Post("/v1/checkout", app.CheckoutCreate)
	r.Post("/v1/orders/fulfill", app.OrdersFulfill)

	return r
}
