package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/shuvajitmaitra/glamor-gallery/internal/usecase"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/logger"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, checkoutUC usecase.CheckoutUC) {
	r.router.Route("/api/v1", func(v1 chi.Router) {
		productHandler := NewProductHandler(catalogUC, r.logger)
		registerProductRoutes(v1, productHandler)

		cartHandler := NewCartHandler(cartUC, r.logger)
		registerCartRoutes(v1, cartHandler)

		checkoutHandler := NewCheckoutHandler(checkoutUC, r.logger)
		v1.Post("/checkout", checkoutHandler.checkout)
	})
}

func registerProductRoutes(router chi.Router, h *ProductHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", h.listProducts)
		pr.Get("/filter", h.filterProducts)
		pr.Get("/latest", h.latestProducts)
		pr.Get("/{productID}", h.getProduct)
	})
}

func registerCartRoutes(router chi.Router, h *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", h.getCart)
		cr.Delete("/", h.clearCart)
		cr.Post("/items", h.addItem)
		cr.Put("/items", h.updateQuantity)
		cr.Delete("/items", h.removeItem)
	})
}
