package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shuvajitmaitra/glamor-gallery/internal/usecase"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/logger"
)

type ProductHandler struct {
	catalogUC usecase.CatalogUC
	logger    logger.Logger
}

func NewProductHandler(catalogUC usecase.CatalogUC, logger logger.Logger) *ProductHandler {
	return &ProductHandler{catalogUC: catalogUC, logger: logger}
}

// listProducts отдаёт полный каталог
func (p *ProductHandler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUC.ListProducts(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductListResponse(products))
}

// filterProducts отдаёт каталог, пропущенный через пайплайн фильтров.
// Параметры: category, size (повторяемый), color (повторяемый), priceMin,
// priceMax, sort, search.
func (p *ProductHandler) filterProducts(w http.ResponseWriter, r *http.Request) {
	query, err := parseFilterQuery(r)
	if err != nil {
		p.logger.Warnf("%d %s: %s", http.StatusBadRequest, r.URL.RawQuery, err.Error())
		WriteError(w, err)
		return
	}

	products, err := p.catalogUC.FilterProducts(r.Context(), query)
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductListResponse(products))
}

// latestProducts отдаёт новинки для витрины
func (p *ProductHandler) latestProducts(w http.ResponseWriter, r *http.Request) {
	products, err := p.catalogUC.LatestProducts(r.Context())
	if err != nil {
		p.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductListResponse(products))
}

func (p *ProductHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "productID")

	product, err := p.catalogUC.GetProduct(r.Context(), id)
	if err != nil {
		p.logger.Warnf("product %s: %s", id, err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(product))
}
