package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/internal/usecase"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nopLogger глушит вывод в тестах обработчиков.
type nopLogger struct{}

func (nopLogger) Infof(format string, args ...any)            {}
func (nopLogger) Warnf(format string, args ...any)            {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

func testProduct() domain.Product {
	price := decimal.RequireFromString("24.99")
	discounted := decimal.RequireFromString("19.99")

	return domain.Product{
		ID:              "1",
		Name:            "Classic White T-Shirt",
		Price:           price,
		DiscountedPrice: &discounted,
		Category:        "tshirts",
		Sizes:           []string{"S", "M", "L"},
		Colors:          []string{"white"},
		InStock:         true,
		CreatedAt:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		UpdatedAt:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}
}

// stubCatalogUC отдаёт фиксированный каталог и запоминает последний запрос
// фильтра.

type stubCatalogUC struct {
	products  []domain.Product
	lastQuery domain.FilterQuery
}

func (s *stubCatalogUC) ListProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products, nil
}

func (s *stubCatalogUC) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	for i := range s.products {
		if s.products[i].ID == id {
			return &s.products[i], nil
		}
	}

	return nil, e.ErrProductNotFound
}

func (s *stubCatalogUC) FilterProducts(ctx context.Context, query domain.FilterQuery) ([]domain.Product, error) {
	s.lastQuery = query
	return s.products, nil
}

func (s *stubCatalogUC) LatestProducts(ctx context.Context) ([]domain.Product, error) {
	return s.products, nil
}

// stubCartUC держит состояние корзины по сессиям поверх чистых функций
// домена.

type stubCartUC struct {
	catalog map[string]domain.Product
	carts   map[string]domain.CartState
}

func newStubCartUC(products ...domain.Product) *stubCartUC {
	catalog := make(map[string]domain.Product, len(products))
	for _, p := range products {
		catalog[p.ID] = p
	}

	return &stubCartUC{catalog: catalog, carts: make(map[string]domain.CartState)}
}

func (s *stubCartUC) GetCart(ctx context.Context, sessionID string) (domain.CartState, error) {
	return s.carts[sessionID], nil
}

func (s *stubCartUC) AddItem(ctx context.Context, sessionID string, req *usecase.AddItemReq) (domain.CartState, error) {
	product, ok := s.catalog[req.ProductID]
	if !ok {
		return domain.CartState{}, e.ErrProductNotFound
	}

	state, err := domain.AddItem(s.carts[sessionID], domain.LineItem{
		Product:  product,
		Quantity: req.Quantity,
		Size:     req.Size,
		Color:    req.Color,
	})
	if err != nil {
		return domain.CartState{}, err
	}

	s.carts[sessionID] = state

	return state, nil
}

func (s *stubCartUC) UpdateQuantity(ctx context.Context, sessionID string, req *usecase.UpdateQuantityReq) (domain.CartState, error) {
	state, err := domain.SetQuantity(s.carts[sessionID], req.Key, req.Quantity)
	if err != nil {
		return domain.CartState{}, err
	}

	s.carts[sessionID] = state

	return state, nil
}

func (s *stubCartUC) RemoveItem(ctx context.Context, sessionID string, key domain.ItemKey) (domain.CartState, error) {
	state := domain.RemoveItem(s.carts[sessionID], key)
	s.carts[sessionID] = state

	return state, nil
}

func (s *stubCartUC) ClearCart(ctx context.Context, sessionID string) (domain.CartState, error) {
	state := domain.Clear(s.carts[sessionID])
	s.carts[sessionID] = state

	return state, nil
}

type stubCheckoutUC struct {
	res *usecase.CheckoutRes
	err error
}

func (s *stubCheckoutUC) Checkout(ctx context.Context, sessionID string, req *usecase.CheckoutReq) (*usecase.CheckoutRes, error) {
	if s.err != nil {
		return nil, s.err
	}

	return s.res, nil
}

func newTestRouter(catalogUC usecase.CatalogUC, cartUC usecase.CartUC, checkoutUC usecase.CheckoutUC) *chi.Mux {
	mux := chi.NewRouter()
	NewRouter(mux, nopLogger{}).Init(catalogUC, cartUC, checkoutUC)

	return mux
}

func doJSON(t *testing.T, mux *chi.Mux, method, target, session string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	r := httptest.NewRequest(method, target, &buf)
	if session != "" {
		r.Header.Set(SessionHeader, session)
	}

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, r)

	return w
}

func TestFilterProducts_QueryPassedToUseCase(t *testing.T) {
	catalogUC := &stubCatalogUC{products: []domain.Product{testProduct()}}
	mux := newTestRouter(catalogUC, newStubCartUC(), &stubCheckoutUC{})

	w := doJSON(t, mux, http.MethodGet, "/api/v1/products/filter?category=tshirts&size=M&sort=price-low-high", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "tshirts", catalogUC.lastQuery.Category)
	assert.Equal(t, []string{"M"}, catalogUC.lastQuery.Sizes)
	assert.Equal(t, domain.SortPriceLowHigh, catalogUC.lastQuery.Sort)

	var products []ProductResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 1)
	assert.Equal(t, "24.99", products[0].Price)
	require.NotNil(t, products[0].DiscountedPrice)
	assert.Equal(t, "19.99", *products[0].DiscountedPrice)
}

func TestFilterProducts_InvalidPriceBound(t *testing.T) {
	mux := newTestRouter(&stubCatalogUC{}, newStubCartUC(), &stubCheckoutUC{})

	w := doJSON(t, mux, http.MethodGet, "/api/v1/products/filter?priceMin=-1", "", nil)

	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, e.ErrInvalidPrice.Error(), resp.Message)
}

func TestGetProduct_NotFound(t *testing.T) {
	mux := newTestRouter(&stubCatalogUC{products: []domain.Product{testProduct()}}, newStubCartUC(), &stubCheckoutUC{})

	w := doJSON(t, mux, http.MethodGet, "/api/v1/products/42", "", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCartFlow(t *testing.T) {
	mux := newTestRouter(&stubCatalogUC{}, newStubCartUC(testProduct()), &stubCheckoutUC{})

	// Без заголовка сессии операции корзины отклоняются.
	w := doJSON(t, mux, http.MethodGet, "/api/v1/cart/", "", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Добавление товара.
	w = doJSON(t, mux, http.MethodPost, "/api/v1/cart/items", "session-1",
		addItemRequest{ProductID: "1", Quantity: 2, Size: "M", Color: "white"})
	require.Equal(t, http.StatusOK, w.Code)

	var cart CartResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, "39.98", cart.Items[0].ExtendedPrice)
	assert.Equal(t, 2, cart.TotalItemCount)

	// Повторное добавление того же варианта сливается с существующей позицией.
	w = doJSON(t, mux, http.MethodPost, "/api/v1/cart/items", "session-1",
		addItemRequest{ProductID: "1", Quantity: 1, Size: "M", Color: "white"})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 3, cart.Items[0].Quantity)

	// Перезапись количества.
	w = doJSON(t, mux, http.MethodPut, "/api/v1/cart/items", "session-1",
		updateQuantityRequest{ProductID: "1", Size: "M", Color: "white", Quantity: 5})
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Equal(t, 5, cart.Items[0].Quantity)

	// Нулевое количество отклоняется.
	w = doJSON(t, mux, http.MethodPut, "/api/v1/cart/items", "session-1",
		updateQuantityRequest{ProductID: "1", Size: "M", Color: "white", Quantity: 0})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Удаление позиции по ключу из строки запроса.
	w = doJSON(t, mux, http.MethodDelete, "/api/v1/cart/items?productId=1&size=M&color=white", "session-1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)

	// Чужая сессия корзины не видит.
	w = doJSON(t, mux, http.MethodGet, "/api/v1/cart/", "session-2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	assert.Empty(t, cart.Items)
}

func TestAddItem_MissingProductID(t *testing.T) {
	mux := newTestRouter(&stubCatalogUC{}, newStubCartUC(), &stubCheckoutUC{})

	w := doJSON(t, mux, http.MethodPost, "/api/v1/cart/items", "session-1",
		addItemRequest{Quantity: 1})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckout(t *testing.T) {
	subtotal := decimal.RequireFromString("25.00")
	checkoutUC := &stubCheckoutUC{res: &usecase.CheckoutRes{
		OrderID:     "order-1",
		WhatsAppURL: "https://wa.me/15550100000?text=order",
		Summary: domain.OrderSummary{
			Subtotal: subtotal,
			Shipping: decimal.RequireFromString("10.00"),
			Tax:      decimal.RequireFromString("1.75"),
			Total:    decimal.RequireFromString("36.75"),
			Lines:    []string{"Item A x2 - $20.00"},
		},
	}}
	mux := newTestRouter(&stubCatalogUC{}, newStubCartUC(), checkoutUC)

	w := doJSON(t, mux, http.MethodPost, "/api/v1/checkout", "session-1",
		checkoutRequest{FullName: "Jane Doe", Email: "jane@example.com", Phone: "+15550100000"})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp CheckoutResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "order-1", resp.OrderID)
	assert.Equal(t, "https://wa.me/15550100000?text=order", resp.WhatsAppURL)
	assert.Equal(t, "25.00", resp.Summary.Subtotal)
	assert.Equal(t, "36.75", resp.Summary.Total)
}

func TestCheckout_EmptyCart(t *testing.T) {
	mux := newTestRouter(&stubCatalogUC{}, newStubCartUC(), &stubCheckoutUC{err: e.ErrCartEmpty})

	w := doJSON(t, mux, http.MethodPost, "/api/v1/checkout", "session-1",
		checkoutRequest{FullName: "Jane Doe", Email: "jane@example.com", Phone: "+15550100000"})

	assert.Equal(t, http.StatusConflict, w.Code)
}
