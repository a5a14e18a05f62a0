package http

import (
	"encoding/json"
	"net/http"

	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/internal/usecase"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/logger"
)

type CartHandler struct {
	cartUC usecase.CartUC
	logger logger.Logger
}

func NewCartHandler(cartUC usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUC: cartUC, logger: logger}
}

func (c *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := c.cartUC.GetCart(r.Context(), session)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(state))
}

// addItem добавляет товар в корзину. Позиция с тем же товаром и вариантом
// сливается с существующей.
func (c *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if body.ProductID == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	state, err := c.cartUC.AddItem(r.Context(), session, usecase.NewAddItemReq(body.ProductID, body.Quantity, body.Size, body.Color))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(state))
}

// updateQuantity перезаписывает количество у позиции. Количество меньше
// единицы отклоняется: для удаления есть removeItem.
func (c *CartHandler) updateQuantity(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body updateQuantityRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	if body.ProductID == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	key := domain.ItemKey{ProductID: body.ProductID, Size: body.Size, Color: body.Color}

	state, err := c.cartUC.UpdateQuantity(r.Context(), session, usecase.NewUpdateQuantityReq(key, body.Quantity))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(state))
}

// removeItem удаляет позицию по ключу (productId, size, color) из строки
// запроса. Повторное удаление — no-op.
func (c *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	params := r.URL.Query()

	productID := params.Get("productId")
	if productID == "" {
		WriteError(w, e.ErrMissingFields)
		return
	}

	key := domain.ItemKey{
		ProductID: productID,
		Size:      params.Get("size"),
		Color:     params.Get("color"),
	}

	state, err := c.cartUC.RemoveItem(r.Context(), session, key)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(state))
}

func (c *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	state, err := c.cartUC.ClearCart(r.Context(), session)
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(state))
}
