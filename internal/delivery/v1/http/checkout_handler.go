package http

import (
	"encoding/json"
	"net/http"

	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/internal/usecase"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/logger"
)

type CheckoutHandler struct {
	checkoutUC usecase.CheckoutUC
	logger     logger.Logger
}

func NewCheckoutHandler(checkoutUC usecase.CheckoutUC, logger logger.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkoutUC: checkoutUC, logger: logger}
}

// checkout оформляет заказ по текущей корзине сессии. В ответе — ссылка
// wa.me с предзаполненной расшифровкой заказа и сводка.
func (c *CheckoutHandler) checkout(w http.ResponseWriter, r *http.Request) {
	session, err := sessionID(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	var body checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		c.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, e.ErrStatusBadRequest)
		return
	}

	contact := domain.CheckoutInfo{
		FullName: body.FullName,
		Email:    body.Email,
		Phone:    body.Phone,
		Address:  body.Address,
		Notes:    body.Notes,
	}

	res, err := c.checkoutUC.Checkout(r.Context(), session, usecase.NewCheckoutReq(contact))
	if err != nil {
		c.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusCreated, toCheckoutResponse(res))
}
