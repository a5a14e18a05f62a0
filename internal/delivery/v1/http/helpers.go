package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/shopspring/decimal"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
)

// SessionHeader несёт идентификатор клиентской сессии для операций корзины.
const SessionHeader = "X-Session-ID"

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrInvalidVariant):
		return http.StatusBadRequest, e.ErrInvalidVariant.Error()
	case errors.Is(err, e.ErrMissingSession):
		return http.StatusBadRequest, e.ErrMissingSession.Error()
	case errors.Is(err, e.ErrInvalidPrice):
		return http.StatusBadRequest, e.ErrInvalidPrice.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrFullNameRequired):
		return http.StatusBadRequest, e.ErrFullNameRequired.Error()
	case errors.Is(err, e.ErrEmailRequired):
		return http.StatusBadRequest, e.ErrEmailRequired.Error()
	case errors.Is(err, e.ErrEmailInvalid):
		return http.StatusBadRequest, e.ErrEmailInvalid.Error()
	case errors.Is(err, e.ErrPhoneRequired):
		return http.StatusBadRequest, e.ErrPhoneRequired.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrCartEmpty):
		return http.StatusConflict, e.ErrCartEmpty.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// sessionID достаёт идентификатор сессии из заголовка запроса.
func sessionID(r *http.Request) (string, error) {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		return "", e.ErrMissingSession
	}

	return id, nil
}

// parseFilterQuery декодирует параметры фильтра из строки запроса.
// Параметры size и color могут повторяться. Неизвестное значение sort
// не является ошибкой: движок трактует его как newest.
func parseFilterQuery(r *http.Request) (domain.FilterQuery, error) {
	params := r.URL.Query()

	query := domain.FilterQuery{
		Category:   params.Get("category"),
		Sizes:      params["size"],
		Colors:     params["color"],
		Sort:       domain.SortOption(params.Get("sort")),
		SearchTerm: params.Get("search"),
	}

	priceMin, err := parsePriceBound(params.Get("priceMin"))
	if err != nil {
		return domain.FilterQuery{}, err
	}
	query.PriceMin = priceMin

	priceMax, err := parsePriceBound(params.Get("priceMax"))
	if err != nil {
		return domain.FilterQuery{}, err
	}
	query.PriceMax = priceMax

	return query, nil
}

// parsePriceBound разбирает ценовую границу. Пустая строка — граница
// не задана. Отрицательные значения отклоняются.
func parsePriceBound(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, e.ErrInvalidPrice
	}

	if d.LessThan(decimal.Zero) {
		return nil, e.ErrInvalidPrice
	}

	return &d, nil
}
