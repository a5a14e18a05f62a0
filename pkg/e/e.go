package e

import "fmt"

var (
	// Ошибки движка корзины
	ErrInvalidQuantity = fmt.Errorf("quantity must be at least 1")
	ErrInvalidVariant  = fmt.Errorf("variant is not available for this product")
	ErrCartEmpty       = fmt.Errorf("cart is empty")

	// Ошибки каталога
	ErrProductNotFound = fmt.Errorf("product not found")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrMissingSession   = fmt.Errorf("session id is required")
	ErrInvalidPrice     = fmt.Errorf("invalid price value")
	ErrMissingFields    = fmt.Errorf("required fields are missing")

	// Ошибки валидации контактных данных
	ErrFullNameRequired = fmt.Errorf("full name is required")
	ErrEmailRequired    = fmt.Errorf("email is required")
	ErrEmailInvalid     = fmt.Errorf("email is invalid")
	ErrPhoneRequired    = fmt.Errorf("phone number is required")

	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
	ErrInternalServerError  = fmt.Errorf("internal server error")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}
