package domain

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
)

// Pricing — параметры расчёта заказа. Порог бесплатной доставки, тариф
// доставки и ставка налога задаются конфигурацией, а не зашиты в код.
type Pricing struct {
	FreeShippingOver decimal.Decimal
	ShippingFee      decimal.Decimal
	TaxRate          decimal.Decimal
}

// OrderSummary — производная сводка заказа. Нигде не хранится,
// пересчитывается по текущему состоянию корзины.
type OrderSummary struct {
	Subtotal decimal.Decimal
	Shipping decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
	Lines    []string
}

// CheckoutInfo — контактные данные покупателя, передаваемые вместе с заказом.
type CheckoutInfo struct {
	FullName string
	Email    string
	Phone    string
	Address  string
	Notes    string
}

var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// ValidateContact проверяет обязательные поля и формат email.
func ValidateContact(info *CheckoutInfo) error {
	if strings.TrimSpace(info.FullName) == "" {
		return e.ErrFullNameRequired
	}

	if strings.TrimSpace(info.Email) == "" {
		return e.ErrEmailRequired
	}

	if !emailPattern.MatchString(info.Email) {
		return e.ErrEmailInvalid
	}

	if strings.TrimSpace(info.Phone) == "" {
		return e.ErrPhoneRequired
	}

	return nil
}

// BuildSummary считает сводку заказа по состоянию корзины.
// Детерминирована и не имеет побочных эффектов: два вызова на одном
// состоянии дают байт-в-байт одинаковый результат.
func BuildSummary(state CartState, pricing Pricing) OrderSummary {
	subtotal := decimal.Zero
	lines := make([]string, 0, len(state.Items))

	for i := range state.Items {
		item := &state.Items[i]
		subtotal = subtotal.Add(item.ExtendedPrice())
		lines = append(lines, formatLine(item))
	}

	shipping := pricing.ShippingFee
	if subtotal.GreaterThan(pricing.FreeShippingOver) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(pricing.TaxRate).Round(2)

	return OrderSummary{
		Subtotal: subtotal,
		Shipping: shipping,
		Tax:      tax,
		Total:    subtotal.Add(shipping).Add(tax),
		Lines:    lines,
	}
}

// formatLine собирает строку позиции: имя, выбранные размер/цвет,
// количество и стоимость позиции.
func formatLine(item *LineItem) string {
	var b strings.Builder
	b.WriteString(item.Product.Name)

	if item.Size != "" {
		fmt.Fprintf(&b, " (Size: %s)", item.Size)
	}
	if item.Color != "" {
		fmt.Fprintf(&b, " (Color: %s)", item.Color)
	}

	fmt.Fprintf(&b, " x%d - $%s", item.Quantity, item.ExtendedPrice().StringFixed(2))

	return b.String()
}

// Transcript собирает текстовую расшифровку заказа для передачи во внешний
// канал. Формат стабилен: одинаковая корзина и контакты дают одинаковый текст.
func Transcript(summary *OrderSummary, contact *CheckoutInfo, pricing Pricing) string {
	var b strings.Builder

	b.WriteString("*Order Summary*\n")
	b.WriteString(strings.Join(summary.Lines, "\n"))
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "*Subtotal:* $%s\n", summary.Subtotal.StringFixed(2))

	if summary.Shipping.IsZero() {
		b.WriteString("*Shipping:* Free\n")
	} else {
		fmt.Fprintf(&b, "*Shipping:* $%s\n", summary.Shipping.StringFixed(2))
	}

	fmt.Fprintf(&b, "*Tax (%s%%):* $%s\n", pricing.TaxRate.Mul(decimal.NewFromInt(100)).String(), summary.Tax.StringFixed(2))
	fmt.Fprintf(&b, "*Total:* $%s\n", summary.Total.StringFixed(2))

	b.WriteString("\n*Customer Information*\n")
	fmt.Fprintf(&b, "Name: %s\n", contact.FullName)
	fmt.Fprintf(&b, "Email: %s\n", contact.Email)
	fmt.Fprintf(&b, "Phone: %s\n", contact.Phone)

	if contact.Address != "" {
		fmt.Fprintf(&b, "Address: %s\n", contact.Address)
	}
	if contact.Notes != "" {
		fmt.Fprintf(&b, "Notes: %s\n", contact.Notes)
	}

	return b.String()
}
