package whatsapp

import (
	"net/url"
	"strings"
)

// Link собирает ссылку wa.me с предзаполненным текстом сообщения.
// Номер очищается от всего, кроме цифр. Одинаковый текст даёт одинаковую
// ссылку — детерминизм расшифровки заказа сохраняется.
func Link(number, text string) string {
	var b strings.Builder
	b.WriteString("https://wa.me/")
	b.WriteString(digitsOnly(number))
	b.WriteString("?text=")
	b.WriteString(url.QueryEscape(text))

	return b.String()
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}
