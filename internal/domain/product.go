package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product описывает товар каталога. После загрузки из хранилища
// не изменяется — все операции ядра работают со снапшотами.
type Product struct {
	ID              string
	Name            string
	Description     string
	Price           decimal.Decimal
	DiscountedPrice *decimal.Decimal
	Images          []string
	Category        string
	Subcategory     string
	Sizes           []string
	Colors          []string
	InStock         bool
	Featured        bool
	IsNew           bool
	Tags            []string
	Specifications  map[string]string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// EffectiveUnitPrice возвращает фактически взимаемую цену: цену со скидкой,
// если она задана и ниже базовой, иначе базовую цену. Единственное место,
// где решается, какая цена действует.
func (p *Product) EffectiveUnitPrice() decimal.Decimal {
	if p.DiscountedPrice != nil && p.DiscountedPrice.LessThan(p.Price) {
		return *p.DiscountedPrice
	}

	return p.Price
}

// HasSize проверяет, что размер входит в список доступных у товара.
func (p *Product) HasSize(size string) bool {
	for _, s := range p.Sizes {
		if s == size {
			return true
		}
	}

	return false
}

// HasColor проверяет, что цвет входит в список доступных у товара.
func (p *Product) HasColor(color string) bool {
	for _, c := range p.Colors {
		if c == color {
			return true
		}
	}

	return false
}
