package converter

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartRedisModel — сериализуемое представление корзины. Позиции хранятся
// в том же порядке, в котором лежат в состоянии.
type CartRedisModel struct {
	Items  []LineItemRedisModel `json:"items"`
	IsOpen bool                 `json:"is_open"`
}

type LineItemRedisModel struct {
	Product  ProductRedisModel `json:"product"`
	Quantity int               `json:"quantity"`
	Size     string            `json:"size,omitempty"`
	Color    string            `json:"color,omitempty"`
}

type ProductRedisModel struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Price           decimal.Decimal   `json:"price"`
	DiscountedPrice *decimal.Decimal  `json:"discounted_price,omitempty"`
	Images          []string          `json:"images,omitempty"`
	Category        string            `json:"category"`
	Subcategory     string            `json:"subcategory,omitempty"`
	Sizes           []string          `json:"sizes,omitempty"`
	Colors          []string          `json:"colors,omitempty"`
	InStock         bool              `json:"in_stock"`
	Featured        bool              `json:"featured,omitempty"`
	IsNew           bool              `json:"is_new,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	Specifications  map[string]string `json:"specifications,omitempty"`
	CreatedAt       time.Time         `json:"created_at"`
	UpdatedAt       time.Time         `json:"updated_at"`
}
