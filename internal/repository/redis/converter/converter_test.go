package converter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Состояние корзины должно пережить цикл сохранения без потери порядка
// позиций и их ключей.
func TestCartConverter_RoundTrip(t *testing.T) {
	conv := NewCartConverter()

	discounted := decimal.RequireFromString("19.99")
	state := domain.CartState{
		IsOpen: true,
		Items: []domain.LineItem{
			{
				Product: domain.Product{
					ID:              "1",
					Name:            "Classic White T-Shirt",
					Price:           decimal.RequireFromString("24.99"),
					DiscountedPrice: &discounted,
					Category:        "tshirts",
					Sizes:           []string{"S", "M"},
					CreatedAt:       time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
				},
				Quantity: 2,
				Size:     "M",
				Color:    "white",
			},
			{
				Product: domain.Product{
					ID:       "3",
					Name:     "Slim Fit Jeans",
					Price:    decimal.RequireFromString("69.99"),
					Category: "jeans",
				},
				Quantity: 1,
				Size:     "32",
				Color:    "blue",
			},
		},
	}

	restored := conv.ToDomain(conv.ToRedisModel(state))

	require.Len(t, restored.Items, 2)
	assert.True(t, restored.IsOpen)

	// Порядок позиций и их ключи сохраняются.
	for i := range state.Items {
		assert.Equal(t, state.Items[i].Key(), restored.Items[i].Key())
		assert.Equal(t, state.Items[i].Quantity, restored.Items[i].Quantity)
	}

	// Денежные поля сравниваются по значению, а не по представлению.
	assert.True(t, state.Items[0].Product.Price.Equal(restored.Items[0].Product.Price))
	require.NotNil(t, restored.Items[0].Product.DiscountedPrice)
	assert.True(t, discounted.Equal(*restored.Items[0].Product.DiscountedPrice))
	assert.Nil(t, restored.Items[1].Product.DiscountedPrice)
}

func TestCartConverter_EmptyState(t *testing.T) {
	conv := NewCartConverter()

	restored := conv.ToDomain(conv.ToRedisModel(domain.CartState{}))

	assert.Empty(t, restored.Items)
	assert.False(t, restored.IsOpen)
}
