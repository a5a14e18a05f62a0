package domain

import (
	"github.com/shopspring/decimal"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
)

// ItemKey — тройка, идентифицирующая слот корзины. Две позиции с одинаковым
// ключом — это один и тот же слот, они сливаются, а не дублируются.
type ItemKey struct {
	ProductID string
	Size      string
	Color     string
}

// LineItem — снапшот товара плюс атрибуты покупки.
// Size и Color пустые, если вариант не выбран.
type LineItem struct {
	Product  Product
	Quantity int
	Size     string
	Color    string
}

// Key возвращает идентификационный ключ позиции.
func (li *LineItem) Key() ItemKey {
	return ItemKey{
		ProductID: li.Product.ID,
		Size:      li.Size,
		Color:     li.Color,
	}
}

// ExtendedPrice возвращает стоимость позиции: действующая цена * количество.
func (li *LineItem) ExtendedPrice() decimal.Decimal {
	return li.Product.EffectiveUnitPrice().Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// CartState — упорядоченная последовательность позиций корзины.
// Порядок вставки сохраняется для отображения. IsOpen — чистое UI-состояние,
// инварианты домена его не затрагивают.
type CartState struct {
	Items  []LineItem
	IsOpen bool
}

// AddItem возвращает новое состояние корзины с добавленной позицией.
// Если позиция с тем же ключом уже есть, её количество увеличивается
// на candidate.Quantity (снапшот существующей позиции не трогается).
// Новые позиции всегда добавляются в конец.
func AddItem(state CartState, candidate LineItem) (CartState, error) {
	if candidate.Quantity < 1 {
		return state, e.ErrInvalidQuantity
	}

	key := candidate.Key()
	items := copyItems(state.Items)

	for i := range items {
		if items[i].Key() == key {
			items[i].Quantity += candidate.Quantity
			return CartState{Items: items, IsOpen: state.IsOpen}, nil
		}
	}

	items = append(items, candidate)

	return CartState{Items: items, IsOpen: state.IsOpen}, nil
}

// RemoveItem удаляет позицию по ключу. Отсутствие позиции не является
// ошибкой — удаление идемпотентно.
func RemoveItem(state CartState, key ItemKey) CartState {
	items := make([]LineItem, 0, len(state.Items))
	for _, item := range state.Items {
		if item.Key() != key {
			items = append(items, item)
		}
	}

	return CartState{Items: items, IsOpen: state.IsOpen}
}

// SetQuantity перезаписывает количество у позиции с данным ключом.
// Количество меньше единицы отклоняется: единственный путь убрать позицию —
// RemoveItem. Отсутствие ключа — no-op.
func SetQuantity(state CartState, key ItemKey, quantity int) (CartState, error) {
	if quantity < 1 {
		return state, e.ErrInvalidQuantity
	}

	items := copyItems(state.Items)
	for i := range items {
		if items[i].Key() == key {
			items[i].Quantity = quantity
			break
		}
	}

	return CartState{Items: items, IsOpen: state.IsOpen}, nil
}

// Clear возвращает пустую корзину, сохраняя флаг видимости.
func Clear(state CartState) CartState {
	return CartState{IsOpen: state.IsOpen}
}

// TotalItemCount возвращает сумму количеств всех позиций (для бейджа корзины).
func TotalItemCount(state CartState) int {
	var total int
	for _, item := range state.Items {
		total += item.Quantity
	}

	return total
}

func copyItems(items []LineItem) []LineItem {
	out := make([]LineItem, len(items))
	copy(out, items)

	return out
}
