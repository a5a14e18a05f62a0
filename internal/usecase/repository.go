package usecase

import (
	"context"

	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
)

type CatalogRepository interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
}

// CartRepository хранит состояние корзины по идентификатору сессии.
// Последовательность позиций хранится как есть: порядок и уникальность
// ключей позиций сохраняются при сериализации.
type CartRepository interface {
	GetCart(ctx context.Context, sessionID string) (domain.CartState, error)
	SaveCart(ctx context.Context, sessionID string, state domain.CartState) error
	DeleteCart(ctx context.Context, sessionID string) error
}
