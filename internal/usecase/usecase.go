package usecase

import (
	"context"

	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
)

type CatalogUC interface {
	ListProducts(ctx context.Context) ([]domain.Product, error)
	GetProduct(ctx context.Context, id string) (*domain.Product, error)
	FilterProducts(ctx context.Context, query domain.FilterQuery) ([]domain.Product, error)
	LatestProducts(ctx context.Context) ([]domain.Product, error)
}

type CartUC interface {
	GetCart(ctx context.Context, sessionID string) (domain.CartState, error)
	AddItem(ctx context.Context, sessionID string, req *AddItemReq) (domain.CartState, error)
	UpdateQuantity(ctx context.Context, sessionID string, req *UpdateQuantityReq) (domain.CartState, error)
	RemoveItem(ctx context.Context, sessionID string, key domain.ItemKey) (domain.CartState, error)
	ClearCart(ctx context.Context, sessionID string) (domain.CartState, error)
}

type CheckoutUC interface {
	Checkout(ctx context.Context, sessionID string, req *CheckoutReq) (*CheckoutRes, error)
}
