package usecase

import (
	"context"
	"fmt"

	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Infof(string, ...any)        {}
func (nopLogger) Warnf(string, ...any)        {}
func (nopLogger) Errorf(error, string, ...any) {}

type mockCatalogRepo struct {
	products []domain.Product
	err      error
}

func (m *mockCatalogRepo) ListProducts(context.Context) ([]domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}

	return m.products, nil
}

func (m *mockCatalogRepo) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	if m.err != nil {
		return nil, m.err
	}

	for i := range m.products {
		if m.products[i].ID == id {
			p := m.products[i]
			return &p, nil
		}
	}

	return nil, e.ErrProductNotFound
}

type mockCartRepo struct {
	carts   map[string]domain.CartState
	getErr  error
	saveErr error
}

func newMockCartRepo() *mockCartRepo {
	return &mockCartRepo{carts: make(map[string]domain.CartState)}
}

func (m *mockCartRepo) GetCart(_ context.Context, sessionID string) (domain.CartState, error) {
	if m.getErr != nil {
		return domain.CartState{}, m.getErr
	}

	return m.carts[sessionID], nil
}

func (m *mockCartRepo) SaveCart(_ context.Context, sessionID string, state domain.CartState) error {
	if m.saveErr != nil {
		return m.saveErr
	}

	m.carts[sessionID] = state
	return nil
}

func (m *mockCartRepo) DeleteCart(_ context.Context, sessionID string) error {
	delete(m.carts, sessionID)
	return nil
}

type mockPublisher struct {
	published []*OrderPlacedReq
	err       error
}

func (m *mockPublisher) PublishOrderPlaced(_ context.Context, req *OrderPlacedReq) error {
	if m.err != nil {
		return m.err
	}

	m.published = append(m.published, req)
	return nil
}

var errRepoDown = fmt.Errorf("repo unavailable")
