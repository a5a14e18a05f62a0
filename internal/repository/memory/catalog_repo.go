package memory

import (
	"context"
	"encoding/json"
	"os"

	"github.com/jimlawless/whereami"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
)

// CatalogRepo — неизменяемый каталог товаров в памяти. Владеет своей копией
// данных и отдаёт копии, чтобы вызывающие стороны не могли менять каталог.
type CatalogRepo struct {
	products []domain.Product
	byID     map[string]int
}

func NewCatalogRepo(products []domain.Product) *CatalogRepo {
	byID := make(map[string]int, len(products))

	copied := make([]domain.Product, len(products))
	copy(copied, products)

	for i, p := range copied {
		byID[p.ID] = i
	}

	return &CatalogRepo{
		products: copied,
		byID:     byID,
	}
}

// NewCatalogRepoFromFile загружает каталог из JSON-файла.
func NewCatalogRepoFromFile(path string) (*CatalogRepo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return NewCatalogRepo(products), nil
}

func (r *CatalogRepo) ListProducts(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, len(r.products))
	copy(out, r.products)

	return out, nil
}

func (r *CatalogRepo) GetProduct(_ context.Context, id string) (*domain.Product, error) {
	i, ok := r.byID[id]
	if !ok {
		return nil, e.ErrProductNotFound
	}

	product := r.products[i]

	return &product, nil
}
