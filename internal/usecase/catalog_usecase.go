package usecase

import (
	"context"

	"github.com/jimlawless/whereami"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/logger"
)

// CatalogUseCase отвечает за выдачу каталога: списки, фильтрация, новинки.
type CatalogUseCase struct {
	catalogRepo CatalogRepository
	latestLimit int
	logger      logger.Logger
}

func NewCatalogUC(catalogRepo CatalogRepository, latestLimit int, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		catalogRepo: catalogRepo,
		latestLimit: latestLimit,
		logger:      logger,
	}
}

func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]domain.Product, error) {
	products, err := c.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return products, nil
}

func (c *CatalogUseCase) GetProduct(ctx context.Context, id string) (*domain.Product, error) {
	if id == "" {
		return nil, e.ErrProductNotFound
	}

	product, err := c.catalogRepo.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	return product, nil
}

// FilterProducts прогоняет полный каталог через пайплайн фильтров.
// Каждый запрос пересчитывается с нуля от полного каталога.
func (c *CatalogUseCase) FilterProducts(ctx context.Context, query domain.FilterQuery) ([]domain.Product, error) {
	catalog, err := c.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return domain.ApplyFilters(catalog, query), nil
}

// LatestProducts возвращает новинки для витрины "Latest Arrivals".
func (c *CatalogUseCase) LatestProducts(ctx context.Context) ([]domain.Product, error) {
	catalog, err := c.catalogRepo.ListProducts(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return domain.FindLatest(catalog, c.latestLimit), nil
}
