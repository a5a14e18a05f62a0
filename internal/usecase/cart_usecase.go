package usecase

import (
	"context"

	"github.com/jimlawless/whereami"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/logger"
)

// CartUseCase применяет чистые операции движка корзины к состоянию сессии:
// загрузка состояния, трансформация, сохранение. Сам движок побочных
// эффектов не имеет.
type CartUseCase struct {
	catalogRepo CatalogRepository
	cartRepo    CartRepository
	logger      logger.Logger
}

func NewCartUC(catalogRepo CatalogRepository, cartRepo CartRepository, logger logger.Logger) *CartUseCase {
	return &CartUseCase{
		catalogRepo: catalogRepo,
		cartRepo:    cartRepo,
		logger:      logger,
	}
}

func (c *CartUseCase) GetCart(ctx context.Context, sessionID string) (domain.CartState, error) {
	if sessionID == "" {
		return domain.CartState{}, e.ErrMissingSession
	}

	return c.cartRepo.GetCart(ctx, sessionID)
}

// AddItem добавляет товар в корзину сессии. Количество и выбранный вариант
// проверяются до обращения к движку, чтобы вызывающая сторона могла показать
// ошибку на уровне поля формы.
func (c *CartUseCase) AddItem(ctx context.Context, sessionID string, req *AddItemReq) (domain.CartState, error) {
	const op = "CartUseCase.AddItem"

	if sessionID == "" {
		return domain.CartState{}, e.ErrMissingSession
	}

	if req.Quantity < 1 {
		return domain.CartState{}, e.ErrInvalidQuantity
	}

	product, err := c.catalogRepo.GetProduct(ctx, req.ProductID)
	if err != nil {
		return domain.CartState{}, err
	}

	if err := validateVariant(product, req.Size, req.Color); err != nil {
		c.logger.Warnf("%s: product %s: %s", op, req.ProductID, err.Error())
		return domain.CartState{}, err
	}

	state, err := c.cartRepo.GetCart(ctx, sessionID)
	if err != nil {
		return domain.CartState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	candidate := domain.LineItem{
		Product:  *product,
		Quantity: req.Quantity,
		Size:     req.Size,
		Color:    req.Color,
	}

	next, err := domain.AddItem(state, candidate)
	if err != nil {
		return domain.CartState{}, err
	}

	if err := c.cartRepo.SaveCart(ctx, sessionID, next); err != nil {
		return domain.CartState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return next, nil
}

// UpdateQuantity перезаписывает количество у позиции. Ноль не приводится
// к удалению, а отклоняется: убрать позицию можно только RemoveItem.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, sessionID string, req *UpdateQuantityReq) (domain.CartState, error) {
	if sessionID == "" {
		return domain.CartState{}, e.ErrMissingSession
	}

	state, err := c.cartRepo.GetCart(ctx, sessionID)
	if err != nil {
		return domain.CartState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	next, err := domain.SetQuantity(state, req.Key, req.Quantity)
	if err != nil {
		return domain.CartState{}, err
	}

	if err := c.cartRepo.SaveCart(ctx, sessionID, next); err != nil {
		return domain.CartState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return next, nil
}

func (c *CartUseCase) RemoveItem(ctx context.Context, sessionID string, key domain.ItemKey) (domain.CartState, error) {
	if sessionID == "" {
		return domain.CartState{}, e.ErrMissingSession
	}

	state, err := c.cartRepo.GetCart(ctx, sessionID)
	if err != nil {
		return domain.CartState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	next := domain.RemoveItem(state, key)

	if err := c.cartRepo.SaveCart(ctx, sessionID, next); err != nil {
		return domain.CartState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return next, nil
}

func (c *CartUseCase) ClearCart(ctx context.Context, sessionID string) (domain.CartState, error) {
	if sessionID == "" {
		return domain.CartState{}, e.ErrMissingSession
	}

	state, err := c.cartRepo.GetCart(ctx, sessionID)
	if err != nil {
		return domain.CartState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	next := domain.Clear(state)

	if err := c.cartRepo.SaveCart(ctx, sessionID, next); err != nil {
		return domain.CartState{}, e.Wrap(whereami.WhereAmI(), err)
	}

	return next, nil
}

// validateVariant строго проверяет выбранные размер и цвет против
// объявленных у товара. Пустой вариант допустим: выбор не сделан.
func validateVariant(product *domain.Product, size, color string) error {
	if size != "" && len(product.Sizes) > 0 && !product.HasSize(size) {
		return e.ErrInvalidVariant
	}

	if color != "" && len(product.Colors) > 0 && !product.HasColor(color) {
		return e.ErrInvalidVariant
	}

	return nil
}
