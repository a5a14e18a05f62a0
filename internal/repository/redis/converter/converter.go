package converter

import (
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
)

type CartConverter interface {
	ToRedisModel(state domain.CartState) CartRedisModel
	ToDomain(model CartRedisModel) domain.CartState
}

type cartConverterImpl struct{}

func NewCartConverter() CartConverter {
	return &cartConverterImpl{}
}

func (c *cartConverterImpl) ToRedisModel(state domain.CartState) CartRedisModel {
	items := make([]LineItemRedisModel, 0, len(state.Items))
	for _, item := range state.Items {
		items = append(items, LineItemRedisModel{
			Product:  toProductModel(item.Product),
			Quantity: item.Quantity,
			Size:     item.Size,
			Color:    item.Color,
		})
	}

	return CartRedisModel{
		Items:  items,
		IsOpen: state.IsOpen,
	}
}

func (c *cartConverterImpl) ToDomain(model CartRedisModel) domain.CartState {
	items := make([]domain.LineItem, 0, len(model.Items))
	for _, item := range model.Items {
		items = append(items, domain.LineItem{
			Product:  toDomainProduct(item.Product),
			Quantity: item.Quantity,
			Size:     item.Size,
			Color:    item.Color,
		})
	}

	return domain.CartState{
		Items:  items,
		IsOpen: model.IsOpen,
	}
}

func toProductModel(p domain.Product) ProductRedisModel {
	return ProductRedisModel{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price,
		DiscountedPrice: p.DiscountedPrice,
		Images:          p.Images,
		Category:        p.Category,
		Subcategory:     p.Subcategory,
		Sizes:           p.Sizes,
		Colors:          p.Colors,
		InStock:         p.InStock,
		Featured:        p.Featured,
		IsNew:           p.IsNew,
		Tags:            p.Tags,
		Specifications:  p.Specifications,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toDomainProduct(m ProductRedisModel) domain.Product {
	return domain.Product{
		ID:              m.ID,
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price,
		DiscountedPrice: m.DiscountedPrice,
		Images:          m.Images,
		Category:        m.Category,
		Subcategory:     m.Subcategory,
		Sizes:           m.Sizes,
		Colors:          m.Colors,
		InStock:         m.InStock,
		Featured:        m.Featured,
		IsNew:           m.IsNew,
		Tags:            m.Tags,
		Specifications:  m.Specifications,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
