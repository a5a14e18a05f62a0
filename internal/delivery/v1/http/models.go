package http

import (
	"time"

	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/internal/usecase"
)

// ProductResponse — представление товара в API. Денежные поля отдаются
// строками с двумя знаками после запятой.
type ProductResponse struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description,omitempty"`
	Price           string            `json:"price"`
	DiscountedPrice *string           `json:"discountedPrice,omitempty"`
	Images          []string          `json:"images,omitempty"`
	Category        string            `json:"category"`
	Subcategory     string            `json:"subcategory,omitempty"`
	Sizes           []string          `json:"sizes,omitempty"`
	Colors          []string          `json:"colors,omitempty"`
	InStock         bool              `json:"inStock"`
	Featured        bool              `json:"featured,omitempty"`
	IsNew           bool              `json:"isNew,omitempty"`
	Tags            []string          `json:"tags,omitempty"`
	Specifications  map[string]string `json:"specifications,omitempty"`
	CreatedAt       time.Time         `json:"createdAt"`
	UpdatedAt       time.Time         `json:"updatedAt"`
}

type LineItemResponse struct {
	Product       ProductResponse `json:"product"`
	Quantity      int             `json:"quantity"`
	Size          string          `json:"size,omitempty"`
	Color         string          `json:"color,omitempty"`
	ExtendedPrice string          `json:"extendedPrice"`
}

type CartResponse struct {
	Items          []LineItemResponse `json:"items"`
	TotalItemCount int                `json:"totalItemCount"`
	IsOpen         bool               `json:"isOpen"`
}

type SummaryResponse struct {
	Subtotal string   `json:"subtotal"`
	Shipping string   `json:"shipping"`
	Tax      string   `json:"tax"`
	Total    string   `json:"total"`
	Lines    []string `json:"lines"`
}

type CheckoutResponse struct {
	OrderID     string          `json:"orderId"`
	WhatsAppURL string          `json:"whatsappUrl"`
	Summary     SummaryResponse `json:"summary"`
}

// Тела запросов корзины и чекаута.

type addItemRequest struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type updateQuantityRequest struct {
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Color     string `json:"color"`
	Quantity  int    `json:"quantity"`
}

type checkoutRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address"`
	Notes    string `json:"notes"`
}

func toProductResponse(p *domain.Product) ProductResponse {
	var discounted *string
	if p.DiscountedPrice != nil {
		s := p.DiscountedPrice.StringFixed(2)
		discounted = &s
	}

	return ProductResponse{
		ID:              p.ID,
		Name:            p.Name,
		Description:     p.Description,
		Price:           p.Price.StringFixed(2),
		DiscountedPrice: discounted,
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

func toProductListResponse(products []domain.Product) []ProductResponse {
	out := make([]ProductResponse, 0, len(products))
	for i := range products {
		out = append(out, toProductResponse(&products[i]))
	}

	return out
}

func toCartResponse(state domain.CartState) CartResponse {
	items := make([]LineItemResponse, 0, len(state.Items))
	for i := range state.Items {
		item := &state.Items[i]
		items = append(items, LineItemResponse{
			Product:       toProductResponse(&item.Product),
			Quantity:      item.Quantity,
			Size:          item.Size,
			Color:         item.Color,
			ExtendedPrice: item.ExtendedPrice().StringFixed(2),
		})
	}

	return CartResponse{
		Items:          items,
		TotalItemCount: domain.TotalItemCount(state),
		IsOpen:         state.IsOpen,
	}
}

func toCheckoutResponse(res *usecase.CheckoutRes) CheckoutResponse {
	return CheckoutResponse{
		OrderID:     res.OrderID,
		WhatsAppURL: res.WhatsAppURL,
		Summary: SummaryResponse{
			Subtotal: res.Summary.Subtotal.StringFixed(2),
			Shipping: res.Summary.Shipping.StringFixed(2),
			Tax:      res.Summary.Tax.StringFixed(2),
			Total:    res.Summary.Total.StringFixed(2),
			Lines:    res.Summary.Lines,
		},
	}
}
