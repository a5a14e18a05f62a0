package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jimlawless/whereami"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/internal/infrastructure/whatsapp"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/logger"
)

// CheckoutUseCase оформляет заказ: валидация контактов, расчёт сводки,
// формирование ссылки для внешнего канала, публикация события и очистка
// корзины.
type CheckoutUseCase struct {
	cartRepo       CartRepository
	publisher      OrderPublisher
	pricing        domain.Pricing
	whatsappNumber string
	logger         logger.Logger
}

func NewCheckoutUC(
	cartRepo CartRepository,
	publisher OrderPublisher,
	pricing domain.Pricing,
	whatsappNumber string,
	logger logger.Logger,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		cartRepo:       cartRepo,
		publisher:      publisher,
		pricing:        pricing,
		whatsappNumber: whatsappNumber,
		logger:         logger,
	}
}

func (c *CheckoutUseCase) Checkout(ctx context.Context, sessionID string, req *CheckoutReq) (*CheckoutRes, error) {
	const op = "CheckoutUseCase.Checkout"

	if sessionID == "" {
		return nil, e.ErrMissingSession
	}

	if err := domain.ValidateContact(&req.Contact); err != nil {
		return nil, err
	}

	state, err := c.cartRepo.GetCart(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(state.Items) == 0 {
		return nil, e.ErrCartEmpty
	}

	summary := domain.BuildSummary(state, c.pricing)
	transcript := domain.Transcript(&summary, &req.Contact, c.pricing)

	orderID := uuid.NewString()
	link := whatsapp.Link(c.whatsappNumber, transcript)

	// Публикация события — best effort: заказ уже передан покупателю
	// ссылкой, отказ брокера не должен ронять оформление.
	event := NewOrderPlacedReq(orderID, sessionID, transcript, summary.Total, time.Now().UTC())
	if err := c.publisher.PublishOrderPlaced(ctx, event); err != nil {
		c.logger.Warnf("%s: failed to publish order %s: %s", op, orderID, err.Error())
	}

	if err := c.cartRepo.DeleteCart(ctx, sessionID); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &CheckoutRes{
		OrderID:     orderID,
		WhatsAppURL: link,
		Summary:     summary,
		Transcript:  transcript,
	}, nil
}
