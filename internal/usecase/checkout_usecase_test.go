package usecase

import (
	"context"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/shuvajitmaitra/glamor-gallery/internal/domain"
	"github.com/shuvajitmaitra/glamor-gallery/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testPricing() domain.Pricing {
	return domain.Pricing{
		FreeShippingOver: decimal.RequireFromString("100"),
		ShippingFee:      decimal.RequireFromString("10"),
		TaxRate:          decimal.RequireFromString("0.07"),
	}
}

func validContact() domain.CheckoutInfo {
	return domain.CheckoutInfo{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Phone:    "+1 (202) 555-0101",
	}
}

func seedCart(t *testing.T, cartRepo *mockCartRepo, sessionID string) {
	t.Helper()

	state, err := domain.AddItem(domain.CartState{}, domain.LineItem{
		Product:  catalogFixture()[0],
		Quantity: 2,
		Size:     "M",
	})
	require.NoError(t, err)
	require.NoError(t, cartRepo.SaveCart(context.Background(), sessionID, state))
}

func TestCheckoutUC_Checkout(t *testing.T) {
	cartRepo := newMockCartRepo()
	publisher := &mockPublisher{}
	uc := NewCheckoutUC(cartRepo, publisher, testPricing(), "+1 (555) 010-0000", nopLogger{})

	seedCart(t, cartRepo, "s1")

	res, err := uc.Checkout(context.Background(), "s1", NewCheckoutReq(validContact()))
	require.NoError(t, err)

	assert.NotEmpty(t, res.OrderID)
	// 2 * 19.99 по скидке = 39.98; доставка 10; налог 2.80.
	assert.Equal(t, "39.98", res.Summary.Subtotal.StringFixed(2))
	assert.Equal(t, "52.78", res.Summary.Total.StringFixed(2))

	assert.True(t, strings.HasPrefix(res.WhatsAppURL, "https://wa.me/15550100000?text="))
	assert.Contains(t, res.Transcript, "Name: Jane Doe")

	// Событие опубликовано, корзина очищена.
	require.Len(t, publisher.published, 1)
	assert.Equal(t, res.OrderID, publisher.published[0].OrderID)
	assert.Equal(t, "s1", publisher.published[0].SessionID)

	saved, err := cartRepo.GetCart(context.Background(), "s1")
	require.NoError(t, err)
	assert.Empty(t, saved.Items)
}

func TestCheckoutUC_EmptyCart(t *testing.T) {
	uc := NewCheckoutUC(newMockCartRepo(), &mockPublisher{}, testPricing(), "123", nopLogger{})

	_, err := uc.Checkout(context.Background(), "s1", NewCheckoutReq(validContact()))
	assert.ErrorIs(t, err, e.ErrCartEmpty)
}

func TestCheckoutUC_InvalidContact(t *testing.T) {
	cartRepo := newMockCartRepo()
	uc := NewCheckoutUC(cartRepo, &mockPublisher{}, testPricing(), "123", nopLogger{})

	seedCart(t, cartRepo, "s1")

	contact := validContact()
	contact.Email = "not-an-email"

	_, err := uc.Checkout(context.Background(), "s1", NewCheckoutReq(contact))
	assert.ErrorIs(t, err, e.ErrEmailInvalid)

	// Корзина не тронута.
	saved, err := cartRepo.GetCart(context.Background(), "s1")
	require.NoError(t, err)
	assert.Len(t, saved.Items, 1)
}

func TestCheckoutUC_PublisherFailureDoesNotFailCheckout(t *testing.T) {
	cartRepo := newMockCartRepo()
	publisher := &mockPublisher{err: errRepoDown}
	uc := NewCheckoutUC(cartRepo, publisher, testPricing(), "123", nopLogger{})

	seedCart(t, cartRepo, "s1")

	res, err := uc.Checkout(context.Background(), "s1", NewCheckoutReq(validContact()))
	require.NoError(t, err)
	assert.NotEmpty(t, res.WhatsAppURL)
}

func TestCheckoutUC_MissingSession(t *testing.T) {
	uc := NewCheckoutUC(newMockCartRepo(), &mockPublisher{}, testPricing(), "123", nopLogger{})

	_, err := uc.Checkout(context.Background(), "", NewCheckoutReq(validContact()))
	assert.ErrorIs(t, err, e.ErrMissingSession)
}
