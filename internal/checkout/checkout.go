// Package checkout converts a cart into a persisted order. Each call is
// independent: no state survives between attempts and no idempotency key
// is attached, so a repeated submit can create two orders.
package checkout

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/talipby/koroglu-site/internal/cart"
	"github.com/talipby/koroglu-site/internal/domain"
)

var (
	// ErrAuthRequired is returned when no identity is present.
	ErrAuthRequired = errors.New("sipariş vermek için giriş yapmanız gerekiyor")
	// ErrEmptyCart is returned when the cart has no entries.
	ErrEmptyCart = errors.New("sepetiniz boş")
)

// PlaceholderAddress stands in until address capture is wired to a real
// collaborator.
const PlaceholderAddress = "Adres bilgisi alınacak"

// OrderSink accepts an order snapshot and persists it.
type OrderSink interface {
	Create(ctx context.Context, order domain.Order) (*domain.Order, error)
}

// Coordinator validates and submits checkouts.
type Coordinator struct {
	sink   OrderSink
	logger *log.Logger
}

func New(sink OrderSink, logger *log.Logger) *Coordinator {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Coordinator{sink: sink, logger: logger}
}

// Checkout builds an order snapshot from the cart and submits it. The
// identity check runs first, then the empty-cart check; either failure
// short-circuits before the sink is touched. On sink failure the cart is
// left untouched and the sink's error is returned verbatim; on success the
// cart is cleared.
func (c *Coordinator) Checkout(ctx context.Context, crt *cart.Cart, user *domain.User, shippingAddress string) (*domain.Order, error) {
	if user == nil {
		return nil, ErrAuthRequired
	}
	items := crt.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	if shippingAddress == "" {
		shippingAddress = PlaceholderAddress
	}

	order := domain.Order{
		UserID:          user.ID,
		Items:           items,
		TotalCents:      crt.TotalPrice(),
		Status:          domain.OrderStatusPending,
		ShippingAddress: shippingAddress,
	}

	created, err := c.sink.Create(ctx, order)
	if err != nil {
		c.logger.Printf("checkout: user=%s submit failed: %v", user.ID, err)
		return nil, err
	}

	crt.Clear()
	c.logger.Printf("checkout: user=%s order=%s total=%d items=%d", user.ID, created.ID, created.TotalCents, len(created.Items))
	return created, nil
}
