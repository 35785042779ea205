package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/talipby/koroglu-site/internal/cart"
	"github.com/talipby/koroglu-site/internal/domain"
)

type stubSink struct {
	calls   int
	lastIn  domain.Order
	created *domain.Order
	err     error
}

func (s *stubSink) Create(_ context.Context, order domain.Order) (*domain.Order, error) {
	s.calls++
	s.lastIn = order
	if s.err != nil {
		return nil, s.err
	}
	if s.created != nil {
		return s.created, nil
	}
	out := order
	out.ID = "order-1"
	return &out, nil
}

func filledCart() *cart.Cart {
	c := cart.New()
	c.AddItem(domain.Product{ID: "p1", Name: "Badem İçi", WholesaleCents: 38000, MinOrder: 5}, 5)
	c.AddItem(domain.Product{ID: "p2", Name: "Kuru Kayısı", WholesaleCents: 18000, MinOrder: 2}, 2)
	return c
}

func TestCheckoutRequiresIdentity(t *testing.T) {
	sink := &stubSink{}
	coord := New(sink, nil)
	c := filledCart()

	_, err := coord.Checkout(context.Background(), c, nil, "")
	if !errors.Is(err, ErrAuthRequired) {
		t.Fatalf("expected ErrAuthRequired, got %v", err)
	}
	if sink.calls != 0 {
		t.Fatalf("sink must not be called without identity, got %d calls", sink.calls)
	}
	if c.Len() != 2 {
		t.Fatalf("cart must be untouched, got %d items", c.Len())
	}
}

func TestCheckoutRejectsEmptyCart(t *testing.T) {
	sink := &stubSink{}
	coord := New(sink, nil)

	_, err := coord.Checkout(context.Background(), cart.New(), &domain.User{ID: "u1"}, "")
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
	if sink.calls != 0 {
		t.Fatalf("sink must not be called for empty cart, got %d calls", sink.calls)
	}
}

func TestCheckoutSuccessClearsCart(t *testing.T) {
	sink := &stubSink{}
	coord := New(sink, nil)
	c := filledCart()
	wantTotal := c.TotalPrice()
	wantItems := c.Items()

	order, err := coord.Checkout(context.Background(), c, &domain.User{ID: "u1"}, "Ankara, Ulus")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.calls != 1 {
		t.Fatalf("expected exactly one sink call, got %d", sink.calls)
	}
	if sink.lastIn.UserID != "u1" || sink.lastIn.Status != domain.OrderStatusPending {
		t.Fatalf("unexpected submitted order %+v", sink.lastIn)
	}
	if sink.lastIn.TotalCents != wantTotal {
		t.Fatalf("submitted total %d, want pre-clear total %d", sink.lastIn.TotalCents, wantTotal)
	}
	if len(sink.lastIn.Items) != len(wantItems) {
		t.Fatalf("submitted %d items, want %d", len(sink.lastIn.Items), len(wantItems))
	}
	for i := range wantItems {
		if sink.lastIn.Items[i] != wantItems[i] {
			t.Fatalf("item %d mismatch: %+v != %+v", i, sink.lastIn.Items[i], wantItems[i])
		}
	}
	if sink.lastIn.ShippingAddress != "Ankara, Ulus" {
		t.Fatalf("unexpected address %q", sink.lastIn.ShippingAddress)
	}
	if order.ID != "order-1" {
		t.Fatalf("unexpected order %+v", order)
	}
	if c.Len() != 0 {
		t.Fatalf("cart not cleared after success, %d items left", c.Len())
	}
}

func TestCheckoutFailureLeavesCartIntact(t *testing.T) {
	sink := &stubSink{err: errors.New("orders store unavailable")}
	coord := New(sink, nil)
	c := filledCart()
	before := c.Items()

	_, err := coord.Checkout(context.Background(), c, &domain.User{ID: "u1"}, "")
	if err == nil || err.Error() != "orders store unavailable" {
		t.Fatalf("expected the sink error verbatim, got %v", err)
	}
	after := c.Items()
	if len(after) != len(before) {
		t.Fatalf("cart changed on failure: %d -> %d", len(before), len(after))
	}
	for i := range before {
		if after[i] != before[i] {
			t.Fatalf("entry %d changed on failure", i)
		}
	}
}

func TestCheckoutDefaultsShippingAddress(t *testing.T) {
	sink := &stubSink{}
	coord := New(sink, nil)

	_, err := coord.Checkout(context.Background(), filledCart(), &domain.User{ID: "u1"}, "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sink.lastIn.ShippingAddress != PlaceholderAddress {
		t.Fatalf("expected placeholder address, got %q", sink.lastIn.ShippingAddress)
	}
}
