package order

import (
	"context"
	"errors"
	"testing"

	"brewshop/internal/domain"
	"github.com/shopspring/decimal"
)

type stubStore struct {
	createErr error
	emailErr  error
	lastOrder domain.Order
	lastEmail domain.OrderEmail
}

func (s *stubStore) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	s.lastOrder = o
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &o, nil
}

func (s *stubStore) EnqueueEmail(_ context.Context, email domain.OrderEmail) (int64, error) {
	s.lastEmail = email
	if s.emailErr != nil {
		return 0, s.emailErr
	}
	return 7, nil
}

func TestLocal_CreateOrder(t *testing.T) {
	store := &stubStore{}
	l := NewLocal(store, nil)
	l.newID = func() string { return "order-1" }

	err := l.CreateOrder(context.Background(), domain.OrderRequest{
		Amount:  decimal.RequireFromString("4.50"),
		Address: "1 Roast St",
		Zip:     "97201",
		City:    "Portland",
		Token:   "tok_visa",
	})
	if err != nil {
		t.Fatalf("CreateOrder: %v", err)
	}
	if store.lastOrder.ID != "order-1" || store.lastOrder.Token != "tok_visa" || store.lastOrder.City != "Portland" {
		t.Fatalf("unexpected stored order %+v", store.lastOrder)
	}
}

func TestLocal_CreateOrderError(t *testing.T) {
	boom := errors.New("insert failed")
	l := NewLocal(&stubStore{createErr: boom}, nil)
	if err := l.CreateOrder(context.Background(), domain.OrderRequest{}); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestLocal_SendOrderEmail(t *testing.T) {
	store := &stubStore{}
	l := NewLocal(store, nil)
	if err := l.SendOrderEmail(context.Background(), domain.OrderEmail{To: "a@example.com"}); err != nil {
		t.Fatalf("SendOrderEmail: %v", err)
	}
	if store.lastEmail.To != "a@example.com" {
		t.Fatalf("unexpected email %+v", store.lastEmail)
	}

	store.emailErr = errors.New("outbox full")
	if err := l.SendOrderEmail(context.Background(), domain.OrderEmail{}); err == nil {
		t.Fatalf("expected error")
	}
}
