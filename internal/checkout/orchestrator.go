// Package checkout drives a checkout submission: form validation, payment
// tokenization, order creation, confirmation email and cleanup.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"brewshop/internal/cart"
	"brewshop/internal/domain"
	"brewshop/internal/ui"
	"go.uber.org/zap"
)

const (
	LoadingMessage = "Submitting Order, please wait..."
	SuccessMessage = "Your order was successfully submitted. Thanks for your purchase"

	HomePath = "/"
	CartPath = "/cart"
)

type PaymentProvider interface {
	CreateToken(ctx context.Context, card domain.Card) (string, error)
}

type OrderAPI interface {
	CreateOrder(ctx context.Context, req domain.OrderRequest) error
	SendOrderEmail(ctx context.Context, email domain.OrderEmail) error
}

type Navigator interface {
	Navigate(path string)
}

// SnapshotStore is the persisted copy of the cart.
type SnapshotStore interface {
	Load(ctx context.Context) (domain.Cart, bool, error)
	Clear(ctx context.Context) error
}

// Session is the per-visitor state a submission reads and updates. Callers
// must hold the visitor's lock for the whole call.
type Session struct {
	Cart     *cart.Store
	Snapshot SnapshotStore
	Checkout *State
	UI       *ui.State
	Nav      Navigator
}

type Options struct {
	// EmailTo receives the order confirmation.
	EmailTo string
	// EmailRequired turns a failed confirmation email into a failed order.
	EmailRequired bool
}

type Orchestrator struct {
	payments PaymentProvider
	orders   OrderAPI
	opts     Options
	logger   *zap.Logger
	now      func() time.Time
}

func NewOrchestrator(payments PaymentProvider, orders OrderAPI, opts Options, logger *zap.Logger) *Orchestrator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Orchestrator{
		payments: payments,
		orders:   orders,
		opts:     opts,
		logger:   logger,
		now:      time.Now,
	}
}

// Mount prepares the checkout page. Without a saved cart the visitor is sent
// back to the cart page; an empty in-memory cart is seeded from the snapshot.
func (o *Orchestrator) Mount(ctx context.Context, s Session) error {
	saved, ok, err := s.Snapshot.Load(ctx)
	if err != nil {
		return fmt.Errorf("mount checkout: %w", err)
	}
	if !ok {
		s.Nav.Navigate(CartPath)
		return nil
	}
	if s.Cart.Snapshot().IsEmpty() {
		s.Cart.Dispatch(ctx, cart.ImportCart(saved))
	}
	return nil
}

// Submit validates form and, when valid and the cart has entries, places the
// order. It returns a *ValidationError or *PaymentError for visitor-facing
// failures. The request context's cancellation is ignored once submission
// starts.
func (o *Orchestrator) Submit(ctx context.Context, s Session, form Form) error {
	s.Checkout.phase = PhaseValidating
	s.Checkout.draft = form.withoutCard()
	s.Checkout.DispatchErrors(ui.ResetError())

	err := Validate(form)
	current := s.Cart.Snapshot()
	if err == nil && current.IsEmpty() {
		err = emptyCartError()
	}
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			s.Checkout.DispatchErrors(ui.PaymentFailed(ve.Field, ve.Message))
		}
		s.Checkout.phase = PhaseIdle
		return err
	}

	s.Checkout.phase = PhaseSubmitting
	s.UI.DispatchLoading(ui.SetLoading(LoadingMessage))

	ctx = context.WithoutCancel(ctx)
	if err := runSteps(ctx, o.logger, o.steps(current, form)); err != nil {
		s.Checkout.DispatchErrors(ui.PaymentFailed(ui.PaymentFailedKey, err.Error()))
		s.UI.DispatchLoading(ui.ResetLoading())
		s.Checkout.phase = PhaseFailed
		return &PaymentError{Message: err.Error()}
	}

	s.Checkout.draft = Form{}
	s.UI.DispatchLoading(ui.ResetLoading())
	if err := s.Snapshot.Clear(ctx); err != nil {
		o.logger.Warn("clear cart snapshot after order", zap.Error(err))
	}
	s.Cart.Dispatch(ctx, cart.ResetCart())
	s.UI.DispatchToast(ui.SetToast(SuccessMessage))
	s.Nav.Navigate(HomePath)
	s.Checkout.phase = PhaseSucceeded

	o.logger.Info("order submitted",
		zap.String("amount", current.Amount().StringFixed(2)),
		zap.Int("items", len(current.Entries)),
	)
	return nil
}

func (o *Orchestrator) steps(c domain.Cart, form Form) []Step {
	var token string
	return []Step{
		{
			Name: "tokenize",
			Run: func(ctx context.Context) error {
				t, err := o.payments.CreateToken(ctx, form.Card)
				if err != nil {
					return err
				}
				token = t
				return nil
			},
		},
		{
			Name: "create_order",
			Run: func(ctx context.Context) error {
				return o.orders.CreateOrder(ctx, domain.OrderRequest{
					Amount:   c.Amount(),
					Products: c.Entries,
					Address:  form.Address,
					Zip:      form.Zip,
					City:     form.City,
					Token:    token,
				})
			},
		},
		{
			Name:     "send_email",
			Optional: !o.opts.EmailRequired,
			Run: func(ctx context.Context) error {
				return o.orders.SendOrderEmail(ctx, o.confirmation())
			},
		},
	}
}

func (o *Orchestrator) confirmation() domain.OrderEmail {
	return domain.OrderEmail{
		To:      o.opts.EmailTo,
		Subject: "Order Confirmation - brewshop " + o.now().Format(time.RFC1123),
		Text:    "Your order has been processed",
		HTML:    "<b>Expect your order to arrive in 2-3 shipping days</b>",
	}
}
