// Package checkout sequences the four checkout steps, validates forward
// progress and assembles the final order. One Orchestrator exists per
// checkout session; it holds a snapshot of the cart taken at entry and is
// discarded (or abandoned) after completion.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"boutique/internal/domain"
	"boutique/internal/notify"
)

type Step int

const (
	StepAddress Step = iota + 1
	StepShipping
	StepPayment
	StepReview
)

const taxRatePercent int64 = 8

// OrderStore persists the finished order record.
type OrderStore interface {
	Save(ctx context.Context, o *domain.Order) error
}

// CartClearer empties the active cart after a successful order.
type CartClearer interface {
	Clear()
}

type Orchestrator struct {
	mu        sync.Mutex
	step      Step
	completed bool

	items     []domain.CartItem
	cartTotal int64

	address  *domain.Address
	shipping *domain.ShippingMethod
	payment  *domain.PaymentSelection

	orders OrderStore
	cart   CartClearer
	sink   notify.Sink
	delay  time.Duration
	now    func() time.Time
}

// Begin opens a checkout session over a snapshot of the cart. Later cart
// mutations do not affect the session.
func Begin(items []domain.CartItem, orders OrderStore, cart CartClearer, sink notify.Sink, delay time.Duration) *Orchestrator {
	snap := append([]domain.CartItem(nil), items...)
	var total int64
	for _, it := range snap {
		total += it.UnitPriceCents * int64(it.Quantity)
	}
	return &Orchestrator{
		step:      StepAddress,
		items:     snap,
		cartTotal: total,
		orders:    orders,
		cart:      cart,
		sink:      sink,
		delay:     delay,
		now:       time.Now,
	}
}

// Step reports the current cursor position.
func (o *Orchestrator) Step() Step {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.step
}

// Items returns the cart snapshot the session was opened with.
func (o *Orchestrator) Items() []domain.CartItem {
	o.mu.Lock()
	defer o.mu.Unlock()
	return append([]domain.CartItem(nil), o.items...)
}

// SubmitAddress commits the address slot and advances to shipping.
func (o *Orchestrator) SubmitAddress(a domain.Address) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.step != StepAddress {
		return fmt.Errorf("address submitted at step %d", o.step)
	}
	o.address = &a
	o.advance()
	return nil
}

// Options lists the shipping tiers priced against the session's cart total.
func (o *Orchestrator) Options() []domain.ShippingMethod {
	o.mu.Lock()
	defer o.mu.Unlock()
	return ShippingOptions(o.cartTotal)
}

// SelectShipping commits the chosen tier and advances to payment.
func (o *Orchestrator) SelectShipping(id domain.ShippingMethodID) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.step != StepShipping {
		return fmt.Errorf("shipping selected at step %d", o.step)
	}
	for _, opt := range ShippingOptions(o.cartTotal) {
		if opt.ID == id {
			o.shipping = &opt
			o.advance()
			return nil
		}
	}
	return domain.ErrNotFound
}

// SubmitPayment commits the payment slot and advances to review.
func (o *Orchestrator) SubmitPayment(p domain.PaymentSelection) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.step != StepPayment {
		return fmt.Errorf("payment submitted at step %d", o.step)
	}
	switch p.Method {
	case domain.PaymentCard, domain.PaymentUPI, domain.PaymentCOD:
	default:
		return fmt.Errorf("unknown payment method %q", p.Method)
	}
	o.payment = &p
	o.advance()
	return nil
}

// PaymentTotal is the amount shown on the payment step: subtotal plus
// shipping. Tax is deliberately not included until review.
func (o *Orchestrator) PaymentTotal() int64 {
	o.mu.Lock()
	defer o.mu.Unlock()
	var shipping int64
	if o.shipping != nil {
		shipping = o.shipping.PriceCents
	}
	return o.cartTotal + shipping
}

// Back moves the cursor one step backward; a no-op at the first step.
func (o *Orchestrator) Back() {
	o.mu.Lock()
	defer o.mu.Unlock()
	if o.step > StepAddress {
		o.step--
	}
}

// GoToStep moves the cursor to n: backward to any completed step, or
// forward by exactly one when the current step's data is present. Any other
// jump leaves the cursor unchanged and returns ErrStepIncomplete.
func (o *Orchestrator) GoToStep(n Step) error {
	o.mu.Lock()
	defer o.mu.Unlock()
	if n < StepAddress || n > StepReview {
		return fmt.Errorf("no such step %d", n)
	}
	if n <= o.step {
		o.step = n
		return nil
	}
	if n == o.step+1 && o.stepComplete(o.step) {
		o.step = n
		return nil
	}
	return domain.ErrStepIncomplete
}

// Summary computes the authoritative review numbers from the item snapshot:
// subtotal, flat 8% tax, and the grand total including shipping.
func (o *Orchestrator) Summary() domain.OrderSummary {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.summaryLocked()
}

func (o *Orchestrator) summaryLocked() domain.OrderSummary {
	var subtotal int64
	for _, it := range o.items {
		subtotal += it.UnitPriceCents * int64(it.Quantity)
	}
	var shipping int64
	if o.shipping != nil {
		shipping = o.shipping.PriceCents
	}
	tax := subtotal * taxRatePercent / 100
	return domain.OrderSummary{
		SubtotalCents: subtotal,
		ShippingCents: shipping,
		TaxCents:      tax,
		TotalCents:    subtotal + shipping + tax,
	}
}

// PlaceOrder finalizes the draft: after a simulated processing delay it
// assembles the immutable order, persists it, clears the cart and notifies.
// On failure no state is mutated and the caller may retry.
func (o *Orchestrator) PlaceOrder(ctx context.Context) (*domain.Order, error) {
	o.mu.Lock()
	if o.completed {
		o.mu.Unlock()
		return nil, errors.New("checkout already completed")
	}
	if o.step != StepReview || o.address == nil || o.shipping == nil || o.payment == nil {
		o.mu.Unlock()
		return nil, domain.ErrStepIncomplete
	}
	summary := o.summaryLocked()
	order := &domain.Order{
		Items:          append([]domain.CartItem(nil), o.items...),
		SubtotalCents:  summary.SubtotalCents,
		ShippingCents:  summary.ShippingCents,
		TaxCents:       summary.TaxCents,
		TotalCents:     summary.TotalCents,
		Address:        *o.address,
		ShippingMethod: *o.shipping,
		Payment:        *o.payment,
	}
	delay := o.delay
	now := o.now
	o.mu.Unlock()

	if delay > 0 {
		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	placedAt := now()
	order.ID = generateOrderID(placedAt)
	order.PlacedAt = placedAt
	order.EstimatedDelivery = placedAt.Add(7 * 24 * time.Hour).Format("Jan 2, 2006")

	if err := o.orders.Save(ctx, order); err != nil {
		o.sink.Push(notify.Toast{
			Title:       "Order failed",
			Description: "Please try again or contact support",
			Severity:    notify.SeverityDestructive,
		})
		return nil, err
	}

	o.mu.Lock()
	o.completed = true
	o.mu.Unlock()

	// Clearing the cart and persisting the order are two separate steps
	// with no transaction spanning them.
	o.cart.Clear()
	o.sink.Push(notify.Toast{
		Title:       "Order placed successfully!",
		Description: fmt.Sprintf("Order #%s has been confirmed", order.ID),
		Severity:    notify.SeverityDefault,
	})
	return order, nil
}

func (o *Orchestrator) advance() {
	if o.step < StepReview {
		o.step++
	}
}

func (o *Orchestrator) stepComplete(n Step) bool {
	switch n {
	case StepAddress:
		return o.address != nil
	case StepShipping:
		return o.shipping != nil
	case StepPayment:
		return o.payment != nil
	default:
		return false
	}
}

func generateOrderID(t time.Time) string {
	return "ORD-" + strings.ToUpper(strconv.FormatInt(t.UnixMilli(), 36))
}
