// Package cart owns the cart aggregate: active line items plus the
// saved-for-later partition. All mutation goes through the Engine; the
// engine is the single source of truth for line items.
package cart

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"boutique/internal/domain"
	"boutique/internal/notify"
)

// Free shipping progress is measured against this subtotal.
const freeShippingThresholdCents int64 = 7500

// Engine maintains CartState and applies atomic operations with
// deterministic merge and stock validation semantics. Operations are
// serialized by an internal mutex; every successful mutation notifies
// subscribers with a state snapshot.
type Engine struct {
	mu          sync.Mutex
	state       domain.CartState
	sink        notify.Sink
	subs        []func(domain.CartState)
	mergeOnMove bool
	newID       func() string
}

// New builds an empty engine. mergeOnMove enables merging a saved item into
// an existing active line on MoveToCart; the default (false) reproduces the
// historical behavior of appending a duplicate variant line.
func New(sink notify.Sink, mergeOnMove bool) *Engine {
	return &Engine{
		sink:        sink,
		mergeOnMove: mergeOnMove,
		newID:       uuid.NewString,
	}
}

// Subscribe registers fn to run after every successful mutation with a
// snapshot of the new state. Subscribers must not call back into the engine.
func (e *Engine) Subscribe(fn func(domain.CartState)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.subs = append(e.subs, fn)
}

// AddItem merges the candidate into an existing active line with the same
// (productId, size, color) key, or appends a new line with a fresh identity.
// A merge or append that would exceed the stock limit is rejected whole:
// state is unchanged and ErrStockLimitExceeded is returned.
func (e *Engine) AddItem(cand domain.CartItem) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.add(cand, false)
}

func (e *Engine) add(cand domain.CartItem, quiet bool) error {
	for i, it := range e.state.Items {
		if it.VariantKey() != cand.VariantKey() {
			continue
		}
		newQty := it.Quantity + cand.Quantity
		if newQty > it.StockLimit {
			e.pushStockLimit(it.StockLimit)
			return domain.ErrStockLimitExceeded
		}
		e.state.Items[i].Quantity = newQty
		if !quiet {
			e.pushAdded(cand)
		}
		e.publish()
		return nil
	}

	if cand.Quantity > cand.StockLimit {
		e.pushStockLimit(cand.StockLimit)
		return domain.ErrStockLimitExceeded
	}
	cand.ID = e.newID()
	e.state.Items = append(e.state.Items, cand)
	if !quiet {
		e.pushAdded(cand)
	}
	e.publish()
	return nil
}

// RemoveItem deletes the matching active line item. Absent ids are a no-op.
func (e *Engine) RemoveItem(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, it := range e.state.Items {
		if it.ID == id {
			e.state.Items = append(e.state.Items[:i], e.state.Items[i+1:]...)
			e.sink.Push(notify.Toast{
				Title:       "Item removed",
				Description: "Item has been removed from cart",
				Severity:    notify.SeverityDefault,
			})
			e.publish()
			return
		}
	}
}

// UpdateQuantity clamps the requested quantity to at least 1, then commits
// it unless the clamped value exceeds the item's stock limit, in which case
// the prior quantity is kept and ErrStockLimitExceeded is returned.
func (e *Engine) UpdateQuantity(id string, quantity int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, it := range e.state.Items {
		if it.ID != id {
			continue
		}
		if quantity < 1 {
			quantity = 1
		}
		if quantity > it.StockLimit {
			e.pushStockLimit(it.StockLimit)
			return domain.ErrStockLimitExceeded
		}
		e.state.Items[i].Quantity = quantity
		e.publish()
		return nil
	}
	return nil
}

// SaveForLater moves the item (not a copy) from the active list to the
// saved-for-later list. Absent ids are a no-op.
func (e *Engine) SaveForLater(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, it := range e.state.Items {
		if it.ID == id {
			e.state.Items = append(e.state.Items[:i], e.state.Items[i+1:]...)
			e.state.SavedForLater = append(e.state.SavedForLater, it)
			e.sink.Push(notify.Toast{
				Title:       "Saved for later",
				Description: "Item moved to saved for later",
				Severity:    notify.SeverityDefault,
			})
			e.publish()
			return
		}
	}
}

// MoveToCart moves the item from saved-for-later back to the active list.
// Without mergeOnMove the item is appended even when an active line with the
// same variant key exists, so the key can appear twice in the active list.
// With mergeOnMove the quantities are summed, clamped to the stock limit.
func (e *Engine) MoveToCart(id string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, it := range e.state.SavedForLater {
		if it.ID != id {
			continue
		}
		e.state.SavedForLater = append(e.state.SavedForLater[:i], e.state.SavedForLater[i+1:]...)
		if e.mergeOnMove {
			if merged := e.mergeExisting(it); !merged {
				e.state.Items = append(e.state.Items, it)
			}
		} else {
			e.state.Items = append(e.state.Items, it)
		}
		e.sink.Push(notify.Toast{
			Title:       "Moved to cart",
			Description: "Item moved back to cart",
			Severity:    notify.SeverityDefault,
		})
		e.publish()
		return
	}
}

func (e *Engine) mergeExisting(moved domain.CartItem) bool {
	for i, it := range e.state.Items {
		if it.VariantKey() != moved.VariantKey() {
			continue
		}
		newQty := it.Quantity + moved.Quantity
		if newQty > it.StockLimit {
			newQty = it.StockLimit
		}
		e.state.Items[i].Quantity = newQty
		return true
	}
	return false
}

// Clear empties the active list only; saved-for-later is untouched.
func (e *Engine) Clear() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.Items = nil
	e.sink.Push(notify.Toast{
		Title:       "Cart cleared",
		Description: "All items have been removed from cart",
		Severity:    notify.SeverityDefault,
	})
	e.publish()
}

// ToggleOpen flips the cart preview visibility flag.
func (e *Engine) ToggleOpen() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.IsOpen = !e.state.IsOpen
	e.publish()
}

// SetOpen sets the cart preview visibility flag.
func (e *Engine) SetOpen(open bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.IsOpen = open
	e.publish()
}

// Snapshot returns a deep copy of the current state.
func (e *Engine) Snapshot() domain.CartState {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.snapshotLocked()
}

// Total is the sum of unit price times quantity over active items.
func (e *Engine) Total() int64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.totalLocked()
}

// Count is the sum of quantities over active items.
func (e *Engine) Count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	count := 0
	for _, it := range e.state.Items {
		count += it.Quantity
	}
	return count
}

// ShippingProgress reports the distance to the free-shipping threshold.
func (e *Engine) ShippingProgress() domain.ShippingProgress {
	e.mu.Lock()
	defer e.mu.Unlock()
	current := e.totalLocked()
	needed := freeShippingThresholdCents - current
	if needed < 0 {
		needed = 0
	}
	progress := float64(current) / float64(freeShippingThresholdCents) * 100
	if progress > 100 {
		progress = 100
	}
	return domain.ShippingProgress{
		CurrentCents: current,
		NeededCents:  needed,
		Progress:     progress,
	}
}

func (e *Engine) totalLocked() int64 {
	var total int64
	for _, it := range e.state.Items {
		total += it.UnitPriceCents * int64(it.Quantity)
	}
	return total
}

func (e *Engine) snapshotLocked() domain.CartState {
	out := domain.CartState{IsOpen: e.state.IsOpen}
	out.Items = append([]domain.CartItem(nil), e.state.Items...)
	out.SavedForLater = append([]domain.CartItem(nil), e.state.SavedForLater...)
	return out
}

func (e *Engine) publish() {
	snap := e.snapshotLocked()
	for _, fn := range e.subs {
		fn(snap)
	}
}

func (e *Engine) pushAdded(it domain.CartItem) {
	e.sink.Push(notify.Toast{
		Title:       "Added to cart!",
		Description: fmt.Sprintf("%s (%s, %s) x %d", it.Name, it.Size, it.Color, it.Quantity),
		Severity:    notify.SeverityDefault,
	})
}

func (e *Engine) pushStockLimit(limit int) {
	e.sink.Push(notify.Toast{
		Title:       "Stock limit reached",
		Description: fmt.Sprintf("Only %d items available", limit),
		Severity:    notify.SeverityDestructive,
	})
}
