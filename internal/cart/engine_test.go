package cart

import (
	"errors"
	"testing"

	"boutique/internal/domain"
	"boutique/internal/notify"
)

type sinkStub struct {
	toasts []notify.Toast
}

func (s *sinkStub) Push(t notify.Toast) {
	s.toasts = append(s.toasts, t)
}

func (s *sinkStub) last() notify.Toast {
	if len(s.toasts) == 0 {
		return notify.Toast{}
	}
	return s.toasts[len(s.toasts)-1]
}

func tee(id string) domain.CartItem {
	return domain.CartItem{
		ID:             id,
		ProductID:      "1",
		Name:           "Essential Black Tee",
		UnitPriceCents: 4500,
		Size:           "M",
		Color:          "Black",
		Quantity:       1,
		StockLimit:     5,
	}
}

func TestAddItemMergesSameVariant(t *testing.T) {
	sink := &sinkStub{}
	e := New(sink, false)

	if err := e.AddItem(tee("")); err != nil {
		t.Fatalf("first add: %v", err)
	}
	second := tee("")
	second.Quantity = 2
	if err := e.AddItem(second); err != nil {
		t.Fatalf("second add: %v", err)
	}

	st := e.Snapshot()
	if len(st.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(st.Items))
	}
	if st.Items[0].Quantity != 3 {
		t.Fatalf("expected merged quantity 3, got %d", st.Items[0].Quantity)
	}
	if st.Items[0].ID == "" {
		t.Fatal("expected line id to be minted")
	}
}

func TestAddItemDifferentSizeIsNewLine(t *testing.T) {
	e := New(&sinkStub{}, false)

	if err := e.AddItem(tee("")); err != nil {
		t.Fatalf("add: %v", err)
	}
	other := tee("")
	other.Size = "L"
	if err := e.AddItem(other); err != nil {
		t.Fatalf("add variant: %v", err)
	}

	st := e.Snapshot()
	if len(st.Items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(st.Items))
	}
	if st.Items[0].ID == st.Items[1].ID {
		t.Fatal("expected distinct line ids")
	}
}

func TestAddItemRejectsOverStock(t *testing.T) {
	sink := &sinkStub{}
	e := New(sink, false)

	first := tee("")
	first.Quantity = 3
	if err := e.AddItem(first); err != nil {
		t.Fatalf("add: %v", err)
	}
	second := tee("")
	second.Quantity = 4
	err := e.AddItem(second)
	if !errors.Is(err, domain.ErrStockLimitExceeded) {
		t.Fatalf("expected ErrStockLimitExceeded, got %v", err)
	}

	st := e.Snapshot()
	if st.Items[0].Quantity != 3 {
		t.Fatalf("rejected add must not change quantity, got %d", st.Items[0].Quantity)
	}
	toast := sink.last()
	if toast.Title != "Stock limit reached" || toast.Severity != notify.SeverityDestructive {
		t.Fatalf("unexpected toast %+v", toast)
	}
	if toast.Description != "Only 5 items available" {
		t.Fatalf("unexpected toast description %q", toast.Description)
	}
}

func TestAddItemNewLineOverStock(t *testing.T) {
	e := New(&sinkStub{}, false)

	it := tee("")
	it.Quantity = 6
	if err := e.AddItem(it); !errors.Is(err, domain.ErrStockLimitExceeded) {
		t.Fatalf("expected ErrStockLimitExceeded, got %v", err)
	}
	if len(e.Snapshot().Items) != 0 {
		t.Fatal("rejected add must not append a line")
	}
}

func TestUpdateQuantityClampsToOne(t *testing.T) {
	e := New(&sinkStub{}, false)
	if err := e.AddItem(tee("")); err != nil {
		t.Fatalf("add: %v", err)
	}
	id := e.Snapshot().Items[0].ID

	if err := e.UpdateQuantity(id, 0); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := e.Snapshot().Items[0].Quantity; got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
	if err := e.UpdateQuantity(id, -3); err != nil {
		t.Fatalf("update: %v", err)
	}
	if got := e.Snapshot().Items[0].Quantity; got != 1 {
		t.Fatalf("expected clamp to 1, got %d", got)
	}
}

func TestUpdateQuantityStockGate(t *testing.T) {
	e := New(&sinkStub{}, false)
	it := tee("")
	it.Quantity = 2
	if err := e.AddItem(it); err != nil {
		t.Fatalf("add: %v", err)
	}
	id := e.Snapshot().Items[0].ID

	if err := e.UpdateQuantity(id, 6); !errors.Is(err, domain.ErrStockLimitExceeded) {
		t.Fatalf("expected ErrStockLimitExceeded, got %v", err)
	}
	if got := e.Snapshot().Items[0].Quantity; got != 2 {
		t.Fatalf("rejected update must keep quantity, got %d", got)
	}
	if err := e.UpdateQuantity(id, 5); err != nil {
		t.Fatalf("update at limit: %v", err)
	}
}

func TestUpdateQuantityUnknownID(t *testing.T) {
	e := New(&sinkStub{}, false)
	if err := e.UpdateQuantity("nope", 3); err != nil {
		t.Fatalf("unknown id must be a silent no-op, got %v", err)
	}
}

func TestRemoveItem(t *testing.T) {
	sink := &sinkStub{}
	e := New(sink, false)
	if err := e.AddItem(tee("")); err != nil {
		t.Fatalf("add: %v", err)
	}
	id := e.Snapshot().Items[0].ID

	e.RemoveItem(id)
	if len(e.Snapshot().Items) != 0 {
		t.Fatal("expected empty cart")
	}
	if sink.last().Title != "Item removed" {
		t.Fatalf("unexpected toast %+v", sink.last())
	}
}

func TestSaveForLaterMovesNotCopies(t *testing.T) {
	e := New(&sinkStub{}, false)
	if err := e.AddItem(tee("")); err != nil {
		t.Fatalf("add: %v", err)
	}
	id := e.Snapshot().Items[0].ID

	e.SaveForLater(id)
	st := e.Snapshot()
	if len(st.Items) != 0 || len(st.SavedForLater) != 1 {
		t.Fatalf("expected item moved, got %d active / %d saved", len(st.Items), len(st.SavedForLater))
	}
	if st.SavedForLater[0].ID != id {
		t.Fatal("expected identity preserved across the move")
	}
}

func TestMoveToCartAppendsDuplicateVariant(t *testing.T) {
	e := New(&sinkStub{}, false)
	if err := e.AddItem(tee("")); err != nil {
		t.Fatalf("add: %v", err)
	}
	savedID := e.Snapshot().Items[0].ID
	e.SaveForLater(savedID)
	if err := e.AddItem(tee("")); err != nil {
		t.Fatalf("re-add: %v", err)
	}

	e.MoveToCart(savedID)
	st := e.Snapshot()
	if len(st.Items) != 2 {
		t.Fatalf("expected duplicate variant lines, got %d", len(st.Items))
	}
	if st.Items[0].VariantKey() != st.Items[1].VariantKey() {
		t.Fatal("expected both lines to share the variant key")
	}
}

func TestMoveToCartMergeFlagClampsToStock(t *testing.T) {
	e := New(&sinkStub{}, true)
	first := tee("")
	first.Quantity = 4
	if err := e.AddItem(first); err != nil {
		t.Fatalf("add: %v", err)
	}
	savedID := e.Snapshot().Items[0].ID
	e.SaveForLater(savedID)

	second := tee("")
	second.Quantity = 3
	if err := e.AddItem(second); err != nil {
		t.Fatalf("add: %v", err)
	}

	e.MoveToCart(savedID)
	st := e.Snapshot()
	if len(st.Items) != 1 {
		t.Fatalf("expected merged line, got %d", len(st.Items))
	}
	if st.Items[0].Quantity != 5 {
		t.Fatalf("expected clamp to stock limit 5, got %d", st.Items[0].Quantity)
	}
	if len(st.SavedForLater) != 0 {
		t.Fatal("expected saved list emptied")
	}
}

func TestClearKeepsSavedForLater(t *testing.T) {
	e := New(&sinkStub{}, false)
	if err := e.AddItem(tee("")); err != nil {
		t.Fatalf("add: %v", err)
	}
	e.SaveForLater(e.Snapshot().Items[0].ID)
	if err := e.AddItem(tee("")); err != nil {
		t.Fatalf("add: %v", err)
	}

	e.Clear()
	st := e.Snapshot()
	if len(st.Items) != 0 {
		t.Fatal("expected active list emptied")
	}
	if len(st.SavedForLater) != 1 {
		t.Fatal("clear must not touch saved-for-later")
	}
}

func TestTotalAndCount(t *testing.T) {
	e := New(&sinkStub{}, false)
	first := tee("")
	first.Quantity = 2
	if err := e.AddItem(first); err != nil {
		t.Fatalf("add: %v", err)
	}
	second := tee("")
	second.Size = "L"
	second.Quantity = 3
	if err := e.AddItem(second); err != nil {
		t.Fatalf("add: %v", err)
	}

	if got := e.Total(); got != 4500*5 {
		t.Fatalf("expected total %d, got %d", 4500*5, got)
	}
	if got := e.Count(); got != 5 {
		t.Fatalf("expected count 5, got %d", got)
	}
}

func TestShippingProgress(t *testing.T) {
	e := New(&sinkStub{}, false)

	p := e.ShippingProgress()
	if p.Progress != 0 || p.NeededCents != 7500 {
		t.Fatalf("empty cart progress %+v", p)
	}

	it := tee("")
	it.UnitPriceCents = 3000
	if err := e.AddItem(it); err != nil {
		t.Fatalf("add: %v", err)
	}
	p = e.ShippingProgress()
	if p.CurrentCents != 3000 || p.NeededCents != 4500 {
		t.Fatalf("progress %+v", p)
	}
	if p.Progress != 40 {
		t.Fatalf("expected 40%%, got %v", p.Progress)
	}

	more := tee("")
	more.Size = "L"
	more.UnitPriceCents = 9000
	if err := e.AddItem(more); err != nil {
		t.Fatalf("add: %v", err)
	}
	p = e.ShippingProgress()
	if p.Progress != 100 {
		t.Fatalf("expected clamp to 100, got %v", p.Progress)
	}
	if p.NeededCents != 0 {
		t.Fatalf("expected needed 0, got %d", p.NeededCents)
	}
}

func TestSubscriberGetsSnapshot(t *testing.T) {
	e := New(&sinkStub{}, false)
	var seen []domain.CartState
	e.Subscribe(func(st domain.CartState) {
		seen = append(seen, st)
	})

	if err := e.AddItem(tee("")); err != nil {
		t.Fatalf("add: %v", err)
	}
	if len(seen) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(seen))
	}

	// Mutating the delivered snapshot must not leak into engine state.
	seen[0].Items[0].Quantity = 99
	if got := e.Snapshot().Items[0].Quantity; got != 1 {
		t.Fatalf("snapshot mutation leaked, quantity %d", got)
	}
}

func TestRejectedAddDoesNotNotify(t *testing.T) {
	e := New(&sinkStub{}, false)
	notified := 0
	e.Subscribe(func(domain.CartState) { notified++ })

	it := tee("")
	it.Quantity = 6
	if err := e.AddItem(it); !errors.Is(err, domain.ErrStockLimitExceeded) {
		t.Fatalf("expected ErrStockLimitExceeded, got %v", err)
	}
	if notified != 0 {
		t.Fatalf("rejected op must not notify, got %d", notified)
	}
}
