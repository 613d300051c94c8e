package persist

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"testing"

	"boutique/internal/cart"
	"boutique/internal/domain"
	"boutique/internal/notify"
	"boutique/internal/repository/state"
	"boutique/internal/user"
	"boutique/internal/wishlist"
)

type memStore struct {
	docs map[string][]byte
}

func newMemStore() *memStore {
	return &memStore{docs: make(map[string][]byte)}
}

func (m *memStore) Save(_ context.Context, key string, doc any) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	m.docs[key] = raw
	return nil
}

func (m *memStore) Load(_ context.Context, key string, out any) error {
	raw, ok := m.docs[key]
	if !ok {
		return domain.ErrNotFound
	}
	return json.Unmarshal(raw, out)
}

type sinkStub struct{}

func (sinkStub) Push(notify.Toast) {}

type catalogStub struct {
	products map[string]domain.Product
}

func (c *catalogStub) Product(_ context.Context, id string) (*domain.Product, error) {
	p, ok := c.products[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

func item(productID, size string, qty, stock int) domain.CartItem {
	return domain.CartItem{
		ProductID:      productID,
		Name:           "Item " + productID,
		UnitPriceCents: 4500,
		Size:           size,
		Color:          "Black",
		Quantity:       qty,
		StockLimit:     stock,
	}
}

func TestBindCartSavesOnMutation(t *testing.T) {
	store := newMemStore()
	k := New(store, quietLogger())
	e := cart.New(sinkStub{}, false)
	k.BindCart(e)

	if err := e.AddItem(item("1", "M", 2, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}

	raw, ok := store.docs[state.KeyCart]
	if !ok {
		t.Fatal("expected cart document saved")
	}
	var st domain.CartState
	if err := json.Unmarshal(raw, &st); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(st.Items) != 1 || st.Items[0].Quantity != 2 {
		t.Fatalf("persisted state %+v", st)
	}
}

func TestRestoreCartRoundTrip(t *testing.T) {
	store := newMemStore()
	k := New(store, quietLogger())
	cat := &catalogStub{products: map[string]domain.Product{
		"1": {ID: "1", InStock: 5},
	}}

	source := cart.New(sinkStub{}, false)
	k.BindCart(source)
	if err := source.AddItem(item("1", "M", 2, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}
	source.SaveForLater(source.Snapshot().Items[0].ID)
	if err := source.AddItem(item("1", "L", 1, 5)); err != nil {
		t.Fatalf("add: %v", err)
	}
	source.SetOpen(true)

	restored := cart.New(sinkStub{}, false)
	if err := k.RestoreCart(context.Background(), restored, cat); err != nil {
		t.Fatalf("restore: %v", err)
	}
	st := restored.Snapshot()
	if len(st.Items) != 1 || st.Items[0].Size != "L" {
		t.Fatalf("active items %+v", st.Items)
	}
	if len(st.SavedForLater) != 1 || st.SavedForLater[0].Size != "M" {
		t.Fatalf("saved items %+v", st.SavedForLater)
	}
	if !st.IsOpen {
		t.Fatal("expected visibility flag restored")
	}
}

func TestRestoreCartClampsToFreshStock(t *testing.T) {
	store := newMemStore()
	k := New(store, quietLogger())

	// Stored quantity 4, but availability shrank to 2 in the meantime.
	if err := store.Save(context.Background(), state.KeyCart, domain.CartState{
		Items: []domain.CartItem{item("1", "M", 4, 10)},
	}); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	cat := &catalogStub{products: map[string]domain.Product{
		"1": {ID: "1", InStock: 2},
	}}

	e := cart.New(sinkStub{}, false)
	if err := k.RestoreCart(context.Background(), e, cat); err != nil {
		t.Fatalf("restore: %v", err)
	}
	st := e.Snapshot()
	if len(st.Items) != 1 {
		t.Fatalf("items %+v", st.Items)
	}
	if st.Items[0].Quantity != 2 || st.Items[0].StockLimit != 2 {
		t.Fatalf("expected clamp to fresh stock, got %+v", st.Items[0])
	}
}

func TestRestoreCartDropsOutOfStockItems(t *testing.T) {
	store := newMemStore()
	k := New(store, quietLogger())
	if err := store.Save(context.Background(), state.KeyCart, domain.CartState{
		Items: []domain.CartItem{item("1", "M", 3, 10)},
	}); err != nil {
		t.Fatalf("seed store: %v", err)
	}
	cat := &catalogStub{products: map[string]domain.Product{
		"1": {ID: "1", InStock: 0},
	}}

	e := cart.New(sinkStub{}, false)
	if err := k.RestoreCart(context.Background(), e, cat); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if len(e.Snapshot().Items) != 0 {
		t.Fatal("expected sold-out item dropped")
	}
}

func TestRestoreCartMissingDocIsNoop(t *testing.T) {
	k := New(newMemStore(), quietLogger())
	e := cart.New(sinkStub{}, false)
	if err := k.RestoreCart(context.Background(), e, &catalogStub{}); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if len(e.Snapshot().Items) != 0 {
		t.Fatal("expected empty cart")
	}
}

func TestUserRoundTrip(t *testing.T) {
	store := newMemStore()
	k := New(store, quietLogger())

	source := user.New(sinkStub{}, 0)
	k.BindUser(source)
	if err := source.Login(context.Background(), "Sam", "sam@example.com", "555"); err != nil {
		t.Fatalf("login: %v", err)
	}

	restored := user.New(sinkStub{}, 0)
	if err := k.RestoreUser(context.Background(), restored); err != nil {
		t.Fatalf("restore: %v", err)
	}
	st := restored.Snapshot()
	if !st.Profile.IsLoggedIn || st.Profile.Name != "Sam" {
		t.Fatalf("restored %+v", st)
	}
}

func TestWishlistRoundTrip(t *testing.T) {
	store := newMemStore()
	k := New(store, quietLogger())

	source := wishlist.New(sinkStub{})
	k.BindWishlist(source)
	source.Add(domain.Product{ID: "1", Name: "Tee"})

	restored := wishlist.New(sinkStub{})
	if err := k.RestoreWishlist(context.Background(), restored); err != nil {
		t.Fatalf("restore: %v", err)
	}
	if !restored.Contains("1") {
		t.Fatal("expected wishlist item restored")
	}
}

func TestWheelSeenFlag(t *testing.T) {
	store := newMemStore()
	k := New(store, quietLogger())
	ctx := context.Background()

	if k.WheelSeen(ctx) {
		t.Fatal("fresh store must report unseen")
	}
	k.MarkWheelSeen(ctx)
	if !k.WheelSeen(ctx) {
		t.Fatal("expected flag recorded")
	}
}
