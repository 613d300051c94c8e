package wishlist

import (
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

func product(id, name string) domain.Product {
	return domain.Product{ID: id, Name: name, PriceCents: 4500}
}

func TestAddDeduplicates(t *testing.T) {
	sink := &sinkStub{}
	svc := New(sink)

	svc.Add(product("1", "Tee"))
	svc.Add(product("1", "Tee"))

	if svc.Count() != 1 {
		t.Fatalf("expected 1 item, got %d", svc.Count())
	}
	if len(sink.toasts) != 1 {
		t.Fatalf("duplicate add must not toast, got %d toasts", len(sink.toasts))
	}
}

func TestRemove(t *testing.T) {
	svc := New(&sinkStub{})
	svc.Add(product("1", "Tee"))
	svc.Add(product("2", "Denim"))

	svc.Remove("1")
	if svc.Contains("1") {
		t.Fatal("expected item removed")
	}
	if !svc.Contains("2") {
		t.Fatal("other items must survive")
	}
	svc.Remove("nope")
	if svc.Count() != 1 {
		t.Fatalf("count %d", svc.Count())
	}
}

func TestClear(t *testing.T) {
	svc := New(&sinkStub{})
	svc.Add(product("1", "Tee"))
	svc.Add(product("2", "Denim"))
	svc.Clear()
	if svc.Count() != 0 {
		t.Fatalf("count %d", svc.Count())
	}
}

func TestSnapshotIsolated(t *testing.T) {
	svc := New(&sinkStub{})
	svc.Add(product("1", "Tee"))

	st := svc.Snapshot()
	st.Items[0].Name = "Mutated"
	if svc.Snapshot().Items[0].Name != "Tee" {
		t.Fatal("snapshot mutation leaked")
	}
}

func TestRestoreNotifies(t *testing.T) {
	svc := New(&sinkStub{})
	notified := 0
	svc.Subscribe(func(domain.WishlistState) { notified++ })

	svc.Restore(domain.WishlistState{Items: []domain.Product{product("1", "Tee")}})
	if svc.Count() != 1 {
		t.Fatalf("count %d", svc.Count())
	}
	if notified != 1 {
		t.Fatalf("expected 1 notification, got %d", notified)
	}
}
