// Package wishlist owns the wishlist aggregate: whole products saved for
// later purchase, deduplicated by product id.
package wishlist

import (
	"fmt"
	"sync"

	"boutique/internal/domain"
	"boutique/internal/notify"
)

type Service struct {
	mu    sync.Mutex
	items []domain.Product
	sink  notify.Sink
	subs  []func(domain.WishlistState)
}

func New(sink notify.Sink) *Service {
	return &Service{sink: sink}
}

func (s *Service) Subscribe(fn func(domain.WishlistState)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Add puts the product on the wishlist; already-present ids are a no-op.
func (s *Service) Add(p domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == p.ID {
			return
		}
	}
	s.items = append(s.items, p)
	s.sink.Push(notify.Toast{
		Title:       "Added to wishlist!",
		Description: fmt.Sprintf("%s has been added to your wishlist", p.Name),
		Severity:    notify.SeverityDefault,
	})
	s.publish()
}

func (s *Service) Remove(productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, it := range s.items {
		if it.ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			s.sink.Push(notify.Toast{
				Title:       "Removed from wishlist",
				Description: "Item has been removed from your wishlist",
				Severity:    notify.SeverityDefault,
			})
			s.publish()
			return
		}
	}
}

func (s *Service) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.sink.Push(notify.Toast{
		Title:       "Wishlist cleared",
		Description: "All items have been removed from your wishlist",
		Severity:    notify.SeverityDefault,
	})
	s.publish()
}

func (s *Service) Contains(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == productID {
			return true
		}
	}
	return false
}

func (s *Service) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Snapshot returns a copy of the aggregate.
func (s *Service) Snapshot() domain.WishlistState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.snapshotLocked()
}

// Restore replaces the whole aggregate from persisted state.
func (s *Service) Restore(st domain.WishlistState) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append([]domain.Product(nil), st.Items...)
	s.publish()
}

func (s *Service) snapshotLocked() domain.WishlistState {
	return domain.WishlistState{Items: append([]domain.Product(nil), s.items...)}
}

func (s *Service) publish() {
	snap := s.snapshotLocked()
	for _, fn := range s.subs {
		fn(snap)
	}
}
