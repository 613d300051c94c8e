// Package persist is the persistence collaborator: it snapshots each
// aggregate to the state store after every change and restores them at
// startup. Saves are best-effort; failures are logged, never surfaced to
// the operation that triggered them.
package persist

import (
	"context"
	"errors"
	"log"
	"time"

	"boutique/internal/cart"
	"boutique/internal/domain"
	"boutique/internal/repository/state"
	"boutique/internal/user"
	"boutique/internal/wishlist"
)

const saveTimeout = 5 * time.Second

type catalogLookup interface {
	Product(ctx context.Context, id string) (*domain.Product, error)
}

type Keeper struct {
	store  state.Repository
	logger *log.Logger
}

func New(store state.Repository, logger *log.Logger) *Keeper {
	return &Keeper{store: store, logger: logger}
}

// BindCart snapshots the cart aggregate after every engine mutation.
func (k *Keeper) BindCart(e *cart.Engine) {
	e.Subscribe(func(st domain.CartState) {
		k.save(state.KeyCart, st)
	})
}

func (k *Keeper) BindUser(s *user.Service) {
	s.Subscribe(func(st domain.UserState) {
		k.save(state.KeyUser, st)
	})
}

func (k *Keeper) BindWishlist(s *wishlist.Service) {
	s.Subscribe(func(st domain.WishlistState) {
		k.save(state.KeyWishlist, st)
	})
}

// RestoreCart re-applies persisted active items through the engine's add
// path. Stock limits are refreshed from the catalog first and stored
// quantities above the fresh limit are clamped, so a restore is not a
// perfect round-trip when availability shrank in the meantime.
// Saved-for-later items and the visibility flag are restored verbatim.
func (k *Keeper) RestoreCart(ctx context.Context, e *cart.Engine, cat catalogLookup) error {
	var st domain.CartState
	if err := k.store.Load(ctx, state.KeyCart, &st); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	for _, it := range st.Items {
		if p, err := cat.Product(ctx, it.ProductID); err == nil {
			it.StockLimit = p.InStock
		}
		if it.Quantity > it.StockLimit {
			it.Quantity = it.StockLimit
		}
		if it.Quantity < 1 {
			continue
		}
		if err := e.RestoreItem(it); err != nil {
			k.logger.Printf("restore cart item %s: %v", it.ID, err)
		}
	}
	e.RestoreSaved(st.SavedForLater)
	e.SetOpen(st.IsOpen)
	return nil
}

func (k *Keeper) RestoreUser(ctx context.Context, s *user.Service) error {
	var st domain.UserState
	if err := k.store.Load(ctx, state.KeyUser, &st); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	s.Restore(st)
	return nil
}

func (k *Keeper) RestoreWishlist(ctx context.Context, s *wishlist.Service) error {
	var st domain.WishlistState
	if err := k.store.Load(ctx, state.KeyWishlist, &st); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil
		}
		return err
	}
	s.Restore(st)
	return nil
}

// WheelSeen reports whether the spin-wheel popup was already shown.
func (k *Keeper) WheelSeen(ctx context.Context) bool {
	var seen bool
	if err := k.store.Load(ctx, state.KeyWheelSeen, &seen); err != nil {
		return false
	}
	return seen
}

// MarkWheelSeen records the one-shot spin-wheel flag.
func (k *Keeper) MarkWheelSeen(ctx context.Context) {
	if err := k.store.Save(ctx, state.KeyWheelSeen, true); err != nil {
		k.logger.Printf("save %s: %v", state.KeyWheelSeen, err)
	}
}

func (k *Keeper) save(key string, doc any) {
	ctx, cancel := context.WithTimeout(context.Background(), saveTimeout)
	defer cancel()
	if err := k.store.Save(ctx, key, doc); err != nil {
		k.logger.Printf("save %s: %v", key, err)
	}
}
