package state

import "context"

// Fixed storage keys, one JSON document per aggregate.
const (
	KeyCart      = "cart"
	KeyUser      = "userProfile"
	KeyWishlist  = "wishlist"
	KeyWheelSeen = "hasSeenSpinWheel"
)

// Repository stores one JSON document per key with last-writer-wins
// semantics. There is no versioning or merge; concurrent writers clobber
// each other, which is acceptable for single-user client state.
type Repository interface {
	Save(ctx context.Context, key string, doc any) error
	Load(ctx context.Context, key string, out any) error
}
