package cart

import "boutique/internal/domain"

// RestoreItem re-applies a persisted line item through the normal add path,
// minus the success toast. Stock validation still applies, so a stored
// quantity above a freshly fetched stock limit is rejected unless the
// caller clamps it first.
func (e *Engine) RestoreItem(it domain.CartItem) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.add(it, true)
}

// RestoreSaved replaces the saved-for-later list verbatim.
func (e *Engine) RestoreSaved(items []domain.CartItem) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.state.SavedForLater = append([]domain.CartItem(nil), items...)
	e.publish()
}
