package domain

// CartItem is one purchasable variant in the cart. Two items with the same
// (ProductID, Size, Color) key are merged on add rather than duplicated.
type CartItem struct {
	ID                 string `json:"id"`
	ProductID          string `json:"productId"`
	Name               string `json:"name"`
	UnitPriceCents     int64  `json:"unitPriceCents"`
	OriginalPriceCents *int64 `json:"originalPriceCents,omitempty"`
	Image              string `json:"image"`
	Size               string `json:"size"`
	Color              string `json:"color"`
	Quantity           int    `json:"quantity"`
	StockLimit         int    `json:"stockLimit"`
}

// VariantKey identifies the merge key of a cart item.
func (i CartItem) VariantKey() string {
	return i.ProductID + "|" + i.Size + "|" + i.Color
}

// CartState is the cart aggregate as persisted under the "cart" storage key.
type CartState struct {
	Items         []CartItem `json:"items"`
	IsOpen        bool       `json:"isOpen"`
	SavedForLater []CartItem `json:"savedForLater"`
}

// ShippingProgress reports how far the cart is from the free-shipping
// threshold. Progress is clamped to [0, 100].
type ShippingProgress struct {
	CurrentCents int64   `json:"currentCents"`
	NeededCents  int64   `json:"neededCents"`
	Progress     float64 `json:"progress"`
}
