package domain

type UserProfile struct {
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Phone       string    `json:"phone"`
	Gender      string    `json:"gender,omitempty"`
	DateOfBirth string    `json:"dateOfBirth,omitempty"`
	Addresses   []Address `json:"addresses"`
	IsLoggedIn  bool      `json:"isLoggedIn"`
}

// UserState is the aggregate persisted under the "userProfile" storage key.
type UserState struct {
	Profile         UserProfile `json:"profile"`
	IsGuestCheckout bool        `json:"isGuestCheckout"`
}

// WishlistState is the aggregate persisted under the "wishlist" storage key.
type WishlistState struct {
	Items []Product `json:"items"`
}
