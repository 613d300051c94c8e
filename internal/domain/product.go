package domain

import "time"

type Product struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	PriceCents         int64     `json:"priceCents"`
	OriginalPriceCents *int64    `json:"originalPriceCents,omitempty"`
	Description        string    `json:"description,omitempty"`
	Category           string    `json:"category"`
	Sizes              []string  `json:"sizes"`
	Colors             []string  `json:"colors"`
	Image              string    `json:"image"`
	Images             []string  `json:"images,omitempty"`
	IsNew              bool      `json:"isNew,omitempty"`
	IsOnSale           bool      `json:"isOnSale,omitempty"`
	InStock            int       `json:"inStock"`
	Fabric             string    `json:"fabric,omitempty"`
	CareInstructions   []string  `json:"careInstructions,omitempty"`
	Rating             float64   `json:"rating"`
	ReviewCount        int       `json:"reviewCount"`
	CreatedAt          time.Time `json:"createdAt"`
}
