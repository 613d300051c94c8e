package domain

import "time"

// ShippingMethodID is the closed set of offered shipping tiers.
type ShippingMethodID string

const (
	ShippingStandard  ShippingMethodID = "standard"
	ShippingExpress   ShippingMethodID = "express"
	ShippingOvernight ShippingMethodID = "overnight"
)

type ShippingMethod struct {
	ID            ShippingMethodID `json:"id"`
	Name          string           `json:"name"`
	Description   string           `json:"description"`
	PriceCents    int64            `json:"priceCents"`
	EstimatedDays string           `json:"estimatedDays"`
}

// PaymentMethod is the closed set of accepted payment kinds.
type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentUPI  PaymentMethod = "upi"
	PaymentCOD  PaymentMethod = "cod"
)

// PaymentSelection carries the chosen method plus a masked card reference
// when the method is card. Raw card data never reaches the core.
type PaymentSelection struct {
	Method       PaymentMethod `json:"method"`
	CardLastFour string        `json:"cardLastFour,omitempty"`
}

type Address struct {
	ID        string `json:"id,omitempty"`
	Name      string `json:"name"`
	Street    string `json:"street"`
	City      string `json:"city"`
	State     string `json:"state"`
	ZipCode   string `json:"zipCode"`
	Country   string `json:"country"`
	IsDefault bool   `json:"isDefault,omitempty"`
}

// OrderSummary holds the authoritative review-step numbers.
type OrderSummary struct {
	SubtotalCents int64 `json:"subtotalCents"`
	ShippingCents int64 `json:"shippingCents"`
	TaxCents      int64 `json:"taxCents"`
	TotalCents    int64 `json:"totalCents"`
}

// Order is an immutable snapshot created once at checkout completion.
// Item prices and quantities are decoupled from any later cart changes.
type Order struct {
	ID                string           `json:"orderId"`
	Items             []CartItem       `json:"items"`
	SubtotalCents     int64            `json:"subtotalCents"`
	ShippingCents     int64            `json:"shippingCents"`
	TaxCents          int64            `json:"taxCents"`
	TotalCents        int64            `json:"totalCents"`
	Address           Address          `json:"address"`
	ShippingMethod    ShippingMethod   `json:"shippingMethod"`
	Payment           PaymentSelection `json:"paymentMethod"`
	EstimatedDelivery string           `json:"estimatedDelivery"`
	PlacedAt          time.Time        `json:"placedAt"`
}
