package checkout

import "boutique/internal/domain"

// Standard shipping is free strictly above this cart subtotal; a cart at
// exactly the threshold still pays the flat rate.
const freeStandardThresholdCents int64 = 10000

const (
	standardRateCents  int64 = 999
	expressRateCents   int64 = 1999
	overnightRateCents int64 = 3999
)

// ShippingOptions returns the three offered tiers with the standard rate
// evaluated against the cart subtotal.
func ShippingOptions(cartTotalCents int64) []domain.ShippingMethod {
	standard := standardRateCents
	if cartTotalCents > freeStandardThresholdCents {
		standard = 0
	}
	return []domain.ShippingMethod{
		{
			ID:            domain.ShippingStandard,
			Name:          "Standard Shipping",
			Description:   "Regular delivery",
			PriceCents:    standard,
			EstimatedDays: "5-7 business days",
		},
		{
			ID:            domain.ShippingExpress,
			Name:          "Express Shipping",
			Description:   "Faster delivery",
			PriceCents:    expressRateCents,
			EstimatedDays: "2-3 business days",
		},
		{
			ID:            domain.ShippingOvernight,
			Name:          "Overnight Shipping",
			Description:   "Next day delivery",
			PriceCents:    overnightRateCents,
			EstimatedDays: "1 business day",
		},
	}
}
