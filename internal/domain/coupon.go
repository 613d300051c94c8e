package domain

type CouponType string

const (
	CouponPercentage CouponType = "percentage"
	CouponFixed      CouponType = "fixed"
)

// Coupon is a named discount rule. Discount is percent points for
// percentage coupons and cents for fixed coupons.
type Coupon struct {
	Code           string     `json:"code"`
	Description    string     `json:"description"`
	Discount       int64      `json:"discount"`
	Type           CouponType `json:"type"`
	MinAmountCents int64      `json:"minAmountCents,omitempty"`
	IsActive       bool       `json:"isActive"`
}
