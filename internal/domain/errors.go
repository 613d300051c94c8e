package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrStockLimitExceeded indicates a cart mutation would push a line item
	// past its stock limit. The mutation is rejected and state is unchanged.
	ErrStockLimitExceeded = errors.New("stock limit exceeded")

	// ErrInvalidCoupon indicates an unknown or inactive coupon code.
	ErrInvalidCoupon = errors.New("invalid coupon")

	// ErrCouponMinAmount indicates the cart total is below the coupon's
	// minimum order amount.
	ErrCouponMinAmount = errors.New("minimum order amount not met")

	// ErrStepIncomplete indicates a checkout navigation was rejected because
	// the current step's data is missing.
	ErrStepIncomplete = errors.New("checkout step incomplete")
)
