// Package coupon validates discount codes against the cart total and
// computes discount amounts. At most one coupon is applied at a time on any
// surface; the applied selection lives with the caller, not in cart state.
package coupon

import (
	"fmt"
	"strings"

	"boutique/internal/domain"
	"boutique/internal/notify"
)

var available = []domain.Coupon{
	{
		Code:        "WELCOME10",
		Description: "Welcome discount for new customers",
		Discount:    10,
		Type:        domain.CouponPercentage,
		IsActive:    true,
	},
	{
		Code:           "SAVE20",
		Description:    "20% off orders over $100",
		Discount:       20,
		Type:           domain.CouponPercentage,
		MinAmountCents: 10000,
		IsActive:       true,
	},
	{
		Code:        "FREESHIP",
		Description: "Free shipping on any order",
		Discount:    1000,
		Type:        domain.CouponFixed,
		IsActive:    true,
	},
	{
		Code:        "BULK15",
		Description: "15% off when buying 3+ items",
		Discount:    15,
		Type:        domain.CouponPercentage,
		IsActive:    true,
	},
}

type Service struct {
	sink notify.Sink
}

func New(sink notify.Sink) *Service {
	return &Service{sink: sink}
}

// Available lists every active coupon.
func (s *Service) Available() []domain.Coupon {
	out := make([]domain.Coupon, 0, len(available))
	for _, c := range available {
		if c.IsActive {
			out = append(out, c)
		}
	}
	return out
}

// Validate resolves a code against the catalog and the minimum-order
// precondition. Failures are notified and returned as sentinel errors.
func (s *Service) Validate(code string, cartTotalCents int64) (*domain.Coupon, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	var found *domain.Coupon
	for i := range available {
		if available[i].Code == code && available[i].IsActive {
			found = &available[i]
			break
		}
	}
	if found == nil {
		s.sink.Push(notify.Toast{
			Title:       "Invalid coupon",
			Description: "Please check the coupon code and try again",
			Severity:    notify.SeverityDestructive,
		})
		return nil, domain.ErrInvalidCoupon
	}
	if found.MinAmountCents > 0 && cartTotalCents < found.MinAmountCents {
		s.sink.Push(notify.Toast{
			Title:       "Minimum amount required",
			Description: fmt.Sprintf("This coupon requires a minimum order of $%d", found.MinAmountCents/100),
			Severity:    notify.SeverityDestructive,
		})
		return nil, domain.ErrCouponMinAmount
	}
	c := *found
	s.sink.Push(notify.Toast{
		Title:       "Coupon applied!",
		Description: fmt.Sprintf("%s - %s", c.Description, discountLabel(c)),
		Severity:    notify.SeverityDefault,
	})
	return &c, nil
}

// Discount computes the discount amount in cents for the given cart total.
func (s *Service) Discount(c domain.Coupon, cartTotalCents int64) int64 {
	if c.Type == domain.CouponPercentage {
		return cartTotalCents * c.Discount / 100
	}
	return c.Discount
}

// Suggest recommends coupons for the current cart, mirroring the storefront
// suggestion rules: big-order and bulk discounts first, free shipping for
// small carts, and the welcome code as a fallback.
func (s *Service) Suggest(cartTotalCents int64, itemCount int) []domain.Coupon {
	var out []domain.Coupon
	if cartTotalCents >= 10000 {
		out = appendCode(out, "SAVE20")
	}
	if itemCount >= 3 {
		out = appendCode(out, "BULK15")
	}
	if cartTotalCents < 7500 {
		out = appendCode(out, "FREESHIP")
	}
	if len(out) == 0 {
		out = appendCode(out, "WELCOME10")
	}
	return out
}

func appendCode(list []domain.Coupon, code string) []domain.Coupon {
	for _, c := range available {
		if c.Code == code {
			return append(list, c)
		}
	}
	return list
}

func discountLabel(c domain.Coupon) string {
	if c.Type == domain.CouponPercentage {
		return fmt.Sprintf("%d%% off", c.Discount)
	}
	return fmt.Sprintf("$%d off", c.Discount/100)
}
