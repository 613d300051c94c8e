package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique/internal/cart"
	"boutique/internal/coupon"
	"boutique/internal/domain"
)

func listCouponsHandler(svc *coupon.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"coupons": svc.Available()})
	}
}

func suggestCouponsHandler(svc *coupon.Service, e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"suggestions": svc.Suggest(e.Total(), e.Count())})
	}
}

func applyCouponHandler(svc *coupon.Service, e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form struct {
			Code string `json:"code" validate:"required"`
		}
		if !bindJSON(c, &form) {
			return
		}
		total := e.Total()
		applied, err := svc.Validate(form.Code, total)
		if err != nil {
			switch {
			case errors.Is(err, domain.ErrInvalidCoupon):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Invalid coupon"})
			case errors.Is(err, domain.ErrCouponMinAmount):
				c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "Minimum amount required"})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to apply coupon"})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"coupon":        applied,
			"discountCents": svc.Discount(*applied, total),
		})
	}
}
