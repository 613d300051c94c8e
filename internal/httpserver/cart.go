package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique/internal/cart"
	"boutique/internal/catalog"
	"boutique/internal/domain"
)

type addCartItemForm struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Color     string `json:"color" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

func cartView(e *cart.Engine) gin.H {
	return gin.H{
		"cart":             e.Snapshot(),
		"totalCents":       e.Total(),
		"count":            e.Count(),
		"shippingProgress": e.ShippingProgress(),
	}
}

func getCartHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, cartView(e))
	}
}

func addCartItemHandler(e *cart.Engine, cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form addCartItemForm
		if !bindJSON(c, &form) {
			return
		}
		if form.Quantity == 0 {
			form.Quantity = 1
		}
		p, err := cat.Product(c.Request.Context(), form.ProductID)
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load product"})
			return
		}
		if !contains(p.Sizes, form.Size) || !contains(p.Colors, form.Color) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "size or color not offered for this product"})
			return
		}
		item := domain.CartItem{
			ProductID:          p.ID,
			Name:               p.Name,
			UnitPriceCents:     p.PriceCents,
			OriginalPriceCents: p.OriginalPriceCents,
			Image:              p.Image,
			Size:               form.Size,
			Color:              form.Color,
			Quantity:           form.Quantity,
			StockLimit:         p.InStock,
		}
		if err := e.AddItem(item); err != nil {
			if errors.Is(err, domain.ErrStockLimitExceeded) {
				c.JSON(http.StatusConflict, gin.H{"message": "Stock limit reached"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to add item"})
			return
		}
		c.JSON(http.StatusOK, cartView(e))
	}
}

func updateCartItemHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form struct {
			Quantity int `json:"quantity"`
		}
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if err := e.UpdateQuantity(c.Param("id"), form.Quantity); err != nil {
			if errors.Is(err, domain.ErrStockLimitExceeded) {
				c.JSON(http.StatusConflict, gin.H{"message": "Stock limit reached"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update quantity"})
			return
		}
		c.JSON(http.StatusOK, cartView(e))
	}
}

func removeCartItemHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		e.RemoveItem(c.Param("id"))
		c.JSON(http.StatusOK, cartView(e))
	}
}

func saveForLaterHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		e.SaveForLater(c.Param("id"))
		c.JSON(http.StatusOK, cartView(e))
	}
}

func moveToCartHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		e.MoveToCart(c.Param("id"))
		c.JSON(http.StatusOK, cartView(e))
	}
}

func clearCartHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		e.Clear()
		c.JSON(http.StatusOK, cartView(e))
	}
}

func setCartOpenHandler(e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form struct {
			Open *bool `json:"open"`
		}
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		if form.Open == nil {
			e.ToggleOpen()
		} else {
			e.SetOpen(*form.Open)
		}
		c.JSON(http.StatusOK, cartView(e))
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}
