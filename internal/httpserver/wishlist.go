package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique/internal/catalog"
	"boutique/internal/domain"
	"boutique/internal/wishlist"
)

func getWishlistHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		st := svc.Snapshot()
		c.JSON(http.StatusOK, gin.H{"items": st.Items, "count": len(st.Items)})
	}
}

func addWishlistItemHandler(svc *wishlist.Service, cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form struct {
			ProductID string `json:"productId" validate:"required"`
		}
		if !bindJSON(c, &form) {
			return
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
		svc.Add(*p)
		st := svc.Snapshot()
		c.JSON(http.StatusOK, gin.H{"items": st.Items, "count": len(st.Items)})
	}
}

func removeWishlistItemHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.Remove(c.Param("id"))
		st := svc.Snapshot()
		c.JSON(http.StatusOK, gin.H{"items": st.Items, "count": len(st.Items)})
	}
}

func clearWishlistHandler(svc *wishlist.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc.Clear()
		c.JSON(http.StatusOK, gin.H{"items": []domain.Product{}, "count": 0})
	}
}
