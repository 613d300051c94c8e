package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"boutique/internal/catalog"
	"boutique/internal/domain"
)

func listProductsHandler(cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		products, err := cat.List(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to list products"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": products, "total": len(products)})
	}
}

func getProductHandler(cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		p, err := cat.Product(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "Product not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load product"})
			return
		}
		c.JSON(http.StatusOK, p)
	}
}

func searchProductsHandler(cat *catalog.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		filter := catalog.SearchFilter{
			Query:    c.Query("q"),
			Category: c.Query("category"),
		}
		if v := c.Query("minPrice"); v != "" {
			cents, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "minPrice must be an integer amount in cents"})
				return
			}
			filter.MinPriceCents = &cents
		}
		if v := c.Query("maxPrice"); v != "" {
			cents, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "maxPrice must be an integer amount in cents"})
				return
			}
			filter.MaxPriceCents = &cents
		}
		products, err := cat.Search(c.Request.Context(), filter)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "search failed"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"results": products, "total": len(products)})
	}
}
