package httpserver

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"boutique/internal/cart"
	"boutique/internal/catalog"
	"boutique/internal/checkout"
	"boutique/internal/coupon"
	"boutique/internal/persist"
	orderrepo "boutique/internal/repository/order"
	"boutique/internal/user"
	"boutique/internal/wishlist"
)

// Deps carries the service handles the handlers operate on. No ambient
// singletons; everything is injected here.
type Deps struct {
	Catalog  *catalog.Service
	Cart     *cart.Engine
	Checkout *checkout.Manager
	Coupons  *coupon.Service
	Users    *user.Service
	Wishlist *wishlist.Service
	Orders   orderrepo.Repository
	Keeper   *persist.Keeper
}

// buildRouter wires routes for the storefront API.
func buildRouter(logger *log.Logger, db *pgxpool.Pool, deps Deps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(logger.Writer()), gin.Recovery(), cors.Default())

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	router.GET("/products", listProductsHandler(deps.Catalog))
	router.GET("/products/search", searchProductsHandler(deps.Catalog))
	router.GET("/products/:id", getProductHandler(deps.Catalog))

	router.GET("/cart", getCartHandler(deps.Cart))
	router.POST("/cart/items", addCartItemHandler(deps.Cart, deps.Catalog))
	router.PATCH("/cart/items/:id", updateCartItemHandler(deps.Cart))
	router.DELETE("/cart/items/:id", removeCartItemHandler(deps.Cart))
	router.POST("/cart/items/:id/save-for-later", saveForLaterHandler(deps.Cart))
	router.POST("/cart/items/:id/move-to-cart", moveToCartHandler(deps.Cart))
	router.DELETE("/cart", clearCartHandler(deps.Cart))
	router.POST("/cart/open", setCartOpenHandler(deps.Cart))

	router.GET("/coupons", listCouponsHandler(deps.Coupons))
	router.GET("/coupons/suggestions", suggestCouponsHandler(deps.Coupons, deps.Cart))
	router.POST("/coupons/apply", applyCouponHandler(deps.Coupons, deps.Cart))

	router.POST("/checkout", beginCheckoutHandler(deps.Checkout, deps.Cart))
	router.GET("/checkout/:id", checkoutStateHandler(deps.Checkout))
	router.POST("/checkout/:id/address", checkoutAddressHandler(deps.Checkout, deps.Users))
	router.GET("/checkout/:id/shipping-options", shippingOptionsHandler(deps.Checkout))
	router.POST("/checkout/:id/shipping", checkoutShippingHandler(deps.Checkout))
	router.POST("/checkout/:id/payment", checkoutPaymentHandler(deps.Checkout))
	router.GET("/checkout/:id/review", checkoutReviewHandler(deps.Checkout))
	router.POST("/checkout/:id/back", checkoutBackHandler(deps.Checkout))
	router.POST("/checkout/:id/step", checkoutGoToStepHandler(deps.Checkout))
	router.POST("/checkout/:id/place-order", placeOrderHandler(deps.Checkout))

	router.GET("/orders/:id", getOrderHandler(deps.Orders))

	router.GET("/wishlist", getWishlistHandler(deps.Wishlist))
	router.POST("/wishlist/items", addWishlistItemHandler(deps.Wishlist, deps.Catalog))
	router.DELETE("/wishlist/items/:id", removeWishlistItemHandler(deps.Wishlist))
	router.DELETE("/wishlist", clearWishlistHandler(deps.Wishlist))

	router.POST("/auth/login", loginHandler(deps.Users))
	router.POST("/auth/logout", logoutHandler(deps.Users))
	router.GET("/me", getProfileHandler(deps.Users))
	router.PATCH("/me", updateProfileHandler(deps.Users))
	router.POST("/me/addresses", addAddressHandler(deps.Users))
	router.PUT("/me/addresses/:id", updateAddressHandler(deps.Users))
	router.DELETE("/me/addresses/:id", removeAddressHandler(deps.Users))
	router.POST("/me/addresses/:id/default", setDefaultAddressHandler(deps.Users))
	router.POST("/me/guest-checkout", setGuestCheckoutHandler(deps.Users))

	router.GET("/spin-wheel", spinWheelStateHandler(deps.Keeper))
	router.POST("/spin-wheel/spin", spinWheelSpinHandler(deps.Keeper))

	return router
}
