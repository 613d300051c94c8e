package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique/internal/cart"
	"boutique/internal/checkout"
	"boutique/internal/domain"
	orderrepo "boutique/internal/repository/order"
	"boutique/internal/user"
)

func sessionOrNotFound(c *gin.Context, mgr *checkout.Manager) (*checkout.Orchestrator, bool) {
	o, err := mgr.Get(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "checkout session not found"})
		return nil, false
	}
	return o, true
}

func beginCheckoutHandler(mgr *checkout.Manager, e *cart.Engine) gin.HandlerFunc {
	return func(c *gin.Context) {
		snap := e.Snapshot()
		if len(snap.Items) == 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "cart is empty"})
			return
		}
		id, o := mgr.Begin(snap.Items)
		c.JSON(http.StatusCreated, gin.H{
			"sessionId": id,
			"step":      o.Step(),
			"items":     o.Items(),
		})
	}
}

func checkoutStateHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := sessionOrNotFound(c, mgr)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"step":              o.Step(),
			"items":             o.Items(),
			"paymentTotalCents": o.PaymentTotal(),
		})
	}
}

// checkoutAddressHandler accepts either a full address form or a reference
// to an address stored on the profile via addressId.
func checkoutAddressHandler(mgr *checkout.Manager, users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := sessionOrNotFound(c, mgr)
		if !ok {
			return
		}
		var ref struct {
			AddressID string `json:"addressId"`
		}
		if err := c.ShouldBindBodyWithJSON(&ref); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		var addr domain.Address
		if ref.AddressID != "" {
			stored, found := lookupAddress(users, ref.AddressID)
			if !found {
				c.JSON(http.StatusNotFound, gin.H{"message": "address not found"})
				return
			}
			addr = stored
		} else {
			var form addressForm
			if err := c.ShouldBindBodyWithJSON(&form); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
				return
			}
			if err := validate.Struct(form); err != nil {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"message": validationMessage(err)})
				return
			}
			addr = domain.Address{
				Name:    form.Name,
				Street:  form.Street,
				City:    form.City,
				State:   form.State,
				ZipCode: form.ZipCode,
				Country: form.Country,
			}
		}
		if err := o.SubmitAddress(addr); err != nil {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": o.Step()})
	}
}

func lookupAddress(users *user.Service, id string) (domain.Address, bool) {
	for _, a := range users.Snapshot().Profile.Addresses {
		if a.ID == id {
			return a, true
		}
	}
	return domain.Address{}, false
}

func shippingOptionsHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := sessionOrNotFound(c, mgr)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{"options": o.Options()})
	}
}

func checkoutShippingHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := sessionOrNotFound(c, mgr)
		if !ok {
			return
		}
		var form struct {
			ID string `json:"id" validate:"required"`
		}
		if !bindJSON(c, &form) {
			return
		}
		if err := o.SelectShipping(domain.ShippingMethodID(form.ID)); err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "unknown shipping method"})
				return
			}
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"step":              o.Step(),
			"paymentTotalCents": o.PaymentTotal(),
		})
	}
}

func checkoutPaymentHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := sessionOrNotFound(c, mgr)
		if !ok {
			return
		}
		var form paymentForm
		if !bindJSON(c, &form) {
			return
		}
		sel := domain.PaymentSelection{Method: domain.PaymentMethod(form.Method)}
		if sel.Method == domain.PaymentCard {
			lastFour, valid := form.validateCard()
			if !valid {
				c.JSON(http.StatusUnprocessableEntity, gin.H{"message": "invalid card details"})
				return
			}
			sel.CardLastFour = lastFour
		}
		if err := o.SubmitPayment(sel); err != nil {
			c.JSON(http.StatusConflict, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": o.Step()})
	}
}

func checkoutReviewHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := sessionOrNotFound(c, mgr)
		if !ok {
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"items":   o.Items(),
			"summary": o.Summary(),
		})
	}
}

func checkoutBackHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := sessionOrNotFound(c, mgr)
		if !ok {
			return
		}
		o.Back()
		c.JSON(http.StatusOK, gin.H{"step": o.Step()})
	}
}

func checkoutGoToStepHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, ok := sessionOrNotFound(c, mgr)
		if !ok {
			return
		}
		var form struct {
			Step int `json:"step" validate:"required,min=1,max=4"`
		}
		if !bindJSON(c, &form) {
			return
		}
		if err := o.GoToStep(checkout.Step(form.Step)); err != nil {
			if errors.Is(err, domain.ErrStepIncomplete) {
				c.JSON(http.StatusConflict, gin.H{"message": "complete the current step first"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"message": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"step": o.Step()})
	}
}

func placeOrderHandler(mgr *checkout.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		o, ok := sessionOrNotFound(c, mgr)
		if !ok {
			return
		}
		order, err := o.PlaceOrder(c.Request.Context())
		if err != nil {
			if errors.Is(err, domain.ErrStepIncomplete) {
				c.JSON(http.StatusConflict, gin.H{"message": "checkout is not complete"})
				return
			}
			c.JSON(http.StatusBadGateway, gin.H{"message": "Please try again or contact support"})
			return
		}
		mgr.End(id)
		c.JSON(http.StatusCreated, order)
	}
}

func getOrderHandler(orders orderrepo.Repository) gin.HandlerFunc {
	return func(c *gin.Context) {
		o, err := orders.GetByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "order not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to load order"})
			return
		}
		c.JSON(http.StatusOK, o)
	}
}
