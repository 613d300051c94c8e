package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boutique/internal/domain"
	"boutique/internal/user"
)

func loginHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form loginForm
		if !bindJSON(c, &form) {
			return
		}
		if err := users.Login(c.Request.Context(), form.Name, form.Email, form.Phone); err != nil {
			c.JSON(http.StatusRequestTimeout, gin.H{"message": "sign in was interrupted"})
			return
		}
		c.JSON(http.StatusOK, users.Snapshot())
	}
}

func logoutHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users.Logout()
		c.JSON(http.StatusOK, gin.H{"status": "signed out"})
	}
}

func getProfileHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, users.Snapshot())
	}
}

func updateProfileHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form struct {
			Name        *string `json:"name"`
			Email       *string `json:"email"`
			Phone       *string `json:"phone"`
			Gender      *string `json:"gender"`
			DateOfBirth *string `json:"dateOfBirth"`
		}
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		users.UpdateProfile(user.UpdateProfileInput{
			Name:        form.Name,
			Email:       form.Email,
			Phone:       form.Phone,
			Gender:      form.Gender,
			DateOfBirth: form.DateOfBirth,
		})
		c.JSON(http.StatusOK, users.Snapshot())
	}
}

func addAddressHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form addressForm
		if !bindJSON(c, &form) {
			return
		}
		id := users.AddAddress(domain.Address{
			Name:      form.Name,
			Street:    form.Street,
			City:      form.City,
			State:     form.State,
			ZipCode:   form.ZipCode,
			Country:   form.Country,
			IsDefault: form.IsDefault,
		})
		c.JSON(http.StatusCreated, gin.H{"id": id, "profile": users.Snapshot().Profile})
	}
}

func updateAddressHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form addressForm
		if !bindJSON(c, &form) {
			return
		}
		err := users.UpdateAddress(domain.Address{
			ID:        c.Param("id"),
			Name:      form.Name,
			Street:    form.Street,
			City:      form.City,
			State:     form.State,
			ZipCode:   form.ZipCode,
			Country:   form.Country,
			IsDefault: form.IsDefault,
		})
		if err != nil {
			if errors.Is(err, domain.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"message": "address not found"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "failed to update address"})
			return
		}
		c.JSON(http.StatusOK, users.Snapshot().Profile)
	}
}

func removeAddressHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users.RemoveAddress(c.Param("id"))
		c.JSON(http.StatusOK, users.Snapshot().Profile)
	}
}

func setDefaultAddressHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		users.SetDefaultAddress(c.Param("id"))
		c.JSON(http.StatusOK, users.Snapshot().Profile)
	}
}

func setGuestCheckoutHandler(users *user.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		var form struct {
			Enabled bool `json:"enabled"`
		}
		if err := c.ShouldBindJSON(&form); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
			return
		}
		users.SetGuestCheckout(form.Enabled)
		c.JSON(http.StatusOK, users.Snapshot())
	}
}
