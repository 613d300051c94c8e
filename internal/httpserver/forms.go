package httpserver

import (
	"errors"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

var expiryPattern = regexp.MustCompile(`^(0[1-9]|1[0-2])/[0-9]{2}$`)

type addressForm struct {
	Name      string `json:"name" validate:"required,min=2"`
	Street    string `json:"street" validate:"required,min=5"`
	City      string `json:"city" validate:"required,min=2"`
	State     string `json:"state" validate:"required,min=2"`
	ZipCode   string `json:"zipCode" validate:"required,min=5"`
	Country   string `json:"country" validate:"required,min=2"`
	IsDefault bool   `json:"isDefault"`
}

type paymentForm struct {
	Method         string `json:"method" validate:"required,oneof=card upi cod"`
	CardNumber     string `json:"cardNumber"`
	ExpiryDate     string `json:"expiryDate"`
	CVV            string `json:"cvv"`
	CardholderName string `json:"cardholderName"`
}

// validateCard enforces the card fields only when the method is card. The
// number is checked for length after stripping spaces, the expiry for the
// MM/YY shape and the CVV for 3 or 4 digits.
func (f paymentForm) validateCard() (lastFour string, ok bool) {
	digits := strings.ReplaceAll(f.CardNumber, " ", "")
	if len(digits) < 13 || len(digits) > 19 {
		return "", false
	}
	for _, r := range digits {
		if r < '0' || r > '9' {
			return "", false
		}
	}
	if !expiryPattern.MatchString(f.ExpiryDate) {
		return "", false
	}
	if n := len(f.CVV); n < 3 || n > 4 {
		return "", false
	}
	if len(f.CardholderName) < 2 {
		return "", false
	}
	return digits[len(digits)-4:], true
}

type loginForm struct {
	Name  string `json:"name" validate:"required,min=2"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required,min=10"`
}

// bindJSON decodes the body into form and runs struct validation. On
// failure it writes the error response and reports false.
func bindJSON(c *gin.Context, form any) bool {
	if err := c.ShouldBindJSON(form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid request body"})
		return false
	}
	if err := validate.Struct(form); err != nil {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"message": validationMessage(err)})
		return false
	}
	return true
}

func validationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return "validation failed"
	}
	fields := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		fields = append(fields, fe.Field())
	}
	return "invalid fields: " + strings.Join(fields, ", ")
}
