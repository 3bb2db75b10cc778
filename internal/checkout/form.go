package checkout

import (
	"strings"

	"brewshop/internal/domain"
)

// Form is one checkout submission. Optional is carried for display only.
type Form struct {
	Address  string      `json:"address"`
	Optional string      `json:"optional"`
	City     string      `json:"city"`
	Zip      string      `json:"zip"`
	Card     domain.Card `json:"card"`
}

// ValidationError reports the first missing required field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// PaymentError carries the message of whichever submission step failed.
type PaymentError struct {
	Message string
}

func (e *PaymentError) Error() string { return e.Message }

// Validate checks address, zip and city in that order and stops at the first
// blank one.
func Validate(f Form) error {
	required := []struct {
		field string
		value string
	}{
		{"address", f.Address},
		{"zip", f.Zip},
		{"city", f.City},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field, Message: r.field + " is required"}
		}
	}
	return nil
}

// CartField is the error key used when there is nothing to order.
const CartField = "cart"

func emptyCartError() *ValidationError {
	return &ValidationError{Field: CartField, Message: "cart is empty"}
}

// withoutCard drops the card so the form can be kept as a draft.
func (f Form) withoutCard() Form {
	f.Card = domain.Card{}
	return f
}
