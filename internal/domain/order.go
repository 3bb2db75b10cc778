package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderRequest is built once per checkout submission and sent to the order backend.
type OrderRequest struct {
	Amount   decimal.Decimal `json:"amount"`
	Products []CartEntry     `json:"products"`
	Address  string          `json:"address"`
	Zip      string          `json:"zip"`
	City     string          `json:"city"`
	Token    string          `json:"token"`
}

// OrderEmail is the confirmation message dispatched after an order is created.
type OrderEmail struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}

// Order is an OrderRequest as persisted by the local order backend.
type Order struct {
	ID        string          `json:"id"`
	Amount    decimal.Decimal `json:"amount"`
	Products  []CartEntry     `json:"products"`
	Address   string          `json:"address"`
	Zip       string          `json:"zip"`
	City      string          `json:"city"`
	Token     string          `json:"-"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Card is the raw card input handed to the payment provider for tokenization.
// It is never logged or stored.
type Card struct {
	Number   string `json:"number"`
	ExpMonth string `json:"expMonth"`
	ExpYear  string `json:"expYear"`
	CVC      string `json:"cvc"`
}
