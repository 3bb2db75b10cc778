package httpserver

import (
	"brewshop/internal/checkout"
	"brewshop/internal/domain"
	"brewshop/internal/ui"
)

type sessionResponse struct {
	Token     string `json:"token"`
	SessionID string `json:"sessionId"`
	ExpiresIn int    `json:"expiresIn"`
}

type brewResponse struct {
	domain.Brew
	Price  string `json:"price"`
	InCart bool   `json:"inCart"`
}

type cartResponse struct {
	Entries    []domain.CartEntry `json:"cart"`
	TotalCents int64              `json:"totalCents"`
	Total      string             `json:"total"`
}

type checkoutResponse struct {
	Cart     cartResponse   `json:"cart"`
	Phase    checkout.Phase `json:"phase"`
	Form     draftResponse  `json:"form"`
	Errors   ui.ErrorsState `json:"errors"`
	UI       ui.State       `json:"ui"`
	Navigate string         `json:"navigate,omitempty"`
}

// draftResponse is the last submitted form, card excluded.
type draftResponse struct {
	Address  string `json:"address"`
	Optional string `json:"optional"`
	City     string `json:"city"`
	Zip      string `json:"zip"`
}

type addItemRequest struct {
	BrewID string `json:"brewId" binding:"required"`
}

type addItemResponse struct {
	Cart  cartResponse `json:"cart"`
	Added bool         `json:"added"`
}

func toBrewResponse(b domain.Brew, inCart bool) brewResponse {
	return brewResponse{
		Brew:   b,
		Price:  b.PriceDecimal().StringFixed(2),
		InCart: inCart,
	}
}

func toCartResponse(c domain.Cart) cartResponse {
	entries := c.Entries
	if entries == nil {
		entries = []domain.CartEntry{}
	}
	return cartResponse{
		Entries:    entries,
		TotalCents: c.TotalCents,
		Total:      c.Amount().StringFixed(2),
	}
}

func toDraftResponse(f checkout.Form) draftResponse {
	return draftResponse{
		Address:  f.Address,
		Optional: f.Optional,
		City:     f.City,
		Zip:      f.Zip,
	}
}
