package domain

import "github.com/shopspring/decimal"

type CartEntry struct {
	Product  Brew `json:"product"`
	Quantity int  `json:"quantity"`
}

// Cart is the visitor's pending selection. TotalCents is derived from Entries.
type Cart struct {
	Entries    []CartEntry `json:"cart"`
	TotalCents int64       `json:"totalCents"`
}

// Total sums price x quantity over entries.
func Total(entries []CartEntry) int64 {
	var total int64
	for _, e := range entries {
		total += e.Product.PriceCents * int64(e.Quantity)
	}
	return total
}

// Amount returns the cart total in major currency units.
func (c Cart) Amount() decimal.Decimal {
	return decimal.New(c.TotalCents, -2)
}

func (c Cart) IsEmpty() bool {
	return len(c.Entries) == 0
}

// Find returns the entry whose product carries the given name.
func (c Cart) Find(name string) (CartEntry, bool) {
	for _, e := range c.Entries {
		if e.Product.Name == name {
			return e, true
		}
	}
	return CartEntry{}, false
}

// Clone copies the cart so callers never share the entries backing array.
func (c Cart) Clone() Cart {
	out := Cart{TotalCents: c.TotalCents}
	if len(c.Entries) > 0 {
		out.Entries = make([]CartEntry, len(c.Entries))
		copy(out.Entries, c.Entries)
	}
	return out
}
