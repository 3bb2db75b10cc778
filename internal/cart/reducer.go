// Package cart holds the storefront cart reducer and the store that applies it.
package cart

import "brewshop/internal/domain"

const (
	ActionAddToCart  = "ADD_TO_CART"
	ActionImportCart = "IMPORT_CART_FROM_LOCALSTORAGE"
	ActionResetCart  = "RESET_CART"
)

// Action is a cart state transition. Only the fields relevant to Type are read.
type Action struct {
	Type     string
	Product  domain.Brew
	Quantity int
	Cart     domain.Cart
}

func AddToCart(product domain.Brew, quantity int) Action {
	return Action{Type: ActionAddToCart, Product: product, Quantity: quantity}
}

func ImportCart(snapshot domain.Cart) Action {
	return Action{Type: ActionImportCart, Cart: snapshot}
}

func ResetCart() Action {
	return Action{Type: ActionResetCart}
}

// Reduce applies a to state and returns the next cart. It never mutates state.
func Reduce(state domain.Cart, a Action) domain.Cart {
	next, _ := reduce(state, a)
	return next
}

// reduce reports whether the action produced a new state.
func reduce(state domain.Cart, a Action) (domain.Cart, bool) {
	switch a.Type {
	case ActionAddToCart:
		if a.Quantity <= 0 {
			return state, false
		}
		if _, exists := state.Find(a.Product.Name); exists {
			return state, false
		}
		entries := make([]domain.CartEntry, 0, len(state.Entries)+1)
		entries = append(entries, state.Entries...)
		entries = append(entries, domain.CartEntry{Product: a.Product, Quantity: a.Quantity})
		return domain.Cart{Entries: entries, TotalCents: domain.Total(entries)}, true

	case ActionImportCart:
		imported := a.Cart.Clone()
		imported.TotalCents = domain.Total(imported.Entries)
		return imported, true

	case ActionResetCart:
		return domain.Cart{}, true

	default:
		return state, false
	}
}
