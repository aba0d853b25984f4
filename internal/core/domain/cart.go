package domain

// CartItem is one line of a cart: a product plus how many of it the user
// intends to buy. Lines with the same product id merge by quantity.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity int     `json:"quantity"`
}

// Subtotal returns the line price contribution.
func (i CartItem) Subtotal() float64 {
	return i.Product.Price * float64(i.Quantity)
}
