package domain

import "errors"

var ErrProductNotFound = errors.New("product not found")

// Rating is the aggregate customer score reported by the catalog.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// Product is a catalog item. Sourced from the external catalog service and
// treated as immutable here; edits produce a replacement record upstream.
type Product struct {
	ID          int     `json:"id"`
	Title       string  `json:"title"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
	Rating      *Rating `json:"rating,omitempty"`
}
