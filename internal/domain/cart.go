package domain

import "math"

// CartItem pairs a product snapshot with a quantity. The snapshot is taken
// when the item is added; later catalog edits do not reach existing items.
type CartItem struct {
	Product  Product `json:"product"`
	Quantity float64 `json:"quantity"`
}

// TotalCents is the line total: wholesale price times quantity, rounded
// half away from zero to whole kuruş.
func (i CartItem) TotalCents() int64 {
	return int64(math.Round(float64(i.Product.WholesaleCents) * i.Quantity))
}
