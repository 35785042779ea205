package domain

import "time"

// Product is a catalog entry. Prices are integer kuruş; WholesaleCents is
// the price actually charged, PriceCents the displayed retail reference.
type Product struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Category       string    `json:"category"`
	PriceCents     int64     `json:"priceCents"`
	WholesaleCents int64     `json:"wholesaleCents"`
	Image          string    `json:"image"`
	Description    string    `json:"description,omitempty"`
	InStock        bool      `json:"inStock"`
	MinOrder       float64   `json:"minOrder"`
	Unit           string    `json:"unit"`
	Origin         string    `json:"origin,omitempty"`
	NutritionInfo  string    `json:"nutritionInfo,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}
