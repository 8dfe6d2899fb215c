// Package catalog models the product catalog and its HTTP surface. The
// storefront consumes the catalog as data: a GET against a fixed relative
// path returning a JSON array of products.
package catalog

// Path is the fixed relative path the catalog is served from.
const Path = "/data/products.json"

// Prices carries the price variants a product may declare. All prices are
// pre-formatted strings; formatting is owned by whoever produced the data.
type Prices struct {
	Original        string `json:"original,omitempty"`
	Discounted      string `json:"discounted,omitempty"`
	StarterKitPrice string `json:"starterKitPrice,omitempty"`
}

// Coupon is an optional promotion attached to a product.
type Coupon struct {
	Code string `json:"code"`
	Note string `json:"note,omitempty"`
}

// Rating is an optional aggregate review score.
type Rating struct {
	Value float64 `json:"value"`
	Count int     `json:"count"`
}

// Product is one catalog entry.
type Product struct {
	Name         string   `json:"name"`
	Image        string   `json:"image"`
	Colors       []string `json:"colors"`
	Prices       Prices   `json:"prices"`
	Badge        string   `json:"badge,omitempty"`
	BadgeType    string   `json:"badgeType,omitempty"`
	Coupon       *Coupon  `json:"coupon,omitempty"`
	Rating       *Rating  `json:"rating,omitempty"`
	FreeShipping bool     `json:"freeShipping,omitempty"`
}

// EffectiveUnitPrice returns the price a cart line is created at: the
// discounted price when present, otherwise the original.
func (p Product) EffectiveUnitPrice() string {
	if p.Prices.Discounted != "" {
		return p.Prices.Discounted
	}
	return p.Prices.Original
}

// DefaultColor returns the first (default-selected) color, or "".
func (p Product) DefaultColor() string {
	if len(p.Colors) > 0 {
		return p.Colors[0]
	}
	return ""
}
