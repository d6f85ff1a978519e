package models

// Category is a server-issued catalog grouping.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// Product is a catalog item. Prices are integer cents; Inventory is the
// server-side stock level at fetch time.
type Product struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Inventory  int64  `json:"inventory"`
	CategoryID *int64 `json:"category_id,omitempty"`
}
