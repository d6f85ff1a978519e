package models

import "time"

// OrderItem is one server-priced line of a placed order.
type OrderItem struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Qty        int64  `json:"qty"`
}

// Order is a placed order as returned by the server. It is immutable once
// received: total, status and item prices are server-computed and are never
// recalculated on the client.
type Order struct {
	ID         int64       `json:"id"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"total_cents"`
	Status     string      `json:"status"`
	CreatedAt  time.Time   `json:"created_at"`
}
