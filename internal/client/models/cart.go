package models

// CartLine is one product's presence in the client-local cart. Name and
// PriceCents are snapshots taken when the product was first added and are
// never re-synced to later catalog changes. Quantity is always > 0; a line
// that would reach zero is removed instead.
type CartLine struct {
	ProductID  int64
	Name       string
	PriceCents int64
	Quantity   int64
}

// SubtotalCents is the line's contribution to the cart estimate.
func (l CartLine) SubtotalCents() int64 {
	return l.PriceCents * l.Quantity
}
