package cli

import (
	"context"
	"fmt"
	"strconv"
)

// AddToCart puts one unit of the product with the given id into the cart.
// The product must be present in the catalog cache so its name and price
// can be snapshotted.
func (a *App) AddToCart(ctx context.Context, idText string) error {
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", idText)
	}

	if len(a.catalog.Products()) == 0 {
		if err := a.catalog.Reload(ctx); err != nil {
			return err
		}
	}

	product, err := a.catalog.ProductByID(id)
	if err != nil {
		return err
	}

	a.cart.Add(*product)
	fmt.Printf("Added %s to cart\n", product.Name)
	return nil
}

// IncrementLine raises a cart line's quantity by one.
func (a *App) IncrementLine(idText string) error {
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", idText)
	}
	return a.cart.Increment(id)
}

// DecrementLine lowers a cart line's quantity by one, removing the line
// when it reaches zero.
func (a *App) DecrementLine(idText string) error {
	id, err := strconv.ParseInt(idText, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid product id %q", idText)
	}
	return a.cart.Decrement(id)
}

// ShowCart prints the current lines and the client-side total estimate.
func (a *App) ShowCart() error {
	lines := a.cart.Lines()
	if len(lines) == 0 {
		fmt.Println("Cart is empty.")
		return nil
	}

	for _, l := range lines {
		fmt.Printf("%4d  %-20s %10s x%d = %s\n",
			l.ProductID, l.Name, formatCents(l.PriceCents), l.Quantity, formatCents(l.SubtotalCents()))
	}
	fmt.Printf("Estimated total: %s (server computes the final amount)\n", formatCents(a.cart.TotalCents()))
	return nil
}

// ClearCart empties the cart.
func (a *App) ClearCart() error {
	a.cart.Clear()
	fmt.Println("Cart cleared.")
	return nil
}
