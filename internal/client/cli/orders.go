package cli

import (
	"context"
	"fmt"
)

// Checkout submits the cart as an order and prints the server-computed
// result.
func (a *App) Checkout(ctx context.Context) error {
	order, err := a.checkout.Checkout(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("Order %d placed: %s (%s)\n", order.ID, formatCents(order.TotalCents), order.Status)
	return nil
}

// Orders reloads and prints the order history, most-recent first.
func (a *App) Orders(ctx context.Context) error {
	if err := a.checkout.LoadOrderHistory(ctx); err != nil {
		return err
	}

	orders := a.checkout.Orders()
	if len(orders) == 0 {
		fmt.Println("No orders yet.")
		return nil
	}

	for _, o := range orders {
		fmt.Printf("#%d  %s  %-10s %s\n", o.ID, o.CreatedAt.Format("2006-01-02 15:04"), o.Status, formatCents(o.TotalCents))
		for _, item := range o.Items {
			fmt.Printf("      %-20s %10s x%d\n", item.Name, formatCents(item.PriceCents), item.Qty)
		}
	}
	return nil
}
