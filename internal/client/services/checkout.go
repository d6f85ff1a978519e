package services

import (
	"context"
	"fmt"

	"github.com/dmikhr/stylecart/internal/client/api"
	"github.com/dmikhr/stylecart/internal/client/models"
	"github.com/dmikhr/stylecart/internal/common"
	"github.com/dmikhr/stylecart/internal/logging"
)

// tokenSource is the slice of SessionManager checkout needs.
type tokenSource interface {
	Token() string
}

// catalogReloader lets a successful checkout refresh cached inventory.
type catalogReloader interface {
	Reload(ctx context.Context) error
}

// Checkout builds and submits orders and owns the order history.
type Checkout struct {
	api     api.Client
	session tokenSource
	cart    *Cart
	catalog catalogReloader
	log     logging.Logger

	// orders is most-recent first. Entries are never mutated after they
	// are received.
	orders []models.Order
}

func NewCheckout(apiClient api.Client, session tokenSource, cart *Cart, catalog catalogReloader, log logging.Logger) *Checkout {
	return &Checkout{
		api:     apiClient,
		session: session,
		cart:    cart,
		catalog: catalog,
		log:     log.With("component", "checkout"),
	}
}

// Checkout submits the current cart as an order. Only {product_id, qty} per
// line is sent; pricing and inventory validation are server-side. On success
// the returned order is prepended to the history, the cart is cleared, and a
// catalog reload is triggered to pick up inventory decrements. On failure
// the cart is exactly as before the call.
//
// There is no idempotency key in the order protocol, so a user-initiated
// retry after an ambiguous failure can submit a duplicate order.
func (c *Checkout) Checkout(ctx context.Context) (*models.Order, error) {
	token := c.session.Token()
	if token == "" {
		return nil, common.ErrNotAuthenticated
	}
	if c.cart.IsEmpty() {
		return nil, common.ErrEmptyCart
	}

	lines := c.cart.Lines()
	items := make([]api.OrderItemRequest, 0, len(lines))
	for _, l := range lines {
		items = append(items, api.OrderItemRequest{ProductID: l.ProductID, Qty: l.Quantity})
	}

	order, err := c.api.CreateOrder(ctx, token, items)
	if err != nil {
		return nil, fmt.Errorf("checkout failed: %w", err)
	}

	c.orders = append([]models.Order{*order}, c.orders...)
	c.cart.Clear()

	// Inventory may have decremented server-side; a failed refresh here is
	// not a failed checkout.
	if err := c.catalog.Reload(ctx); err != nil {
		c.log.Warn(ctx, "catalog refresh after checkout failed", "error", err)
	}

	c.log.Info(ctx, "order placed", "order_id", order.ID, "total_cents", order.TotalCents, "status", order.Status)
	return order, nil
}

// LoadOrderHistory fetches the authenticated user's orders and replaces the
// history wholesale.
func (c *Checkout) LoadOrderHistory(ctx context.Context) error {
	token := c.session.Token()
	if token == "" {
		return common.ErrNotAuthenticated
	}

	orders, err := c.api.ListOrders(ctx, token)
	if err != nil {
		return fmt.Errorf("failed to load orders: %w", err)
	}

	c.orders = orders
	return nil
}

// Orders returns a copy of the history, most-recent first.
func (c *Checkout) Orders() []models.Order {
	out := make([]models.Order, len(c.orders))
	copy(out, c.orders)
	return out
}

// ClearHistory drops the local history. Used by the logout and auth-expiry
// cascade.
func (c *Checkout) ClearHistory() {
	c.orders = nil
}
