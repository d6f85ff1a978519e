package api

import (
	"context"

	"github.com/dmikhr/stylecart/internal/client/models"
)

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
}

// CreateProductRequest is the body of POST /products.
type CreateProductRequest struct {
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	CategoryID *int64 `json:"category_id,omitempty"`
	Inventory  int64  `json:"inventory"`
}

// OrderItemRequest is one line of POST /orders. Only the product id and
// quantity are sent; pricing is entirely server-side.
type OrderItemRequest struct {
	ProductID int64 `json:"product_id"`
	Qty       int64 `json:"qty"`
}

// Client is the typed surface of the remote store API. One method per
// endpoint; methods requiring authorization take the bearer token explicitly
// so that callers control exactly which token a request uses.
type Client interface {
	Healthz(ctx context.Context) error
	Register(ctx context.Context, email, password string) error
	// Login returns the access token issued for the credentials.
	Login(ctx context.Context, email, password string) (string, error)
	Me(ctx context.Context, token string) (*models.Identity, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
	CreateCategory(ctx context.Context, token string, req CreateCategoryRequest) (*models.Category, error)
	ListProducts(ctx context.Context) ([]models.Product, error)
	CreateProduct(ctx context.Context, token string, req CreateProductRequest) (*models.Product, error)
	ListOrders(ctx context.Context, token string) ([]models.Order, error)
	CreateOrder(ctx context.Context, token string, items []OrderItemRequest) (*models.Order, error)
}
