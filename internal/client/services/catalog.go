package services

import (
	"context"
	"fmt"

	"github.com/dmikhr/stylecart/internal/client/api"
	"github.com/dmikhr/stylecart/internal/client/models"
	"github.com/dmikhr/stylecart/internal/common"
	"github.com/dmikhr/stylecart/internal/logging"
)

// sessionInfo is the slice of SessionManager the catalog needs for
// authoring: the bearer token and the role check.
type sessionInfo interface {
	Token() string
	Identity() *models.Identity
}

// Catalog is a read-mostly cache of the store's categories and products.
// Reload replaces both lists wholesale; creating an entity optimistically
// prepends it to the cached list without a reload.
type Catalog struct {
	api     api.Client
	session sessionInfo
	log     logging.Logger

	categories []models.Category
	products   []models.Product

	// reloadGen stamps each reload so a result that was superseded by a
	// newer reload (or an endpoint change) is discarded instead of
	// overwriting fresher state.
	reloadGen uint64
}

func NewCatalog(apiClient api.Client, session sessionInfo, log logging.Logger) *Catalog {
	return &Catalog{api: apiClient, session: session, log: log.With("component", "catalog")}
}

// Reload fetches categories and products and replaces the cache. Prior
// contents survive any failure.
func (c *Catalog) Reload(ctx context.Context) error {
	c.reloadGen++
	gen := c.reloadGen

	categories, err := c.api.ListCategories(ctx)
	if err != nil {
		return fmt.Errorf("failed to load categories: %w", err)
	}
	products, err := c.api.ListProducts(ctx)
	if err != nil {
		return fmt.Errorf("failed to load products: %w", err)
	}

	if gen != c.reloadGen {
		// A newer reload started while this one was in flight.
		c.log.Warn(ctx, "discarding superseded catalog reload")
		return nil
	}

	c.categories = categories
	c.products = products
	c.log.Info(ctx, "catalog reloaded", "categories", len(categories), "products", len(products))
	return nil
}

// Invalidate drops the cached lists and supersedes any in-flight reload.
// Used when the endpoint changes.
func (c *Catalog) Invalidate() {
	c.reloadGen++
	c.categories = nil
	c.products = nil
}

func (c *Catalog) Categories() []models.Category {
	out := make([]models.Category, len(c.categories))
	copy(out, c.categories)
	return out
}

func (c *Catalog) Products() []models.Product {
	out := make([]models.Product, len(c.products))
	copy(out, c.products)
	return out
}

// ProductByID finds a cached product.
func (c *Catalog) ProductByID(id int64) (*models.Product, error) {
	for i := range c.products {
		if c.products[i].ID == id {
			p := c.products[i]
			return &p, nil
		}
	}
	return nil, fmt.Errorf("product %d: %w", id, common.ErrNotFound)
}

// CreateCategory creates a category and prepends it to the cache without a
// full reload.
func (c *Catalog) CreateCategory(ctx context.Context, name, slug string) (*models.Category, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}

	created, err := c.api.CreateCategory(ctx, c.session.Token(), api.CreateCategoryRequest{Name: name, Slug: slug})
	if err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	c.categories = append([]models.Category{*created}, c.categories...)
	return created, nil
}

// CreateProduct creates a product and prepends it to the cache without a
// full reload.
func (c *Catalog) CreateProduct(ctx context.Context, req api.CreateProductRequest) (*models.Product, error) {
	if err := c.requireAdmin(); err != nil {
		return nil, err
	}

	created, err := c.api.CreateProduct(ctx, c.session.Token(), req)
	if err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	c.products = append([]models.Product{*created}, c.products...)
	return created, nil
}

// requireAdmin is the capability check for authoring calls, kept here so it
// holds no matter how the result is rendered.
func (c *Catalog) requireAdmin() error {
	if c.session.Token() == "" {
		return common.ErrNotAuthenticated
	}
	if !c.session.Identity().IsAdmin() {
		return common.ErrAdminRequired
	}
	return nil
}
