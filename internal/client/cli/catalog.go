package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/dmikhr/stylecart/internal/client/api"
	"github.com/dmikhr/stylecart/internal/client/repositories/settings"
	"github.com/dmikhr/stylecart/internal/urlx"
)

// Check probes the API liveness endpoint.
func (a *App) Check(ctx context.Context) error {
	if err := a.apiClient.Healthz(ctx); err != nil {
		return err
	}
	fmt.Println("API OK")
	return nil
}

// SetURL normalizes and persists a new API base URL, points the client at
// it, and reloads the catalog against the new endpoint.
func (a *App) SetURL(ctx context.Context, raw string) error {
	url := urlx.NormalizeBaseURL(raw)
	if url == "" {
		return fmt.Errorf("empty base URL")
	}

	if err := a.settings.Set(ctx, settings.KeyBaseURL, []byte(url)); err != nil {
		return err
	}

	a.apiClient.SetBaseURL(url)
	a.catalog.Invalidate()
	fmt.Printf("Base URL set to %s\n", url)

	return a.catalog.Reload(ctx)
}

// ReloadCatalog refetches categories and products.
func (a *App) ReloadCatalog(ctx context.Context) error {
	return a.catalog.Reload(ctx)
}

// Categories prints the cached category list, fetching it first if the
// cache is still empty.
func (a *App) Categories(ctx context.Context) error {
	if len(a.catalog.Categories()) == 0 {
		if err := a.catalog.Reload(ctx); err != nil {
			return err
		}
	}

	categories := a.catalog.Categories()
	if len(categories) == 0 {
		fmt.Println("No categories.")
		return nil
	}
	for _, c := range categories {
		fmt.Printf("%4d  %-20s %s\n", c.ID, c.Name, c.Slug)
	}
	return nil
}

// Products prints the cached product list, fetching it first if the cache
// is still empty.
func (a *App) Products(ctx context.Context) error {
	if len(a.catalog.Products()) == 0 {
		if err := a.catalog.Reload(ctx); err != nil {
			return err
		}
	}

	products := a.catalog.Products()
	if len(products) == 0 {
		fmt.Println("No products.")
		return nil
	}
	for _, p := range products {
		fmt.Printf("%4d  %-20s %10s  stock:%d\n", p.ID, p.Name, formatCents(p.PriceCents), p.Inventory)
	}
	return nil
}

// AddCategory interactively creates a category (admin only).
func (a *App) AddCategory(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Category name", os.Stdout)
	if err != nil {
		return err
	}
	slug, err := getSimpleText(a.reader, "Slug", os.Stdout)
	if err != nil {
		return err
	}

	created, err := a.catalog.CreateCategory(ctx, name, slug)
	if err != nil {
		return err
	}

	fmt.Printf("Created category %d (%s)\n", created.ID, created.Name)
	return nil
}

// AddProduct interactively creates a product (admin only).
func (a *App) AddProduct(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Product name", os.Stdout)
	if err != nil {
		return err
	}

	priceText, err := getSimpleText(a.reader, "Price in cents", os.Stdout)
	if err != nil {
		return err
	}
	priceCents, err := strconv.ParseInt(priceText, 10, 64)
	if err != nil || priceCents < 0 {
		return fmt.Errorf("invalid price %q", priceText)
	}

	inventoryText, err := getSimpleText(a.reader, "Inventory", os.Stdout)
	if err != nil {
		return err
	}
	inventory, err := strconv.ParseInt(inventoryText, 10, 64)
	if err != nil || inventory < 0 {
		return fmt.Errorf("invalid inventory %q", inventoryText)
	}

	req := api.CreateProductRequest{Name: name, PriceCents: priceCents, Inventory: inventory}

	categoryText, err := getSimpleText(a.reader, "Category id (empty for none)", os.Stdout)
	if err != nil {
		return err
	}
	if categoryText != "" {
		categoryID, err := strconv.ParseInt(categoryText, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid category id %q", categoryText)
		}
		req.CategoryID = &categoryID
	}

	created, err := a.catalog.CreateProduct(ctx, req)
	if err != nil {
		return err
	}

	fmt.Printf("Created product %d (%s, %s)\n", created.ID, created.Name, formatCents(created.PriceCents))
	return nil
}
