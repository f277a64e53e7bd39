package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmarquez/tiendita/internal/api"
)

// Categories lists the catalog categories.
func (a *App) Categories(ctx context.Context) error {
	categories, err := a.shop.Categories(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load categories:", err)
		return err
	}
	if len(categories) == 0 {
		fmt.Fprintln(a.out, "No categories.")
		return nil
	}
	for _, c := range categories {
		fmt.Fprintln(a.out, "-", c)
	}
	return nil
}

// Products lists one category, optionally narrowed by a keyword.
func (a *App) Products(ctx context.Context, category, keyword string) error {
	products, err := a.shop.Products(ctx, category, keyword)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load products:", err)
		return err
	}
	if len(products) == 0 {
		fmt.Fprintln(a.out, "No products found.")
		return nil
	}
	for _, p := range products {
		fmt.Fprintf(a.out, "%4d  %-40s %10.2f  (stock %d)\n", p.ID, p.Title, p.Price, p.Stock)
	}
	return nil
}

// Item shows the details of a single product.
func (a *App) Item(ctx context.Context, id int) error {
	p, err := a.shop.ProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, api.ErrNotFound) {
			fmt.Fprintln(a.out, "No such product.")
		} else {
			fmt.Fprintln(a.out, "Could not load product:", err)
		}
		return err
	}

	fmt.Fprintf(a.out, "%s (%s)\n", p.Title, p.Brand)
	fmt.Fprintf(a.out, "Price: %.2f  Stock: %d  Category: %s\n", p.Price, p.Stock, p.Category)
	if p.Description != "" {
		fmt.Fprintln(a.out, p.Description)
	}
	return nil
}

// Orders lists the placed orders.
func (a *App) Orders(ctx context.Context) error {
	orders, err := a.shop.Orders(ctx)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load orders:", err)
		return err
	}
	if len(orders) == 0 {
		fmt.Fprintln(a.out, "No orders yet.")
		return nil
	}
	for _, o := range orders {
		fmt.Fprintf(a.out, "%s  %d item(s)  total %.2f\n", o.CreatedAt, len(o.Items), o.Total)
	}
	return nil
}
