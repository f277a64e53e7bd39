package cli

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmarquez/tiendita/internal/cart"
	"github.com/dmarquez/tiendita/internal/services"
)

// Add fetches the product and puts quantity units of it into the cart.
// Adding the same product again merges quantities.
func (a *App) Add(ctx context.Context, id, quantity int) error {
	p, err := a.shop.ProductByID(ctx, id)
	if err != nil {
		fmt.Fprintln(a.out, "Could not load product:", err)
		return err
	}

	a.cart.AddItem(cart.Line{
		ID:       strconv.Itoa(p.ID),
		Title:    p.Title,
		Brand:    p.Brand,
		Price:    p.Price,
		Quantity: quantity,
	})
	fmt.Fprintf(a.out, "Added %d x %s. Cart total: %.2f\n", quantity, p.Title, a.cart.Total)
	return nil
}

// Remove drops a line from the cart. Removing an absent line says so but is
// not an error.
func (a *App) Remove(ctx context.Context, id string) error {
	before := a.cart.Len()
	a.cart.RemoveItem(id)
	if a.cart.Len() == before {
		fmt.Fprintln(a.out, "That product is not in the cart.")
		return nil
	}
	fmt.Fprintf(a.out, "Removed. Cart total: %.2f\n", a.cart.Total)
	return nil
}

// ShowCart prints the cart contents and the total.
func (a *App) ShowCart(ctx context.Context) error {
	if a.cart.Len() == 0 {
		fmt.Fprintln(a.out, "The cart is empty.")
		return nil
	}
	for _, item := range a.cart.Items {
		fmt.Fprintf(a.out, "%-4s %-40s %3d x %8.2f = %8.2f\n",
			item.ID, item.Title, item.Quantity, item.Price, item.Price*float64(item.Quantity))
	}
	fmt.Fprintf(a.out, "Total: %.2f\n", a.cart.Total)
	return nil
}

// ClearCart empties the cart without ordering anything.
func (a *App) ClearCart(ctx context.Context) error {
	a.cart.Clear()
	fmt.Fprintln(a.out, "Cart emptied.")
	return nil
}

// Checkout submits the cart as an order.
func (a *App) Checkout(ctx context.Context) error {
	if !a.isLoggedIn() {
		fmt.Fprintln(a.out, "Sign in before checking out.")
		return nil
	}

	key, err := a.shop.Checkout(ctx, a.cart)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			fmt.Fprintln(a.out, "The cart is empty.")
			return nil
		}
		fmt.Fprintln(a.out, "Checkout failed, the cart was kept:", err)
		return err
	}

	fmt.Fprintf(a.out, "Order placed (%s). The cart is now empty.\n", key)
	return nil
}
