package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dmarquez/tiendita/internal/api"
	"github.com/dmarquez/tiendita/internal/cart"
	"github.com/dmarquez/tiendita/internal/models"
)

// ErrEmptyCart is returned when checkout runs against a cart with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// ShopService covers browsing the catalog and placing orders.
type ShopService interface {
	Categories(ctx context.Context) ([]string, error)
	Products(ctx context.Context, category, keyword string) ([]models.Product, error)
	ProductByID(ctx context.Context, id int) (*models.Product, error)
	Orders(ctx context.Context) ([]models.Order, error)
	Checkout(ctx context.Context, state *cart.State) (string, error)
}

type shopService struct {
	client api.ShopClient
}

// NewShopService constructs a ShopService over the remote catalog client.
func NewShopService(client api.ShopClient) ShopService {
	return &shopService{client: client}
}

func (s *shopService) Categories(ctx context.Context) ([]string, error) {
	return s.client.GetCategories(ctx)
}

// Products lists a category, optionally narrowed by a case-insensitive
// keyword match on the title. Filtering happens client-side, the way the
// search box works.
func (s *shopService) Products(ctx context.Context, category, keyword string) ([]models.Product, error) {
	products, err := s.client.GetProductsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	if keyword == "" {
		return products, nil
	}

	needle := strings.ToLower(keyword)
	filtered := make([]models.Product, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Title), needle) {
			filtered = append(filtered, p)
		}
	}
	return filtered, nil
}

func (s *shopService) ProductByID(ctx context.Context, id int) (*models.Product, error) {
	return s.client.GetProductByID(ctx, id)
}

func (s *shopService) Orders(ctx context.Context) ([]models.Order, error) {
	return s.client.GetOrders(ctx)
}

// Checkout submits the cart as an order and empties it. The cart is cleared
// only after the backend accepted the order, so a failed submission loses
// nothing. Returns the backend-assigned order key.
func (s *shopService) Checkout(ctx context.Context, state *cart.State) (string, error) {
	if state.Len() == 0 {
		return "", ErrEmptyCart
	}

	order := models.Order{
		ID:        uuid.NewString(),
		Items:     state.Items,
		User:      state.User,
		Total:     state.Total,
		CreatedAt: nowFn().UTC().Format(time.RFC3339),
	}

	key, err := s.client.PlaceOrder(ctx, order)
	if err != nil {
		return "", fmt.Errorf("place order: %w", err)
	}
	state.Clear()
	return key, nil
}
