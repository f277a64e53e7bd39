// Package api implements the JSON-over-HTTP client for the remote
// storefront backend: a Firebase-style realtime database for catalog and
// profile data, plus the identity endpoint for sign-in/sign-up.
package api

import (
	"context"

	"github.com/dmarquez/tiendita/internal/models"
)

// ShopClient covers the catalog, order and profile operations.
type ShopClient interface {
	GetCategories(ctx context.Context) ([]string, error)
	GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error)
	GetProductByID(ctx context.Context, id int) (*models.Product, error)
	GetOrders(ctx context.Context) ([]models.Order, error)
	PlaceOrder(ctx context.Context, order models.Order) (string, error)
	GetProfileImage(ctx context.Context, localID string) (*models.ProfileImage, error)
	PutProfileImage(ctx context.Context, localID string, image string) error
	GetLocation(ctx context.Context, localID string) (*models.Location, error)
	PutLocation(ctx context.Context, localID string, loc models.Location) error
}

// AuthClient covers the identity endpoint.
type AuthClient interface {
	SignUp(ctx context.Context, email, password string) (*models.Credentials, error)
	SignIn(ctx context.Context, email, password string) (*models.Credentials, error)
}
