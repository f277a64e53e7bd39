package services

import (
	"context"
	"io"

	"github.com/dmarquez/tiendita/internal/logging"
	"github.com/dmarquez/tiendita/internal/models"
	"github.com/dmarquez/tiendita/internal/session"
)

func discardLogger() logging.Logger {
	return logging.NewTextLogger(io.Discard)
}

// fakeStore is an in-memory session.Store with error injection.
type fakeStore struct {
	sess     *session.Session
	saveErr  error
	loadErr  error
	clearErr error
}

func (f *fakeStore) Init(ctx context.Context) error { return nil }

func (f *fakeStore) Save(ctx context.Context, s session.Session) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.sess = &s
	return nil
}

func (f *fakeStore) Load(ctx context.Context) (*session.Session, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	return f.sess, nil
}

func (f *fakeStore) Clear(ctx context.Context) error {
	if f.clearErr != nil {
		return f.clearErr
	}
	f.sess = nil
	return nil
}

// fakeAuthClient returns canned credentials or an error.
type fakeAuthClient struct {
	creds *models.Credentials
	err   error
}

func (f *fakeAuthClient) SignUp(ctx context.Context, email, password string) (*models.Credentials, error) {
	return f.creds, f.err
}

func (f *fakeAuthClient) SignIn(ctx context.Context, email, password string) (*models.Credentials, error) {
	return f.creds, f.err
}

// fakeShopClient records calls and serves canned catalog data.
type fakeShopClient struct {
	categories []string
	products   []models.Product
	orders     []models.Order
	image      *models.ProfileImage
	location   *models.Location

	placedOrder *models.Order
	placedKey   string
	placeErr    error

	putLocation *models.Location
}

func (f *fakeShopClient) GetCategories(ctx context.Context) ([]string, error) {
	return f.categories, nil
}

func (f *fakeShopClient) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	return f.products, nil
}

func (f *fakeShopClient) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	for i := range f.products {
		if f.products[i].ID == id {
			return &f.products[i], nil
		}
	}
	return nil, nil
}

func (f *fakeShopClient) GetOrders(ctx context.Context) ([]models.Order, error) {
	return f.orders, nil
}

func (f *fakeShopClient) PlaceOrder(ctx context.Context, order models.Order) (string, error) {
	if f.placeErr != nil {
		return "", f.placeErr
	}
	f.placedOrder = &order
	return f.placedKey, nil
}

func (f *fakeShopClient) GetProfileImage(ctx context.Context, localID string) (*models.ProfileImage, error) {
	return f.image, nil
}

func (f *fakeShopClient) PutProfileImage(ctx context.Context, localID string, image string) error {
	f.image = &models.ProfileImage{Image: image}
	return nil
}

func (f *fakeShopClient) GetLocation(ctx context.Context, localID string) (*models.Location, error) {
	return f.location, nil
}

func (f *fakeShopClient) PutLocation(ctx context.Context, localID string, loc models.Location) error {
	f.putLocation = &loc
	return nil
}
