package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"sort"

	"github.com/dmarquez/tiendita/internal/models"
)

// GetCategories lists the catalog categories.
func (c *HTTPClient) GetCategories(ctx context.Context) ([]string, error) {
	var categories []string
	err := c.do(ctx, http.MethodGet, c.shopBase+"/categories.json", nil, &categories)
	if err != nil {
		return nil, err
	}
	return categories, nil
}

// GetProductsByCategory fetches the products filtered server-side by
// category. The database answers with a keyed object; values are flattened
// and ordered by product id.
func (c *HTTPClient) GetProductsByCategory(ctx context.Context, category string) ([]models.Product, error) {
	u := fmt.Sprintf(`%s/products.json?orderBy=%s&equalTo=%s`,
		c.shopBase, url.QueryEscape(`"category"`), url.QueryEscape(`"`+category+`"`))

	keyed := map[string]models.Product{}
	if err := c.do(ctx, http.MethodGet, u, nil, &keyed); err != nil {
		return nil, err
	}

	products := make([]models.Product, 0, len(keyed))
	for _, p := range keyed {
		products = append(products, p)
	}
	sort.Slice(products, func(i, j int) bool { return products[i].ID < products[j].ID })
	return products, nil
}

// GetProductByID fetches a single product, or ErrNotFound.
func (c *HTTPClient) GetProductByID(ctx context.Context, id int) (*models.Product, error) {
	u := fmt.Sprintf(`%s/products.json?orderBy=%s&equalTo=%d`,
		c.shopBase, url.QueryEscape(`"id"`), id)

	keyed := map[string]models.Product{}
	if err := c.do(ctx, http.MethodGet, u, nil, &keyed); err != nil {
		return nil, err
	}
	for _, p := range keyed {
		return &p, nil
	}
	return nil, ErrNotFound
}

// GetOrders returns all stored orders, newest first.
func (c *HTTPClient) GetOrders(ctx context.Context) ([]models.Order, error) {
	keyed := map[string]models.Order{}
	if err := c.do(ctx, http.MethodGet, c.shopBase+"/orders.json", nil, &keyed); err != nil {
		return nil, err
	}

	orders := make([]models.Order, 0, len(keyed))
	for _, o := range keyed {
		orders = append(orders, o)
	}
	sort.Slice(orders, func(i, j int) bool { return orders[i].CreatedAt > orders[j].CreatedAt })
	return orders, nil
}

// PlaceOrder posts the order and returns the key the backend assigned.
func (c *HTTPClient) PlaceOrder(ctx context.Context, order models.Order) (string, error) {
	var created struct {
		Name string `json:"name"`
	}
	if err := c.do(ctx, http.MethodPost, c.shopBase+"/orders.json", order, &created); err != nil {
		return "", err
	}
	return created.Name, nil
}

// GetProfileImage returns the stored photo, or (nil, nil) when the node is
// absent. Absence is a JSON null body, which leaves the pointer nil.
func (c *HTTPClient) GetProfileImage(ctx context.Context, localID string) (*models.ProfileImage, error) {
	var img *models.ProfileImage
	u := fmt.Sprintf("%s/profileImages/%s.json", c.shopBase, url.PathEscape(localID))
	if err := c.do(ctx, http.MethodGet, u, nil, &img); err != nil {
		return nil, err
	}
	return img, nil
}

// PutProfileImage stores the photo for localID, overwriting any prior one.
func (c *HTTPClient) PutProfileImage(ctx context.Context, localID string, image string) error {
	u := fmt.Sprintf("%s/profileImages/%s.json", c.shopBase, url.PathEscape(localID))
	return c.do(ctx, http.MethodPut, u, models.ProfileImage{Image: image}, nil)
}

// GetLocation returns the stored delivery location, or (nil, nil) when the
// node is absent. A stored record always comes back non-nil, even one whose
// coordinates happen to be zero.
func (c *HTTPClient) GetLocation(ctx context.Context, localID string) (*models.Location, error) {
	var loc *models.Location
	u := fmt.Sprintf("%s/locations/%s.json", c.shopBase, url.PathEscape(localID))
	if err := c.do(ctx, http.MethodGet, u, nil, &loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// PutLocation stores the delivery location for localID.
func (c *HTTPClient) PutLocation(ctx context.Context, localID string, loc models.Location) error {
	u := fmt.Sprintf("%s/locations/%s.json", c.shopBase, url.PathEscape(localID))
	return c.do(ctx, http.MethodPut, u, loc, nil)
}
