package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmarquez/tiendita/internal/cart"
	"github.com/dmarquez/tiendita/internal/models"
)

func TestProducts_KeywordFiltersOnTitle(t *testing.T) {
	client := &fakeShopClient{products: []models.Product{
		{ID: 1, Title: "Laptop Pro"},
		{ID: 2, Title: "Mouse"},
		{ID: 3, Title: "laptop mini"},
	}}
	svc := NewShopService(client)

	got, err := svc.Products(context.Background(), "electronics", "laptop")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, 1, got[0].ID)
	assert.Equal(t, 3, got[1].ID)

	all, err := svc.Products(context.Background(), "electronics", "")
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestCheckout_EmptyCartIsRejected(t *testing.T) {
	svc := NewShopService(&fakeShopClient{})

	_, err := svc.Checkout(context.Background(), cart.New("u-1"))
	require.ErrorIs(t, err, ErrEmptyCart)
}

func TestCheckout_PostsOrderAndClearsCart(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	nowFn = func() time.Time { return fixed }
	t.Cleanup(func() { nowFn = time.Now })

	client := &fakeShopClient{placedKey: "-NxKey"}
	svc := NewShopService(client)

	state := cart.New("u-1")
	state.AddItem(cart.Line{ID: "1", Title: "a", Price: 10, Quantity: 2})
	state.AddItem(cart.Line{ID: "2", Title: "b", Price: 5, Quantity: 1})

	key, err := svc.Checkout(context.Background(), state)
	require.NoError(t, err)
	assert.Equal(t, "-NxKey", key)

	require.NotNil(t, client.placedOrder)
	assert.Equal(t, "u-1", client.placedOrder.User)
	assert.Equal(t, 25.0, client.placedOrder.Total)
	assert.Len(t, client.placedOrder.Items, 2)
	assert.Equal(t, "2026-03-01T12:00:00Z", client.placedOrder.CreatedAt)
	assert.NotEmpty(t, client.placedOrder.ID)

	assert.Zero(t, state.Len())
	assert.Equal(t, 0.0, state.Total)
}

func TestCheckout_FailureLeavesCartUntouched(t *testing.T) {
	client := &fakeShopClient{placeErr: errors.New("boom")}
	svc := NewShopService(client)

	state := cart.New("u-1")
	state.AddItem(cart.Line{ID: "1", Price: 10, Quantity: 2})

	_, err := svc.Checkout(context.Background(), state)
	require.Error(t, err)
	assert.Equal(t, 1, state.Len())
	assert.Equal(t, 20.0, state.Total)
}

func TestSetLocation_StampsUpdatedAt(t *testing.T) {
	fixed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	nowFn = func() time.Time { return fixed }
	t.Cleanup(func() { nowFn = time.Now })

	client := &fakeShopClient{}
	svc := NewProfileService(client)

	err := svc.SetLocation(context.Background(), "u-1", -34.6, -58.4, "Av. Siempreviva 742")
	require.NoError(t, err)

	require.NotNil(t, client.putLocation)
	assert.Equal(t, "Av. Siempreviva 742", client.putLocation.Address)
	assert.Equal(t, "2026-03-01T12:00:00Z", client.putLocation.UpdatedAt)
}
