package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddToCart_AccumulatesQuantity(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Maven Build Tool", Price: "49.99", Stock: 75})
	svc := NewCartService(db)

	first, err := svc.AddToCart(ctx, "user-1", productID, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.Quantity)

	second, err := svc.AddToCart(ctx, "user-1", productID, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, second.Quantity)
	assert.Equal(t, first.ID, second.ID)

	assert.Equal(t, 1, countRows(t, db, "cart"))
}

func TestAddToCart_DefaultsToOneUnit(t *testing.T) {
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Maven Build Tool", Price: "49.99", Stock: 75})
	svc := NewCartService(db)

	entry, err := svc.AddToCart(context.Background(), "user-1", productID, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, entry.Quantity)
}

func TestAddToCart_Rejects(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Maven Build Tool", Price: "49.99", Stock: 75})
	svc := NewCartService(db)

	_, err := svc.AddToCart(ctx, "user-1", productID, -1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddToCart(ctx, "user-1", "", 1)
	require.ErrorIs(t, err, ErrValidation)

	_, err = svc.AddToCart(ctx, "user-1", "no-such-product", 1)
	require.ErrorIs(t, err, ErrNotFound)

	assert.Zero(t, countRows(t, db, "cart"))
}

func TestAddToCart_SeparatesUsers(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Maven Build Tool", Price: "49.99", Stock: 75})
	svc := NewCartService(db)

	_, err := svc.AddToCart(ctx, "user-1", productID, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "user-2", productID, 1)
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestGetCart(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	a := createProduct(t, db, productFixture{Name: "Product A", Price: "10.00", Stock: 5})
	b := createProduct(t, db, productFixture{Name: "Product B", Price: "5.25", Stock: 5})
	svc := NewCartService(db)

	_, err := svc.AddToCart(ctx, "user-1", a, 2)
	require.NoError(t, err)
	_, err = svc.AddToCart(ctx, "user-1", b, 1)
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 3, cart.TotalItems)
	assert.True(t, dec("25.25").Equal(cart.Subtotal), cart.Subtotal.String())

	lineTotals := map[string]string{}
	for _, item := range cart.Items {
		lineTotals[item.Name] = item.LineTotal.String()
	}
	assert.Equal(t, "20", lineTotals["Product A"])
	assert.Equal(t, "5.25", lineTotals["Product B"])
}

func TestGetCart_Empty(t *testing.T) {
	svc := NewCartService(newTestDB(t))

	cart, err := svc.GetCart(context.Background(), "user-1")
	require.NoError(t, err)
	assert.NotNil(t, cart.Items)
	assert.Empty(t, cart.Items)
	assert.True(t, cart.Subtotal.IsZero())
	assert.Zero(t, cart.TotalItems)
}

func TestGetCart_ReflectsCurrentPrice(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Product A", Price: "10.00", Stock: 5})
	svc := NewCartService(db)

	_, err := svc.AddToCart(ctx, "user-1", productID, 2)
	require.NoError(t, err)

	_, err = db.Exec("UPDATE products SET price = ? WHERE id = ?", dec("12.50"), productID)
	require.NoError(t, err)

	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.True(t, dec("25").Equal(cart.Subtotal), cart.Subtotal.String())
}

func TestUpdateCartEntry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Product A", Price: "10.00", Stock: 5})
	svc := NewCartService(db)

	entry, err := svc.AddToCart(ctx, "user-1", productID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateCartEntry(ctx, "user-1", entry.ID, 4))
	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 4, cart.Items[0].Quantity)

	// Same value again is still a success.
	require.NoError(t, svc.UpdateCartEntry(ctx, "user-1", entry.ID, 4))
}

func TestUpdateCartEntry_ZeroRemoves(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Product A", Price: "10.00", Stock: 5})
	svc := NewCartService(db)

	entry, err := svc.AddToCart(ctx, "user-1", productID, 2)
	require.NoError(t, err)

	require.NoError(t, svc.UpdateCartEntry(ctx, "user-1", entry.ID, 0))
	assert.Zero(t, countRows(t, db, "cart"))
}

func TestUpdateCartEntry_Rejects(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Product A", Price: "10.00", Stock: 5})
	svc := NewCartService(db)

	entry, err := svc.AddToCart(ctx, "user-1", productID, 2)
	require.NoError(t, err)

	require.ErrorIs(t, svc.UpdateCartEntry(ctx, "user-1", entry.ID, -1), ErrValidation)
	require.ErrorIs(t, svc.UpdateCartEntry(ctx, "user-2", entry.ID, 3), ErrNotFound)
	require.ErrorIs(t, svc.UpdateCartEntry(ctx, "user-1", "missing", 3), ErrNotFound)

	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	assert.Equal(t, 2, cart.Items[0].Quantity)
}

func TestRemoveCartEntry(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Product A", Price: "10.00", Stock: 5})
	svc := NewCartService(db)

	entry, err := svc.AddToCart(ctx, "user-1", productID, 2)
	require.NoError(t, err)

	require.ErrorIs(t, svc.RemoveCartEntry(ctx, "user-2", entry.ID), ErrNotFound)
	require.NoError(t, svc.RemoveCartEntry(ctx, "user-1", entry.ID))
	require.ErrorIs(t, svc.RemoveCartEntry(ctx, "user-1", entry.ID), ErrNotFound)
}

func TestClearCart(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	a := createProduct(t, db, productFixture{Name: "Product A", Price: "10.00", Stock: 5})
	b := createProduct(t, db, productFixture{Name: "Product B", Price: "5.00", Stock: 5})
	svc := NewCartService(db)

	for _, id := range []string{a, b} {
		_, err := svc.AddToCart(ctx, "user-1", id, 1)
		require.NoError(t, err)
	}
	_, err := svc.AddToCart(ctx, "user-2", a, 1)
	require.NoError(t, err)

	require.NoError(t, svc.ClearCart(ctx, "user-1"))
	require.NoError(t, svc.ClearCart(ctx, "user-1"))

	assert.Equal(t, 1, countRows(t, db, "cart"))
}

func TestAddToCart_QuantityCap(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Product A", Price: "10.00", Stock: 5})
	svc := NewCartService(db)

	_, err := svc.AddToCart(ctx, "user-1", productID, MaxCartQuantity+1)
	require.ErrorIs(t, err, ErrValidation)

	entry, err := svc.AddToCart(ctx, "user-1", productID, MaxCartQuantity)
	require.NoError(t, err)
	assert.Equal(t, MaxCartQuantity, entry.Quantity)

	// Merging past the cap is rejected and rolled back.
	_, err = svc.AddToCart(ctx, "user-1", productID, 1)
	require.ErrorIs(t, err, ErrValidation)

	cart, err := svc.GetCart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, MaxCartQuantity, cart.Items[0].Quantity)
}

func TestUpdateCartEntry_QuantityCap(t *testing.T) {
	ctx := context.Background()
	db := newTestDB(t)
	productID := createProduct(t, db, productFixture{Name: "Product A", Price: "10.00", Stock: 5})
	svc := NewCartService(db)

	entry, err := svc.AddToCart(ctx, "user-1", productID, 2)
	require.NoError(t, err)

	require.ErrorIs(t, svc.UpdateCartEntry(ctx, "user-1", entry.ID, MaxCartQuantity+1), ErrValidation)
	require.NoError(t, svc.UpdateCartEntry(ctx, "user-1", entry.ID, MaxCartQuantity))
}
