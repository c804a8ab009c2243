package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/exp/slog"

	"gomarket/internal/domain/product"
)

func newTestCart() (*CartStore, *Store) {
	store := NewStore(NewMemoryBackend(), slog.Default())
	return NewCartStore(store, slog.Default()), store
}

func TestCartStore_MergesSameProduct(t *testing.T) {
	cart, _ := newTestCart()

	p := product.Product{ID: "p1", Title: "Кружка", Price: 500}
	cart.AddItem(p, 2)
	cart.AddItem(p, 3)

	items := cart.Items()
	// одна позиция с суммарным количеством, никогда две
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestCartStore_Total(t *testing.T) {
	cart, _ := newTestCart()

	cart.AddItem(product.Product{ID: "p1", Price: 1000}, 2)
	cart.AddItem(product.Product{ID: "p3", Price: 3500}, 1)

	assert.Equal(t, 5500, cart.Total())
}

func TestCartStore_UpdateQuantity(t *testing.T) {
	cart, _ := newTestCart()

	cart.AddItem(product.Product{ID: "p1", Price: 100}, 1)
	cart.UpdateQuantity("p1", 4)

	items := cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 4, items[0].Quantity)
}

func TestCartStore_UpdateQuantityBelowOneRemoves(t *testing.T) {
	cart, _ := newTestCart()

	cart.AddItem(product.Product{ID: "p1", Price: 100}, 2)
	cart.UpdateQuantity("p1", 0)

	assert.Empty(t, cart.Items())
}

func TestCartStore_RemoveAndClear(t *testing.T) {
	cart, _ := newTestCart()

	cart.AddItem(product.Product{ID: "p1", Price: 100}, 1)
	cart.AddItem(product.Product{ID: "p2", Price: 200}, 1)

	cart.RemoveItem("p1")
	require.Len(t, cart.Items(), 1)
	assert.Equal(t, "p2", cart.Items()[0].Product.ID)

	cart.Clear()
	assert.Empty(t, cart.Items())
}

func TestCartStore_PersistsEveryMutation(t *testing.T) {
	cart, store := newTestCart()

	cart.AddItem(product.Product{ID: "p1", Price: 100}, 2)

	// новый стор поверх того же хранилища видит корзину
	reloaded := NewCartStore(store, slog.Default())
	items := reloaded.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}
