package client

import (
	"sync"

	"golang.org/x/exp/slog"

	"gomarket/internal/domain/product"
)

// CartItem — позиция корзины. Инвариант: не более одной позиции
// на товар, quantity ≥ 1.
type CartItem struct {
	Product  product.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// CartStore — корзина в памяти, сохраняемая в локальное хранилище
// при каждой мутации. Сетевых вызовов не делает.
type CartStore struct {
	mu    sync.Mutex
	store *Store
	log   *slog.Logger
	items []CartItem
}

func NewCartStore(store *Store, log *slog.Logger) *CartStore {
	return &CartStore{
		store: store,
		log:   log,
		items: Load(store, keyCart, []CartItem{}),
	}
}

// AddItem добавляет товар: повторное добавление того же товара
// сливается в одну позицию суммированием количества.
func (c *CartStore) AddItem(p product.Product, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == p.ID {
			c.items[i].Quantity += quantity
			c.persist()
			return
		}
	}

	c.items = append(c.items, CartItem{Product: p, Quantity: quantity})
	c.persist()
}

// UpdateQuantity заменяет количество у позиции. Количество < 1
// трактуется как удаление позиции: молчаливое хранение
// неположительного количества нарушило бы инвариант корзины.
func (c *CartStore) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		c.RemoveItem(productID)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	for i := range c.items {
		if c.items[i].Product.ID == productID {
			c.items[i].Quantity = quantity
			c.persist()
			return
		}
	}
}

// RemoveItem удаляет позицию по id товара.
func (c *CartStore) RemoveItem(productID string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	filtered := c.items[:0]
	for _, item := range c.items {
		if item.Product.ID != productID {
			filtered = append(filtered, item)
		}
	}
	c.items = filtered
	c.persist()
}

// Clear опустошает корзину (например, после оформления заказа).
func (c *CartStore) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
	c.persist()
}

// Items возвращает копию позиций.
func (c *CartStore) Items() []CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make([]CartItem, len(c.items))
	copy(out, c.items)
	return out
}

// Total — сумма корзины: Σ цена × количество.
func (c *CartStore) Total() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	total := 0
	for _, item := range c.items {
		total += item.Product.Price * item.Quantity
	}
	return total
}

func (c *CartStore) persist() {
	Save(c.store, keyCart, c.items)
}
