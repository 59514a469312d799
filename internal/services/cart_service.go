package services

import (
	"log/slog"
	"sync"

	"github.com/eagleeyes/storefront/internal/cart"
	"github.com/eagleeyes/storefront/internal/metrics"
	"github.com/eagleeyes/storefront/internal/models"
)

// CartSnapshot is the cart as the storefront renders it.
type CartSnapshot struct {
	Items []models.CartItem `json:"items"`
	Count int               `json:"count"`
	Total int64             `json:"total"`
}

// CartService holds the session's cart and applies cart actions one at a time.
// Every operation is total: none of them fail.
type CartService struct {
	mu    sync.Mutex
	items []models.CartItem
	log   *slog.Logger
}

func NewCartService(log *slog.Logger) *CartService {
	return &CartService{items: []models.CartItem{}, log: log}
}

// Add stores a snapshot of item, or raises the quantity of the line already holding it.
// A quantity of 0 means the default of one; a negative quantity is ignored, so every line
// keeps a positive quantity. Stock is not checked.
func (s *CartService) Add(item models.Cartable, quantity int) {
	switch {
	case quantity == 0:
		quantity = 1
	case quantity < 0:
		s.log.Debug("cart add ignored", "quantity", quantity)
		return
	}
	s.dispatch("add", cart.AddItem{Item: item, Quantity: quantity})
}

func (s *CartService) Remove(itemID string) {
	s.dispatch("remove", cart.RemoveItem{ItemID: itemID})
}

// UpdateQuantity replaces a line's quantity; quantity <= 0 removes the line.
func (s *CartService) UpdateQuantity(itemID string, quantity int) {
	s.dispatch("update", cart.UpdateQuantity{ItemID: itemID, Quantity: quantity})
}

func (s *CartService) Clear() {
	s.dispatch("clear", cart.Clear{})
}

func (s *CartService) Items() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.CartItem(nil), s.items...)
}

func (s *CartService) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Count(s.items)
}

func (s *CartService) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Total(s.items)
}

// Snapshot reads items, count and total under one lock.
func (s *CartService) Snapshot() CartSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return CartSnapshot{
		Items: append([]models.CartItem{}, s.items...),
		Count: cart.Count(s.items),
		Total: cart.Total(s.items),
	}
}

func (s *CartService) dispatch(op string, a cart.Action) {
	s.mu.Lock()
	s.items = cart.Reduce(s.items, a)
	n := cart.Count(s.items)
	s.mu.Unlock()

	metrics.CartOperations.WithLabelValues(op).Inc()
	s.log.Debug("cart", "op", op, "count", n)
}
