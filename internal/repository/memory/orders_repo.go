package memory

import (
	"sync"

	"github.com/eagleeyes/storefront/internal/models"
	"github.com/eagleeyes/storefront/internal/repository"
)

type ordersRepo struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrders(seed []models.Order) repository.Orders {
	return &ordersRepo{orders: append([]models.Order(nil), seed...)}
}

func (r *ordersRepo) Create(o models.Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.orders {
		if existing.ID == o.ID {
			return repository.ErrDuplicateID
		}
	}
	r.orders = append(r.orders, o)
	return nil
}

func (r *ordersRepo) List() []models.Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.Order(nil), r.orders...)
}
