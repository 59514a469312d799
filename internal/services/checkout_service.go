package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/eagleeyes/storefront/internal/config"
	"github.com/eagleeyes/storefront/internal/events"
	"github.com/eagleeyes/storefront/internal/logger"
	"github.com/eagleeyes/storefront/internal/metrics"
	"github.com/eagleeyes/storefront/internal/models"
	repo "github.com/eagleeyes/storefront/internal/repository"
)

// CheckoutService turns the signed-in user's cart into an order once payment goes through.
type CheckoutService struct {
	users    *UserService
	cart     *CartService
	products repo.Collection[models.Product]
	orders   repo.Orders
	gateway  PaymentGateway
	pub      events.Publisher
	c        config.Config
	log      *slog.Logger
	now      func() time.Time
}

func NewCheckoutService(
	users *UserService,
	cart *CartService,
	products repo.Collection[models.Product],
	orders repo.Orders,
	gateway PaymentGateway,
	pub events.Publisher,
	c config.Config,
	log *slog.Logger,
) *CheckoutService {
	return &CheckoutService{
		users:    users,
		cart:     cart,
		products: products,
		orders:   orders,
		gateway:  gateway,
		pub:      pub,
		c:        c,
		log:      log,
		now:      time.Now,
	}
}

// Checkout charges the cart total, records the order as Processing and empties the cart.
func (s *CheckoutService) Checkout(ctx context.Context, ship models.ShippingAddress) (models.Order, error) {
	const op = "services.CheckoutService.Checkout"

	u := s.users.CurrentUser()
	if !IsAuthenticated(u) {
		return models.Order{}, ErrNotAuthenticated
	}
	snap := s.cart.Snapshot()
	if snap.Count == 0 {
		return models.Order{}, ErrEmptyCart
	}
	if s.c.EnforceStock {
		if err := s.checkStock(snap.Items); err != nil {
			return models.Order{}, err
		}
	}

	receipt, err := s.gateway.Charge(ctx, u.Email, snap.Total)
	if err != nil {
		s.log.Warn("payment not completed", "user_id", u.ID, logger.Err(err))
		return models.Order{}, fmt.Errorf("%s: payment: %w", op, err)
	}

	order := models.Order{
		ID:       uuid.NewString(),
		Date:     s.now().Format("2006-01-02"),
		Items:    snap.Items,
		Total:    snap.Total,
		Status:   models.OrderProcessing,
		UserID:   u.ID,
		Shipping: &ship,
	}
	if err := s.orders.Create(order); err != nil {
		return models.Order{}, fmt.Errorf("%s: %w", op, err)
	}
	s.cart.Clear()

	metrics.OrdersPlaced.Inc()
	metrics.OrderRevenue.Add(float64(order.Total))
	s.log.Info("order placed", "order_id", order.ID, "user_id", u.ID, "total", order.Total, "payment_ref", receipt.Reference)

	ev := events.OrderPlaced{
		OrderID: order.ID,
		UserID:  u.ID,
		Date:    order.Date,
		Lines:   len(order.Items),
		Total:   order.Total,
	}
	if err := s.pub.PublishEvent(ctx, events.TopicOrderPlaced, order.ID, ev); err != nil {
		s.log.Warn("publish order placed", logger.Err(err))
	}
	return order, nil
}

func (s *CheckoutService) checkStock(items []models.CartItem) error {
	for _, line := range items {
		p, ok := line.Item.(models.Product)
		if !ok {
			continue
		}
		live, err := s.products.Get(p.ID)
		if errors.Is(err, repo.ErrNotFound) {
			continue
		}
		if err != nil {
			return err
		}
		if line.Quantity > live.Stock {
			return fmt.Errorf("%w: %s (%d requested, %d available)", ErrInsufficientStock, live.Name, line.Quantity, live.Stock)
		}
	}
	return nil
}

// OrderHistory is the seeded demo history followed by the user's own orders.
func (s *CheckoutService) OrderHistory(userID string) []models.Order {
	var out []models.Order
	for _, o := range s.orders.List() {
		if o.UserID == "" || o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}
