package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/eagleeyes/storefront/internal/worker"
)

type Receipt struct {
	Reference string    `json:"reference"`
	Email     string    `json:"email"`
	Amount    int64     `json:"amount"`
	PaidAt    time.Time `json:"paid_at"`
}

// PaymentGateway charges the customer for an order total.
type PaymentGateway interface {
	Charge(ctx context.Context, email string, amount int64) (Receipt, error)
}

// SimulatedGateway stands in for the card payment popup. It waits the configured latency on
// the worker pool and then approves. It has no decline path: the only errors it returns
// come from ctx ending first or from the pool being stopped.
type SimulatedGateway struct {
	wp      *worker.Pool
	latency time.Duration
	timeout time.Duration
}

func NewSimulatedGateway(wp *worker.Pool, latency, timeout time.Duration) *SimulatedGateway {
	return &SimulatedGateway{wp: wp, latency: latency, timeout: timeout}
}

func (g *SimulatedGateway) Charge(ctx context.Context, email string, amount int64) (Receipt, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}
	return worker.Delay(ctx, g.wp, g.latency, func() (Receipt, error) {
		return Receipt{
			Reference: "PSK_" + uuid.NewString(),
			Email:     email,
			Amount:    amount,
			PaidAt:    time.Now().UTC(),
		}, nil
	})
}
