package services

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/eagleeyes/storefront/internal/auth"
	"github.com/eagleeyes/storefront/internal/catalog"
	"github.com/eagleeyes/storefront/internal/config"
	"github.com/eagleeyes/storefront/internal/logger"
	"github.com/eagleeyes/storefront/internal/repository/memory"
	"github.com/eagleeyes/storefront/internal/worker"
)

type published struct {
	topic string
	key   string
	event any
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []published
}

func (p *recordingPublisher) PublishEvent(_ context.Context, topic, key string, event any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, published{topic: topic, key: key, event: event})
	return nil
}

func (p *recordingPublisher) all() []published {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]published(nil), p.events...)
}

type fixture struct {
	cfg      config.Config
	repos    memory.Repositories
	pool     *worker.Pool
	pub      *recordingPublisher
	users    *UserService
	cart     *CartService
	catalog  *CatalogService
	admin    *AdminService
	checkout *CheckoutService
}

func testConfig() config.Config {
	return config.Config{
		Env:          "test",
		AsyncTimeout: time.Second,
		WorkerCount:  2,
		BcryptCost:   bcrypt.MinCost,
	}
}

func newFixture(t *testing.T, cfg config.Config) *fixture {
	t.Helper()

	seed, err := SeedUsers(auth.NewHasher(cfg.BcryptCost), catalog.Users())
	require.NoError(t, err)

	f := &fixture{cfg: cfg, repos: memory.NewRepositories(seed), pool: worker.NewPool(cfg.WorkerCount), pub: &recordingPublisher{}}
	t.Cleanup(f.pool.Stop)

	log := logger.Discard()
	f.users = NewUserService(f.repos.Users, cfg, f.pool, f.pub, log)
	f.cart = NewCartService(log)
	f.catalog = NewCatalogService(f.repos.Products, f.repos.Courses, f.repos.BlogPosts)
	f.admin = NewAdminService(f.repos.Products, f.repos.Courses, f.repos.BlogPosts, f.pub, log)
	gw := NewSimulatedGateway(f.pool, cfg.PaymentLatency, cfg.AsyncTimeout)
	f.checkout = NewCheckoutService(f.users, f.cart, f.repos.Products, f.repos.Orders, gw, f.pub, cfg, log)
	return f
}
