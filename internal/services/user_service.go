package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/eagleeyes/storefront/internal/auth"
	"github.com/eagleeyes/storefront/internal/catalog"
	"github.com/eagleeyes/storefront/internal/config"
	"github.com/eagleeyes/storefront/internal/events"
	"github.com/eagleeyes/storefront/internal/logger"
	"github.com/eagleeyes/storefront/internal/metrics"
	"github.com/eagleeyes/storefront/internal/models"
	repo "github.com/eagleeyes/storefront/internal/repository"
	"github.com/eagleeyes/storefront/internal/worker"
)

// UserService owns the user directory and the single active session.
//
// The session stores only the signed-in user's id and resolves it against the directory on
// every read, so name and role changes show up in the session immediately.
type UserService struct {
	r      repo.Users
	c      config.Config
	hasher auth.Hasher
	wp     *worker.Pool
	pub    events.Publisher
	log    *slog.Logger
	ids    *idSource

	mu        sync.RWMutex
	currentID string
}

func NewUserService(r repo.Users, c config.Config, wp *worker.Pool, pub events.Publisher, log *slog.Logger) *UserService {
	return &UserService{
		r:      r,
		c:      c,
		hasher: auth.NewHasher(c.BcryptCost),
		wp:     wp,
		pub:    pub,
		log:    log,
		ids:    newIDSource("user_"),
	}
}

// SeedUsers hashes the demo passwords into directory entries.
func SeedUsers(h auth.Hasher, seed []catalog.SeedUser) ([]models.User, error) {
	out := make([]models.User, 0, len(seed))
	for _, s := range seed {
		hash, err := h.Hash(s.Password)
		if err != nil {
			return nil, fmt.Errorf("services.SeedUsers %s: %w", s.Email, err)
		}
		u := s.User
		u.PasswordHash = hash
		out = append(out, u)
	}
	return out, nil
}

// Login waits the simulated latency, then signs in the user whose email matches
// case-insensitively.
func (s *UserService) Login(ctx context.Context, email, password string) (models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := worker.Delay(ctx, s.wp, s.c.AuthLatency, func() (models.User, error) {
		return s.login(email, password)
	})
	metrics.AuthAttempts.WithLabelValues("login", outcome(err)).Inc()
	if err != nil {
		s.log.Info("login failed", "email", email, logger.Err(err))
		return models.User{}, err
	}
	s.log.Info("login", "user_id", u.ID, "role", u.Role)
	return u, nil
}

func (s *UserService) login(email, password string) (models.User, error) {
	u, err := s.r.GetByEmail(email)
	if errors.Is(err, repo.ErrNotFound) {
		return models.User{}, ErrUserNotFound
	}
	if err != nil {
		return models.User{}, err
	}
	if !s.hasher.Matches(password, u.PasswordHash) {
		return models.User{}, ErrInvalidCredentials
	}
	s.setCurrent(u.ID)
	return u, nil
}

// Register waits the simulated latency, then creates a CUSTOMER and signs it in.
func (s *UserService) Register(ctx context.Context, name, email, password string) (models.User, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	u, err := worker.Delay(ctx, s.wp, s.c.AuthLatency, func() (models.User, error) {
		return s.register(name, email, password)
	})
	metrics.AuthAttempts.WithLabelValues("register", outcome(err)).Inc()
	if err != nil {
		s.log.Info("register failed", "email", email, logger.Err(err))
		return models.User{}, err
	}
	s.log.Info("registered", "user_id", u.ID)
	return u, nil
}

func (s *UserService) register(name, email, password string) (models.User, error) {
	const op = "services.UserService.Register"

	if _, err := s.r.GetByEmail(email); err == nil {
		return models.User{}, ErrEmailInUse
	}
	u := models.User{ID: s.ids.next(), Name: name, Email: email, Role: models.RoleCustomer}
	hash, err := s.hasher.Hash(password)
	if err != nil {
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	u.PasswordHash = hash

	if err := s.r.Create(u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return models.User{}, ErrEmailInUse
		}
		return models.User{}, fmt.Errorf("%s: %w", op, err)
	}
	s.setCurrent(u.ID)
	return u, nil
}

func (s *UserService) Logout() {
	s.mu.Lock()
	id := s.currentID
	s.currentID = ""
	s.mu.Unlock()
	if id != "" {
		s.log.Info("logout", "user_id", id)
	}
}

// CurrentUser returns the signed-in user, or nil.
func (s *UserService) CurrentUser() *models.User {
	s.mu.RLock()
	id := s.currentID
	s.mu.RUnlock()
	if id == "" {
		return nil
	}
	u, err := s.r.GetByID(id)
	if err != nil {
		return nil
	}
	return &u
}

// UpdateUserRole changes a directory entry's role. Unknown ids are ignored. The signed-in
// account cannot change its own role.
func (s *UserService) UpdateUserRole(ctx context.Context, userID string, role models.Role) error {
	if !role.Valid() {
		return ErrInvalidRole
	}
	cur := s.CurrentUser()
	if cur != nil && cur.ID == userID {
		return ErrSelfRoleChange
	}
	prev, err := s.r.SetRole(userID, role)
	if err != nil {
		return nil
	}
	metrics.AdminMutations.WithLabelValues("user", "role").Inc()
	s.log.Info("role changed", "user_id", userID, "from", prev, "to", role)

	ev := events.AdminAction{
		EntityType: "user",
		EntityID:   userID,
		Action:     "role_changed",
		Details:    map[string]any{"from": string(prev), "to": string(role)},
	}
	if cur != nil {
		ev.ActorID = cur.ID
	}
	if err := s.pub.PublishEvent(ctx, events.TopicAdminAudit, userID, ev); err != nil {
		s.log.Warn("publish role change", logger.Err(err))
	}
	return nil
}

// UpdateUserProfile renames a directory entry. Unknown ids are ignored.
func (s *UserService) UpdateUserProfile(userID, name string) {
	if err := s.r.SetName(userID, name); err == nil {
		s.log.Info("profile updated", "user_id", userID)
	}
}

func (s *UserService) List() []models.User { return s.r.List() }

func (s *UserService) setCurrent(id string) {
	s.mu.Lock()
	s.currentID = id
	s.mu.Unlock()
}

func (s *UserService) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.c.AsyncTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.c.AsyncTimeout)
}

// IsAuthenticated guards pages that need any signed-in user.
func IsAuthenticated(u *models.User) bool { return u != nil }

// IsAdmin guards the dashboard.
func IsAdmin(u *models.User) bool { return u != nil && u.Role == models.RoleAdmin }

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrInvalidCredentials):
		return "invalid_credentials"
	case errors.Is(err, ErrEmailInUse):
		return "email_in_use"
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return "canceled"
	}
	return "error"
}
