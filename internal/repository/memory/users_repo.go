package memory

import (
	"sync"

	"github.com/eagleeyes/storefront/internal/models"
	"github.com/eagleeyes/storefront/internal/repository"
)

type usersRepo struct {
	mu    sync.RWMutex
	users []models.User
}

func NewUsers(seed []models.User) repository.Users {
	return &usersRepo{users: append([]models.User(nil), seed...)}
}

func (r *usersRepo) Create(u models.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.SameEmail(u.Email) {
			return repository.ErrDuplicateEmail
		}
		if existing.ID == u.ID {
			return repository.ErrDuplicateID
		}
	}
	r.users = append(r.users, u)
	return nil
}

func (r *usersRepo) GetByID(id string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (r *usersRepo) GetByEmail(email string) (models.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, u := range r.users {
		if u.SameEmail(email) {
			return u, nil
		}
	}
	return models.User{}, repository.ErrNotFound
}

func (r *usersRepo) List() []models.User {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]models.User(nil), r.users...)
}

// SetName renames one entry under the write lock; no other field is touched.
func (r *usersRepo) SetName(id, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return repository.ErrNotFound
	}
	r.users[i].Name = name
	return nil
}

// SetRole changes one entry's role and reports the role it replaced.
func (r *usersRepo) SetRole(id string, role models.Role) (models.Role, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.index(id)
	if i < 0 {
		return "", repository.ErrNotFound
	}
	prev := r.users[i].Role
	r.users[i].Role = role
	return prev, nil
}

func (r *usersRepo) index(id string) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}
