package repository

import (
	"errors"

	"github.com/eagleeyes/storefront/internal/models"
)

var (
	ErrNotFound       = errors.New("not found")
	ErrDuplicateEmail = errors.New("email already exists")
	ErrDuplicateID    = errors.New("id already exists")
)

type Users interface {
	// Create appends u, failing with ErrDuplicateEmail on a case-insensitive email match.
	Create(u models.User) error
	GetByID(id string) (models.User, error)
	GetByEmail(email string) (models.User, error)
	List() []models.User
	// SetName and SetRole each change a single field atomically, so concurrent edits of
	// different fields never overwrite one another.
	SetName(id, name string) error
	SetRole(id string, role models.Role) (prev models.Role, err error)
}

// Collection is one ordered catalog collection keyed by record id.
type Collection[T models.Record] interface {
	List() []T
	Get(id string) (T, error)
	Exists(id string) bool
	Add(rec T) error
	Replace(rec T) error
	Delete(id string) error
}

type Orders interface {
	Create(o models.Order) error
	List() []models.Order
}

type AuditLogs interface {
	Create(l models.AuditLog) error
	List() []models.AuditLog
}
