package services

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid password")
	ErrEmailInUse         = errors.New("email already in use")
	ErrSelfRoleChange     = errors.New("cannot change the role of the signed-in account")
	ErrInvalidRole        = errors.New("invalid role")

	ErrNotAuthenticated  = errors.New("not authenticated")
	ErrEmptyCart         = errors.New("cart is empty")
	ErrInsufficientStock = errors.New("insufficient stock")

	ErrUnknownKind   = errors.New("unknown record kind")
	ErrInvalidRecord = errors.New("invalid record")
)
