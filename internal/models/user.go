package models

import "strings"

type Role string

const (
	RoleCustomer Role = "CUSTOMER"
	RoleAdmin    Role = "ADMIN"
	RoleTrainer  Role = "TRAINER"
)

// Roles lists every role in the order the admin dashboard offers them.
var Roles = []Role{RoleCustomer, RoleAdmin, RoleTrainer}

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleAdmin, RoleTrainer:
		return true
	}
	return false
}

type User struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Role         Role   `json:"role"`
	PasswordHash string `json:"-"`
}

// SameEmail compares addresses the way the directory does: case-insensitively.
func (u User) SameEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(u.Email), strings.TrimSpace(email))
}
