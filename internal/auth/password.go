package auth

import "golang.org/x/crypto/bcrypt"

type Hasher struct{ cost int }

// NewHasher clamps cost into bcrypt's accepted range.
func NewHasher(cost int) Hasher {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return Hasher{cost: cost}
}

// Hash returns "" for an empty password: the account has none.
func (h Hasher) Hash(p string) (string, error) {
	if p == "" {
		return "", nil
	}
	b, err := bcrypt.GenerateFromPassword([]byte(p), h.cost)
	return string(b), err
}

// Matches reports whether plain is the password behind hash. An account without a password
// only matches an empty one.
func (h Hasher) Matches(plain, hash string) bool {
	if hash == "" {
		return plain == ""
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(plain)) == nil
}
