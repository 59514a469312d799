package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := NewTokenManager("secret", "test", time.Hour)

	tok, exp, err := tm.Generate("1", "ADMIN")
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	claims, err := tm.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "1", claims.UserID)
	assert.Equal(t, "ADMIN", claims.Role)
}

func TestTokenManager_Rejects(t *testing.T) {
	tm := NewTokenManager("secret", "test", time.Hour)
	tok, _, err := tm.Generate("1", "ADMIN")
	require.NoError(t, err)

	other := NewTokenManager("other-secret", "test", time.Hour)
	otherIssuer := NewTokenManager("secret", "someone-else", time.Hour)
	expired := NewTokenManager("secret", "test", time.Hour)
	expired.now = func() time.Time { return time.Now().Add(2 * time.Hour) }

	tests := []struct {
		name string
		tm   *TokenManager
		tok  string
	}{
		{name: "garbage", tm: tm, tok: "not-a-token"},
		{name: "wrong secret", tm: other, tok: tok},
		{name: "wrong issuer", tm: otherIssuer, tok: tok},
		{name: "expired", tm: expired, tok: tok},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.tm.Parse(tt.tok)
			assert.ErrorIs(t, err, ErrInvalidToken)
		})
	}
}

func TestHasher(t *testing.T) {
	h := NewHasher(bcrypt.MinCost)

	hash, err := h.Hash("adminpassword")
	require.NoError(t, err)
	assert.NotEqual(t, "adminpassword", hash)

	tests := []struct {
		name  string
		plain string
		hash  string
		want  bool
	}{
		{name: "match", plain: "adminpassword", hash: hash, want: true},
		{name: "mismatch", plain: "wrong", hash: hash, want: false},
		{name: "case matters", plain: "ADMINPASSWORD", hash: hash, want: false},
		{name: "no password set, empty given", plain: "", hash: "", want: true},
		{name: "no password set, something given", plain: "x", hash: "", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, h.Matches(tt.plain, tt.hash))
		})
	}
}

func TestHasher_EmptyPassword(t *testing.T) {
	hash, err := NewHasher(0).Hash("")
	require.NoError(t, err)
	assert.Empty(t, hash)
}
