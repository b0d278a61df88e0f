package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/launchvest/launchvest/internal/domain/entity"
	errs "github.com/launchvest/launchvest/internal/domain/error"
	mockcore "github.com/launchvest/launchvest/mocks/port/core"
)

func TestBcryptHasher(t *testing.T) {
	hasher := NewBcryptHasher(4) // minimum cost keeps the test fast

	t.Run("hash verifies against the original password", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret")

		assert.NoError(t, err)
		assert.NotEqual(t, "s3cret", hash)
		assert.True(t, hasher.Verify(hash, "s3cret"))
	})

	t.Run("wrong password fails verification", func(t *testing.T) {
		hash, err := hasher.Hash("s3cret")

		assert.NoError(t, err)
		assert.False(t, hasher.Verify(hash, "wrong"))
	})

	t.Run("garbage hash fails verification", func(t *testing.T) {
		assert.False(t, hasher.Verify("not-a-hash", "s3cret"))
	})
}

func TestJWTService(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	tp := mockcore.NewFixedTimeProvider(now)

	service := NewJWTService("test-secret", 7*24*time.Hour, tp)

	t.Run("issued token verifies to the same identity", func(t *testing.T) {
		token, err := service.Issue(42, entity.RoleInvestor)
		assert.NoError(t, err)

		claims, err := service.Verify(token)
		assert.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)
		assert.Equal(t, entity.RoleInvestor, claims.Role)
	})

	t.Run("token signed with another secret is rejected", func(t *testing.T) {
		other := NewJWTService("other-secret", 7*24*time.Hour, tp)
		token, err := other.Issue(42, entity.RoleInvestor)
		assert.NoError(t, err)

		_, err = service.Verify(token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("expired token is rejected", func(t *testing.T) {
		token, err := service.Issue(42, entity.RoleInvestor)
		assert.NoError(t, err)

		later := mockcore.NewFixedTimeProvider(now.Add(8 * 24 * time.Hour))
		expired := NewJWTService("test-secret", 7*24*time.Hour, later)

		_, err = expired.Verify(token)
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})

	t.Run("malformed token is rejected", func(t *testing.T) {
		_, err := service.Verify("not.a.token")
		assert.ErrorIs(t, err, errs.ErrUnauthenticated)
	})
}
