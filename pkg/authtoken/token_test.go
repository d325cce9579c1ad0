package authtoken

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestManager_IssueAndParse(t *testing.T) {
	manager := NewManager("test-secret", time.Hour)

	t.Run("round trip preserves claims", func(t *testing.T) {
		token, err := manager.Issue(42, true)
		assert.NoError(t, err)
		assert.NotEmpty(t, token)

		claims, err := manager.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(42), claims.UserID)
		assert.True(t, claims.IsAdmin)
	})

	t.Run("regular user has no admin flag", func(t *testing.T) {
		token, err := manager.Issue(7, false)
		assert.NoError(t, err)

		claims, err := manager.Parse(token)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), claims.UserID)
		assert.False(t, claims.IsAdmin)
	})

	t.Run("rejects token signed with another secret", func(t *testing.T) {
		other := NewManager("other-secret", time.Hour)
		token, err := other.Issue(42, false)
		assert.NoError(t, err)

		_, err = manager.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects expired token", func(t *testing.T) {
		expired := NewManager("test-secret", -time.Minute)
		token, err := expired.Issue(42, false)
		assert.NoError(t, err)

		_, err = manager.Parse(token)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("rejects garbage", func(t *testing.T) {
		_, err := manager.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}
