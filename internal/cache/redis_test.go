package cache

import (
	"context"
	"testing"
	"time"

	"github.com/aarushimanot/ui-mindmirror/internal/repository"
	"github.com/aarushimanot/ui-mindmirror/pkg/model"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// nothing listens on port 1
func unreachable(t *testing.T) *ResetStore {
	t.Helper()
	c := NewRedisClient("127.0.0.1:1", "", 0)
	t.Cleanup(func() { _ = c.Close() })
	return NewResetStore(c)
}

func TestSaveResetTokenRejectsExpired(t *testing.T) {
	s := unreachable(t)
	err := s.SaveResetToken(context.Background(), model.ResetToken{
		Token:     "t",
		UserID:    uuid.New(),
		ExpiresAt: time.Now().Add(-time.Second),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expired")
}

func TestConsumeResetTokenConnectionError(t *testing.T) {
	s := unreachable(t)
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	_, err := s.ConsumeResetToken(ctx, "t")
	require.Error(t, err)
	assert.NotErrorIs(t, err, repository.ErrNotFound)
	assert.Error(t, Ping(ctx, s.client))
}
