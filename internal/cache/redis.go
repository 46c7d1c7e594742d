package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/aarushimanot/ui-mindmirror/internal/repository"
	"github.com/aarushimanot/ui-mindmirror/pkg/model"
	"github.com/redis/go-redis/v9"
)

func NewRedisClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: pass,
		DB:       db,
	})
}

func Ping(ctx context.Context, c *redis.Client) error {
	return c.Ping(ctx).Err()
}

const resetKeyPrefix = "mindmirror:reset:"

// ResetStore keeps password reset tokens in Redis; expiry is left to the key TTL.
type ResetStore struct {
	client *redis.Client
}

func NewResetStore(c *redis.Client) *ResetStore {
	return &ResetStore{client: c}
}

func (s *ResetStore) SaveResetToken(ctx context.Context, t model.ResetToken) error {
	ttl := time.Until(t.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("reset token already expired")
	}
	b, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("marshal reset token: %w", err)
	}
	if err := s.client.Set(ctx, resetKeyPrefix+t.Token, b, ttl).Err(); err != nil {
		return fmt.Errorf("store reset token: %w", err)
	}
	return nil
}

func (s *ResetStore) ConsumeResetToken(ctx context.Context, token string) (model.ResetToken, error) {
	raw, err := s.client.GetDel(ctx, resetKeyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return model.ResetToken{}, fmt.Errorf("reset token %w", repository.ErrNotFound)
		}
		return model.ResetToken{}, fmt.Errorf("load reset token: %w", err)
	}
	var t model.ResetToken
	if err := json.Unmarshal(raw, &t); err != nil {
		return model.ResetToken{}, fmt.Errorf("unmarshal reset token: %w", err)
	}
	return t, nil
}
