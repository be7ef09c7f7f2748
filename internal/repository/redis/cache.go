package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Rrens/fitcoach/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	trainingCachePrefix = "training:current:"
	trainingCacheTTL    = 10 * time.Minute
)

// TrainingCache caches the current plan view per user in Redis
type TrainingCache struct {
	client *Client
	ttl    time.Duration
}

// NewTrainingCache creates a new training cache
func NewTrainingCache(client *Client) *TrainingCache {
	return &TrainingCache{client: client, ttl: trainingCacheTTL}
}

func trainingKey(userID uuid.UUID) string {
	return fmt.Sprintf("%s%s", trainingCachePrefix, userID.String())
}

// Get retrieves the cached plan of a user; (nil, nil) on a miss
func (c *TrainingCache) Get(ctx context.Context, userID uuid.UUID) (*domain.TrainingView, error) {
	data, err := c.client.rdb.Get(ctx, trainingKey(userID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read cached training: %w", err)
	}

	var view domain.TrainingView
	if err := json.Unmarshal(data, &view); err != nil {
		return nil, fmt.Errorf("failed to unmarshal training: %w", err)
	}

	return &view, nil
}

// Set caches the plan of a user
func (c *TrainingCache) Set(ctx context.Context, view *domain.TrainingView) error {
	data, err := json.Marshal(view)
	if err != nil {
		return fmt.Errorf("failed to marshal training: %w", err)
	}

	return c.client.rdb.Set(ctx, trainingKey(view.UserID), data, c.ttl).Err()
}

// Invalidate removes the cached plan of a user
func (c *TrainingCache) Invalidate(ctx context.Context, userID uuid.UUID) error {
	return c.client.rdb.Del(ctx, trainingKey(userID)).Err()
}
