package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"

	goredis "github.com/redis/go-redis/v9"
)

// EngineerCache holds a short-lived snapshot of active engineer records.
// Coverage assignments are never cached; only the records feeding the
// matcher are, and every read still recomputes matching from scratch.
type EngineerCache struct {
	client *goredis.Client
	key    string
}

func NewEngineerCache(r *Redis) *EngineerCache {
	return &EngineerCache{
		client: r.Client,
		key:    "engineers:active",
	}
}

// GetActive returns (nil, nil) on a cache miss.
func (c *EngineerCache) GetActive(ctx context.Context) ([]domain.Engineer, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, err
	}

	var engineers []domain.Engineer
	if err := json.Unmarshal(data, &engineers); err != nil {
		return nil, err
	}

	return engineers, nil
}

func (c *EngineerCache) SetActive(ctx context.Context, engineers []domain.Engineer, ttl time.Duration) error {
	b, err := json.Marshal(engineers)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, c.key, b, ttl).Err()
}
