package redis

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/Rjayskie12/hazards-sub000/internal/domain"
	"github.com/Rjayskie12/hazards-sub000/pkg/e"

	"github.com/redis/go-redis/v9"
)

// EventQueue is the report status-change notification queue consumed by the
// webhook sender.
type EventQueue struct {
	client *redis.Client
	key    string
}

func NewEventQueue(client *redis.Client, key string) *EventQueue {
	return &EventQueue{client: client, key: key}
}

func (q *EventQueue) Enqueue(ctx context.Context, payload domain.ReportEventPayload) error {
	b, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return q.client.LPush(ctx, q.key, b).Err()
}

func (q *EventQueue) BRPop(ctx context.Context, timeout time.Duration) (domain.ReportEventPayload, error) {
	var p domain.ReportEventPayload

	res, err := q.client.BRPop(ctx, timeout, q.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return p, e.ErrQueueEmpty
		}
		return p, err
	}
	if len(res) < 2 {
		return p, redis.Nil
	}
	if err := json.Unmarshal([]byte(res[1]), &p); err != nil {
		return p, err
	}
	return p, nil
}
