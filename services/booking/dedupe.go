package booking

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"

	"mltransport/utils"
)

// DedupeStore records which orders already had their notifications
// dispatched. It must be shared state outside the process, since the
// orchestrator itself is stateless across invocations.
type DedupeStore interface {
	// MarkNotified atomically claims the order for notification. It
	// returns true exactly once per order id.
	MarkNotified(ctx context.Context, orderID string) (bool, error)
}

// RedisDedupeStore implements DedupeStore with a SETNX marker per order.
type RedisDedupeStore struct {
	Client *redis.Client
	TTL    time.Duration
}

func NewRedisDedupeStore(client *redis.Client) *RedisDedupeStore {
	return &RedisDedupeStore{Client: client, TTL: utils.NotifiedTTL}
}

func (s *RedisDedupeStore) MarkNotified(ctx context.Context, orderID string) (bool, error) {
	key := utils.NotifiedKeyPrefix + orderID
	return s.Client.SetNX(ctx, key, time.Now().UTC().Format(time.RFC3339), s.TTL).Result()
}
