package disease

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// seenTTL bounds how long a user's played-disease set lives. One day keeps
// the set aligned with the daily disease rotation.
const seenTTL = 24 * time.Hour

// RedisSeenStore keeps per-user seen-disease sets in redis.
type RedisSeenStore struct {
	client *redis.Client
}

func NewRedisSeenStore(client *redis.Client) *RedisSeenStore {
	return &RedisSeenStore{client: client}
}

func seenKey(userID string) string { return "seen:" + userID }

func (s *RedisSeenStore) Seen(ctx context.Context, userID string) (map[string]bool, error) {
	members, err := s.client.SMembers(ctx, seenKey(userID)).Result()
	if err != nil {
		return nil, err
	}
	seen := make(map[string]bool, len(members))
	for _, m := range members {
		seen[m] = true
	}
	return seen, nil
}

func (s *RedisSeenStore) MarkSeen(ctx context.Context, userID, disease string) error {
	key := seenKey(userID)
	if err := s.client.SAdd(ctx, key, disease).Err(); err != nil {
		return err
	}
	return s.client.Expire(ctx, key, seenTTL).Err()
}
