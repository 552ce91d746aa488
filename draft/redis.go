package draft

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

type redisStore struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisStore keeps drafts in Redis so they survive restarts and are
// shared across instances. Each draft expires after ttl.
func NewRedisStore(client *redis.Client, ttl time.Duration) Store {
	return &redisStore{client: client, ttl: ttl}
}

func (s *redisStore) Save(ctx context.Context, formID int, d Draft) error {
	data, err := json.Marshal(d)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, key(formID), data, s.ttl).Err()
}

func (s *redisStore) Load(ctx context.Context, formID int) (Draft, bool, error) {
	data, err := s.client.Get(ctx, key(formID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Draft{}, false, nil
	}
	if err != nil {
		return Draft{}, false, err
	}

	var d Draft
	if err := json.Unmarshal(data, &d); err != nil {
		return Draft{}, false, err
	}
	return d, true, nil
}

func (s *redisStore) Clear(ctx context.Context, formID int) error {
	return s.client.Del(ctx, key(formID)).Err()
}

func key(formID int) string {
	return fmt.Sprintf("form:%d:draft", formID)
}
