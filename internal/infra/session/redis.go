package session

import (
	"context"
	"encoding/json"

	"github.com/go-redis/redis/v8"

	"github.com/abruzzobarber/abruzzo-api/internal/domain/booking"
)

const keyPrefix = "booking:wizard:"

type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(ctx context.Context, w *booking.Wizard) error {
	b, err := json.Marshal(w)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, keyPrefix+w.ID, b, WizardTTL).Err()
}

func (s *RedisStore) Get(ctx context.Context, id string) (*booking.Wizard, error) {
	b, err := s.client.Get(ctx, keyPrefix+id).Bytes()
	if err == redis.Nil {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}

	var w booking.Wizard
	if err := json.Unmarshal(b, &w); err != nil {
		return nil, err
	}
	return &w, nil
}

func (s *RedisStore) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, keyPrefix+id).Err()
}

var _ Store = (*RedisStore)(nil)
