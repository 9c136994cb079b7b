package repository

import (
	"context"
	"errors"
	"fmt"

	domainRepo "go-doctor-appointment/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type redisAppointmentStore struct {
	client *redis.Client
	key    string
}

// NewRedisAppointmentStore keeps the appointment blob under a single redis key with no TTL
func NewRedisAppointmentStore(client *redis.Client, key string) domainRepo.AppointmentStore {
	return &redisAppointmentStore{
		client: client,
		key:    key,
	}
}

func (s *redisAppointmentStore) LoadBlob(ctx context.Context) (string, bool, error) {
	blob, err := s.client.Get(ctx, s.key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("redis get %s: %w", s.key, err)
	}
	return blob, true, nil
}

func (s *redisAppointmentStore) SaveBlob(ctx context.Context, blob string) error {
	if err := s.client.Set(ctx, s.key, blob, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}
	return nil
}
