package state

import (
	"context"
	"errors"
	"fmt"

	"mitrasafety/storefront/internal/domain"

	"github.com/redis/go-redis/v9"
)

// CartState loads and saves the cart's line items under a fixed key.
type CartState interface {
	Load(ctx context.Context) ([]domain.LineItem, error)
	Save(ctx context.Context, items []domain.LineItem) error
}

type redisCartState struct {
	redisClient *redis.Client
	key         string
}

func NewRedisCartState(redisClient *redis.Client, key string) CartState {
	if key == "" {
		key = DefaultCartKey
	}
	return &redisCartState{
		redisClient: redisClient,
		key:         key,
	}
}

func (s *redisCartState) Load(ctx context.Context) ([]domain.LineItem, error) {
	val, err := s.redisClient.Get(ctx, s.key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return []domain.LineItem{}, nil // Nothing saved yet
		}
		return nil, fmt.Errorf("failed to get cart %s: %w", s.key, err)
	}

	return decodeSnapshot(val)
}

func (s *redisCartState) Save(ctx context.Context, items []domain.LineItem) error {
	data, err := encodeSnapshot(items)
	if err != nil {
		return err
	}

	if err := s.redisClient.Set(ctx, s.key, data, 0).Err(); err != nil { // No expiration
		return fmt.Errorf("failed to set cart %s: %w", s.key, err)
	}
	return nil
}
