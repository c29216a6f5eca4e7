// Package cache provides a JSON cache on top of Redis. Cached customers are
// best effort: every balance mutation invalidates the entry, and a cache miss
// simply falls through to the database.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"corepay/internal/models"
)

type CacheService struct {
	client *redis.Client
	ttl    time.Duration
}

func NewCacheService(client *redis.Client, defaultTTL time.Duration) *CacheService {
	return &CacheService{client: client, ttl: defaultTTL}
}

func (s *CacheService) Set(ctx context.Context, key string, value interface{}) error {
	return s.SetWithTTL(ctx, key, value, s.ttl)
}

func (s *CacheService) SetWithTTL(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache value: %w", err)
	}
	return s.client.Set(ctx, key, data, ttl).Err()
}

// Get unmarshals the cached value into dest and reports whether the key was
// present.
func (s *CacheService) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	data, err := s.client.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("failed to get cache value: %w", err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("failed to unmarshal cache value: %w", err)
	}
	return true, nil
}

func (s *CacheService) Delete(ctx context.Context, keys ...string) error {
	return s.client.Del(ctx, keys...).Err()
}

func customerKey(id uint) string {
	return fmt.Sprintf("customer:id:%d", id)
}

// CacheCustomer stores a customer profile, including the wallet balance.
func (s *CacheService) CacheCustomer(ctx context.Context, customer *models.Customer) error {
	if customer == nil {
		return errors.New("cannot cache nil customer")
	}
	return s.Set(ctx, customerKey(customer.ID), customer)
}

func (s *CacheService) GetCustomer(ctx context.Context, id uint) (*models.Customer, error) {
	var customer models.Customer
	found, err := s.Get(ctx, customerKey(id), &customer)
	if err != nil {
		return nil, err
	}
	if !found {
		return nil, redis.Nil
	}
	return &customer, nil
}

func (s *CacheService) InvalidateCustomer(ctx context.Context, id uint) error {
	return s.Delete(ctx, customerKey(id))
}

func (s *CacheService) FlushAll(ctx context.Context) error {
	return s.client.FlushAll(ctx).Err()
}

func (s *CacheService) HealthCheck(ctx context.Context) error {
	if err := s.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection failed: %w", err)
	}
	return nil
}

func (s *CacheService) Close() error {
	return s.client.Close()
}
