package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/justsurfingit/Hiring-Form-Builder/internal/formschema"
)

// TemplateCache caches the full template library listing.
type TemplateCache interface {
	Get(ctx context.Context) ([]formschema.FieldDefinition, bool, error)
	Set(ctx context.Context, templates []formschema.FieldDefinition) error
	Invalidate(ctx context.Context) error
}

// RedisTemplateCache keeps the listing under a single Redis key
type RedisTemplateCache struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

// NewRedisTemplateCache creates a new Redis-backed template cache
func NewRedisTemplateCache(client *redis.Client, key string, ttl time.Duration) *RedisTemplateCache {
	if key == "" {
		key = "templates:all"
	}
	if ttl == 0 {
		ttl = 5 * time.Minute
	}
	return &RedisTemplateCache{
		client: client,
		key:    key,
		ttl:    ttl,
	}
}

func (c *RedisTemplateCache) Get(ctx context.Context) ([]formschema.FieldDefinition, bool, error) {
	data, err := c.client.Get(ctx, c.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis get: %w", err)
	}

	var templates []formschema.FieldDefinition
	if err := json.Unmarshal(data, &templates); err != nil {
		return nil, false, fmt.Errorf("unmarshal templates: %w", err)
	}
	return templates, true, nil
}

func (c *RedisTemplateCache) Set(ctx context.Context, templates []formschema.FieldDefinition) error {
	data, err := json.Marshal(templates)
	if err != nil {
		return fmt.Errorf("marshal templates: %w", err)
	}
	if err := c.client.Set(ctx, c.key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set: %w", err)
	}
	return nil
}

func (c *RedisTemplateCache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, c.key).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
