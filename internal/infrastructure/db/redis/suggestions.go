package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	suggestionPrefix     = "suggest:"
	defaultSuggestionTTL = 5 * time.Minute
)

// SuggestionCache keeps product-name suggestion lists keyed by the
// normalised query. Entries expire after ttl and are dropped wholesale
// whenever the catalog changes.
type SuggestionCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewSuggestionCache(client *redis.Client, ttl time.Duration) *SuggestionCache {
	if ttl <= 0 {
		ttl = defaultSuggestionTTL
	}
	return &SuggestionCache{client: client, ttl: ttl}
}

func (c *SuggestionCache) Get(ctx context.Context, query string) ([]string, bool, error) {
	data, err := c.client.Get(ctx, suggestionPrefix+query).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("redis get suggestions: %w", err)
	}

	var names []string
	if err := json.Unmarshal(data, &names); err != nil {
		return nil, false, fmt.Errorf("unmarshal suggestions: %w", err)
	}
	return names, true, nil
}

func (c *SuggestionCache) Set(ctx context.Context, query string, names []string) error {
	if names == nil {
		names = []string{}
	}
	data, err := json.Marshal(names)
	if err != nil {
		return fmt.Errorf("marshal suggestions: %w", err)
	}
	if err := c.client.Set(ctx, suggestionPrefix+query, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("redis set suggestions: %w", err)
	}
	return nil
}

// Invalidate removes every cached suggestion list.
func (c *SuggestionCache) Invalidate(ctx context.Context) error {
	iter := c.client.Scan(ctx, 0, suggestionPrefix+"*", 100).Iterator()
	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return fmt.Errorf("redis scan suggestions: %w", err)
	}
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("redis del suggestions: %w", err)
	}
	return nil
}
