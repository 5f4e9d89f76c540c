// Copyright (c) 2026 Picstream. All rights reserved.

package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/vantran/picstream/internal/platform/constants"
)

// inboxCacheTTL keeps summaries fresh enough that a new message shows up
// quickly even if invalidation is missed.
const inboxCacheTTL = 30 * time.Second

// RedisInboxCache implements [InboxCache] over a shared Redis client.
type RedisInboxCache struct {
	client *redis.Client
}

// NewRedisInboxCache constructs a Redis backed inbox cache.
func NewRedisInboxCache(client *redis.Client) *RedisInboxCache {
	return &RedisInboxCache{client: client}
}

func inboxKey(userID string) string {
	return constants.RedisPrefixInbox + userID
}

/*
Get returns the cached summaries for the user.

Returns:
  - []ConversationSummary: Cached summaries, valid only when found is true
  - bool: Whether the key was present
  - error: Transport or decode failures; a plain miss is not an error
*/
func (cache *RedisInboxCache) Get(context context.Context, userID string) ([]ConversationSummary, bool, error) {
	payload, err := cache.client.Get(context, inboxKey(userID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("redis_inbox_cache_get_failed: %w", err)
	}

	var summaries []ConversationSummary
	if err := json.Unmarshal(payload, &summaries); err != nil {
		return nil, false, fmt.Errorf("redis_inbox_cache_decode_failed: %w", err)
	}

	return summaries, true, nil
}

// Set stores the summaries for the user under a short TTL.
func (cache *RedisInboxCache) Set(context context.Context, userID string, summaries []ConversationSummary) error {
	payload, err := json.Marshal(summaries)
	if err != nil {
		return fmt.Errorf("redis_inbox_cache_encode_failed: %w", err)
	}

	if err := cache.client.Set(context, inboxKey(userID), payload, inboxCacheTTL).Err(); err != nil {
		return fmt.Errorf("redis_inbox_cache_set_failed: %w", err)
	}

	return nil
}

// Invalidate drops the cached summaries for the user.
func (cache *RedisInboxCache) Invalidate(context context.Context, userID string) error {
	if err := cache.client.Del(context, inboxKey(userID)).Err(); err != nil {
		return fmt.Errorf("redis_inbox_cache_invalidate_failed: %w", err)
	}

	return nil
}
