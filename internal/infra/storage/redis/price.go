package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MAYZGitHub/mayz-tools/internal/valuation"

	"github.com/redis/go-redis/v9"
)

// priceKeyPrefix is the namespace of cached price quotes.
const priceKeyPrefix = "price"

// priceKey returns the Redis key of a quote.
//
// Format: "price:{key}"
func priceKey(key string) string {
	return fmt.Sprintf("%s:%s", priceKeyPrefix, key)
}

// GetPrice implements valuation.PriceCache. A missing or expired quote
// returns ok=false without error.
func (c *client) GetPrice(ctx context.Context, key string) (string, bool, error) {
	val, err := c.conn.Get(ctx, c.key(priceKey(key))).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", false, nil
		}

		return "", false, err
	}

	return val, true, nil
}

// SetPrice implements valuation.PriceCache. The quote expires after ttl.
func (c *client) SetPrice(ctx context.Context, key, value string, ttl time.Duration) error {
	return c.conn.Set(ctx, c.key(priceKey(key)), value, ttl).Err()
}

// Compile-time assertion to ensure client implements the PriceCache interface.
var _ valuation.PriceCache = new(client)
