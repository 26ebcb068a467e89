// Package redis keeps the caches that outlive a single command run:
//
//   - price quotes (valuation.PriceCache), stored with the configured TTL so
//     repeated reports do not hit the dApp and CoinGecko again;
//   - datums fetched by hash (blockfrost.DatumCache), stored without expiry
//     since a datum hash always names the same bytes.
//
// Every key is namespaced by Options.KeyPrefix so several deployments can
// share one database.
package redis

import (
	"context"
	"fmt"

	redis "github.com/redis/go-redis/v9"
)

// Options locates the Redis database.
type Options struct {
	Addr      string
	Username  string
	Password  string
	DB        int
	KeyPrefix string // prepended as "{prefix}:" to every key; empty keeps keys bare
}

type client struct {
	conn   *redis.Client
	prefix string
}

// NewClient connects to Redis and pings it. The connection is closed when the
// ping fails.
func NewClient(ctx context.Context, opts Options) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Username: opts.Username,
		Password: opts.Password,
		DB:       opts.DB,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s: %w", opts.Addr, err)
	}

	return &client{
		conn:   conn,
		prefix: opts.KeyPrefix,
	}, nil
}

// Close releases the connection pool.
func (c *client) Close() error {
	return c.conn.Close()
}

// key applies the deployment prefix to a cache key.
func (c *client) key(k string) string {
	if c.prefix == "" {
		return k
	}
	return c.prefix + ":" + k
}
