package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/MAYZGitHub/mayz-tools/internal/infra/blockfrost"

	"github.com/redis/go-redis/v9"
)

// datumKeyPrefix is the namespace of cached datums.
const datumKeyPrefix = "datum"

// datumKey returns the Redis key of the datum with the given hash.
//
// Format: "datum:{hash}"
func datumKey(hash string) string {
	return fmt.Sprintf("%s:%s", datumKeyPrefix, hash)
}

// GetDatum implements blockfrost.DatumCache.
func (c *client) GetDatum(ctx context.Context, hash string) ([]byte, bool, error) {
	raw, err := c.conn.Get(ctx, c.key(datumKey(hash))).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}

		return nil, false, err
	}

	return raw, true, nil
}

// SetDatum implements blockfrost.DatumCache. Datums are content addressed,
// so they are stored with no expiration.
func (c *client) SetDatum(ctx context.Context, hash string, raw []byte) error {
	return c.conn.Set(ctx, c.key(datumKey(hash)), raw, 0).Err()
}

// Compile-time assertion to ensure client implements the DatumCache interface.
var _ blockfrost.DatumCache = new(client)
