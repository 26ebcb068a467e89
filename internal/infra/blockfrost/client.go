// Package blockfrost reads UTxOs, datums and asset holders from the
// Blockfrost Cardano API.
//
// List endpoints are paged with count=100; the client walks pages until one
// comes back short. A 404 on an address listing means the address never
// appeared on chain and is read as an empty list.
package blockfrost

import (
	"context"
	"errors"
	"net/url"
	"strconv"

	"github.com/MAYZGitHub/mayz-tools/internal/pkg/transport/rest"
)

// DefaultBaseURL is the mainnet API root.
const DefaultBaseURL = "https://cardano-mainnet.blockfrost.io/api/v0"

// ProjectIDHeader carries the API key on every request.
const ProjectIDHeader = "project_id"

// pageSize is the largest page Blockfrost serves.
const pageSize = 100

// DatumCache keeps datums fetched by hash. Datums are content addressed so
// entries never go stale.
type DatumCache interface {
	// GetDatum returns the cached detailed-schema JSON of hash, if any.
	GetDatum(ctx context.Context, hash string) ([]byte, bool, error)
	// SetDatum stores the detailed-schema JSON of hash.
	SetDatum(ctx context.Context, hash string, raw []byte) error
}

type nopDatumCache struct{}

func (nopDatumCache) GetDatum(context.Context, string) ([]byte, bool, error) { return nil, false, nil }
func (nopDatumCache) SetDatum(context.Context, string, []byte) error       { return nil }

// client implements balance.UtxoSource, balance.DatumResolver and
// holders.HolderSource on top of a REST client.
type client struct {
	rest   rest.Client
	datums DatumCache
}

type config struct {
	datums DatumCache
}

// Option configures the Blockfrost client.
type Option func(*config)

// WithDatumCache caches datums fetched by hash in c.
func WithDatumCache(c DatumCache) Option {
	return func(cfg *config) {
		if c != nil {
			cfg.datums = c
		}
	}
}

// New returns a Blockfrost client sending requests through r, which must
// already carry the project_id header and base URL.
func New(r rest.Client, opts ...Option) *client {
	cfg := config{
		datums: nopDatumCache{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		rest:   r,
		datums: cfg.datums,
	}
}

// fetchAllPages calls GET path page by page and concatenates the items.
// query may be nil.
func fetchAllPages[T any](ctx context.Context, r rest.Client, path string, query url.Values) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		q := url.Values{}
		for k, v := range query {
			q[k] = v
		}
		q.Set("count", strconv.Itoa(pageSize))
		q.Set("page", strconv.Itoa(page))

		var items []T
		if err := r.Get(ctx, path, q, &items); err != nil {
			if page == 1 && errors.Is(err, rest.ErrNotFound) {
				return nil, nil
			}
			return nil, err
		}

		all = append(all, items...)
		if len(items) < pageSize {
			return all, nil
		}
	}
}
