package blockfrost

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/datum"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/transport/rest"
)

const (
	projectID       = "mainnetTestKey"
	contractAddress = "addr1w8eewkl3zrrlu9mp0gw7lvtd5zavaghsukmf6ynq9668ajc6pzu77"
	gMAYZ           = "e46f629f31e4a3c4ba16dd3bc396f24fb222f2776e7d698f2bda5018674d41595a"

	// Constr 0 [h'aa..aa'] as inline CBOR and as detailed JSON.
	ownerCBOR = "d8799f581caaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaff"
	ownerJSON = `{"constructor":0,"fields":[{"bytes":"aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"}]}`
)

func newTestClient(t *testing.T, handler http.HandlerFunc, opts ...Option) *client {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get(ProjectIDHeader) != projectID {
			w.WriteHeader(http.StatusForbidden)
			return
		}
		handler(w, r)
	}))
	t.Cleanup(srv.Close)

	return New(rest.NewClient(srv.Client(), srv.URL, rest.WithHeader(ProjectIDHeader, projectID)), opts...)
}

func writeJSON(t *testing.T, w http.ResponseWriter, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

// fakeDatumCache is an in-memory DatumCache.
type fakeDatumCache struct {
	mu   sync.Mutex
	data map[string][]byte
}

func (c *fakeDatumCache) GetDatum(_ context.Context, hash string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	raw, ok := c.data[hash]
	return raw, ok, nil
}

func (c *fakeDatumCache) SetDatum(_ context.Context, hash string, raw []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[hash] = raw
	return nil
}

func TestFetchUtxos(t *testing.T) {
	t.Run("should walk every page", func(t *testing.T) {
		var pages []string

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/addresses/"+contractAddress+"/utxos", r.URL.Path)
			assert.Equal(t, "100", r.URL.Query().Get("count"))

			page := r.URL.Query().Get("page")
			pages = append(pages, page)

			n := 100
			if page == "2" {
				n = 1
			}

			items := make([]map[string]any, n)
			for i := range items {
				items[i] = map[string]any{
					"tx_hash":      "tx" + page,
					"output_index": i,
					"amount":       []map[string]string{{"unit": "lovelace", "quantity": "2000000"}},
					"data_hash":    nil,
					"inline_datum": nil,
				}
			}
			if page == "2" {
				items[0]["inline_datum"] = ownerCBOR
				items[0]["data_hash"] = "d4"
			}
			writeJSON(t, w, items)
		})

		utxos, err := c.FetchUtxos(t.Context(), contractAddress)
		require.NoError(t, err)

		assert.Equal(t, []string{"1", "2"}, pages)
		require.Len(t, utxos, 101)
		assert.Equal(t, "tx1#0", utxos[0].Ref())
		assert.False(t, utxos[0].HasDatum())
		assert.Equal(t, "2000000", utxos[0].Amount[0].Quantity)

		last := utxos[100]
		assert.Equal(t, "tx2#0", last.Ref())
		assert.Equal(t, ownerCBOR, last.InlineDatum)
		assert.Equal(t, "d4", last.DataHash)
	})

	t.Run("should read an unknown address as empty", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
			fmt.Fprint(w, `{"status_code":404,"error":"Not Found"}`)
		})

		utxos, err := c.FetchUtxos(t.Context(), contractAddress)
		require.NoError(t, err)
		assert.Empty(t, utxos)
	})

	t.Run("should return server errors", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		})

		_, err := c.FetchUtxos(t.Context(), contractAddress)

		var statusErr *rest.StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, http.StatusTooManyRequests, statusErr.StatusCode)
	})
}

func TestFetchAssetHolders(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/assets/"+gMAYZ+"/addresses", r.URL.Path)
		assert.Equal(t, "asc", r.URL.Query().Get("order"))

		page, _ := strconv.Atoi(r.URL.Query().Get("page"))
		if page > 1 {
			writeJSON(t, w, []any{})
			return
		}

		holders := make([]map[string]string, 100)
		for i := range holders {
			holders[i] = map[string]string{"address": fmt.Sprintf("addr%d", i), "quantity": "5"}
		}
		writeJSON(t, w, holders)
	})

	holders, err := c.FetchAssetHolders(t.Context(), gMAYZ)
	require.NoError(t, err)

	require.Len(t, holders, 100)
	assert.Equal(t, "addr99", holders[99].Address)
	assert.Equal(t, "5", holders[99].Quantity)
}

func TestResolveDatum(t *testing.T) {
	owner := datum.Constr{Fields: []datum.Value{datum.Bytes{
		0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa,
		0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa, 0xaa,
	}}}

	t.Run("should decode inline datums without a request", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request %s", r.URL.Path)
		})

		v := c.ResolveDatum(t.Context(), balance.Utxo{TxHash: "tx", InlineDatum: ownerCBOR, DataHash: "ignored"})
		assert.Equal(t, owner, v)
	})

	t.Run("should return nil for broken inline datums and missing datums", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			t.Errorf("unexpected request %s", r.URL.Path)
		})

		assert.Nil(t, c.ResolveDatum(t.Context(), balance.Utxo{TxHash: "tx", InlineDatum: "d879"}))
		assert.Nil(t, c.ResolveDatum(t.Context(), balance.Utxo{TxHash: "tx"}))
	})

	t.Run("should fetch datums by hash once", func(t *testing.T) {
		var hits atomic.Int32
		cache := &fakeDatumCache{data: make(map[string][]byte)}

		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			hits.Add(1)
			assert.Equal(t, "/scripts/datum/abcd", r.URL.Path)
			fmt.Fprintf(w, `{"json_value":%s}`, ownerJSON)
		}, WithDatumCache(cache))

		u := balance.Utxo{TxHash: "tx", DataHash: "abcd"}

		assert.Equal(t, owner, c.ResolveDatum(t.Context(), u))
		assert.Equal(t, owner, c.ResolveDatum(t.Context(), u))
		assert.Equal(t, int32(1), hits.Load())
		assert.JSONEq(t, ownerJSON, string(cache.data["abcd"]))
	})

	t.Run("should return nil when the hash is unknown", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		assert.Nil(t, c.ResolveDatum(t.Context(), balance.Utxo{TxHash: "tx", DataHash: "ffff"}))
	})

	t.Run("should return nil for undecodable json values", func(t *testing.T) {
		c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			fmt.Fprint(w, `{"json_value":{"unexpected":true}}`)
		})

		assert.Nil(t, c.ResolveDatum(t.Context(), balance.Utxo{TxHash: "tx", DataHash: "abcd"}))
	})
}
