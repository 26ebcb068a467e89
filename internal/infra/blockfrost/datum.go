package blockfrost

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/datum"
	"github.com/MAYZGitHub/mayz-tools/internal/pkg/logger"
)

// scriptDatum is the body of GET /scripts/datum/{hash}.
type scriptDatum struct {
	JSONValue json.RawMessage `json:"json_value"`
}

// ResolveDatum implements balance.DatumResolver. Inline datums are decoded
// locally; datum hashes are looked up in the cache first, then on the API.
// Any failure is logged and yields nil.
func (c *client) ResolveDatum(ctx context.Context, u balance.Utxo) datum.Value {
	switch {
	case u.InlineDatum != "":
		v, err := datum.DecodeCBORHex(u.InlineDatum)
		if err != nil {
			logger.Warn(ctx, "inline datum does not decode", "utxo", u.Ref(), "error", err)
			return nil
		}
		return v

	case u.DataHash != "":
		v, err := c.datumByHash(ctx, u.DataHash)
		if err != nil {
			logger.Warn(ctx, "datum lookup failed", "utxo", u.Ref(), "datum_hash", u.DataHash, "error", err)
			return nil
		}
		return v

	default:
		return nil
	}
}

func (c *client) datumByHash(ctx context.Context, hash string) (datum.Value, error) {
	raw, ok, err := c.datums.GetDatum(ctx, hash)
	if err != nil {
		logger.Warn(ctx, "datum cache read failed", "datum_hash", hash, "error", err)
	}
	if ok {
		return datum.DecodeDetailedJSON(raw)
	}

	var body scriptDatum
	if err := c.rest.Get(ctx, fmt.Sprintf("/scripts/datum/%s", url.PathEscape(hash)), nil, &body); err != nil {
		return nil, err
	}
	if len(body.JSONValue) == 0 {
		return nil, errors.New("response without json_value")
	}

	v, err := datum.DecodeDetailedJSON(body.JSONValue)
	if err != nil {
		return nil, err
	}

	if err := c.datums.SetDatum(ctx, hash, body.JSONValue); err != nil {
		logger.Warn(ctx, "datum cache write failed", "datum_hash", hash, "error", err)
	}

	return v, nil
}

var _ balance.DatumResolver = (*client)(nil)
