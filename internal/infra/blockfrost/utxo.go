package blockfrost

import (
	"context"
	"fmt"
	"net/url"

	"github.com/MAYZGitHub/mayz-tools/internal/balance"
	"github.com/MAYZGitHub/mayz-tools/internal/holders"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
)

// addressUtxo is one item of GET /addresses/{address}/utxos.
type addressUtxo struct {
	TxHash      string         `json:"tx_hash"`
	OutputIndex uint32         `json:"output_index"`
	Amount      []ledger.Asset `json:"amount"`
	DataHash    *string        `json:"data_hash"`
	InlineDatum *string        `json:"inline_datum"`
}

func (u addressUtxo) toDomain() balance.Utxo {
	out := balance.Utxo{
		TxHash:      u.TxHash,
		OutputIndex: u.OutputIndex,
		Amount:      u.Amount,
	}
	if u.InlineDatum != nil {
		out.InlineDatum = *u.InlineDatum
	}
	if u.DataHash != nil {
		out.DataHash = *u.DataHash
	}
	return out
}

// FetchUtxos implements balance.UtxoSource.
func (c *client) FetchUtxos(ctx context.Context, address string) ([]balance.Utxo, error) {
	path := fmt.Sprintf("/addresses/%s/utxos", url.PathEscape(address))

	items, err := fetchAllPages[addressUtxo](ctx, c.rest, path, nil)
	if err != nil {
		return nil, err
	}

	utxos := make([]balance.Utxo, len(items))
	for i, item := range items {
		utxos[i] = item.toDomain()
	}
	return utxos, nil
}

// FetchAssetHolders implements holders.HolderSource.
func (c *client) FetchAssetHolders(ctx context.Context, unit string) ([]holders.Holder, error) {
	path := fmt.Sprintf("/assets/%s/addresses", url.PathEscape(unit))
	return fetchAllPages[holders.Holder](ctx, c.rest, path, url.Values{"order": {"asc"}})
}

var (
	_ balance.UtxoSource   = (*client)(nil)
	_ holders.HolderSource = (*client)(nil)
)
