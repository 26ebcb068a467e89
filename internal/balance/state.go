package balance

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/MAYZGitHub/mayz-tools/internal/datum"
	"github.com/MAYZGitHub/mayz-tools/internal/ledger"
)

// RunState is the state of one aggregation run. It owns the run totals and
// memoizes contract listings and resolved datums, which are the same for
// every wallet of the run. A RunState is created when a run starts and
// dropped when it ends.
type RunState struct {
	ID        string    // unique run identifier (UUIDv7)
	StartedAt time.Time // when the run started

	Holdings ledger.Ledger // sum of every successful wallet's holdings
	Locked   ledger.Ledger // sum of every successful wallet's locked assets
	Combined ledger.Ledger // Holdings plus Locked

	mu     sync.Mutex             // guards the memo maps; contract scans may run in parallel
	utxos  map[string][]Utxo      // contract address -> listing
	datums map[string]datum.Value // utxo ref -> resolved datum, nil when unresolvable
}

// NewRunState starts a fresh run.
func NewRunState() *RunState {
	return &RunState{
		ID:        uuid.Must(uuid.NewV7()).String(),
		StartedAt: time.Now().UTC(),
		Holdings:  ledger.New(),
		Locked:    ledger.New(),
		Combined:  ledger.New(),
		utxos:     make(map[string][]Utxo),
		datums:    make(map[string]datum.Value),
	}
}

// record adds a completed wallet to the run totals. Only the aggregation loop
// calls it, one wallet at a time.
func (s *RunState) record(w WalletReport) {
	s.Holdings.Merge(w.Holdings)
	s.Locked.Merge(w.Locked)
	s.Combined.Merge(w.Total())
}

// contractUtxos returns the memoized listing of address, calling fetch on the
// first request. Failed fetches are not memoized.
func (s *RunState) contractUtxos(ctx context.Context, address string, fetch func(context.Context, string) ([]Utxo, error)) ([]Utxo, error) {
	s.mu.Lock()
	utxos, ok := s.utxos[address]
	s.mu.Unlock()
	if ok {
		return utxos, nil
	}

	utxos, err := fetch(ctx, address)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.utxos[address] = utxos
	s.mu.Unlock()

	return utxos, nil
}

// resolveDatum returns the memoized datum of u, resolving it on the first request.
// An unresolvable datum is memoized as nil.
func (s *RunState) resolveDatum(ctx context.Context, u Utxo, resolver DatumResolver) datum.Value {
	ref := u.Ref()

	s.mu.Lock()
	v, ok := s.datums[ref]
	s.mu.Unlock()
	if ok {
		return v
	}

	v = resolver.ResolveDatum(ctx, u)

	s.mu.Lock()
	s.datums[ref] = v
	s.mu.Unlock()

	return v
}

// snapshot copies the run totals into a report.
func (s *RunState) snapshot(wallets []WalletReport) Report {
	return Report{
		RunID:      s.ID,
		StartedAt:  s.StartedAt,
		FinishedAt: time.Now().UTC(),
		Wallets:    wallets,
		Holdings:   s.Holdings.Clone(),
		Locked:     s.Locked.Clone(),
		Combined:   s.Combined.Clone(),
	}
}
