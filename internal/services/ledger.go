package services

import (
	"sort"

	"github.com/shopspring/decimal"

	apperrors "github.com/ltnguyen/folio/internal/errors"
	"github.com/ltnguyen/folio/internal/models"
)

// Ledger maintains one owned transaction list in two orderings: strict
// chronological order, used only to accumulate running balances, and a
// newest-first display order, used for presentation. Balances are stored
// on the entries themselves so they cannot drift from the record they
// describe. A Ledger is built per computation and is not safe for
// concurrent use.
type Ledger struct {
	entries []*models.LedgerEntry
	assets  []string
	filled  bool
	closing map[string]decimal.Decimal
	opening map[string]decimal.Decimal
}

// NewLedger creates a ledger over the given transactions. openingBalances
// carries per-asset balances from before the visible window (e.g. an
// earlier statement period) and may be nil; assets not present default to
// zero. Entries are immediately placed in display order, but balances are
// not filled until FillBalances is called.
func NewLedger(transactions []*models.Transaction, openingBalances map[string]decimal.Decimal) *Ledger {
	opening := make(map[string]decimal.Decimal, len(openingBalances))
	for asset, balance := range openingBalances {
		opening[asset] = balance
	}

	l := &Ledger{opening: opening}
	l.entries = appendEntries(nil, transactions)
	l.rebuildAssets()
	l.sortDisplay()
	return l
}

// Append concatenates transactions to the ledger and restores display
// order. Any previously filled balances become stale; the caller must run
// FillBalances again before reading them.
func (l *Ledger) Append(transactions []*models.Transaction) {
	if len(transactions) == 0 {
		return
	}
	l.entries = appendEntries(l.entries, transactions)
	l.filled = false
	l.closing = nil
	l.rebuildAssets()
	l.sortDisplay()
}

// FillBalances recomputes every entry's before/after balance from
// scratch: sort chronologically, run the recurrence
// after = before + credit - debit seeded from the opening balances, then
// restore display order. Calling it twice with unchanged input yields
// identical output.
func (l *Ledger) FillBalances() {
	l.sortChronological()

	running := make(map[string]decimal.Decimal, len(l.assets))
	for asset, balance := range l.opening {
		running[asset] = balance
	}

	for _, e := range l.entries {
		before := running[e.AssetName]
		after := before.Add(e.Credit).Sub(e.Debit)
		e.TotalBalanceBefore = before
		e.TotalBalanceAfter = after
		running[e.AssetName] = after
	}

	l.closing = running
	l.filled = true
	l.sortDisplay()
}

// ClosingBalances returns the per-asset balance after the last
// chronological transaction. Reading it before FillBalances has run since
// the last mutation is a programming error and fails fast.
func (l *Ledger) ClosingBalances() (map[string]decimal.Decimal, error) {
	if !l.filled {
		return nil, &apperrors.ErrInvalidState{
			Op:      "closing_balances",
			Message: "balances have not been filled",
		}
	}

	closing := make(map[string]decimal.Decimal, len(l.closing))
	for asset, balance := range l.closing {
		closing[asset] = balance
	}
	return closing, nil
}

// Entries returns copies of the ledger entries in display order: date
// descending, then asset name, credit and debit ascending. This order is
// cosmetic and is never used to derive balances.
func (l *Ledger) Entries() []*models.LedgerEntry {
	entries := make([]*models.LedgerEntry, len(l.entries))
	for i, e := range l.entries {
		copied := *e
		entries[i] = &copied
	}
	return entries
}

// Assets returns the distinct asset names seen by the ledger, sorted
// lexicographically.
func (l *Ledger) Assets() []string {
	assets := make([]string, len(l.assets))
	copy(assets, l.assets)
	return assets
}

// Filled reports whether balances are current for the stored entries
func (l *Ledger) Filled() bool {
	return l.filled
}

// Clear empties the ledger so it can be rebuilt for a different window
// without constructing a new instance.
func (l *Ledger) Clear() {
	l.entries = nil
	l.assets = nil
	l.filled = false
	l.closing = nil
	l.opening = make(map[string]decimal.Decimal)
}

func appendEntries(entries []*models.LedgerEntry, transactions []*models.Transaction) []*models.LedgerEntry {
	for _, tx := range transactions {
		if tx == nil {
			continue
		}
		entries = append(entries, &models.LedgerEntry{Transaction: *tx})
	}
	return entries
}

func (l *Ledger) rebuildAssets() {
	seen := make(map[string]struct{}, len(l.entries))
	for _, e := range l.entries {
		seen[e.AssetName] = struct{}{}
	}
	assets := make([]string, 0, len(seen))
	for asset := range seen {
		assets = append(assets, asset)
	}
	sort.Strings(assets)
	l.assets = assets
}

func (l *Ledger) sortDisplay() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		a, b := l.entries[i], l.entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.After(b.Date)
		}
		return lessByTieBreaks(a, b)
	})
}

// sortChronological orders by date ascending with the same tie-breaks as
// the display order, so same-day transactions for one asset accumulate
// deterministically across runs.
func (l *Ledger) sortChronological() {
	sort.SliceStable(l.entries, func(i, j int) bool {
		a, b := l.entries[i], l.entries[j]
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return lessByTieBreaks(a, b)
	})
}

func lessByTieBreaks(a, b *models.LedgerEntry) bool {
	if a.AssetName != b.AssetName {
		return a.AssetName < b.AssetName
	}
	if c := a.Credit.Cmp(b.Credit); c != 0 {
		return c < 0
	}
	return a.Debit.Cmp(b.Debit) < 0
}
