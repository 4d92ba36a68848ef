package credit

import (
	"fmt"
	"math"
	"sort"
	"time"

	"jample-admin/internal/backend"
	"jample-admin/internal/shared/dateutil"
)

// Batch is one credit pool as seen by the allocation validator. Balances
// are never combined across batches.
type Batch struct {
	ID              int64
	Name            string
	TotalCredits    int64
	Balance         int64
	Expiry          time.Time
	IsExpired       bool
	DaysUntilExpiry int
}

func (b Batch) Eligible() bool {
	return b.Balance > 0 && !b.IsExpired
}

// BatchesFromSummary parses the backend credit list into batches in loc.
func BatchesFromSummary(summary backend.CreditSummary, loc *time.Location) ([]Batch, error) {
	out := make([]Batch, 0, len(summary.Credits))
	for _, c := range summary.Credits {
		expiry, ok, err := dateutil.Parse(c.ExpiryDate, loc)
		if err != nil || !ok {
			return nil, fmt.Errorf("credit %d: bad expiry date %q", c.B2bCreditID, c.ExpiryDate)
		}
		out = append(out, Batch{
			ID:              c.B2bCreditID,
			Name:            c.Name,
			TotalCredits:    c.TotalCredits,
			Balance:         c.Balance,
			Expiry:          expiry,
			IsExpired:       c.IsExpired,
			DaysUntilExpiry: c.DaysUntilExpiry,
		})
	}
	return out, nil
}

// AvailableTotal sums every batch, expired or not. It only feeds the
// coarse insufficiency check.
func AvailableTotal(batches []Batch) int64 {
	var total int64
	for _, b := range batches {
		if b.Balance > 0 && total > math.MaxInt64-b.Balance {
			return math.MaxInt64
		}
		total += b.Balance
	}
	return total
}

// EligibleBatches keeps usable batches ordered by expiry, earliest first.
func EligibleBatches(batches []Batch) []Batch {
	out := make([]Batch, 0, len(batches))
	for _, b := range batches {
		if b.Eligible() {
			out = append(out, b)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return dateutil.CompareDays(out[i].Expiry, out[j].Expiry) < 0
	})
	return out
}
