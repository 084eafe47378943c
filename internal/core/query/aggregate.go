package query

import (
	"math"

	"github.com/shopspring/decimal"
)

// Group is the count and summed amount of one bucket.
type Group struct {
	Count int
	Sum   decimal.Decimal
}

// Aggregation is the result of grouping records by a key.
// Keys holds every group key in order of first appearance.
type Aggregation struct {
	Groups map[string]Group
	Keys   []string
	Count  int
	Sum    decimal.Decimal
}

// Get returns the group for key, or a zero group if no record had that key.
func (a Aggregation) Get(key string) Group {
	return a.Groups[key]
}

// Aggregate groups records by key, counting them and summing amount.
// amount may be nil when only counts are needed.
func Aggregate[T any](records []T, key func(T) string, amount func(T) decimal.Decimal) Aggregation {
	agg := Aggregation{Groups: make(map[string]Group)}
	for _, r := range records {
		k := key(r)
		g, seen := agg.Groups[k]
		if !seen {
			agg.Keys = append(agg.Keys, k)
		}
		g.Count++
		agg.Count++
		if amount != nil {
			v := amount(r)
			g.Sum = g.Sum.Add(v)
			agg.Sum = agg.Sum.Add(v)
		}
		agg.Groups[k] = g
	}
	return agg
}

// Sum adds up amount over all records.
func Sum[T any](records []T, amount func(T) decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, r := range records {
		total = total.Add(amount(r))
	}
	return total
}

// Rate returns matching/total as a whole percentage, rounded half away from zero.
// A zero total yields 0.
func Rate(matching, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(matching) / float64(total) * 100))
}
