package screening

import "slices"

// Aggregator folds per-day screening batches into one deduplicated collection.
// The first observation of an identifier wins; later duplicates are dropped
// without merging fields. This is the sole point enforcing identifier
// uniqueness across a multi-day fetch.
type Aggregator struct {
	seen  map[string]struct{}
	items []Screening
}

// NewAggregator returns an empty aggregator for one fetch run.
func NewAggregator() *Aggregator {
	return &Aggregator{seen: make(map[string]struct{})}
}

// Add admits screenings whose identifiers have not been seen yet and returns
// the number admitted.
func (a *Aggregator) Add(items ...Screening) int {
	admitted := 0
	for _, item := range items {
		if _, dup := a.seen[item.ID]; dup {
			continue
		}
		a.seen[item.ID] = struct{}{}
		a.items = append(a.items, item)
		admitted++
	}
	return admitted
}

// Len returns the number of unique screenings collected so far.
func (a *Aggregator) Len() int {
	return len(a.items)
}

// Screenings returns the collection sorted by date-time ascending. The sort is
// stable so same-instant screenings keep their insertion order.
func (a *Aggregator) Screenings() []Screening {
	out := slices.Clone(a.items)
	slices.SortStableFunc(out, func(x, y Screening) int {
		return x.DateTime.Compare(y.DateTime)
	})
	return out
}
