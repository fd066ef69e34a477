// Package screening holds the screening domain model and the operations that
// run after rows have been decoded: aggregation across days, filtering, and
// catalog persistence.
//
// Screening values are immutable once constructed. The Aggregator is the only
// place identifier uniqueness is enforced, and Catalog round-trips preserve
// record semantics bit for bit (venue short codes are re-normalized on load,
// which is idempotent).
package screening
