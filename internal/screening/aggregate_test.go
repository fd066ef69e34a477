package screening_test

import (
	"testing"
	"time"

	"marquee/internal/screening"
)

func at(day, hour int) time.Time {
	return time.Date(2026, time.September, day, hour, 0, 0, 0, time.Local)
}

func TestAggregatorFirstSeenWins(t *testing.T) {
	agg := screening.NewAggregator()

	first := screening.Screening{ID: "999", Title: "First", DateTime: at(1, 18), Availability: screening.AvailabilityGood}
	second := screening.Screening{ID: "999", Title: "First", DateTime: at(1, 18), Availability: screening.AvailabilitySoldOut}

	if admitted := agg.Add(first); admitted != 1 {
		t.Fatalf("first day admitted %d, want 1", admitted)
	}
	if admitted := agg.Add(second); admitted != 0 {
		t.Fatalf("second day admitted %d, want 0", admitted)
	}

	items := agg.Screenings()
	if len(items) != 1 {
		t.Fatalf("got %d screenings, want 1", len(items))
	}
	if items[0].Availability != screening.AvailabilityGood {
		t.Fatalf("duplicate overwrote first observation: %q", items[0].Availability)
	}
}

func TestAggregatorSortsByDateTime(t *testing.T) {
	agg := screening.NewAggregator()
	agg.Add(
		screening.Screening{ID: "c", DateTime: at(3, 20)},
		screening.Screening{ID: "a", DateTime: at(1, 14)},
		screening.Screening{ID: "b", DateTime: at(2, 11)},
	)

	items := agg.Screenings()
	for i := 1; i < len(items); i++ {
		if items[i-1].DateTime.After(items[i].DateTime) {
			t.Fatalf("collection not sorted at %d: %v > %v", i, items[i-1].DateTime, items[i].DateTime)
		}
	}
}

func TestAggregatorStableForSameInstant(t *testing.T) {
	agg := screening.NewAggregator()
	agg.Add(
		screening.Screening{ID: "later", DateTime: at(5, 18)},
		screening.Screening{ID: "x", DateTime: at(4, 18)},
		screening.Screening{ID: "y", DateTime: at(4, 18)},
	)

	items := agg.Screenings()
	if items[0].ID != "x" || items[1].ID != "y" || items[2].ID != "later" {
		t.Fatalf("unexpected order: %s, %s, %s", items[0].ID, items[1].ID, items[2].ID)
	}
}

func TestAggregatorLen(t *testing.T) {
	agg := screening.NewAggregator()
	agg.Add(screening.Screening{ID: "1"}, screening.Screening{ID: "2"}, screening.Screening{ID: "1"})
	if agg.Len() != 2 {
		t.Fatalf("Len = %d, want 2", agg.Len())
	}
}
