package screening_test

import (
	"testing"

	"marquee/internal/screening"
)

func fixtureScreenings() []screening.Screening {
	return []screening.Screening{
		{
			ID:           "1",
			Title:        "La Dolce Vita",
			Venue:        screening.Venue{ID: "v1", Name: "Main Theatre", ShortName: "NFT1"},
			Availability: screening.AvailabilityGood,
			Keywords:     []string{"Q&A", "35mm"},
		},
		{
			ID:           "2",
			Title:        "Stalker",
			Venue:        screening.Venue{ID: "v2", Name: "Studio", ShortName: "STU"},
			Availability: screening.AvailabilitySoldOut,
			Keywords:     []string{"Restoration"},
		},
		{
			ID:           "3",
			Title:        "Dolce Fine Giornata",
			Venue:        screening.Venue{ID: "v1", Name: "Main Theatre", ShortName: "NFT1"},
			Availability: screening.AvailabilityLimited,
		},
	}
}

func ids(items []screening.Screening) []string {
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = item.ID
	}
	return out
}

func TestFilterNoCriteriaReturnsAll(t *testing.T) {
	got := screening.Filter(fixtureScreenings(), screening.Criteria{})
	if len(got) != 3 {
		t.Fatalf("got %d items, want all 3", len(got))
	}
}

func TestFilterCriteria(t *testing.T) {
	cases := []struct {
		name     string
		criteria screening.Criteria
		want     []string
	}{
		{"venue short code", screening.Criteria{Venue: "nft1"}, []string{"1", "3"}},
		{"venue full name", screening.Criteria{Venue: "studio"}, []string{"2"}},
		{"available only", screening.Criteria{AvailableOnly: true}, []string{"1", "3"}},
		{"title substring", screening.Criteria{Title: "DOLCE"}, []string{"1", "3"}},
		{"keyword", screening.Criteria{Keyword: "q&a"}, []string{"1"}},
		{"conjunction", screening.Criteria{Title: "dolce", AvailableOnly: true, Venue: "main"}, []string{"1", "3"}},
		{"no match", screening.Criteria{Title: "dolce", Keyword: "restoration"}, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ids(screening.Filter(fixtureScreenings(), tc.criteria))
			if len(got) != len(tc.want) {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
			for i := range tc.want {
				if got[i] != tc.want[i] {
					t.Fatalf("got %v, want %v", got, tc.want)
				}
			}
		})
	}
}
