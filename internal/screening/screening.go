package screening

import (
	"strings"
	"time"
)

// Screening is a single scheduled showing of a title at a venue and time.
// Values are constructed once during decode and never mutated; a re-fetch
// replaces the stored collection wholesale.
type Screening struct {
	ID             string
	Title          string
	DateTime       time.Time
	Venue          Venue
	Availability   Availability
	Sales          SalesStatus
	SeatsAvailable *int
	Keywords       []string
	MinPrice       string
	MaxPrice       string
	ArticlePath    string
}

// Available reports whether tickets can still be bought.
func (s Screening) Available() bool {
	return s.Availability != AvailabilitySoldOut
}

// TimeString renders the screening time as HH:MM.
func (s Screening) TimeString() string {
	return s.DateTime.Format("15:04")
}

// DateString renders the screening date as e.g. "Friday 05 January".
func (s Screening) DateString() string {
	return s.DateTime.Format("Monday 02 January")
}

// BookingURL builds the deep link for this screening. onlineBase is the
// directory of the site's search endpoint (".../Online/"). Screenings without
// an article path fall back to the base itself.
func (s Screening) BookingURL(onlineBase string) string {
	if s.ArticlePath == "" {
		return onlineBase
	}
	return strings.TrimSuffix(onlineBase, "/") + "/" + s.ArticlePath
}
