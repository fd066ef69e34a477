package audienceview

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"

	"marquee/internal/screening"
)

// placeholderTitle marks the site's standing non-screening listing. Rows with
// this title decode fine but are discarded before aggregation.
const placeholderTitle = "Library Research Session"

// RowDecodeError reports a single malformed row. Callers log and skip the row;
// it never aborts a fetch.
type RowDecodeError struct {
	Field string
	Err   error
}

func (e *RowDecodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("decode row: %s", e.Field)
	}
	return fmt.Sprintf("decode row: %s: %v", e.Field, e.Err)
}

func (e *RowDecodeError) Unwrap() error { return e.Err }

// IsPlaceholder reports whether the decoded screening is the site's
// non-screening placeholder entry.
func IsPlaceholder(s screening.Screening) bool {
	return strings.TrimSpace(s.Title) == placeholderTitle
}

// DecodeRow maps one positional row onto a screening record. Identifier,
// title, time components, and the status codes are required; everything past
// the row's length is treated as absent.
func DecodeRow(row []any) (screening.Screening, error) {
	if len(row) <= colAvailability {
		return screening.Screening{}, &RowDecodeError{Field: "row", Err: fmt.Errorf("only %d fields", len(row))}
	}

	id := fieldString(row, colID)
	if id == "" {
		return screening.Screening{}, &RowDecodeError{Field: "id", Err: fmt.Errorf("empty")}
	}

	dt, err := decodeDateTime(row)
	if err != nil {
		return screening.Screening{}, err
	}

	var seats *int
	if raw := fieldString(row, colSeats); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			seats = &n
		}
	}

	var keywords []string
	for _, k := range strings.Split(fieldString(row, colKeywords), ",") {
		if k = strings.TrimSpace(k); k != "" {
			keywords = append(keywords, k)
		}
	}

	return screening.Screening{
		ID:       id,
		Title:    html.UnescapeString(fieldString(row, colTitle)),
		DateTime: dt,
		Venue: screening.Venue{
			ID:        fieldString(row, colVenueID),
			Name:      fieldString(row, colVenueName),
			ShortName: screening.NormalizeShortName(fieldString(row, colVenueShort)),
		},
		Availability:   screening.AvailabilityFromCode(fieldString(row, colAvailability)),
		Sales:          screening.SalesStatusFromCode(fieldString(row, colSalesStatus)),
		SeatsAvailable: seats,
		Keywords:       screening.FilterKeywords(keywords),
		MinPrice:       fieldString(row, colMinPrice),
		MaxPrice:       fieldString(row, colMaxPrice),
		ArticlePath:    fieldString(row, colArticleURL),
	}, nil
}

func decodeDateTime(row []any) (time.Time, error) {
	clock := fieldString(row, colTime)
	if len(clock) < 5 {
		return time.Time{}, &RowDecodeError{Field: "time", Err: fmt.Errorf("value %q", clock)}
	}
	hour, err := strconv.Atoi(clock[:2])
	if err != nil {
		return time.Time{}, &RowDecodeError{Field: "time", Err: err}
	}
	minute, err := strconv.Atoi(clock[3:5])
	if err != nil {
		return time.Time{}, &RowDecodeError{Field: "time", Err: err}
	}

	day, err := fieldInt(row, colDay)
	if err != nil {
		return time.Time{}, &RowDecodeError{Field: "day", Err: err}
	}
	month, err := fieldInt(row, colMonth)
	if err != nil {
		return time.Time{}, &RowDecodeError{Field: "month", Err: err}
	}
	year, err := fieldInt(row, colYear)
	if err != nil {
		return time.Time{}, &RowDecodeError{Field: "year", Err: err}
	}

	// the site counts months from zero
	return time.Date(year, time.Month(month+1), day, hour, minute, 0, 0, time.Local), nil
}

// fieldString reads a positional field, tolerating short rows and the mixed
// string/number values JSON decoding produces.
func fieldString(row []any, index int) string {
	if index >= len(row) {
		return ""
	}
	switch v := row[index].(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func fieldInt(row []any, index int) (int, error) {
	raw := fieldString(row, index)
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("value %q", raw)
	}
	return n, nil
}
