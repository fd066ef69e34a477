package audienceview

// Column indices of the searchResults row layout. The site emits rows of 80+
// positional fields; only these positions carry data marquee uses. Rows
// shorter than an optional field's index mean the field is absent.
const (
	colID           = 0
	colTitle        = 5
	colTime         = 8
	colDay          = 9
	colMonth        = 10 // zero-based at the source
	colYear         = 11
	colSalesStatus  = 14
	colAvailability = 15
	colSeats        = 16
	colKeywords     = 17
	colArticleURL   = 18
	colVenueID      = 62
	colVenueName    = 63
	colVenueShort   = 64
	colMinPrice     = 80
	colMaxPrice     = 81
)
