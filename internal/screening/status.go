package screening

// Availability is the one-letter ticket availability code used by the
// ticketing site.
type Availability string

const (
	AvailabilityExcellent Availability = "E"
	AvailabilityGood      Availability = "G"
	AvailabilityLimited   Availability = "L"
	AvailabilitySoldOut   Availability = "S"
	AvailabilityUnknown   Availability = "?"
)

// AvailabilityFromCode maps a source code to an Availability. Unrecognized
// codes map to AvailabilityUnknown, never an error.
func AvailabilityFromCode(code string) Availability {
	switch Availability(code) {
	case AvailabilityExcellent, AvailabilityGood, AvailabilityLimited, AvailabilitySoldOut:
		return Availability(code)
	default:
		return AvailabilityUnknown
	}
}

// Label returns the human-readable status. Excellent and good availability
// render as empty strings so unremarkable listings stay quiet.
func (a Availability) Label() string {
	switch a {
	case AvailabilityExcellent, AvailabilityGood:
		return ""
	case AvailabilityLimited:
		return "Limited Tickets"
	case AvailabilitySoldOut:
		return "Sold Out"
	default:
		return "Unknown"
	}
}

// Marker returns the severity-ordered visual marker for terminal output.
func (a Availability) Marker() string {
	switch a {
	case AvailabilityExcellent:
		return "\U0001F7E2" // green
	case AvailabilityGood:
		return "\U0001F7E1" // yellow
	case AvailabilityLimited:
		return "\U0001F7E0" // orange
	case AvailabilitySoldOut:
		return "\U0001F534" // red
	default:
		return "\U000026AA" // white
	}
}

// Slug returns a lowercase identifier used for CSS classes in rendered pages.
func (a Availability) Slug() string {
	switch a {
	case AvailabilityExcellent:
		return "excellent"
	case AvailabilityGood:
		return "good"
	case AvailabilityLimited:
		return "limited"
	case AvailabilitySoldOut:
		return "sold_out"
	default:
		return "unknown"
	}
}

// SalesStatus is the one-letter sales state code used by the ticketing site.
type SalesStatus string

const (
	SalesOnSale    SalesStatus = "S"
	SalesNotOnSale SalesStatus = "N"
	SalesUnknown   SalesStatus = "?"
)

// SalesStatusFromCode maps a source code to a SalesStatus, falling back to
// SalesUnknown for unrecognized codes.
func SalesStatusFromCode(code string) SalesStatus {
	switch SalesStatus(code) {
	case SalesOnSale, SalesNotOnSale:
		return SalesStatus(code)
	default:
		return SalesUnknown
	}
}
