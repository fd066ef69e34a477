package screening

import "strings"

// Venue is a screening room within the site. Identity is the ID alone; name
// and short code are display data.
type Venue struct {
	ID        string
	Name      string
	ShortName string
}

// shortNameAliases collapses variant venue short codes the site emits for the
// same physical room (general-admission blocks get their own code upstream).
var shortNameAliases = map[string]string{
	"Southbank NFT2 GA": "NFT2",
	"NFT2 GA":           "NFT2",
}

// NormalizeShortName canonicalizes a venue short code. It is idempotent, so
// applying it again on catalog load is safe.
func NormalizeShortName(short string) string {
	s := strings.TrimSpace(short)
	if canonical, ok := shortNameAliases[s]; ok {
		return canonical
	}
	return s
}
