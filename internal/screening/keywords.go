package screening

import "strings"

// droppedKeywords are platform-level metadata terms the site attaches to
// listings. They describe the presentation, not the programme, and are
// stripped during decode and on catalog load.
var droppedKeywords = map[string]struct{}{
	"Closed captions":                       {},
	"Releases":                              {},
	"Audio description":                     {},
	"English subtitles":                     {},
	"Descriptive subtitles (open captions)": {},
	"Previews":                              {},
	"Relaxed (sensory) screenings":          {},
}

// FilterKeywords returns keywords with denylisted platform terms removed,
// preserving order.
func FilterKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	for _, k := range keywords {
		if _, drop := droppedKeywords[strings.TrimSpace(k)]; drop {
			continue
		}
		out = append(out, k)
	}
	return out
}
