package audienceview

import (
	"encoding/json"
	"errors"
	"log/slog"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ErrChallenged indicates the page is an authentication challenge rather than
// a listing. The whole multi-day run aborts on this: the cookies are presumed
// invalid for every remaining day too.
var ErrChallenged = errors.New("authentication challenge detected")

var (
	resultsPattern       = regexp.MustCompile(`(?s)searchResults\s*:\s*\[\s*(.*?)\s*\],\s*searchFilters`)
	trailingBracketComma = regexp.MustCompile(`,\s*\]`)
	trailingBraceComma   = regexp.MustCompile(`,\s*\}`)
)

// challengeMarkers identify the CDN's browser-verification interstitial.
var challengeMarkers = []string{"cf-browser-verification", "challenge-platform"}

// ExtractRows locates the embedded searchResults array in raw markup and
// repairs it into strict JSON rows. Markup with no listing data yields an
// empty result, not an error; markup showing a challenge page fails with
// ErrChallenged. A parse failure after repair is logged and treated as zero
// rows so the fetch loop can proceed to the next day.
func ExtractRows(markup string, logger *slog.Logger) ([][]any, error) {
	if !strings.Contains(markup, "articleContext") {
		for _, marker := range challengeMarkers {
			if strings.Contains(markup, marker) {
				return nil, ErrChallenged
			}
		}
		return nil, nil
	}

	match := resultsPattern.FindStringSubmatch(scriptText(markup))
	if match == nil || strings.TrimSpace(match[1]) == "" {
		return nil, nil
	}

	// The site emits single-quoted strings and trailing separators. The
	// blanket quote swap is lossy if a field value ever carries a literal
	// quote; the site's own quoting rules are unknown, so this mirrors the
	// format as observed rather than guessing at an escape scheme.
	repaired := "[" + match[1] + "]"
	repaired = strings.ReplaceAll(repaired, "'", `"`)
	repaired = trailingBracketComma.ReplaceAllString(repaired, "]")
	repaired = trailingBraceComma.ReplaceAllString(repaired, "}")

	var rows [][]any
	if err := json.Unmarshal([]byte(repaired), &rows); err != nil {
		logger.Warn("search results unparseable after repair", "error", err)
		return nil, nil
	}
	return rows, nil
}

// scriptText narrows the search to script elements when the markup parses;
// otherwise the raw markup is scanned as-is.
func scriptText(markup string) string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return markup
	}
	var b strings.Builder
	doc.Find("script").Each(func(_ int, sel *goquery.Selection) {
		b.WriteString(sel.Text())
		b.WriteByte('\n')
	})
	if b.Len() == 0 {
		return markup
	}
	return b.String()
}
