package cookies

import "strings"

// multiLabelSuffixes are public suffixes composed of two labels. Hosts under
// one of these need an extra label to form their registrable parent domain.
var multiLabelSuffixes = map[string]struct{}{
	"org.uk": {},
	"co.uk":  {},
	"ac.uk":  {},
	"gov.uk": {},
	"com.au": {},
	"co.nz":  {},
	"co.jp":  {},
}

// ParentDomain returns the registrable parent domain of host, or "" when the
// host is itself the registrable domain (or too short to have one).
func ParentDomain(host string) string {
	parts := strings.Split(host, ".")
	if len(parts) < 2 {
		return ""
	}

	suffix := strings.Join(parts[len(parts)-2:], ".")
	if _, ok := multiLabelSuffixes[suffix]; ok {
		if len(parts) > 3 {
			return strings.Join(parts[len(parts)-3:], ".")
		}
		// host is already the registrable domain under this suffix
		return ""
	}
	if len(parts) > 2 {
		return suffix
	}
	return ""
}

// DomainCandidates returns the ordered, deduplicated host values to match
// against stored cookies: the exact host, its leading-dot form, and — when a
// distinct registrable parent exists — the parent in leading-dot and bare
// form. The parent is never the host itself and nothing appears twice.
func DomainCandidates(host string) []string {
	host = strings.TrimSpace(strings.ToLower(host))
	if host == "" {
		return nil
	}

	candidates := []string{host, "." + host}
	if parent := ParentDomain(host); parent != "" && parent != host {
		candidates = append(candidates, "."+parent, parent)
	}

	seen := make(map[string]struct{}, len(candidates))
	out := candidates[:0]
	for _, c := range candidates {
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	return out
}
