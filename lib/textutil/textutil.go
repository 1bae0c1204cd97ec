package textutil

import (
	"regexp"
	"strings"
)

var whitespaceRegex = regexp.MustCompile(`\s+`)

func NormalizeName(name string) string {
	name = strings.ToLower(name)
	name = strings.Trim(name, " \n\t")
	name = whitespaceRegex.ReplaceAllString(name, "")
	return name
}

func MatchName(name string, matchers []string) bool {
	name = NormalizeName(name)
	for _, m := range matchers {
		if strings.Contains(name, m) {
			return true
		}
	}
	return false
}

var (
	nonASCII       = regexp.MustCompile(`[^\x00-\x7F]+`)
	trailingGap    = regexp.MustCompile(`     .*`)
	indigenousInfo = regexp.MustCompile(`Home of the.*`)
)

// CleanVenue strips the decorations the NRL draw page attaches to venue
// names: non-ASCII glyphs, embedded newlines, everything after a run of
// spaces and the "Home of the ..." suffix added during Indigenous Round.
func CleanVenue(text string) string {
	text = nonASCII.ReplaceAllString(text, "")
	text = strings.TrimSpace(strings.ReplaceAll(text, "\n", " "))
	text = trailingGap.ReplaceAllString(text, "")
	text = indigenousInfo.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// StripMinute removes the trailing minute marker from a try time, e.g.
// "23'" -> "23".
func StripMinute(minute string) string {
	return strings.TrimSpace(strings.ReplaceAll(minute, "'", ""))
}
