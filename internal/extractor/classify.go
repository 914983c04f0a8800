package extractor

import (
	"regexp"
	"strings"
	"unicode"
)

// Line classification predicates. Each one is a pure function over a single
// trimmed line (plus limited lookahead where noted); the parsers compose them
// into an ordered decision cascade instead of nested conditionals.

const monthPattern = `(?:Jan(?:uary)?|Feb(?:ruary)?|Mar(?:ch)?|Apr(?:il)?|May|Jun(?:e)?|Jul(?:y)?|Aug(?:ust)?|Sep(?:t(?:ember)?)?|Oct(?:ober)?|Nov(?:ember)?|Dec(?:ember)?)`

var (
	emailRE = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
	phoneRE = regexp.MustCompile(`(?:\+?1[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
	urlRE   = regexp.MustCompile(`https?://[^\s]+|[A-Za-z0-9.-]+\.[A-Za-z]{2,}[^\s]*`)

	monthRE = regexp.MustCompile(`(?i)\b` + monthPattern + `\b`)

	// A line "contains a date" if it has a month token trailed by a year, or
	// any bare 4-digit year.
	dateLineRE = regexp.MustCompile(`(?i)\b` + monthPattern + `[\w\s\-,]*(\d{4})\b|\b\d{4}\b`)

	// Strict "Month YYYY - Month YYYY|Present" range.
	dateRangeRE = regexp.MustCompile(`(?i)(?P<start>` + monthPattern + `[\s\x{00A0}]+\d{4})\s*[-\x{2013}\x{2014}]\s*(?P<end>` + monthPattern + `[\s\x{00A0}]+\d{4}|Present)\b`)

	yearRE = regexp.MustCompile(`\b\d{4}\b`)

	roleTitleRE = regexp.MustCompile(`(?i)\b(Intern|Analyst|Associate|Engineer|Developer|Manager|Lead|Coach|Secretary|Member|Marketing|Consultant|Assistant|Research|Fellow|President|Founder|Director|Advisor|Teacher)\b`)

	companySuffixRE = regexp.MustCompile(`\b(Inc\.?|LLC|Ltd\.?|Corporation|Corp\.?|Company|University|College|Golf Course|Club|State|Council|Committee|Ministry|Agency)\b`)

	locationLineRE     = regexp.MustCompile(`^[A-Za-z .'-]+,\s*[A-Z]{2}$`)
	looseLocationRE    = regexp.MustCompile(`^[A-Za-z .]+,\s*[A-Z]{2}$`)
	cityStateTrailerRE = regexp.MustCompile(`,\s*[A-Z]{2}\b`)
)

const bulletMarkers = "●•-*◦▪·‣"

func isBulletMarker(r rune) bool {
	return strings.ContainsRune(bulletMarkers, r)
}

// startsWithMarker reports whether the first rune of s is a bullet glyph.
func startsWithMarker(s string) bool {
	if s == "" {
		return false
	}
	return isBulletMarker([]rune(s)[0])
}

// isBareMarker reports whether s is a bullet glyph with no trailing text.
func isBareMarker(s string) bool {
	rs := []rune(s)
	return len(rs) == 1 && isBulletMarker(rs[0])
}

// upperFold case-normalizes a line for header matching. The normalizer has
// already replaced the unicode space/dash variants that compatibility folding
// would otherwise catch.
func upperFold(s string) string {
	return strings.ToUpper(s)
}

func isLocationLine(s string) bool {
	return locationLineRE.MatchString(s)
}

// hasShortDate reports a date mention on a line short enough to be a pure
// date line rather than prose that happens to contain a year.
func hasShortDate(s string) bool {
	return dateLineRE.MatchString(s) && len(s) <= 64
}

func isRoleLine(s string) bool {
	if s == "" {
		return false
	}
	if hasShortDate(s) {
		return false
	}
	return roleTitleRE.MatchString(s)
}

// isCompanyLine applies the company heuristics in priority order: pipe
// delimiter, known company-suffix vocabulary, then a Title-Case tie-break
// that rejects lines matching the role-title vocabulary.
func isCompanyLine(s string) bool {
	if s == "" {
		return false
	}
	if isHeaderLine(s) || isLocationLine(s) || hasShortDate(s) {
		return false
	}
	if strings.Contains(s, "|") {
		return true
	}
	if companySuffixRE.MatchString(s) {
		return true
	}
	words := alphaWords(s)
	caps := 0
	for _, w := range words {
		if startsUpper(w) {
			caps++
		}
	}
	return len(words) >= 2 && caps >= 2 && !roleTitleRE.MatchString(s)
}

// looksLikeNewJobHeader reports whether lines[idx] opens a new job or project
// record: either the line itself classifies as a company line, or it is
// followed by a location, role, or short date line.
func looksLikeNewJobHeader(lines []string, idx int) bool {
	s := strings.TrimSpace(lines[idx])
	if isCompanyLine(s) {
		return true
	}
	if idx+1 < len(lines) {
		n1 := strings.TrimSpace(lines[idx+1])
		if isLocationLine(n1) || isRoleLine(n1) || hasShortDate(n1) {
			return true
		}
	}
	return false
}

func alphaWords(s string) []string {
	var out []string
	for _, w := range strings.Fields(s) {
		if isAlpha(w) {
			out = append(out, w)
		}
	}
	return out
}

func isAlpha(w string) bool {
	if w == "" {
		return false
	}
	for _, r := range w {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func startsUpper(w string) bool {
	if w == "" {
		return false
	}
	return unicode.IsUpper([]rune(w)[0])
}
