package extractor

import (
	"regexp"
	"strings"
)

var (
	invisibleRE  = regexp.MustCompile("[\u200b\u200c\u200d\ufeff]")
	tabcrRE      = regexp.MustCompile(`[\t\r]+`)
	innerSpaceRE = regexp.MustCompile(`\s+`)
)

// Normalize cleans raw extracted text: strips zero-width characters, maps
// non-breaking spaces to spaces, and folds em/en dashes to hyphens. It never
// fails; garbage in, cleaner garbage out.
func Normalize(text string) string {
	text = invisibleRE.ReplaceAllString(text, "")
	text = strings.ReplaceAll(text, " ", " ")
	text = strings.ReplaceAll(text, "–", "-")
	text = strings.ReplaceAll(text, "—", "-")
	return tabcrRE.ReplaceAllString(text, " ")
}

// SplitLines turns normalized text into trimmed, non-empty logical lines,
// merging bare bullet-marker lines with their following content.
func SplitLines(text string) []string {
	raw := strings.Split(text, "\n")
	lines := make([]string, 0, len(raw))
	for _, l := range raw {
		l = strings.TrimSpace(innerSpaceRE.ReplaceAllString(l, " "))
		if l != "" {
			lines = append(lines, l)
		}
	}
	return coalesceBareBullets(lines)
}

// coalesceBareBullets handles PDF extraction that emits a bullet glyph and
// its text as separate lines: a line holding only a marker absorbs the next
// non-marker line, plus at most one more wrapped line, into a single logical
// bulleted line with the canonical "• " prefix.
func coalesceBareBullets(lines []string) []string {
	out := make([]string, 0, len(lines))
	i := 0
	for i < len(lines) {
		s := strings.TrimSpace(lines[i])
		if isBareMarker(s) {
			j := i + 1
			for j < len(lines) && strings.TrimSpace(lines[j]) == "" {
				j++
			}
			if j < len(lines) && !startsWithMarker(strings.TrimSpace(lines[j])) {
				parts := []string{strings.TrimSpace(lines[j])}
				end := j
				if k := j + 1; k < len(lines) {
					u := strings.TrimSpace(lines[k])
					if u != "" && !startsWithMarker(u) {
						parts = append(parts, u)
						end = k
					}
				}
				out = append(out, "• "+strings.Join(parts, " "))
				i = end + 1
				continue
			}
		}
		out = append(out, lines[i])
		i++
	}
	return out
}
