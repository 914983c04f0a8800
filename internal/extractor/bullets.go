package extractor

import (
	"regexp"
	"strings"
)

var leadingMarkersRE = regexp.MustCompile(`^[\x{2022}\x{25CF}*\-•●]+\s*`)

const maxHighlights = 12

// SanitizeHighlights normalizes a highlight list: strips leading bullet
// markers, cuts section header text accidentally glued onto a bullet,
// collapses whitespace, drops empties, and deduplicates case-insensitively
// while preserving order. Sanitization is idempotent.
func SanitizeHighlights(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, b := range items {
		s := strings.TrimSpace(b)
		s = leadingMarkersRE.ReplaceAllString(s, "")
		s = trimHeaderSuffix(s)
		s = strings.TrimSpace(innerSpaceRE.ReplaceAllString(s, " "))
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, s)
	}
	return out
}

func capHighlights(items []string) []string {
	out := SanitizeHighlights(items)
	if len(out) > maxHighlights {
		out = out[:maxHighlights]
	}
	return out
}

// trimHeaderSuffix cuts a section header token that PDF extraction merged
// onto the end of a line ("Led the team EDUCATION" -> "Led the team").
func trimHeaderSuffix(s string) string {
	up := upperFold(s)
	for _, h := range headerTokens {
		if pos := strings.Index(up, h.token); pos > 0 {
			return strings.TrimRight(s[:pos], " -;|,")
		}
	}
	return s
}

// collectBullets gathers highlight lines starting at startIdx and returns the
// bullets plus the index of the first unconsumed line. It stops at blank
// lines once bullets exist, at section headers, and at anything that looks
// like the next job header.
func collectBullets(lines []string, startIdx int) ([]string, int) {
	var bullets []string
	k := startIdx
	for k < len(lines) {
		s := strings.TrimSpace(lines[k])
		if s == "" {
			if len(bullets) > 0 {
				break
			}
			k++
			continue
		}
		// the next-record lookahead only applies to plain lines; a line that
		// is itself a bullet belongs to the current record
		if !startsWithMarker(s) && looksLikeNewJobHeader(lines, k) {
			break
		}
		if isHeaderLine(s) {
			break
		}

		if startsWithMarker(s) && (len([]rune(s)) == 1 || []rune(s)[1] == ' ') {
			if len([]rune(s)) > 2 {
				// marker + text on the same line; absorb wrap lines
				bullets = append(bullets, strings.TrimSpace(string([]rune(s)[2:])))
				k++
				for k < len(lines) {
					nxt := strings.TrimSpace(lines[k])
					if nxt == "" || startsWithMarker(nxt) {
						break
					}
					if isHeaderLine(nxt) || looksLikeNewJobHeader(lines, k) {
						break
					}
					if len(nxt) <= 240 {
						bullets[len(bullets)-1] += " " + nxt
						k++
					} else {
						break
					}
				}
				continue
			}

			// bare marker survived coalescing: accumulate following lines
			k++
			var parts []string
			total := 0
			for k < len(lines) {
				nxt := strings.TrimSpace(lines[k])
				if nxt == "" {
					k++
					if len(parts) > 0 {
						break
					}
					continue
				}
				if startsWithMarker(nxt) || looksLikeNewJobHeader(lines, k) {
					break
				}
				if isHeaderLine(nxt) || strings.Contains(nxt, "|") {
					break
				}
				parts = append(parts, nxt)
				total += len(nxt)
				k++
				if total > 500 {
					break
				}
			}
			if len(parts) > 0 {
				bullets = append(bullets, strings.Join(parts, " "))
			}
			continue
		}

		// lead-in summary line before any bullets
		if len(bullets) == 0 && len(s) >= 20 && !startsWithMarker(s) &&
			!dateLineRE.MatchString(s) && !looseLocationRE.MatchString(s) &&
			!looksLikeNewJobHeader(lines, k) {
			bullets = append(bullets, s)
			k++
			continue
		}

		// short plain line after bullets started: wrap continuation
		if len(bullets) > 0 && len(s) <= 180 && !startsWithMarker(s) &&
			!dateLineRE.MatchString(s) && !looksLikeNewJobHeader(lines, k) {
			bullets[len(bullets)-1] += " " + s
			k++
			continue
		}

		break
	}
	return bullets, k
}
