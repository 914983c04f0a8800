package jobs

import (
	"strings"
	"unicode/utf8"
)

const (
	bulletMarkers = "●•-*◦▪·‣"

	// below this many bullet lines the posting probably uses prose, so
	// longer prose lines become the requirement set instead
	minBulletLines = 8

	minProseLineLen = 40
	maxRequirements = 60
)

// ExtractRequirements pulls the lines worth matching against a resume.
// Bullet lines win when the posting has enough of them; otherwise any
// reasonably long line counts. Results are deduplicated and capped.
func ExtractRequirements(text string) []string {
	var bullets, prose []string
	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		first, _ := utf8.DecodeRuneInString(line)
		if strings.ContainsRune(bulletMarkers, first) {
			stripped := strings.TrimSpace(strings.TrimLeft(line, bulletMarkers+" \t"))
			if stripped != "" {
				bullets = append(bullets, stripped)
			}
			continue
		}
		if len(line) >= minProseLineLen {
			prose = append(prose, line)
		}
	}

	source := prose
	if len(bullets) >= minBulletLines {
		source = bullets
	}

	seen := make(map[string]struct{}, len(source))
	out := make([]string, 0, len(source))
	for _, req := range source {
		key := strings.ToLower(req)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, req)
		if len(out) == maxRequirements {
			break
		}
	}
	return out
}
