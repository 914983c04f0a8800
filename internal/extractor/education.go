package extractor

import (
	"regexp"
	"strings"
)

var (
	institutionRE = regexp.MustCompile(`\b(University|College|Institute)\b`)
	degreeRE      = regexp.MustCompile(`(?i)(Bachelor|Master|B\.?S\.?|BSc|M\.?S\.?|MSc|PhD|Doctor)`)
)

// parseEducation scans a section for institution anchor lines and fills each
// entry from a six-line lookahead window: degree (with any co-located date
// split off), standalone date, and location.
func parseEducation(lines []string) []EducationEntry {
	var edu []EducationEntry
	i := 0
	for i < len(lines) {
		l := lines[i]
		if !institutionRE.MatchString(l) {
			i++
			continue
		}

		entry := EducationEntry{Institution: l}
		j := i + 1
		var window []string
		for j < len(lines) && j <= i+6 {
			window = append(window, lines[j])
			j++
		}

		for _, s := range window {
			if !degreeRE.MatchString(s) {
				continue
			}
			degree := s
			if m := dateLineRE.FindStringIndex(s); m != nil {
				degree = strings.TrimRight(s[:m[0]], " -,")
				if entry.Date == nil {
					entry.Date = strptr(strings.TrimSpace(s[m[0]:]))
				}
			}
			entry.Degree = strptr(degree)
			break
		}

		if entry.Date == nil {
			for _, s := range window {
				if dateLineRE.MatchString(s) {
					entry.Date = strptr(strings.TrimSpace(s))
					break
				}
			}
		}

		for _, s := range window {
			if cityStateTrailerRE.MatchString(s) {
				entry.Location = strptr(strings.TrimSpace(s))
				break
			}
		}

		edu = append(edu, entry)
		i = j
	}

	// no anchor keyword anywhere: take the first line that is not itself a
	// degree, date, or location as the institution and fill the rest from
	// the whole section
	if len(edu) == 0 && len(lines) > 0 {
		if entry, ok := educationWithoutAnchor(lines); ok {
			edu = append(edu, entry)
		}
	}
	return edu
}

func educationWithoutAnchor(lines []string) (EducationEntry, bool) {
	institution := ""
	for _, l := range lines {
		s := strings.TrimSpace(l)
		if s == "" || degreeRE.MatchString(s) || dateLineRE.MatchString(s) || isLocationLine(s) {
			continue
		}
		institution = s
		break
	}
	if institution == "" {
		return EducationEntry{}, false
	}

	entry := EducationEntry{Institution: institution}
	for _, s := range lines {
		if !degreeRE.MatchString(s) {
			continue
		}
		degree := s
		if m := dateLineRE.FindStringIndex(s); m != nil {
			degree = strings.TrimRight(s[:m[0]], " -,")
			entry.Date = strptr(strings.TrimSpace(s[m[0]:]))
		}
		entry.Degree = strptr(degree)
		break
	}
	if entry.Date == nil {
		for _, s := range lines {
			if s != institution && dateLineRE.MatchString(s) {
				entry.Date = strptr(strings.TrimSpace(s))
				break
			}
		}
	}
	for _, s := range lines {
		if cityStateTrailerRE.MatchString(s) {
			entry.Location = strptr(strings.TrimSpace(s))
			break
		}
	}
	return entry, true
}
