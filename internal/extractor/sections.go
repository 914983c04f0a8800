package extractor

import "strings"

// SectionKey names a canonical resume section.
type SectionKey string

const (
	SectionEducation  SectionKey = "education"
	SectionExperience SectionKey = "experience"
	SectionProjects   SectionKey = "projects"
	SectionSkills     SectionKey = "skills"
	SectionLeadership SectionKey = "leadership"
)

// headerTokens maps known section header prefixes to canonical keys. Matching
// is by prefix, so multi-word tokens must come before their generic prefixes
// ("PROFESSIONAL EXPERIENCE" before "EXPERIENCE").
var headerTokens = []struct {
	token string
	key   SectionKey
}{
	{"CERTIFICATIONS, AWARDS & SKILLS", SectionSkills},
	{"PROFESSIONAL EXPERIENCE", SectionExperience},
	{"LEADERSHIP & INVOLVEMENT", SectionLeadership},
	{"WORK EXPERIENCE", SectionExperience},
	{"TECHNICAL TOOLKIT", SectionSkills},
	{"CERTIFICATIONS", SectionSkills},
	{"EXPERIENCE", SectionExperience},
	{"EDUCATION", SectionEducation},
	{"LEADERSHIP", SectionLeadership},
	{"INVOLVEMENT", SectionLeadership},
	{"PROJECTS", SectionProjects},
	{"SKILLS", SectionSkills},
}

// headerKey returns the canonical key when s starts with a known header
// token, or "" when it is not a header line.
func headerKey(s string) (SectionKey, bool) {
	up := upperFold(s)
	for _, h := range headerTokens {
		if strings.HasPrefix(up, h.token) {
			return h.key, true
		}
	}
	return "", false
}

func isHeaderLine(s string) bool {
	_, ok := headerKey(s)
	return ok
}

// DetectSections partitions lines into named segments bounded by recognized
// header lines. Headers themselves are excluded from content. When the same
// key recurs later in the document, the later slice replaces the earlier one;
// that mirrors the historical behavior and is a known gap, not a guarantee.
func DetectSections(lines []string) map[SectionKey][]string {
	type headerIdx struct {
		idx int
		key SectionKey
	}
	var idxs []headerIdx
	for i, l := range lines {
		if key, ok := headerKey(l); ok {
			idxs = append(idxs, headerIdx{idx: i, key: key})
		}
	}

	segments := make(map[SectionKey][]string)
	for k, h := range idxs {
		end := len(lines)
		if k+1 < len(idxs) {
			end = idxs[k+1].idx
		}
		segments[h.key] = lines[h.idx+1 : end]
	}
	return segments
}
