package extractor

import (
	"regexp"
	"strings"
)

var keywordSplitRE = regexp.MustCompile(`[,;]`)

// comboExpansions splits combined tokens into separate keywords. Slashes are
// otherwise preserved so terms like "CI/CD" survive intact.
var comboExpansions = map[string][]string{
	"typescript/javascript":   {"TypeScript", "JavaScript"},
	"typescript / javascript": {"TypeScript", "JavaScript"},
	"c/c++":                   {"C", "C++"},
	"c / c++":                 {"C", "C++"},
}

// parseSkills reads colon-delimited group lines ("Languages: Go, Python").
// Without any colon lines the whole section collapses into one
// comma-separated "General" group.
func parseSkills(lines []string) []SkillGroup {
	var skills []SkillGroup
	for _, l := range lines {
		name, rest, ok := strings.Cut(l, ":")
		if !ok {
			continue
		}
		var keywords []string
		for _, tok := range splitKeywords(rest) {
			if exp, found := comboExpansions[strings.ToLower(tok)]; found {
				keywords = append(keywords, exp...)
			} else {
				keywords = append(keywords, tok)
			}
		}
		if len(keywords) > 0 {
			skills = append(skills, SkillGroup{Name: strings.TrimSpace(name), Keywords: keywords})
		}
	}

	if len(skills) == 0 && len(lines) > 0 {
		var words []string
		for _, w := range strings.Split(strings.Join(lines, ", "), ",") {
			if t := strings.TrimSpace(w); t != "" {
				words = append(words, t)
			}
		}
		if len(words) > 0 {
			skills = append(skills, SkillGroup{Name: "General", Keywords: words})
		}
	}
	return skills
}

// parseInlineSkillsAnywhere is the last-resort source: any line in the whole
// document pairing a colon with a skill/certification/award keyword.
func parseInlineSkillsAnywhere(lines []string) []SkillGroup {
	var found []SkillGroup
	for _, l := range lines {
		up := upperFold(l)
		if !strings.Contains(l, ":") {
			continue
		}
		if !strings.Contains(up, "SKILL") && !strings.Contains(up, "CERTIFICATION") && !strings.Contains(up, "AWARD") {
			continue
		}
		name, rest, _ := strings.Cut(l, ":")
		raw := splitKeywords(rest)
		if len(raw) > 0 {
			found = append(found, SkillGroup{Name: titleCase(strings.TrimSpace(name)), Keywords: raw})
		}
	}
	return found
}

func splitKeywords(rest string) []string {
	var out []string
	for _, s := range keywordSplitRE.Split(rest, -1) {
		if t := strings.TrimSpace(s); t != "" {
			out = append(out, t)
		}
	}
	return out
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
