package extractor

import "strings"

// extractBasics locates email and phone by pattern search over the raw text,
// then recovers name, location, and links by proximity to the contact line.
func extractBasics(lines []string, rawText string) Basics {
	basics := Basics{Links: []string{}}

	email := emailRE.FindString(rawText)
	phone := phoneRE.FindString(rawText)
	if email != "" {
		basics.Email = strptr(email)
	}
	if phone != "" {
		basics.Phone = strptr(phone)
	}

	contactIdx := -1
	for i, l := range lines {
		if (email != "" && strings.Contains(l, email)) || (phone != "" && strings.Contains(l, phone)) {
			contactIdx = i
			break
		}
	}

	// name: scan upward from the contact line for the first line whose first
	// two alphabetic words are capitalized
	var name string
	if contactIdx >= 0 {
		for i := contactIdx - 1; i >= 0; i-- {
			cand := lines[i]
			if strings.Contains(cand, "|") || emailRE.MatchString(cand) || phoneRE.MatchString(cand) {
				continue
			}
			if looksLikeName(cand) {
				name = cand
				break
			}
		}
	}
	if name == "" {
		for _, cand := range lines {
			if cand != "" && !emailRE.MatchString(cand) && !phoneRE.MatchString(cand) {
				name = cand
				break
			}
		}
	}
	if name != "" {
		basics.Name = strptr(name)
	}

	// location and links come from the contact line and its neighbors
	var neigh []string
	if contactIdx >= 0 {
		neigh = append(neigh, lines[contactIdx])
		if contactIdx+1 < len(lines) {
			neigh = append(neigh, lines[contactIdx+1])
		}
		if contactIdx-1 >= 0 {
			neigh = append(neigh, lines[contactIdx-1])
		}
	}

	var location string
	var links []string
	for _, s := range neigh {
		if strings.Contains(s, "|") && location == "" {
			left := strings.TrimSpace(strings.SplitN(s, "|", 2)[0])
			if cityStateTrailerRE.MatchString(left) {
				location = left
			}
		}
		for _, m := range urlRE.FindAllString(s, -1) {
			if strings.Contains(m, "@") {
				continue
			}
			links = append(links, m)
		}
	}
	if location != "" {
		basics.Location = strptr(location)
	}

	// dedupe links, strip trailing punctuation, and drop bare email domains
	// picked up from mail-client signatures
	emailDomain := ""
	if at := strings.Index(email, "@"); at >= 0 {
		emailDomain = email[at+1:]
	}
	seen := make(map[string]struct{}, len(links))
	for _, u := range links {
		u = strings.TrimRight(u, ".,;")
		if _, dup := seen[u]; dup {
			continue
		}
		seen[u] = struct{}{}
		if emailDomain != "" && strings.Contains(u, emailDomain) && strings.Count(u, ".") == 1 {
			continue
		}
		basics.Links = append(basics.Links, u)
	}

	return basics
}

// looksLikeName is a simple proper-noun heuristic: at least two alphabetic
// words, the first two of which are capitalized.
func looksLikeName(s string) bool {
	words := alphaWords(s)
	if len(words) < 2 {
		return false
	}
	caps := 0
	for _, w := range words[:2] {
		if startsUpper(w) {
			caps++
		}
	}
	return caps >= 2
}
