package extractor

import (
	"regexp"
	"strings"
	"sync"
)

// EntityRecognizer supplies best-effort named-entity guesses used only to
// fill gaps the heuristic parsers left open. Implementations must be safe
// for concurrent reads.
type EntityRecognizer interface {
	People(text string) []string
	Organizations(text string) []string
}

var (
	personSpanRE = regexp.MustCompile(`\b([A-Z][a-z]+(?: [A-Z][a-z]+){1,2})\b`)
	titleWordRE  = regexp.MustCompile(`(?i)\b(Intern|Analyst|Associate|Engineer|Developer|Manager|Lead|Coach|Secretary|Member|Marketing|Consultant)\b`)
)

// heuristicRecognizer is the built-in recognizer: capitalized spans for
// people, company-suffix vocabulary hits for organizations. It is a stand-in
// for a real NLP model and only has to be right often enough to fill gaps.
type heuristicRecognizer struct{}

func (heuristicRecognizer) People(text string) []string {
	var people []string
	for _, m := range personSpanRE.FindAllString(text, -1) {
		if roleTitleRE.MatchString(m) || companySuffixRE.MatchString(m) {
			continue
		}
		people = append(people, m)
	}
	return people
}

func (heuristicRecognizer) Organizations(text string) []string {
	var orgs []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || !companySuffixRE.MatchString(line) {
			continue
		}
		if len(line) <= 80 {
			orgs = append(orgs, line)
		}
	}
	return orgs
}

var defaultRecognizerOnce = sync.OnceValue(func() EntityRecognizer {
	return heuristicRecognizer{}
})

// DefaultRecognizer returns the shared built-in recognizer, initialized at
// most once per process.
func DefaultRecognizer() EntityRecognizer {
	return defaultRecognizerOnce()
}
