// Package extractor recovers a structured resume document from the flat text
// stream a PDF extractor produces. Lines carry no layout metadata, so every
// parser here works from content and ordering alone: section headers are
// detected by prefix tokens, records are rebuilt with small lookahead
// windows, and each step degrades to a weaker fallback rather than failing.
package extractor

import "strings"

// Extractor assembles resume documents. The zero value works; NER is
// optional and only ever fills gaps the parsers left open.
type Extractor struct {
	NER EntityRecognizer
}

// New returns an Extractor using the given recognizer. Pass nil to skip
// enrichment entirely.
func New(ner EntityRecognizer) *Extractor {
	return &Extractor{NER: ner}
}

// ExtractFields is the package-level convenience using the shared built-in
// recognizer.
func ExtractFields(rawText string) ResumeDocument {
	return (&Extractor{NER: DefaultRecognizer()}).ExtractFields(rawText)
}

// ExtractFields turns raw extracted text into a ResumeDocument. It is total:
// any input, including the empty string, yields a structurally complete
// document with at least one work entry and one skill group.
func (e *Extractor) ExtractFields(rawText string) ResumeDocument {
	text := Normalize(rawText)
	lines := SplitLines(text)

	basics := extractBasics(lines, text)
	sections := DetectSections(lines)

	education := parseEducation(sections[SectionEducation])

	// strict role|company layout first, general heuristics as fallback
	expLines := sections[SectionExperience]
	prjLines := sections[SectionProjects]
	experience := parseWorkPiped(expLines)
	if len(experience) == 0 {
		experience = parseWorkGeneral(expLines)
	}
	projects := parseWorkPiped(prjLines)
	if len(projects) == 0 {
		projects = parseWorkGeneral(prjLines)
	}

	skills := parseSkills(sections[SectionSkills])
	if len(skills) == 0 {
		skills = parseInlineSkillsAnywhere(lines)
	}

	// projects fold into work, distinguished only by a company suffix
	for i := range projects {
		if projects[i].Company == "" {
			projects[i].Company = "Project"
		} else {
			projects[i].Company += " (Project)"
		}
	}
	work := mergeWork(append(experience, projects...))

	if len(work) == 0 {
		work = []WorkEntry{syntheticWorkEntry(lines)}
	}

	doc := ResumeDocument{
		Basics:    basics,
		Skills:    skills,
		Education: education,
		Work:      work,
		Meta:      Meta{LineCount: len(lines)},
	}
	if len(doc.Skills) == 0 {
		doc.Skills = []SkillGroup{{Name: "General", Keywords: []string{}}}
	}
	if doc.Education == nil {
		doc.Education = []EducationEntry{}
	}

	e.enrich(&doc, text)
	return doc
}

// mergeWork merges entries sharing a case-insensitive
// (company, position, start, end) signature, unioning their highlights.
func mergeWork(work []WorkEntry) []WorkEntry {
	type sig struct{ company, position, start, end string }
	merged := make([]WorkEntry, 0, len(work))
	sigToIdx := make(map[sig]int, len(work))
	for _, w := range work {
		key := sig{
			company:  strings.ToLower(strings.TrimSpace(w.Company)),
			position: strings.ToLower(strings.TrimSpace(w.Position)),
			start:    strings.ToLower(strings.TrimSpace(w.Start)),
			end:      strings.ToLower(strings.TrimSpace(w.End)),
		}
		if idx, ok := sigToIdx[key]; ok {
			merged[idx].Highlights = capHighlights(append(merged[idx].Highlights, w.Highlights...))
			continue
		}
		w.Highlights = capHighlights(w.Highlights)
		sigToIdx[key] = len(merged)
		merged = append(merged, w)
	}
	return merged
}

// syntheticWorkEntry guarantees the document always has a work entry: up to
// eight bullet-like lines from anywhere in the document, no structure.
func syntheticWorkEntry(lines []string) WorkEntry {
	var highlights []string
	for _, l := range lines {
		if l == "" {
			continue
		}
		switch []rune(l)[0] {
		case '-', '•', '●':
			highlights = append(highlights, strings.TrimLeft(l, "-•● "))
		}
		if len(highlights) >= 8 {
			break
		}
	}
	if highlights == nil {
		highlights = []string{}
	}
	return WorkEntry{Highlights: highlights}
}

// enrich fills gaps with recognizer guesses: a name when none was found, a
// company or position for the first work entry. It never overrides populated
// fields, and any panic inside the recognizer is discarded.
func (e *Extractor) enrich(doc *ResumeDocument, text string) {
	if e == nil || e.NER == nil {
		return
	}
	defer func() {
		_ = recover()
	}()

	if doc.Basics.Name == nil {
		if people := e.NER.People(text); len(people) > 0 {
			doc.Basics.Name = strptr(people[0])
		}
	}

	if len(doc.Work) > 0 && (doc.Work[0].Company == "" || doc.Work[0].Position == "") {
		if doc.Work[0].Company == "" {
			if orgs := e.NER.Organizations(text); len(orgs) > 0 {
				doc.Work[0].Company = orgs[0]
			}
		}
		if doc.Work[0].Position == "" {
			if title := titleWordRE.FindString(text); title != "" {
				doc.Work[0].Position = title
			}
		}
	}
}
