package extractor

// Basics holds contact information recovered from the top of a resume.
// Every field is best-effort; a missing field is nil, not an error.
type Basics struct {
	Name     *string  `json:"name"`
	Email    *string  `json:"email"`
	Phone    *string  `json:"phone"`
	Location *string  `json:"location"`
	Links    []string `json:"links"`
}

// WorkEntry is one job or project. Dates stay free-text ("Jan 2021",
// "Present"); resume date formats are too irregular to normalize without loss.
type WorkEntry struct {
	Company    string   `json:"company"`
	Position   string   `json:"position"`
	Start      string   `json:"start"`
	End        string   `json:"end"`
	Location   *string  `json:"location"`
	Highlights []string `json:"highlights"`
}

// EducationEntry is one school record.
type EducationEntry struct {
	Institution string  `json:"institution"`
	Degree      *string `json:"degree"`
	Date        *string `json:"date"`
	Location    *string `json:"location"`
}

// SkillGroup is a named list of skill keywords.
type SkillGroup struct {
	Name     string   `json:"name"`
	Keywords []string `json:"keywords"`
}

// Meta carries extraction bookkeeping.
type Meta struct {
	LineCount int `json:"line_count"`
}

// ResumeDocument is the assembled output of ExtractFields. The JSON field
// names are a stable wire contract shared with storage, matching, and export.
type ResumeDocument struct {
	Basics    Basics           `json:"basics"`
	Skills    []SkillGroup     `json:"skills"`
	Education []EducationEntry `json:"education"`
	Work      []WorkEntry      `json:"work"`
	Meta      Meta             `json:"_meta"`
}

func strptr(s string) *string { return &s }
