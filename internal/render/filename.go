package render

import (
	"strings"
	"time"
	"unicode"
)

// FilenameFor builds a download filename like resume_jane_smith_20260115.docx.
func FilenameFor(name string, now time.Time) string {
	slug := slugify(name)
	if slug == "" {
		slug = "resume"
	} else {
		slug = "resume_" + slug
	}
	return slug + "_" + now.Format("20060102") + ".docx"
}

func slugify(name string) string {
	var sb strings.Builder
	lastUnderscore := true
	for _, r := range strings.ToLower(strings.TrimSpace(name)) {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			sb.WriteRune(r)
			lastUnderscore = false
		case !lastUnderscore:
			sb.WriteRune('_')
			lastUnderscore = true
		}
	}
	return strings.Trim(sb.String(), "_")
}
