// Package patch applies guarded edits to a structured resume document.
// Only highlight replacement is allowed; anything else is rejected up front.
package patch

import (
	"errors"
	"fmt"
	"regexp"

	"resume-rewriter/internal/extractor"
)

const maxValueLen = 400

// highlight paths look like /work/0/highlights/2
var highlightPathRE = regexp.MustCompile(`^/work/(\d+)/highlights/(\d+)$`)

var (
	// ErrInvalidInput indicates validation or bad input.
	ErrInvalidInput = errors.New("invalid input")
)

// Op is a single edit in JSON Patch shape.
type Op struct {
	Op    string `json:"op"`
	Path  string `json:"path"`
	Value string `json:"value"`
}

// Validate rejects any op that is not a bounded highlight replacement.
// It does not check index bounds; those depend on the target document.
func Validate(ops []Op) error {
	if len(ops) == 0 {
		return fmt.Errorf("%w: no operations", ErrInvalidInput)
	}
	for i, op := range ops {
		if op.Op != "replace" {
			return fmt.Errorf("%w: op %d: unsupported op %q", ErrInvalidInput, i, op.Op)
		}
		if !highlightPathRE.MatchString(op.Path) {
			return fmt.Errorf("%w: op %d: path %q is not a work highlight", ErrInvalidInput, i, op.Path)
		}
		if len(op.Value) > maxValueLen {
			return fmt.Errorf("%w: op %d: value exceeds %d characters", ErrInvalidInput, i, maxValueLen)
		}
	}
	return nil
}

// Apply returns a new document with the ops applied. The input document is
// never mutated, so a failed op leaves the caller's copy untouched.
func Apply(doc extractor.ResumeDocument, ops []Op) (extractor.ResumeDocument, error) {
	if err := Validate(ops); err != nil {
		return extractor.ResumeDocument{}, err
	}

	out := clone(doc)
	for i, op := range ops {
		m := highlightPathRE.FindStringSubmatch(op.Path)
		workIdx := atoi(m[1])
		hlIdx := atoi(m[2])
		if workIdx >= len(out.Work) {
			return extractor.ResumeDocument{}, fmt.Errorf("%w: op %d: work index %d out of range", ErrInvalidInput, i, workIdx)
		}
		if hlIdx >= len(out.Work[workIdx].Highlights) {
			return extractor.ResumeDocument{}, fmt.Errorf("%w: op %d: highlight index %d out of range", ErrInvalidInput, i, hlIdx)
		}
		out.Work[workIdx].Highlights[hlIdx] = op.Value
	}
	return out, nil
}

// clone copies the slices Apply may write through. Pointer fields are
// read-only here so sharing them is fine.
func clone(doc extractor.ResumeDocument) extractor.ResumeDocument {
	out := doc
	out.Work = make([]extractor.WorkEntry, len(doc.Work))
	copy(out.Work, doc.Work)
	for i := range out.Work {
		hl := make([]string, len(out.Work[i].Highlights))
		copy(hl, out.Work[i].Highlights)
		out.Work[i].Highlights = hl
	}
	return out
}

// atoi assumes digits only, guaranteed by the path regexp.
func atoi(s string) int {
	n := 0
	for _, r := range s {
		n = n*10 + int(r-'0')
	}
	return n
}
