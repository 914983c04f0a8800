package matching

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"

	"resume-rewriter/internal/extractor"
	"resume-rewriter/internal/patch"
)

const (
	// requirements scoring below this against every highlight count as gaps
	missingThreshold = 0.45

	maxCoverage         = 50
	maxMissing          = 10
	maxRewrites         = 6
	alignmentSnippetLen = 160
	alignmentTag        = " - emphasizes: "
)

// CoverageItem pairs a requirement with its best similarity score and the
// highlight that produced it.
type CoverageItem struct {
	Requirement string  `json:"requirement"`
	Score       float64 `json:"score"`
	Highlight   string  `json:"highlight,omitempty"`
	Path        string  `json:"path,omitempty"`
}

// Rewrite is a suggested highlight edit, expressed as a patch op target.
type Rewrite struct {
	Path        string `json:"path"`
	Original    string `json:"original"`
	Suggested   string `json:"suggested"`
	Requirement string `json:"requirement"`
}

// Result is the full coverage report for one resume against one posting.
// OriginalText and SuggestedText are the bullet blobs the diff was computed
// over; all three are empty when there are no rewrites.
type Result struct {
	Model         string         `json:"model"`
	Coverage      []CoverageItem `json:"coverage"`
	Missing       []CoverageItem `json:"missing"`
	Rewrites      []Rewrite      `json:"rewrites"`
	OriginalText  string         `json:"originalText"`
	SuggestedText string         `json:"suggestedText"`
	Diff          string         `json:"diff"`
}

// Matcher scores resumes against requirements using an embedder.
type Matcher struct {
	Embedder Embedder
}

// NewMatcher constructs a Matcher. A nil embedder falls back to the
// deterministic token-hash embedder.
func NewMatcher(e Embedder) *Matcher {
	if e == nil {
		e = HashEmbedder{}
	}
	return &Matcher{Embedder: e}
}

type highlightRef struct {
	workIdx int
	hlIdx   int
	text    string
}

// CoverageAndSuggestions embeds every requirement and highlight, scores each
// requirement by its best cosine similarity, and proposes rewrites for the
// requirements no highlight covers.
func (m *Matcher) CoverageAndSuggestions(ctx context.Context, doc extractor.ResumeDocument, requirements []string) (Result, error) {
	result := Result{
		Model:    m.Embedder.Model(),
		Coverage: []CoverageItem{},
		Missing:  []CoverageItem{},
		Rewrites: []Rewrite{},
	}
	if len(requirements) == 0 {
		return result, nil
	}

	var refs []highlightRef
	for wi, entry := range doc.Work {
		for hi, hl := range entry.Highlights {
			refs = append(refs, highlightRef{workIdx: wi, hlIdx: hi, text: hl})
		}
	}
	// nothing to score against; a resume without bullets gets an empty
	// report, not a wall of zero-score gaps
	if len(refs) == 0 {
		return result, nil
	}

	texts := make([]string, 0, len(requirements)+len(refs))
	texts = append(texts, requirements...)
	for _, ref := range refs {
		texts = append(texts, ref.text)
	}

	vectors, err := m.Embedder.EmbedBatch(ctx, texts)
	if err != nil {
		return Result{}, fmt.Errorf("embed: %w", err)
	}
	for i := range vectors {
		normalize(vectors[i])
	}
	reqVecs := vectors[:len(requirements)]
	hlVecs := vectors[len(requirements):]

	coverage := make([]CoverageItem, 0, len(requirements))
	bestRef := make(map[string]highlightRef, len(requirements))
	for i, req := range requirements {
		item := CoverageItem{Requirement: req}
		for j, ref := range refs {
			score := dot(reqVecs[i], hlVecs[j])
			if score > item.Score {
				item.Score = score
				item.Highlight = ref.text
				item.Path = fmt.Sprintf("/work/%d/highlights/%d", ref.workIdx, ref.hlIdx)
				bestRef[req] = ref
			}
		}
		coverage = append(coverage, item)
	}

	sort.SliceStable(coverage, func(i, j int) bool {
		return coverage[i].Score > coverage[j].Score
	})
	if len(coverage) > maxCoverage {
		coverage = coverage[:maxCoverage]
	}
	result.Coverage = coverage

	for _, item := range coverage {
		if item.Score < missingThreshold {
			result.Missing = append(result.Missing, item)
			if len(result.Missing) == maxMissing {
				break
			}
		}
	}

	usedPaths := make(map[string]bool)
	for _, item := range result.Missing {
		if len(result.Rewrites) == maxRewrites {
			break
		}
		ref, ok := bestRef[item.Requirement]
		if !ok {
			continue
		}
		path := fmt.Sprintf("/work/%d/highlights/%d", ref.workIdx, ref.hlIdx)
		if usedPaths[path] {
			continue
		}
		usedPaths[path] = true
		result.Rewrites = append(result.Rewrites, Rewrite{
			Path:        path,
			Original:    ref.text,
			Suggested:   ref.text + alignmentTag + snippet(item.Requirement),
			Requirement: item.Requirement,
		})
	}

	if len(result.Rewrites) > 0 {
		result.OriginalText, result.SuggestedText, result.Diff = rewriteDiff(doc, result.Rewrites)
	}

	return result, nil
}

// rewriteDiff applies the rewrites to a copy of the document and returns the
// before and after bullet blobs plus their unified diff.
func rewriteDiff(doc extractor.ResumeDocument, rewrites []Rewrite) (string, string, string) {
	ops := make([]patch.Op, 0, len(rewrites))
	for _, rw := range rewrites {
		ops = append(ops, patch.Op{Op: "replace", Path: rw.Path, Value: rw.Suggested})
	}
	suggested, err := patch.Apply(doc, ops)
	if err != nil {
		return "", "", ""
	}
	before := flatten(doc)
	after := flatten(suggested)
	diff := UnifiedDiff(before, after, "resume", "resume_suggested")
	return strings.Join(before, "\n"), strings.Join(after, "\n"), diff
}

// flatten reduces the document to its bullet list, one line per highlight.
func flatten(doc extractor.ResumeDocument) []string {
	var lines []string
	for _, entry := range doc.Work {
		for _, hl := range entry.Highlights {
			lines = append(lines, "• "+hl)
		}
	}
	return lines
}

func snippet(req string) string {
	if len(req) > alignmentSnippetLen {
		return strings.TrimSpace(req[:alignmentSnippetLen])
	}
	return req
}

func normalize(v []float32) {
	var sum float64
	for _, x := range v {
		sum += float64(x) * float64(x)
	}
	if sum == 0 {
		return
	}
	inv := 1 / math.Sqrt(sum)
	for i := range v {
		v[i] = float32(float64(v[i]) * inv)
	}
}

func dot(a, b []float32) float64 {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	var sum float64
	for i := 0; i < n; i++ {
		sum += float64(a[i]) * float64(b[i])
	}
	return sum
}
