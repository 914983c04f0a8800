package matching

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"resume-rewriter/internal/extractor"
)

// stubEmbedder maps known texts to fixed axis-aligned vectors so similarity
// scores are exact.
type stubEmbedder struct {
	vectors map[string][]float32
}

func (s *stubEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	if v, ok := s.vectors[text]; ok {
		return v, nil
	}
	return []float32{0, 0, 0, 1}, nil
}

func (s *stubEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	out := make([][]float32, len(texts))
	for i, t := range texts {
		v, err := s.Embed(ctx, t)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

func (s *stubEmbedder) Dimensions() int { return 4 }
func (s *stubEmbedder) Model() string   { return "stub" }

func matchDoc() extractor.ResumeDocument {
	return extractor.ResumeDocument{
		Work: []extractor.WorkEntry{
			{
				Company:    "Acme",
				Position:   "Engineer",
				Highlights: []string{"Built Go services", "Wrote SQL reports"},
			},
		},
	}
}

func TestCoverageAndSuggestionsScoresAndSorts(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{
		"Built Go services": {1, 0, 0, 0},
		"Wrote SQL reports": {0, 1, 0, 0},
		"Go experience":     {1, 0, 0, 0},          // exact hit on first highlight
		"SQL experience":    {0.6, 0.8, 0, 0},      // partial hit on second
		"Kubernetes":        {0, 0, 1, 0},          // no hit anywhere
	}}
	m := NewMatcher(emb)

	result, err := m.CoverageAndSuggestions(context.Background(), matchDoc(),
		[]string{"Kubernetes", "SQL experience", "Go experience"})
	if err != nil {
		t.Fatalf("CoverageAndSuggestions: %v", err)
	}

	if result.Model != "stub" {
		t.Fatalf("model = %q", result.Model)
	}
	if len(result.Coverage) != 3 {
		t.Fatalf("coverage = %#v", result.Coverage)
	}
	if result.Coverage[0].Requirement != "Go experience" || result.Coverage[0].Score < 0.99 {
		t.Fatalf("top coverage = %#v", result.Coverage[0])
	}
	if result.Coverage[1].Requirement != "SQL experience" {
		t.Fatalf("second coverage = %#v", result.Coverage[1])
	}
	if result.Coverage[2].Requirement != "Kubernetes" {
		t.Fatalf("last coverage = %#v", result.Coverage[2])
	}

	if len(result.Missing) != 1 || result.Missing[0].Requirement != "Kubernetes" {
		t.Fatalf("missing = %#v", result.Missing)
	}
}

func TestCoverageAndSuggestionsRewrites(t *testing.T) {
	emb := &stubEmbedder{vectors: map[string][]float32{
		"Built Go services": {1, 0, 0, 0},
		"Wrote SQL reports": {0, 1, 0, 0},
		"Terraform modules": {0.9, 0, 0.1, 0}, // weak, best match is first highlight
	}}
	m := NewMatcher(emb)

	doc := matchDoc()
	result, err := m.CoverageAndSuggestions(context.Background(), doc, []string{"Terraform modules"})
	if err != nil {
		t.Fatalf("CoverageAndSuggestions: %v", err)
	}
	if len(result.Missing) != 0 {
		t.Fatalf("score 0.9 should not be missing: %#v", result.Missing)
	}

	// now make it a genuine gap
	emb.vectors["Terraform modules"] = []float32{0.3, 0, 0.95, 0}
	result, err = m.CoverageAndSuggestions(context.Background(), doc, []string{"Terraform modules"})
	if err != nil {
		t.Fatalf("CoverageAndSuggestions: %v", err)
	}
	if len(result.Rewrites) != 1 {
		t.Fatalf("rewrites = %#v", result.Rewrites)
	}
	rw := result.Rewrites[0]
	if rw.Path != "/work/0/highlights/0" {
		t.Fatalf("path = %q", rw.Path)
	}
	if rw.Original != "Built Go services" {
		t.Fatalf("original = %q", rw.Original)
	}
	if rw.Suggested != "Built Go services - emphasizes: Terraform modules" {
		t.Fatalf("suggested = %q", rw.Suggested)
	}
	if result.Diff == "" {
		t.Fatal("expected a diff for the rewrite")
	}
	if !strings.Contains(result.Diff, "--- resume\n+++ resume_suggested\n") {
		t.Fatalf("diff headers missing:\n%s", result.Diff)
	}
	if !strings.Contains(result.Diff, "-• Built Go services\n") ||
		!strings.Contains(result.Diff, "+• Built Go services - emphasizes: Terraform modules\n") {
		t.Fatalf("diff:\n%s", result.Diff)
	}
	if result.OriginalText != "• Built Go services\n• Wrote SQL reports" {
		t.Fatalf("original text = %q", result.OriginalText)
	}
	if result.SuggestedText != "• Built Go services - emphasizes: Terraform modules\n• Wrote SQL reports" {
		t.Fatalf("suggested text = %q", result.SuggestedText)
	}
	if strings.Contains(result.Diff, "Acme") {
		t.Fatalf("diff should cover bullets only:\n%s", result.Diff)
	}
}

func TestCoverageAndSuggestionsRewriteCapAndPathDedup(t *testing.T) {
	vectors := map[string][]float32{
		"Built Go services": {1, 0, 0, 0},
		"Wrote SQL reports": {0, 1, 0, 0},
	}
	var reqs []string
	for i := 0; i < 10; i++ {
		req := fmt.Sprintf("Unrelated requirement %d", i)
		reqs = append(reqs, req)
		// all nearest to the first highlight, all below threshold
		vectors[req] = []float32{0.2, 0.1, 0.9, 0}
	}
	m := NewMatcher(&stubEmbedder{vectors: vectors})

	result, err := m.CoverageAndSuggestions(context.Background(), matchDoc(), reqs)
	if err != nil {
		t.Fatalf("CoverageAndSuggestions: %v", err)
	}
	if len(result.Missing) != 10 {
		t.Fatalf("missing = %d", len(result.Missing))
	}
	// every gap points to the same highlight, so only one rewrite survives
	if len(result.Rewrites) != 1 {
		t.Fatalf("rewrites = %#v", result.Rewrites)
	}
}

func TestCoverageAndSuggestionsNoHighlights(t *testing.T) {
	m := NewMatcher(&stubEmbedder{vectors: map[string][]float32{}})
	result, err := m.CoverageAndSuggestions(context.Background(), extractor.ResumeDocument{}, []string{"Anything at all"})
	if err != nil {
		t.Fatalf("CoverageAndSuggestions: %v", err)
	}
	if len(result.Coverage) != 0 || len(result.Missing) != 0 || len(result.Rewrites) != 0 {
		t.Fatalf("expected an empty report without highlights, got %#v", result)
	}
	if result.Diff != "" || result.OriginalText != "" || result.SuggestedText != "" {
		t.Fatalf("diff fields should be empty: %#v", result)
	}
}

func TestCoverageAndSuggestionsNoRequirements(t *testing.T) {
	m := NewMatcher(nil)
	result, err := m.CoverageAndSuggestions(context.Background(), matchDoc(), nil)
	if err != nil {
		t.Fatalf("CoverageAndSuggestions: %v", err)
	}
	if len(result.Coverage) != 0 || len(result.Missing) != 0 || len(result.Rewrites) != 0 {
		t.Fatalf("result = %#v", result)
	}
}

func TestCoverageAndSuggestionsSnippetTruncation(t *testing.T) {
	longReq := strings.Repeat("requirement detail ", 20) // well over the cap
	emb := &stubEmbedder{vectors: map[string][]float32{
		"Built Go services": {1, 0, 0, 0},
		"Wrote SQL reports": {0, 1, 0, 0},
		longReq:             {0.2, 0, 0.9, 0},
	}}
	m := NewMatcher(emb)

	result, err := m.CoverageAndSuggestions(context.Background(), matchDoc(), []string{longReq})
	if err != nil {
		t.Fatalf("CoverageAndSuggestions: %v", err)
	}
	if len(result.Rewrites) != 1 {
		t.Fatalf("rewrites = %#v", result.Rewrites)
	}
	suffix := strings.TrimPrefix(result.Rewrites[0].Suggested, "Built Go services - emphasizes: ")
	if len(suffix) > alignmentSnippetLen {
		t.Fatalf("snippet too long: %d", len(suffix))
	}
}

func TestHashEmbedderDeterministicAndRelated(t *testing.T) {
	e := HashEmbedder{}
	a1, err := e.Embed(context.Background(), "Go services in production")
	if err != nil {
		t.Fatalf("Embed: %v", err)
	}
	a2, _ := e.Embed(context.Background(), "Go services in production")
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Fatal("embedding not deterministic")
		}
	}

	normalize(a1)
	b, _ := e.Embed(context.Background(), "production Go experience")
	normalize(b)
	c, _ := e.Embed(context.Background(), "watercolor painting workshop")
	normalize(c)

	if dot(a1, b) <= dot(a1, c) {
		t.Fatal("shared vocabulary should score higher than unrelated text")
	}
}

func TestServiceMatchValidation(t *testing.T) {
	svc := &Service{Matcher: NewMatcher(nil)}
	if _, err := svc.Match(context.Background(), "u1", "", "j1"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Match(context.Background(), "u1", "r1", ""); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

type stubResumeSource struct{ doc extractor.ResumeDocument }

func (s stubResumeSource) Document(ctx context.Context, userId, resumeID string) (extractor.ResumeDocument, error) {
	return s.doc, nil
}

type stubJobSource struct{ reqs []string }

func (s stubJobSource) Requirements(ctx context.Context, userId, jobID string) ([]string, error) {
	return s.reqs, nil
}

func TestServiceMatchEndToEnd(t *testing.T) {
	svc := &Service{
		Resumes: stubResumeSource{doc: matchDoc()},
		Jobs:    stubJobSource{reqs: []string{"Build Go services at scale"}},
		Matcher: NewMatcher(nil),
	}
	result, err := svc.Match(context.Background(), "u1", "r1", "j1")
	if err != nil {
		t.Fatalf("Match: %v", err)
	}
	if len(result.Coverage) != 1 {
		t.Fatalf("coverage = %#v", result.Coverage)
	}
	if result.Model != "token-hash" {
		t.Fatalf("model = %q", result.Model)
	}
}
