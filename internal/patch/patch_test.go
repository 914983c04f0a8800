package patch

import (
	"errors"
	"strings"
	"testing"

	"resume-rewriter/internal/extractor"
)

func sampleDoc() extractor.ResumeDocument {
	return extractor.ResumeDocument{
		Work: []extractor.WorkEntry{
			{
				Company:    "Acme Corp",
				Position:   "Engineer",
				Highlights: []string{"Built the billing pipeline", "Led a team of three"},
			},
			{
				Company:    "Globex",
				Position:   "Analyst",
				Highlights: []string{"Automated weekly reports"},
			},
		},
	}
}

func TestApplyReplacesHighlight(t *testing.T) {
	doc := sampleDoc()
	out, err := Apply(doc, []Op{
		{Op: "replace", Path: "/work/0/highlights/1", Value: "Led a team of five engineers"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Work[0].Highlights[1] != "Led a team of five engineers" {
		t.Fatalf("highlight = %q", out.Work[0].Highlights[1])
	}
	if out.Work[0].Highlights[0] != "Built the billing pipeline" {
		t.Fatal("untouched highlight changed")
	}
}

func TestApplyDoesNotMutateInput(t *testing.T) {
	doc := sampleDoc()
	_, err := Apply(doc, []Op{
		{Op: "replace", Path: "/work/1/highlights/0", Value: "changed"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if doc.Work[1].Highlights[0] != "Automated weekly reports" {
		t.Fatal("input document was mutated")
	}
}

func TestApplyMultipleOps(t *testing.T) {
	out, err := Apply(sampleDoc(), []Op{
		{Op: "replace", Path: "/work/0/highlights/0", Value: "first"},
		{Op: "replace", Path: "/work/1/highlights/0", Value: "second"},
	})
	if err != nil {
		t.Fatalf("Apply: %v", err)
	}
	if out.Work[0].Highlights[0] != "first" || out.Work[1].Highlights[0] != "second" {
		t.Fatalf("ops not applied: %#v", out.Work)
	}
}

func TestValidateRejections(t *testing.T) {
	cases := []struct {
		name string
		ops  []Op
	}{
		{"empty", nil},
		{"wrong op", []Op{{Op: "add", Path: "/work/0/highlights/0", Value: "x"}}},
		{"remove op", []Op{{Op: "remove", Path: "/work/0/highlights/0"}}},
		{"basics path", []Op{{Op: "replace", Path: "/basics/name", Value: "x"}}},
		{"education path", []Op{{Op: "replace", Path: "/education/0/degree", Value: "x"}}},
		{"trailing segment", []Op{{Op: "replace", Path: "/work/0/highlights/0/extra", Value: "x"}}},
		{"non-numeric index", []Op{{Op: "replace", Path: "/work/a/highlights/0", Value: "x"}}},
		{"oversized value", []Op{{Op: "replace", Path: "/work/0/highlights/0", Value: strings.Repeat("x", 401)}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := Validate(tc.ops); !errors.Is(err, ErrInvalidInput) {
				t.Fatalf("expected ErrInvalidInput, got %v", err)
			}
		})
	}
}

func TestValidateAcceptsMaxLenValue(t *testing.T) {
	ops := []Op{{Op: "replace", Path: "/work/0/highlights/0", Value: strings.Repeat("x", 400)}}
	if err := Validate(ops); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestApplyOutOfRange(t *testing.T) {
	doc := sampleDoc()
	for _, path := range []string{"/work/5/highlights/0", "/work/0/highlights/9"} {
		if _, err := Apply(doc, []Op{{Op: "replace", Path: path, Value: "x"}}); !errors.Is(err, ErrInvalidInput) {
			t.Fatalf("path %s: expected ErrInvalidInput, got %v", path, err)
		}
	}
}
