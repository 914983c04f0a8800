package jobs

import (
	"fmt"
	"reflect"
	"strings"
	"testing"
)

func TestExtractRequirementsPrefersBullets(t *testing.T) {
	var b strings.Builder
	b.WriteString("Senior Engineer\nAbout the role\n")
	for i := 0; i < 8; i++ {
		fmt.Fprintf(&b, "• Requirement number %d\n", i)
	}
	b.WriteString("This prose line is definitely longer than forty characters total.\n")

	got := ExtractRequirements(b.String())
	if len(got) != 8 {
		t.Fatalf("expected 8 bullet requirements, got %d: %#v", len(got), got)
	}
	for i, req := range got {
		if want := fmt.Sprintf("Requirement number %d", i); req != want {
			t.Fatalf("req %d = %q, want %q", i, req, want)
		}
	}
}

func TestExtractRequirementsFallsBackToProse(t *testing.T) {
	text := strings.Join([]string{
		"Senior Engineer",
		"• Only bullet one",
		"• Only bullet two",
		"We are looking for someone with strong Go experience in production.",
		"Experience operating Postgres at scale is required for this role.",
		"short",
	}, "\n")

	got := ExtractRequirements(text)
	want := []string{
		"We are looking for someone with strong Go experience in production.",
		"Experience operating Postgres at scale is required for this role.",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %#v", got)
	}
}

func TestExtractRequirementsDedupesCaseInsensitive(t *testing.T) {
	var lines []string
	for i := 0; i < 10; i++ {
		lines = append(lines, "• Kubernetes experience")
		lines = append(lines, "• kubernetes EXPERIENCE")
	}
	got := ExtractRequirements(strings.Join(lines, "\n"))
	if len(got) != 1 || got[0] != "Kubernetes experience" {
		t.Fatalf("got %#v", got)
	}
}

func TestExtractRequirementsCap(t *testing.T) {
	var lines []string
	for i := 0; i < 80; i++ {
		lines = append(lines, fmt.Sprintf("- Distinct requirement line number %d", i))
	}
	got := ExtractRequirements(strings.Join(lines, "\n"))
	if len(got) != maxRequirements {
		t.Fatalf("expected cap at %d, got %d", maxRequirements, len(got))
	}
}

func TestExtractRequirementsMixedMarkers(t *testing.T) {
	text := "● unicode bullet\n- dash bullet\n* star bullet\n◦ ring bullet\n▪ square bullet\n· dot bullet\n‣ tri bullet\n• round bullet"
	got := ExtractRequirements(text)
	if len(got) != 8 {
		t.Fatalf("expected all 8 marker styles recognized, got %#v", got)
	}
}

func TestExtractRequirementsEmpty(t *testing.T) {
	if got := ExtractRequirements(""); len(got) != 0 {
		t.Fatalf("got %#v", got)
	}
	if got := ExtractRequirements("short\nlines\nonly"); len(got) != 0 {
		t.Fatalf("got %#v", got)
	}
}

func TestCleanWhitespace(t *testing.T) {
	in := "  Senior   Engineer  \n\n\n\n\nRemote\t ok \n"
	got := cleanWhitespace(in)
	if got != "Senior Engineer\n\nRemote ok" {
		t.Fatalf("got %q", got)
	}
}
