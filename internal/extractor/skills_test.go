package extractor

import (
	"reflect"
	"testing"
)

func TestParseSkillsColonGroups(t *testing.T) {
	lines := []string{
		"Languages: Go, Python; Rust",
		"Tools: Docker, CI/CD",
	}
	skills := parseSkills(lines)
	if len(skills) != 2 {
		t.Fatalf("expected 2 groups, got %d: %#v", len(skills), skills)
	}
	if !reflect.DeepEqual(skills[0].Keywords, []string{"Go", "Python", "Rust"}) {
		t.Fatalf("languages = %#v", skills[0].Keywords)
	}
	// slashes survive so CI/CD stays one keyword
	if !reflect.DeepEqual(skills[1].Keywords, []string{"Docker", "CI/CD"}) {
		t.Fatalf("tools = %#v", skills[1].Keywords)
	}
}

func TestParseSkillsComboExpansion(t *testing.T) {
	skills := parseSkills([]string{"Languages: TypeScript/JavaScript, C/C++, Go"})
	want := []string{"TypeScript", "JavaScript", "C", "C++", "Go"}
	if len(skills) != 1 || !reflect.DeepEqual(skills[0].Keywords, want) {
		t.Fatalf("keywords = %#v", skills)
	}
}

func TestParseSkillsGeneralFallback(t *testing.T) {
	skills := parseSkills([]string{"Go, Python", "SQL"})
	if len(skills) != 1 || skills[0].Name != "General" {
		t.Fatalf("skills = %#v", skills)
	}
	if !reflect.DeepEqual(skills[0].Keywords, []string{"Go", "Python", "SQL"}) {
		t.Fatalf("keywords = %#v", skills[0].Keywords)
	}
}

func TestParseInlineSkillsAnywhere(t *testing.T) {
	lines := []string{
		"Jane Smith",
		"certifications: AWS SAA, CKA",
		"• unrelated bullet",
	}
	found := parseInlineSkillsAnywhere(lines)
	if len(found) != 1 {
		t.Fatalf("expected 1 group, got %#v", found)
	}
	if found[0].Name != "Certifications" {
		t.Fatalf("name = %q", found[0].Name)
	}
	if !reflect.DeepEqual(found[0].Keywords, []string{"AWS SAA", "CKA"}) {
		t.Fatalf("keywords = %#v", found[0].Keywords)
	}
}

func TestParseSkillsEmpty(t *testing.T) {
	if got := parseSkills(nil); len(got) != 0 {
		t.Fatalf("expected none, got %#v", got)
	}
	if got := parseInlineSkillsAnywhere([]string{"no colons here"}); len(got) != 0 {
		t.Fatalf("expected none, got %#v", got)
	}
}
