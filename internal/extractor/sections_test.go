package extractor

import (
	"reflect"
	"testing"
)

func TestDetectSectionsPartitions(t *testing.T) {
	lines := []string{
		"Jane Smith",
		"EXPERIENCE",
		"Engineer | Acme",
		"• Did things",
		"EDUCATION",
		"MIT",
		"SKILLS",
		"Languages: Go",
	}
	got := DetectSections(lines)
	if !reflect.DeepEqual(got[SectionExperience], []string{"Engineer | Acme", "• Did things"}) {
		t.Fatalf("experience = %#v", got[SectionExperience])
	}
	if !reflect.DeepEqual(got[SectionEducation], []string{"MIT"}) {
		t.Fatalf("education = %#v", got[SectionEducation])
	}
	if !reflect.DeepEqual(got[SectionSkills], []string{"Languages: Go"}) {
		t.Fatalf("skills = %#v", got[SectionSkills])
	}
}

func TestDetectSectionsHeaderVariantsCollapse(t *testing.T) {
	cases := []struct {
		header string
		key    SectionKey
	}{
		{"PROFESSIONAL EXPERIENCE", SectionExperience},
		{"WORK EXPERIENCE", SectionExperience},
		{"Work Experience", SectionExperience},
		{"TECHNICAL TOOLKIT", SectionSkills},
		{"CERTIFICATIONS", SectionSkills},
		{"CERTIFICATIONS, AWARDS & SKILLS", SectionSkills},
		{"LEADERSHIP & INVOLVEMENT", SectionLeadership},
		{"INVOLVEMENT", SectionLeadership},
		{"PROJECTS", SectionProjects},
	}
	for _, tc := range cases {
		got := DetectSections([]string{tc.header, "content"})
		if !reflect.DeepEqual(got[tc.key], []string{"content"}) {
			t.Errorf("header %q: section %q = %#v", tc.header, tc.key, got[tc.key])
		}
	}
}

func TestDetectSectionsPrefixMatch(t *testing.T) {
	got := DetectSections([]string{"EXPERIENCE AND MORE", "x"})
	if !reflect.DeepEqual(got[SectionExperience], []string{"x"}) {
		t.Fatalf("prefix header not matched: %#v", got)
	}
}

// A recurring header keeps only the last contiguous slice for its key. This
// pins the historical behavior rather than endorsing it.
func TestDetectSectionsRecurringHeaderKeepsLastSlice(t *testing.T) {
	lines := []string{
		"EXPERIENCE",
		"early job",
		"EDUCATION",
		"MIT",
		"EXPERIENCE",
		"late job",
	}
	got := DetectSections(lines)
	if !reflect.DeepEqual(got[SectionExperience], []string{"late job"}) {
		t.Fatalf("experience = %#v, want only the later slice", got[SectionExperience])
	}
}

func TestDetectSectionsNoHeaders(t *testing.T) {
	if got := DetectSections([]string{"just", "text"}); len(got) != 0 {
		t.Fatalf("expected no sections, got %#v", got)
	}
}
