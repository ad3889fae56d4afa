package parsing

import (
	"reflect"
	"strings"
	"testing"
)

func sampleResume() string {
	return strings.Join([]string{
		"Jane Doe",
		"jane@x.com | (555) 123-4567",
		"",
		"Objective",
		"Seeking a backend role.",
		"",
		"Skills",
		"Python, Go, SQL",
		"",
		"Experience",
		"Jan 2020 - Present",
		"Acme Co",
		"Engineer",
		"- Built internal tools",
		"",
		"Education",
		"2016 - 2020",
		"State University",
		"BS Computer Science",
	}, "\n")
}

func TestParseFullDocument(t *testing.T) {
	rec := New().Parse(sampleResume())

	wantContact := ContactInfo{Name: "Jane Doe", Email: "jane@x.com", Phone: "(555) 123-4567"}
	if rec.Contact != wantContact {
		t.Fatalf("contact: got %+v want %+v", rec.Contact, wantContact)
	}

	if rec.ObjectiveOrSummary != "Seeking a backend role." {
		t.Fatalf("objective: got %q", rec.ObjectiveOrSummary)
	}
	if want := []string{"Python", "Go", "SQL"}; !reflect.DeepEqual(rec.Skills, want) {
		t.Fatalf("skills: got %v want %v", rec.Skills, want)
	}

	wantExp := []ExperienceEntry{{
		Company:          "Acme Co",
		Position:         "Engineer",
		Duration:         "Jan 2020 - Present",
		Responsibilities: []string{"Built internal tools"},
	}}
	if !reflect.DeepEqual(rec.Experience, wantExp) {
		t.Fatalf("experience: got %+v want %+v", rec.Experience, wantExp)
	}

	wantEdu := []EducationEntry{{
		Institution: "State University",
		Degree:      "BS Computer Science",
		Year:        "2016",
		Details:     "2016 - 2020",
	}}
	if !reflect.DeepEqual(rec.Education, wantEdu) {
		t.Fatalf("education: got %+v want %+v", rec.Education, wantEdu)
	}

	if rec.RawText != "" {
		t.Fatalf("raw text must stay unset, got %d bytes", len(rec.RawText))
	}
}

func TestParseRawSectionsAreByteExactJoins(t *testing.T) {
	rec := New().Parse(sampleResume())

	if rec.RawSections.Skills != "Python, Go, SQL" {
		t.Fatalf("raw skills: got %q", rec.RawSections.Skills)
	}
	wantExp := "Jan 2020 - Present\nAcme Co\nEngineer\n- Built internal tools"
	if rec.RawSections.Experience != wantExp {
		t.Fatalf("raw experience: got %q want %q", rec.RawSections.Experience, wantExp)
	}
	wantEdu := "2016 - 2020\nState University\nBS Computer Science"
	if rec.RawSections.Education != wantEdu {
		t.Fatalf("raw education: got %q want %q", rec.RawSections.Education, wantEdu)
	}
	if rec.RawSections.Objective != "Seeking a backend role." {
		t.Fatalf("raw objective: got %q", rec.RawSections.Objective)
	}
	if rec.RawSections.Projects != "" || rec.RawSections.Certifications != "" || rec.RawSections.Languages != "" {
		t.Fatalf("undetected sections must stay empty: %+v", rec.RawSections)
	}
}

func TestParseHeaderlessDocumentSweeps(t *testing.T) {
	rec := New().Parse(strings.Join([]string{
		"Jane Doe",
		"jane@x.com",
		"Built data tooling in Python and C++ for trading desks.",
	}, "\n"))

	if want := []string{"Python", "C++"}; !reflect.DeepEqual(rec.Skills, want) {
		t.Fatalf("skills: got %v want %v", rec.Skills, want)
	}
	if rec.RawSections.Skills != "Python, C++" {
		t.Fatalf("raw skills: got %q", rec.RawSections.Skills)
	}
	if len(rec.Experience) != 0 || len(rec.Education) != 0 {
		t.Fatalf("no structured sections expected: %+v", rec)
	}
}

func TestParseEmptyDocument(t *testing.T) {
	rec := New().Parse("")

	if rec == nil {
		t.Fatal("record must never be nil")
	}
	if rec.Skills == nil || rec.Education == nil || rec.Experience == nil ||
		rec.Projects == nil || rec.Certifications == nil || rec.Languages == nil {
		t.Fatalf("collections must be non-nil: %+v", rec)
	}
	if len(rec.Skills) != 0 || rec.Contact.Name != "" {
		t.Fatalf("empty document must yield empty fields: %+v", rec)
	}
}

func TestParseWindowsLineEndings(t *testing.T) {
	rec := New().Parse("Skills\r\nPython, Go, SQL\r\n")

	if want := []string{"Python", "Go", "SQL"}; !reflect.DeepEqual(rec.Skills, want) {
		t.Fatalf("skills: got %v want %v", rec.Skills, want)
	}
	if rec.RawSections.Skills != "Python, Go, SQL" {
		t.Fatalf("raw skills: got %q", rec.RawSections.Skills)
	}
}

func TestParseCertificationsAndLanguagesVerbatim(t *testing.T) {
	rec := New().Parse(strings.Join([]string{
		"Certifications",
		"AWS Solutions Architect (2021)",
		"CKA",
		"",
		"Languages",
		"English (native)",
		"Spanish (fluent)",
	}, "\n"))

	wantCerts := []string{"AWS Solutions Architect (2021)", "CKA"}
	if !reflect.DeepEqual(rec.Certifications, wantCerts) {
		t.Fatalf("certifications: got %v want %v", rec.Certifications, wantCerts)
	}
	wantLangs := []string{"English (native)", "Spanish (fluent)"}
	if !reflect.DeepEqual(rec.Languages, wantLangs) {
		t.Fatalf("languages: got %v want %v", rec.Languages, wantLangs)
	}
}

func TestParseCustomDictionary(t *testing.T) {
	cfg := DefaultConfig()
	cfg.SectionTriggers[SectionSkills] = append(cfg.SectionTriggers[SectionSkills], "toolbox")

	rec := NewWithConfig(cfg).Parse("Toolbox\nPython, Go, SQL\n")
	if want := []string{"Python", "Go", "SQL"}; !reflect.DeepEqual(rec.Skills, want) {
		t.Fatalf("skills: got %v want %v", rec.Skills, want)
	}
}
