package parsing

import (
	"reflect"
	"testing"
)

func TestExtractEducationEntries(t *testing.T) {
	p := New()
	got := p.extractEducation([]string{
		"2019 - 2023",
		"MIT",
		"BS Computer Science",
		"GPA 3.9",
		"2015",
		"Cambridge High",
	})

	want := []EducationEntry{
		{
			Institution: "MIT",
			Degree:      "BS Computer Science",
			Year:        "2019",
			Details:     "2019 - 2023; GPA 3.9",
		},
		{
			Institution: "Cambridge High",
			Year:        "2015",
			Details:     "2015",
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("education: got %+v want %+v", got, want)
	}
}

func TestExtractEducationIgnoresLinesBeforeFirstYear(t *testing.T) {
	p := New()
	got := p.extractEducation([]string{"Harvard University", "2020"})

	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	if got[0].Institution != "" {
		t.Fatalf("pre-year line must not fill institution, got %q", got[0].Institution)
	}
	if got[0].Year != "2020" || got[0].Details != "2020" {
		t.Fatalf("entry mismatch: %+v", got[0])
	}
}

func TestExtractEducationEmptyBuffer(t *testing.T) {
	p := New()
	if got := p.extractEducation(nil); len(got) != 0 {
		t.Fatalf("expected no entries, got %+v", got)
	}
}
