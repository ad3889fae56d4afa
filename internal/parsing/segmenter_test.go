package parsing

import (
	"reflect"
	"testing"
)

func TestSegmenterEmitsBufferOnNextHeader(t *testing.T) {
	cfg := DefaultConfig()
	s := newSegmenter(&cfg)

	var em segmentEmission
	for _, line := range []string{"Skills", "Go", "SQL"} {
		em, s = s.consume(line)
		if !em.empty() {
			t.Fatalf("unexpected emission for %q: %+v", line, em)
		}
	}

	em, s = s.consume("Education")
	if em.kind != SectionSkills {
		t.Fatalf("expected skills emission, got %q", em.kind)
	}
	if want := []string{"Go", "SQL"}; !reflect.DeepEqual(em.lines, want) {
		t.Fatalf("emission lines mismatch: got %v want %v", em.lines, want)
	}

	em, _ = s.flush()
	if !em.empty() {
		t.Fatalf("expected empty flush right after header, got %+v", em)
	}
}

func TestSegmenterHeaderShapes(t *testing.T) {
	cfg := DefaultConfig()
	s := newSegmenter(&cfg)

	cases := []struct {
		line     string
		wantKind SectionKind
		isHeader bool
	}{
		{"Skills", SectionSkills, true},
		{"Skills:", SectionSkills, true},
		{"SKILLS", SectionSkills, true},
		{"Technical Skills", SectionSkills, true},
		{"Skills: Python, SQL", SectionSkills, true},
		{"TECHNICAL SKILLS AND TOOLING", SectionSkills, true},
		{"Work Experience", SectionExperience, true},
		{"EMPLOYMENT HISTORY", SectionExperience, true},
		{"Education", SectionEducation, true},
		{"I have many skills and they include cooking, baking, and seventeen other disciplines.", SectionNone, false},
		{"Shipped three services", SectionNone, false},
	}
	for _, tc := range cases {
		kind, ok := s.headerKind(tc.line)
		if ok != tc.isHeader || kind != tc.wantKind {
			t.Fatalf("headerKind(%q) = %q,%v want %q,%v", tc.line, kind, ok, tc.wantKind, tc.isHeader)
		}
	}
}

func TestSegmenterKindOrderBreaksTies(t *testing.T) {
	cfg := DefaultConfig()
	s := newSegmenter(&cfg)

	// Matches both the objective and skills dictionaries; objective comes
	// first in the enumeration order.
	kind, ok := s.headerKind("Summary of Skills")
	if !ok || kind != SectionObjective {
		t.Fatalf("expected objective to win the tie, got %q,%v", kind, ok)
	}
}

func TestSegmenterPreambleEmitsAsNone(t *testing.T) {
	cfg := DefaultConfig()
	s := newSegmenter(&cfg)

	_, s = s.consume("Jane Doe")
	em, _ := s.consume("Skills")
	if em.kind != SectionNone {
		t.Fatalf("expected preamble emission with no kind, got %q", em.kind)
	}
	if want := []string{"Jane Doe"}; !reflect.DeepEqual(em.lines, want) {
		t.Fatalf("preamble lines mismatch: got %v want %v", em.lines, want)
	}
}

func TestSegmenterConsumeIsPure(t *testing.T) {
	cfg := DefaultConfig()
	s := newSegmenter(&cfg)

	_, s = s.consume("Skills")
	for _, line := range []string{"Go", "SQL", "Rust"} {
		_, s = s.consume(line)
	}

	// Branch twice from the same retained state; the first branch must not
	// leak its extra line into the second.
	_, branched := s.consume("Terraform")
	em, _ := s.consume("Education")
	if want := []string{"Go", "SQL", "Rust"}; !reflect.DeepEqual(em.lines, want) {
		t.Fatalf("retained state was mutated: got %v want %v", em.lines, want)
	}

	em, _ = branched.consume("Education")
	if want := []string{"Go", "SQL", "Rust", "Terraform"}; !reflect.DeepEqual(em.lines, want) {
		t.Fatalf("branched state mismatch: got %v want %v", em.lines, want)
	}
}

func TestSegmenterFlushEmitsActiveSection(t *testing.T) {
	cfg := DefaultConfig()
	s := newSegmenter(&cfg)

	_, s = s.consume("Languages")
	_, s = s.consume("English")
	_, s = s.consume("Spanish")

	em, s := s.flush()
	if em.kind != SectionLanguages {
		t.Fatalf("expected languages emission, got %q", em.kind)
	}
	if want := []string{"English", "Spanish"}; !reflect.DeepEqual(em.lines, want) {
		t.Fatalf("flush lines mismatch: got %v want %v", em.lines, want)
	}

	em, _ = s.flush()
	if !em.empty() {
		t.Fatalf("second flush should be empty, got %+v", em)
	}
}

func TestSegmenterIgnoresBlankLines(t *testing.T) {
	cfg := DefaultConfig()
	s := newSegmenter(&cfg)

	_, s = s.consume("Certifications")
	_, s = s.consume("AWS Solutions Architect")
	_, s = s.consume("   ")
	_, s = s.consume("CKA")

	em, _ := s.flush()
	if want := []string{"AWS Solutions Architect", "CKA"}; !reflect.DeepEqual(em.lines, want) {
		t.Fatalf("blank line leaked into buffer: got %v want %v", em.lines, want)
	}
}
