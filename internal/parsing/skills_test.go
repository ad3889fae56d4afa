package parsing

import (
	"reflect"
	"testing"
)

func TestExtractSkillsKeywordPass(t *testing.T) {
	p := New()
	got := p.extractSkills([]string{"Python, Go, SQL, Python"})
	if want := []string{"Python", "Go", "SQL"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("skills: got %v want %v", got, want)
	}
}

func TestExtractSkillsDelimiters(t *testing.T) {
	p := New()
	got := p.extractSkills([]string{"Python | Go • SQL · Rust\tTerraform"})
	if want := []string{"Python", "Go", "SQL", "Rust", "Terraform"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("skills: got %v want %v", got, want)
	}
}

func TestExtractSkillsStripsMarkers(t *testing.T) {
	p := New()
	got := p.extractSkills([]string{"- Python", "1. Go", "• SQL"})
	if want := []string{"Python", "Go", "SQL"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("skills: got %v want %v", got, want)
	}
}

func TestExtractSkillsThinYieldWidens(t *testing.T) {
	p := New()

	// One keyword hit is under the yield threshold, so the stop-word pass
	// runs and appends loose tokens after the confirmed ones.
	got := p.extractSkills([]string{"Python", "Communication", "and", "experience"})
	if want := []string{"Python", "Communication"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("skills: got %v want %v", got, want)
	}
}

func TestExtractSkillsStopWordsNeverConfirmed(t *testing.T) {
	p := New()

	// "and" substring-matches "pandas" and "or" matches "oracle"; the
	// stop-word filter still has to win over the keyword match.
	got := p.extractSkills([]string{"Python", "Communication", "and", "or", "experience"})
	if want := []string{"Python", "Communication"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("skills: got %v want %v", got, want)
	}
}

func TestExtractSkillsRichYieldStaysStrict(t *testing.T) {
	p := New()

	// Three keyword hits meet the threshold; the loose token is dropped.
	got := p.extractSkills([]string{"Python, Go, SQL, Birdwatching"})
	if want := []string{"Python", "Go", "SQL"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("skills: got %v want %v", got, want)
	}
}

func TestExtractSkillsPreservesFirstSeenOrder(t *testing.T) {
	p := New()
	got := p.extractSkills([]string{"SQL, Python", "Python, Go, SQL"})
	if want := []string{"SQL", "Python", "Go"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("skills: got %v want %v", got, want)
	}
}
