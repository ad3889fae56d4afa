package parsing

import (
	"reflect"
	"testing"
)

func TestExtractExperienceSingleBlock(t *testing.T) {
	p := New()
	got := p.extractExperience([]string{
		"Acme Co",
		"Engineer",
		"2019 - Present",
		"- Built X",
		"- Shipped Y",
	})

	want := []ExperienceEntry{{
		Company:          "Acme Co",
		Position:         "Engineer",
		Duration:         "2019 - Present",
		Responsibilities: []string{"Built X", "Shipped Y"},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("experience: got %+v want %+v", got, want)
	}
}

func TestExtractExperienceSecondDateStartsNewEntry(t *testing.T) {
	p := New()
	got := p.extractExperience([]string{
		"Jan 2019 - Dec 2020",
		"Acme Co",
		"Engineer",
		"- Built X",
		"2021 - Present",
		"Beta LLC",
		"Manager",
		"- Led team",
	})

	want := []ExperienceEntry{
		{
			Company:          "Acme Co",
			Position:         "Engineer",
			Duration:         "Jan 2019 - Dec 2020",
			Responsibilities: []string{"Built X"},
		},
		{
			Company:          "Beta LLC",
			Position:         "Manager",
			Duration:         "2021 - Present",
			Responsibilities: []string{"Led team"},
		},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("experience: got %+v want %+v", got, want)
	}
}

func TestExtractExperienceBulletMarkers(t *testing.T) {
	p := New()
	got := p.extractExperience([]string{
		"2020 - Present",
		"- Did A",
		"• Did B",
		"· Did C",
	})

	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	if want := []string{"Did A", "Did B", "Did C"}; !reflect.DeepEqual(got[0].Responsibilities, want) {
		t.Fatalf("responsibilities: got %v want %v", got[0].Responsibilities, want)
	}
}

func TestExtractExperienceOverflowGoesToDetails(t *testing.T) {
	p := New()
	got := p.extractExperience([]string{
		"Acme Co",
		"Engineer",
		"Platform team",
		"On call rotation",
	})

	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	if got[0].Details != "Platform team; On call rotation" {
		t.Fatalf("details: got %q", got[0].Details)
	}
}
