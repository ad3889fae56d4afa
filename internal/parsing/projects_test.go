package parsing

import (
	"reflect"
	"testing"
)

func TestExtractProjectsTitleDescriptionTech(t *testing.T) {
	p := New()
	got := p.extractProjects([]string{
		"Chat Server",
		"A realtime chat server handling thousands of concurrent users, built for fun.",
		"Go, Redis, Docker",
	})

	want := []ProjectEntry{{
		Name:         "Chat Server",
		Description:  "A realtime chat server handling thousands of concurrent users, built for fun.",
		Technologies: []string{"Go", "Redis", "Docker"},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("projects: got %+v want %+v", got, want)
	}
}

func TestExtractProjectsBulletTitles(t *testing.T) {
	p := New()
	got := p.extractProjects([]string{
		"- Chat Server",
		"- Budget Tracker",
	})

	if len(got) != 2 {
		t.Fatalf("expected two entries, got %d", len(got))
	}
	if got[0].Name != "Chat Server" || got[1].Name != "Budget Tracker" {
		t.Fatalf("names: got %q, %q", got[0].Name, got[1].Name)
	}
}

func TestExtractProjectsDescriptionExtension(t *testing.T) {
	p := New()
	got := p.extractProjects([]string{
		"Inventory Tool",
		"Tracks spare parts across regional warehouses and produces weekly demand forecasts for planners.",
		"It reduced stockouts by double percentages across managed warehouses in every region.",
	})

	if len(got) != 1 {
		t.Fatalf("expected one entry, got %d", len(got))
	}
	wantDesc := "Tracks spare parts across regional warehouses and produces weekly demand forecasts for planners." +
		" It reduced stockouts by double percentages across managed warehouses in every region."
	if got[0].Description != wantDesc {
		t.Fatalf("description: got %q want %q", got[0].Description, wantDesc)
	}
	if len(got[0].Technologies) != 0 {
		t.Fatalf("expected no technologies, got %v", got[0].Technologies)
	}
}

func TestExtractProjectsBareNameFallback(t *testing.T) {
	p := New()
	got := p.extractProjects([]string{
		"REDESIGNED THE ONBOARDING FLOW FOR THE MOBILE APP, INCLUDING PAYMENTS",
		"Rebuilt the commerce data model, cutting page latency in half for shoppers",
	})

	want := []ProjectEntry{{
		Name:         "Rebuilt the commerce data model, cutting page latency in half for shoppers",
		Technologies: []string{},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("projects: got %+v want %+v", got, want)
	}
}
