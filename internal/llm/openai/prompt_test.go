package openai

import (
	"strings"
	"testing"

	"resume-chat-backend/internal/parsing"
)

func TestBuildAnswerPrompt(t *testing.T) {
	record := &parsing.ParsedResume{Skills: []string{"Go"}}
	messages := BuildAnswerPrompt("Jane Doe\nSkills\nGo", record, "what does she know", "gpt-4o-mini")

	if len(messages) != 3 {
		t.Fatalf("len(messages) = %d, want 3", len(messages))
	}
	if messages[0].Role != "system" || messages[1].Role != "developer" || messages[2].Role != "user" {
		t.Fatalf("unexpected roles: %q %q %q", messages[0].Role, messages[1].Role, messages[2].Role)
	}
	if strings.Contains(messages[1].Content, "{{") {
		t.Fatalf("developer template has unresolved placeholders: %q", messages[1].Content)
	}
	if !strings.Contains(messages[1].Content, "gpt-4o-mini") {
		t.Fatalf("developer template missing model: %q", messages[1].Content)
	}

	user := messages[2].Content
	for _, want := range []string{"Jane Doe", "what does she know", `"skills":["Go"]`} {
		if !strings.Contains(user, want) {
			t.Fatalf("user prompt missing %q: %q", want, user)
		}
	}
}

func TestBuildAnswerPrompt_NilRecord(t *testing.T) {
	messages := BuildAnswerPrompt("text", nil, "question", "gpt-4o-mini")
	if !strings.Contains(messages[2].Content, "Structured Record:\nnull") {
		t.Fatalf("nil record should marshal as null, got %q", messages[2].Content)
	}
}
