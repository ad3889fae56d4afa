package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"

	"resume-chat-backend/internal/parsing"
)

func TestIsGPT5(t *testing.T) {
	tests := []struct {
		name  string
		model string
		want  bool
	}{
		{name: "gpt5", model: "gpt-5", want: true},
		{name: "gpt5 variant", model: "gpt-5-mini", want: true},
		{name: "gpt5 uppercase", model: " GPT-5o ", want: true},
		{name: "gpt4", model: "gpt-4o", want: false},
		{name: "empty", model: "", want: false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			if got := isGPT5(tt.model); got != tt.want {
				t.Fatalf("isGPT5(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

func TestAnswer_ReturnsContent(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	var bodyMu sync.Mutex
	var lastBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		bodyMu.Lock()
		lastBody = payload
		bodyMu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":" She knows Go. "}}],"usage":{"prompt_tokens":10,"completion_tokens":4,"total_tokens":14}}`))
	}))
	defer server.Close()
	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}

	record := &parsing.ParsedResume{Skills: []string{"Go"}}
	answer, err := client.Answer(context.Background(), "Jane Doe\nSkills\nGo", record, "what does she know")
	if err != nil {
		t.Fatalf("Answer: %v", err)
	}
	if answer != "She knows Go." {
		t.Fatalf("answer = %q, want trimmed content", answer)
	}

	bodyMu.Lock()
	defer bodyMu.Unlock()
	if _, hasTemp := lastBody["temperature"]; !hasTemp {
		t.Fatalf("expected temperature 0 for non-denylisted model")
	}
	if _, hasFormat := lastBody["response_format"]; hasFormat {
		t.Fatalf("answer requests must not force a response format")
	}
}

func TestAnswer_OmitsTemperatureForDenylist(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	var bodyMu sync.Mutex
	var lastBody map[string]any

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()
		var payload map[string]any
		if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
			t.Errorf("decode request: %v", err)
		}
		bodyMu.Lock()
		lastBody = payload
		bodyMu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
	}))
	defer server.Close()
	apiURL = server.URL

	_ = os.Setenv("LLM_NO_TEMP0_MODELS", "o4-custom")
	t.Cleanup(func() { _ = os.Unsetenv("LLM_NO_TEMP0_MODELS") })

	client, err := NewClient("test-key", "o4-custom")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	if _, err := client.Answer(context.Background(), "text", nil, "question"); err != nil {
		t.Fatalf("Answer: %v", err)
	}

	bodyMu.Lock()
	defer bodyMu.Unlock()
	if _, hasTemp := lastBody["temperature"]; hasTemp {
		t.Fatalf("expected temperature to be omitted for denylisted model")
	}
}

func TestAnswer_APIErrorSurfaced(t *testing.T) {
	oldURL := apiURL
	t.Cleanup(func() { apiURL = oldURL })

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"rate limited","type":"rate_limit_error"}}`))
	}))
	defer server.Close()
	apiURL = server.URL

	client, err := NewClient("test-key", "gpt-4o-mini")
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	_, err = client.Answer(context.Background(), "text", nil, "question")
	if err == nil || !strings.Contains(err.Error(), "rate limited") {
		t.Fatalf("expected provider error to surface, got %v", err)
	}
}
