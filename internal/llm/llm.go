package llm

import (
	"context"

	"resume-chat-backend/internal/parsing"
)

// Client abstracts LLM providers for grounded question answering.
type Client interface {
	Answer(ctx context.Context, resumeText string, record *parsing.ParsedResume, question string) (string, error)
}
