package openai

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"

	"resume-chat-backend/internal/llm"
	"resume-chat-backend/internal/parsing"
)

// Message represents an OpenAI chat message.
type Message struct {
	Role    string
	Content string
}

const systemPromptAnswer = "You answer questions about one candidate using only their resume. " +
	"If the resume does not contain the answer, respond with an empty message."

// BuildAnswerPrompt creates the chat messages for one grounded question.
func BuildAnswerPrompt(resumeText string, record *parsing.ParsedResume, question string, model string) []Message {
	return []Message{
		{Role: "system", Content: systemPromptAnswer},
		{Role: "developer", Content: resolveAnswerTemplate("v1", model)},
		{Role: "user", Content: buildUserPrompt(resumeText, record, question)},
	}
}

func resolveAnswerTemplate(promptVersion string, model string) string {
	version := strings.TrimSpace(promptVersion)
	template, ok := llm.AnswerPromptTemplate(version)
	if !ok {
		log.Printf("unknown prompt version %q, defaulting to v1", version)
		version = "v1"
		template, _ = llm.AnswerPromptTemplate(version)
	}

	replacer := strings.NewReplacer(
		"{{PROMPT_VERSION}}", version,
		"{{MODEL}}", model,
	)
	return replacer.Replace(template)
}

func buildUserPrompt(resumeText string, record *parsing.ParsedResume, question string) string {
	structured := "null"
	if record != nil {
		if raw, err := json.Marshal(record); err == nil {
			structured = string(raw)
		}
	}
	return fmt.Sprintf("Resume Text:\n%s\n\nStructured Record:\n%s\n\nQuestion:\n%s", resumeText, structured, question)
}
