package vision

import (
	"context"
	"encoding/json"
	"strings"
)

// Client turns a document image into plain text.
type Client interface {
	RecognizeText(ctx context.Context, image []byte, mimeType string) (string, error)
}

// token is one recognized fragment. Providers disagree on the field name, so
// word, text, and label are all accepted, in that precedence.
type token struct {
	Word  string `json:"word"`
	Text  string `json:"text"`
	Label string `json:"label"`
}

func (t token) value() string {
	if t.Word != "" {
		return t.Word
	}
	if t.Text != "" {
		return t.Text
	}
	return t.Label
}

// FlattenRecognition normalizes a recognition payload to plain text. It
// accepts {"tokens": [...]}, {"text": "..."}, a bare token array, or already
// plain text. Anything unreadable flattens to the empty string.
func FlattenRecognition(raw string) string {
	trim := strings.TrimSpace(stripFences(raw))
	switch {
	case strings.HasPrefix(trim, "{"):
		var obj struct {
			Text   string  `json:"text"`
			Tokens []token `json:"tokens"`
		}
		if err := json.Unmarshal([]byte(trim), &obj); err != nil {
			return ""
		}
		if text := strings.TrimSpace(obj.Text); text != "" {
			return text
		}
		return joinTokens(obj.Tokens)
	case strings.HasPrefix(trim, "["):
		var toks []token
		if err := json.Unmarshal([]byte(trim), &toks); err != nil {
			return ""
		}
		return joinTokens(toks)
	default:
		return trim
	}
}

func joinTokens(toks []token) string {
	var words []string
	for _, t := range toks {
		if v := strings.TrimSpace(t.value()); v != "" {
			words = append(words, v)
		}
	}
	return strings.Join(words, " ")
}

// stripFences removes markdown code fences some models wrap around output.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(strings.TrimSpace(s), "```")
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
