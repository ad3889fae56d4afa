package vision

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const defaultGeminiModel = "gemini-2.0-flash"

const recognizePrompt = `You are a document transcription engine. The attached image is one page of a resume.
Transcribe every line of visible text, top to bottom, preserving the original line breaks.
Do not describe the layout, do not summarize, do not add commentary.
Output the transcription only.`

// GeminiClient implements Client using the Gemini multimodal API.
type GeminiClient struct {
	client *genai.Client
	model  string
}

// NewGeminiClient constructs a Gemini-backed recognition client.
func NewGeminiClient(ctx context.Context, apiKey, model string) (*GeminiClient, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("GEMINI_API_KEY is required")
	}
	if strings.TrimSpace(model) == "" {
		model = defaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client: %w", err)
	}
	return &GeminiClient{client: client, model: model}, nil
}

// Close releases the underlying connection.
func (g *GeminiClient) Close() error {
	return g.client.Close()
}

// RecognizeText sends the image and returns the flattened transcription.
func (g *GeminiClient) RecognizeText(ctx context.Context, image []byte, mimeType string) (string, error) {
	if len(image) == 0 {
		return "", errors.New("empty image payload")
	}
	if strings.TrimSpace(mimeType) == "" {
		mimeType = "image/png"
	}

	model := g.client.GenerativeModel(g.model)
	model.SetTemperature(0.0)

	parts := []genai.Part{
		genai.Text(recognizePrompt),
		genai.Blob{MIMEType: mimeType, Data: image},
	}
	resp, err := model.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini recognize: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", errors.New("gemini recognize: empty response")
	}
	content, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", errors.New("gemini recognize: unexpected part type")
	}
	return FlattenRecognition(string(content)), nil
}

var _ Client = (*GeminiClient)(nil)
