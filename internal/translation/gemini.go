package translation

import (
	"context"
	"fmt"

	"github.com/sony/gobreaker"
	"google.golang.org/genai"

	"codeberg.org/snonux/doctrans/internal/glossary"
)

// GeminiTranslator translates via the Gemini API.
type GeminiTranslator struct {
	client   *genai.Client
	model    string
	glossary *glossary.Glossary
	mode     glossary.Mode
	breaker  *gobreaker.CircuitBreaker
}

// NewGemini creates a Gemini-backed translator.
func NewGemini(ctx context.Context, apiKey string, opts Options) (*GeminiTranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("Gemini API key not found")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiTranslator{
		client:   client,
		model:    opts.Model,
		glossary: opts.Glossary,
		mode:     opts.Mode,
		breaker:  newBreaker("gemini-chat"),
	}, nil
}

// Translate sends one chunk of text to Gemini and returns the translated
// content with glossary terms enforced.
func (t *GeminiTranslator) Translate(ctx context.Context, text string) (string, error) {
	input := text
	if t.mode == glossary.ModePre || t.mode == glossary.ModeBoth {
		input = t.glossary.Apply(input)
	}

	cfg := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemPrompt(t.glossary), genai.RoleUser),
		Temperature:       genai.Ptr[float32](0),
	}

	out, err := t.breaker.Execute(func() (interface{}, error) {
		resp, err := t.client.Models.GenerateContent(ctx, t.model, genai.Text(input), cfg)
		if err != nil {
			return nil, fmt.Errorf("Gemini API error: %w", err)
		}
		translated := resp.Text()
		if translated == "" {
			return nil, fmt.Errorf("no translation returned")
		}
		return translated, nil
	})
	if err != nil {
		return "", err
	}

	translated := out.(string)
	if t.mode == glossary.ModePost || t.mode == glossary.ModeBoth {
		translated = t.glossary.Apply(translated)
	}
	return translated, nil
}
