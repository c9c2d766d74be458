package translation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sashabaranov/go-openai"
	"github.com/sony/gobreaker"

	"codeberg.org/snonux/doctrans/internal/glossary"
)

// Translator translates one unit of text to English. The processor and the
// tests substitute their own implementations.
type Translator interface {
	Translate(ctx context.Context, text string) (string, error)
}

// Options configure a translator backend.
type Options struct {
	Model    string
	Glossary *glossary.Glossary
	Mode     glossary.Mode
}

// FileError reports a per-file translation failure with its path and cause.
type FileError struct {
	Path string
	Err  error
}

func (e *FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileError) Unwrap() error {
	return e.Err
}

// systemPrompt directs the model to translate literally while keeping
// AsciiDoc tags intact, and lists every glossary mapping.
func systemPrompt(g *glossary.Glossary) string {
	var b strings.Builder
	b.WriteString("You are a translator expert. Translate all text from ADOC(AsciiDoc) file to English but keep ADOC tags and format intact.")
	if g.Len() > 0 {
		b.WriteString(" Always respect the following glossary mappings:\n")
		b.WriteString(g.PromptLines())
	}
	return b.String()
}

// newBreaker builds the circuit breaker shared by the API backends. Five
// consecutive failures open the circuit; it half-opens after a minute.
func newBreaker(name string) *gobreaker.CircuitBreaker {
	return gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Timeout:     time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})
}

// OpenAITranslator translates via an OpenAI-compatible chat-completion
// endpoint.
type OpenAITranslator struct {
	client   *openai.Client
	model    string
	glossary *glossary.Glossary
	mode     glossary.Mode
	breaker  *gobreaker.CircuitBreaker
}

// NewOpenAI creates a translator for an OpenAI-compatible endpoint. baseURL
// may be empty to use the default API host.
func NewOpenAI(apiKey, baseURL string, opts Options) (*OpenAITranslator, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("OpenAI API key not found")
	}

	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAITranslator{
		client:   openai.NewClientWithConfig(cfg),
		model:    opts.Model,
		glossary: opts.Glossary,
		mode:     opts.Mode,
		breaker:  newBreaker("openai-chat"),
	}, nil
}

// Translate sends one chunk of text to the chat-completion endpoint and
// returns the translated content with glossary terms enforced.
func (t *OpenAITranslator) Translate(ctx context.Context, text string) (string, error) {
	input := text
	if t.mode == glossary.ModePre || t.mode == glossary.ModeBoth {
		input = t.glossary.Apply(input)
	}

	req := openai.ChatCompletionRequest{
		Model: t.model,
		Messages: []openai.ChatCompletionMessage{
			{
				Role:    openai.ChatMessageRoleSystem,
				Content: systemPrompt(t.glossary),
			},
			{
				Role:    openai.ChatMessageRoleUser,
				Content: input,
			},
		},
	}

	out, err := t.breaker.Execute(func() (interface{}, error) {
		resp, err := t.client.CreateChatCompletion(ctx, req)
		if err != nil {
			return nil, fmt.Errorf("OpenAI API error: %w", err)
		}
		if len(resp.Choices) == 0 {
			return nil, fmt.Errorf("no translation returned")
		}
		return resp.Choices[0].Message.Content, nil
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
