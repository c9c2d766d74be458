package models

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sashabaranov/go-openai"
)

// Lister handles listing available chat models
type Lister struct {
	apiKey string
	client *openai.Client
}

// NewLister creates a new model lister. baseURL may be empty to use the
// default API host.
func NewLister(apiKey, baseURL string) *Lister {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &Lister{
		apiKey: apiKey,
		client: openai.NewClientWithConfig(cfg),
	}
}

// ListAvailableModels prints the chat-capable models for the current API key
func (l *Lister) ListAvailableModels() error {
	if l.apiKey == "" {
		return fmt.Errorf("OpenAI API key not found. Set OPENAI_API_KEY environment variable or configure in .doctrans.yaml")
	}

	ctx := context.Background()
	models, err := l.client.ListModels(ctx)
	if err != nil {
		return fmt.Errorf("failed to list models: %w", err)
	}

	chatModels := []string{}
	for _, model := range models.Models {
		modelID := model.ID
		if strings.Contains(modelID, "gpt") || strings.Contains(modelID, "chat") ||
			strings.Contains(modelID, "deepseek") {
			chatModels = append(chatModels, modelID)
		}
	}
	sort.Strings(chatModels)

	fmt.Println("Chat models usable for translation:")
	if len(chatModels) == 0 {
		fmt.Println("  No chat models found")
	} else {
		for _, model := range chatModels {
			fmt.Printf("  %s\n", model)
		}
	}

	return nil
}
