// Package openai provides a Generator backed by the OpenAI chat completions API
// or any endpoint compatible with it.
package openai

import (
	"context"
	"errors"

	gopenai "github.com/sashabaranov/go-openai"

	"mentorlink-be/pkg/llm"
)

const providerName = "openai"

type OpenAIProvider struct {
	client *gopenai.Client
	apiKey string
	model  string
}

var _ llm.Generator = &OpenAIProvider{}

// NewOpenAIProvider builds a provider; baseURL may be empty to use the public API.
func NewOpenAIProvider(apiKey, baseURL, model string) *OpenAIProvider {
	cfg := gopenai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}

	return &OpenAIProvider{
		client: gopenai.NewClientWithConfig(cfg),
		apiKey: apiKey,
		model:  model,
	}
}

func (p *OpenAIProvider) Configured() bool {
	return p.apiKey != ""
}

func (p *OpenAIProvider) Generate(ctx context.Context, req llm.GenerationRequest) (string, error) {
	resp, err := p.client.CreateChatCompletion(ctx, gopenai.ChatCompletionRequest{
		Model: p.model,
		Messages: []gopenai.ChatCompletionMessage{
			{Role: gopenai.ChatMessageRoleSystem, Content: req.SystemInstruction},
			{Role: gopenai.ChatMessageRoleUser, Content: req.UserMessage},
		},
		MaxTokens:   req.MaxOutputTokens,
		Temperature: float32(req.Temperature),
	})
	if err != nil {
		return "", llm.NewGenerationError(providerName, err)
	}

	if len(resp.Choices) == 0 {
		return "", llm.NewGenerationError(providerName, errors.New("no response choices returned"))
	}

	return resp.Choices[0].Message.Content, nil
}
