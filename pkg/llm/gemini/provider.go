// Package gemini provides a Generator backed by Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"

	"google.golang.org/genai"

	"mentorlink-be/pkg/llm"
)

const providerName = "gemini"

type GeminiProvider struct {
	client *genai.Client
	model  string
}

var _ llm.Generator = &GeminiProvider{}

// NewGeminiProvider creates the SDK client once; it is reused for every request.
func NewGeminiProvider(ctx context.Context, apiKey, model string) (*GeminiProvider, error) {
	if apiKey == "" {
		return nil, llm.ErrCapabilityUnconfigured
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}

	return &GeminiProvider{client: client, model: model}, nil
}

func (p *GeminiProvider) Configured() bool {
	return p.client != nil
}

func (p *GeminiProvider) Generate(ctx context.Context, req llm.GenerationRequest) (string, error) {
	temperature := float32(req.Temperature)
	cfg := &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		},
		Temperature:     &temperature,
		MaxOutputTokens: int32(req.MaxOutputTokens),
	}

	resp, err := p.client.Models.GenerateContent(ctx, p.model, genai.Text(req.UserMessage), cfg)
	if err != nil {
		return "", llm.NewGenerationError(providerName, err)
	}

	if resp == nil || len(resp.Candidates) == 0 {
		return "", llm.NewGenerationError(providerName, errors.New("no candidates returned"))
	}

	return resp.Text(), nil
}
