package factory

import (
	"context"
	"errors"
	"fmt"
	"time"

	"mentorlink-be/pkg/llm"
	"mentorlink-be/pkg/llm/gemini"
	"mentorlink-be/pkg/llm/ollama"
	"mentorlink-be/pkg/llm/openai"
)

type Options struct {
	Provider      string // "openai" | "gemini" | "ollama"
	Model         string
	OpenAIKey     string
	OpenAIBaseURL string
	GeminiKey     string
	OllamaBaseURL string
	Timeout       time.Duration
}

// NewGenerator builds the configured backend. A missing credential is not an
// error: it yields llm.Unconfigured so chat requests can answer with a notice.
func NewGenerator(ctx context.Context, opts Options) (llm.Generator, error) {
	switch opts.Provider {
	case "openai", "":
		if opts.OpenAIKey == "" {
			return llm.Unconfigured{Provider: "openai", Reason: "OPENAI_API_KEY is not set"}, nil
		}
		return openai.NewOpenAIProvider(opts.OpenAIKey, opts.OpenAIBaseURL, opts.Model), nil
	case "gemini":
		p, err := gemini.NewGeminiProvider(ctx, opts.GeminiKey, opts.Model)
		if errors.Is(err, llm.ErrCapabilityUnconfigured) {
			return llm.Unconfigured{Provider: "gemini", Reason: "GOOGLE_GEMINI_API_KEY is not set"}, nil
		}
		if err != nil {
			return nil, err
		}
		return p, nil
	case "ollama":
		if opts.OllamaBaseURL == "" {
			return llm.Unconfigured{Provider: "ollama", Reason: "OLLAMA_BASE_URL is not set"}, nil
		}
		return ollama.NewOllamaProvider(opts.OllamaBaseURL, opts.Model, opts.Timeout), nil
	default:
		return nil, fmt.Errorf("unsupported LLM provider: %s", opts.Provider)
	}
}
