package chatbot

import (
	"context"
	"fmt"
	"strings"
	"time"

	"mentorlink-be/internal/constant"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/pkg/llm"
	"mentorlink-be/pkg/locale"
	"mentorlink-be/pkg/search"
)

const logModule = "CHATBOT"

// Outcome tells the transport which kind of reply was produced.
type Outcome int

const (
	OutcomeAnswered Outcome = iota
	OutcomeUnconfigured
	OutcomeFailed
)

func (o Outcome) String() string {
	switch o {
	case OutcomeAnswered:
		return "answered"
	case OutcomeUnconfigured:
		return "unconfigured"
	case OutcomeFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Reply is the result of one chat turn. Links is nil unless the answer was
// generated and the search step matched something.
type Reply struct {
	Outcome Outcome
	Text    string
	Links   []search.Record
}

// Searcher finds site content relevant to a message.
type Searcher interface {
	Search(ctx context.Context, query string, loc locale.Locale) ([]search.Record, error)
}

type Options struct {
	MaxOutputTokens int
	Temperature     float64
	// Timeout bounds the generation call. Zero leaves it to the caller's context.
	Timeout time.Duration
}

func DefaultOptions() Options {
	return Options{
		MaxOutputTokens: constant.ChatDefaultMaxOutputTokens,
		Temperature:     constant.ChatDefaultTemperature,
	}
}

// Composer grounds one generation call in search results. It holds no
// per-conversation state and is safe for concurrent use.
type Composer struct {
	searcher  Searcher
	generator llm.Generator
	logger    logger.ILogger
	opts      Options
}

func NewComposer(searcher Searcher, generator llm.Generator, logger logger.ILogger, opts Options) *Composer {
	if opts.MaxOutputTokens <= 0 {
		opts.MaxOutputTokens = constant.ChatDefaultMaxOutputTokens
	}
	return &Composer{
		searcher:  searcher,
		generator: generator,
		logger:    logger,
		opts:      opts,
	}
}

// Compose answers message in the language of loc.
// Generation failures are turned into a fallback Reply; only search errors are returned.
func (c *Composer) Compose(ctx context.Context, message string, loc locale.Locale) (*Reply, error) {
	if !c.generator.Configured() {
		return &Reply{Outcome: OutcomeUnconfigured, Text: UnconfiguredMessageFor(loc, providerOf(c.generator))}, nil
	}

	results, err := c.searcher.Search(ctx, message, loc)
	if err != nil {
		return nil, fmt.Errorf("search content: %w", err)
	}

	genCtx := ctx
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		genCtx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	text, err := c.generator.Generate(genCtx, llm.GenerationRequest{
		SystemInstruction: SystemInstruction(loc),
		UserMessage:       UserPayload(message, results),
		MaxOutputTokens:   c.opts.MaxOutputTokens,
		Temperature:       c.opts.Temperature,
	})
	if err != nil {
		c.logger.Error(logModule, "Generation failed", map[string]interface{}{
			"locale": loc.String(),
			"error":  err.Error(),
		})
		return &Reply{Outcome: OutcomeFailed, Text: TemporaryErrorMessage(loc)}, nil
	}
	if strings.TrimSpace(text) == "" {
		c.logger.Warn(logModule, "Generation returned no text", map[string]interface{}{
			"locale": loc.String(),
		})
		return &Reply{Outcome: OutcomeFailed, Text: TemporaryErrorMessage(loc)}, nil
	}

	c.logger.Debug(logModule, "Chat turn answered", map[string]interface{}{
		"locale":  loc.String(),
		"results": len(results),
	})

	reply := &Reply{Outcome: OutcomeAnswered, Text: text}
	if len(results) > 0 {
		reply.Links = results
	}
	return reply, nil
}

func providerOf(g llm.Generator) string {
	if named, ok := g.(interface{ ProviderName() string }); ok {
		return named.ProviderName()
	}
	return ""
}

// SystemInstruction is the persona prompt for loc.
func SystemInstruction(loc locale.Locale) string {
	lang := loc.LanguageName()
	return fmt.Sprintf(constant.ChatSystemPromptTemplateV1, lang, lang)
}

// UserPayload appends one "- title: description" line per result to message.
// With no results the message is passed through unchanged.
func UserPayload(message string, results []search.Record) string {
	if len(results) == 0 {
		return message
	}

	var b strings.Builder
	b.WriteString(message)
	b.WriteString("\n\n")
	b.WriteString(constant.ChatRelevantContentHeader)
	for _, r := range results {
		b.WriteString("\n- ")
		b.WriteString(r.Title)
		b.WriteString(": ")
		b.WriteString(r.Description)
	}
	return b.String()
}
