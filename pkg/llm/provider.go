package llm

import (
	"context"
	"errors"
	"fmt"
)

// ErrCapabilityUnconfigured is returned by generators that have no usable credential.
var ErrCapabilityUnconfigured = errors.New("generation capability is not configured")

// GenerationRequest is a single-turn prompt: a system instruction plus one user message.
type GenerationRequest struct {
	SystemInstruction string
	UserMessage       string
	MaxOutputTokens   int
	Temperature       float64
}

// Generator defines the contract for any text-generation backend.
type Generator interface {
	// Configured reports whether the backend has what it needs to be called.
	// It must not perform I/O.
	Configured() bool

	// Generate returns the generated text or a *GenerationError.
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// GenerationError wraps any network, auth, quota or decoding failure of a backend.
type GenerationError struct {
	Provider string
	Err      error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("%s generation failed: %v", e.Provider, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// NewGenerationError wraps err unless it already is a *GenerationError.
func NewGenerationError(provider string, err error) error {
	var genErr *GenerationError
	if errors.As(err, &genErr) {
		return err
	}
	return &GenerationError{Provider: provider, Err: err}
}

// Unconfigured is the Generator used when no backend credential is available.
type Unconfigured struct {
	Provider string
	Reason   string
}

var _ Generator = Unconfigured{}

func (Unconfigured) Configured() bool {
	return false
}

// ProviderName is the backend that is missing its settings.
func (u Unconfigured) ProviderName() string {
	return u.Provider
}

func (u Unconfigured) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	return "", ErrCapabilityUnconfigured
}
