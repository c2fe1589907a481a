package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewGenerationError(t *testing.T) {
	cause := errors.New("timeout")
	err := NewGenerationError("openai", cause)

	var genErr *GenerationError
	assert.ErrorAs(t, err, &genErr)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "openai generation failed: timeout", err.Error())

	assert.Same(t, err, NewGenerationError("gemini", err), "already wrapped errors are kept")
}

func TestUnconfigured(t *testing.T) {
	g := Unconfigured{Reason: "no key"}
	assert.False(t, g.Configured())

	_, err := g.Generate(context.Background(), GenerationRequest{})
	assert.ErrorIs(t, err, ErrCapabilityUnconfigured)
}
