package ollama

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"mentorlink-be/pkg/llm"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOllamaGenerate(t *testing.T) {
	var got ollamaChatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_ = json.NewEncoder(w).Encode(ollamaChatResponse{
			Model:   got.Model,
			Message: ollamaMessage{Role: "assistant", Content: "안녕하세요"},
			Done:    true,
		})
	}))
	defer srv.Close()

	p := NewOllamaProvider(srv.URL+"/", "llama3", 5*time.Second)
	require.True(t, p.Configured())

	text, err := p.Generate(context.Background(), llm.GenerationRequest{
		SystemInstruction: "system",
		UserMessage:       "hello",
		MaxOutputTokens:   500,
		Temperature:       0.7,
	})

	require.NoError(t, err)
	assert.Equal(t, "안녕하세요", text)
	assert.Equal(t, "llama3", got.Model)
	assert.False(t, got.Stream)
	require.Len(t, got.Messages, 2)
	assert.Equal(t, "system", got.Messages[0].Role)
	assert.Equal(t, "hello", got.Messages[1].Content)
	assert.Equal(t, 500, got.Options.NumPredict)
}

func TestOllamaGenerateErrors(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{"server error", func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
		}},
		{"malformed body", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte("{not json"))
		}},
		{"error field", func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"error":"model not found"}`))
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			_, err := NewOllamaProvider(srv.URL, "llama3", time.Second).Generate(context.Background(), llm.GenerationRequest{})

			var genErr *llm.GenerationError
			require.ErrorAs(t, err, &genErr)
			assert.Equal(t, "ollama", genErr.Provider)
		})
	}
}
