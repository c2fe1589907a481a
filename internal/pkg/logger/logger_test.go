package logger

import (
	"errors"
	"testing"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestZapLoggerWritesModuleAndDetails(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	l := NewWithCore(core)

	l.Info("SEARCH", "Search finished", map[string]interface{}{"results": 3})
	l.Warn("CHATBOT", "No details", nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "Search finished", entries[0].Message)
	assert.Equal(t, "SEARCH", entries[0].ContextMap()["module"])
	assert.Equal(t, map[string]interface{}{"results": 3}, entries[0].ContextMap()["details"])
	assert.Equal(t, map[string]interface{}{}, entries[1].ContextMap()["details"])
}

func TestZapLoggerErrorKeepsErrorRef(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	NewWithCore(core).Error("NATS", "Publish failed", map[string]interface{}{"error": "timeout"})

	entry := logs.All()[0]
	assert.Equal(t, "timeout", entry.ContextMap()["error_ref"])
}

func TestWatermillAdapter(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	adapter := NewWatermillAdapter(NewWithCore(core), "CONTENT_EVENTS", false).
		With(watermill.LogFields{"topic": "CONTENT_CHANGED"})

	adapter.Debug("hidden", nil)
	adapter.Trace("hidden", nil)
	adapter.Info("Subscribed", watermill.LogFields{"subscriber": 1})
	adapter.Error("Publish failed", errors.New("closed"), nil)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "CONTENT_EVENTS", entries[0].ContextMap()["module"])
	assert.Equal(t, map[string]interface{}{"topic": "CONTENT_CHANGED", "subscriber": 1}, entries[0].ContextMap()["details"])
	assert.Equal(t, "closed", entries[1].ContextMap()["details"].(map[string]interface{})["error"])
}

func TestNopLogger(t *testing.T) {
	l := NewNopLogger()
	l.Info("SERVER", "ignored", nil)
	assert.NoError(t, l.Sync())
}
