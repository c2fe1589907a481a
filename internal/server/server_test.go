package server

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"mentorlink-be/internal/bootstrap"
	"mentorlink-be/internal/config"
	"mentorlink-be/internal/constant"
	"mentorlink-be/internal/dto"
	"mentorlink-be/internal/pkg/logger"
	"mentorlink-be/pkg/search"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMemoryServer(t *testing.T) *Server {
	t.Helper()

	cfg := &config.Config{
		App: config.AppConfig{
			Port:               "0",
			Environment:        "test",
			CorsAllowedOrigins: "*",
			InstanceId:         "test-instance",
			ContentTopic:       "CONTENT_CHANGED",
			RecordStore:        config.RecordStoreMemory,
			SnapshotCacheTTL:   time.Minute,
		},
		Ai: config.AIConfig{LLMProvider: "openai"},
	}

	container, err := bootstrap.NewContainer(context.Background(), cfg, nil, logger.NewNopLogger())
	require.NoError(t, err)
	t.Cleanup(container.Close)

	return New(cfg, container)
}

func TestHealthz(t *testing.T) {
	srv := newMemoryServer(t)

	resp, err := srv.GetApp().Test(httptest.NewRequest("GET", "/healthz", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestSearchOverSampleContent(t *testing.T) {
	srv := newMemoryServer(t)

	target := "/api/search?q=" + url.QueryEscape("비자") + "&locale=kr"
	resp, err := srv.GetApp().Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out dto.SearchResponse
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))
	require.NotEmpty(t, out.Results)
	assert.LessOrEqual(t, len(out.Results), search.MaxResults)
	for _, r := range out.Results {
		assert.True(t, strings.HasPrefix(r.Url, "/kr/"), r.Url)
		assert.NotEmpty(t, r.Id)
	}
}

func TestChatWithoutCredentials(t *testing.T) {
	srv := newMemoryServer(t)

	req := httptest.NewRequest("POST", "/api/chat", strings.NewReader(`{"message":"visa","locale":"en"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.GetApp().Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out map[string]interface{}
	raw, _ := io.ReadAll(resp.Body)
	require.NoError(t, json.Unmarshal(raw, &out))
	assert.Equal(t, constant.ChatUnconfiguredMessageEN, out["response"])
	assert.Equal(t, []interface{}{}, out["links"])
}

func TestRefreshAccepted(t *testing.T) {
	srv := newMemoryServer(t)

	req := httptest.NewRequest("POST", "/api/content/v1/refresh", strings.NewReader(`{"reason":"test"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := srv.GetApp().Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusAccepted, resp.StatusCode)
}
