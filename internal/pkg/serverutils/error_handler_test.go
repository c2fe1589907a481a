package serverutils

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleRequest struct {
	Query  string `validate:"required"`
	Locale string `validate:"omitempty,oneof=kr en mn"`
}

func TestValidateRequest(t *testing.T) {
	assert.NoError(t, ValidateRequest(sampleRequest{Query: "visa", Locale: "en"}))

	err := ValidateRequest(sampleRequest{Locale: "fr"})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "is required", verr.Fields["Query"])
	assert.Equal(t, "must be one of [kr en mn]", verr.Fields["Locale"])
}

func TestErrorHandlerMiddleware(t *testing.T) {
	app := fiber.New()
	app.Use(ErrorHandlerMiddleware())
	app.Get("/fiber", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusNotFound, "missing") })
	app.Get("/validation", func(c *fiber.Ctx) error { return ValidateRequest(sampleRequest{}) })
	app.Get("/internal", func(c *fiber.Ctx) error { return errors.New("pq: connection refused") })
	app.Get("/ok", func(c *fiber.Ctx) error { return c.SendString("ok") })

	tests := []struct {
		path        string
		wantCode    int
		wantMessage string
	}{
		{"/fiber", 404, "missing"},
		{"/validation", 400, "Query: is required"},
		{"/internal", 500, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, resp.StatusCode)

			raw, _ := io.ReadAll(resp.Body)
			var body BaseResponse[any]
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantCode, body.Code)
			assert.Equal(t, tt.wantMessage, body.Message)
		})
	}

	resp, err := app.Test(httptest.NewRequest("GET", "/ok", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
}
