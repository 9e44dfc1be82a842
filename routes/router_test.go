package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntroPreflight(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app)

	// Kart sayfası yabancı origin'lerden embed edilir; preflight geçmeli.
	req := httptest.NewRequest("OPTIONS", "/api/intro", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "POST")
	req.Header.Set("Access-Control-Request-Headers", "Content-Type")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), "POST")
}

func TestNotFoundHandler_JSON(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app)

	// :key rotası tek segmentleri yakalar; JSON isteyen derin path 404 JSON alır.
	req := httptest.NewRequest("GET", "/no/such/route", nil)
	req.Header.Set("Accept", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "Kaynak bulunamadı", body["error"])
}
