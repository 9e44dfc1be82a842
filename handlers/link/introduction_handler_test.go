package link

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"cardlink.app/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeIntroService struct {
	gotReq services.IntroductionRequest
	result *services.IntroductionResult
	err    error
}

func (f *fakeIntroService) SubmitIntroduction(_ context.Context, req services.IntroductionRequest) (*services.IntroductionResult, error) {
	f.gotReq = req
	return f.result, f.err
}

func newIntroTestApp(service services.IIntroductionService) *fiber.App {
	app := fiber.New()
	handler := &IntroductionHandler{introService: service}
	app.Post("/api/intro", handler.Submit)
	return app
}

func postIntro(t *testing.T, app *fiber.App, body string, headers map[string]string) (int, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest("POST", "/api/intro", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestSubmit_Success(t *testing.T) {
	service := &fakeIntroService{
		result: &services.IntroductionResult{Success: true, Message: "Introduction sent!", ContactID: uuid.New()},
	}
	app := newIntroTestApp(service)

	status, body := postIntro(t, app, `{"cardId":"abc123xyz","name":"Grace","phone":"5551234"}`, nil)

	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "Introduction sent!", body["message"])
	assert.Equal(t, "abc123xyz", service.gotReq.CardKey)
	assert.Equal(t, "Grace", service.gotReq.Name)
	assert.Equal(t, "5551234", service.gotReq.Phone)
}

func TestSubmit_DeliveryRejectionStays200(t *testing.T) {
	service := &fakeIntroService{
		result: &services.IntroductionResult{Success: false, Message: "Failed to send SMS", ContactID: uuid.New()},
	}
	app := newIntroTestApp(service)

	status, body := postIntro(t, app, `{"cardId":"abc123xyz","name":"Grace","phone":"5551234"}`, nil)

	// Teslimat reddi hata değil raporlanan bir sonuç; durum kodu 200.
	assert.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Failed to send SMS", body["message"])
}

func TestSubmit_ServiceError(t *testing.T) {
	service := &fakeIntroService{err: services.ErrIntroCardNotFound}
	app := newIntroTestApp(service)

	status, body := postIntro(t, app, `{"cardId":"missing","name":"Grace","phone":"5551234"}`, nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Card not found", body["message"])
}

func TestSubmit_InvalidBody(t *testing.T) {
	service := &fakeIntroService{}
	app := newIntroTestApp(service)

	status, body := postIntro(t, app, `{not json`, nil)

	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Invalid request body", body["message"])
}

func TestSubmit_ClientAddressPrecedence(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			"forwarded-for listesinin ilk elemanı",
			map[string]string{"X-Forwarded-For": "203.0.113.7, 10.0.0.1", "X-Real-Ip": "198.51.100.2"},
			"203.0.113.7",
		},
		{
			"real-ip yedeği",
			map[string]string{"X-Real-Ip": "198.51.100.2"},
			"198.51.100.2",
		},
		{
			"başlık yoksa unknown",
			nil,
			"unknown",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &fakeIntroService{
				result: &services.IntroductionResult{Success: true, Message: "Introduction sent!"},
			}
			app := newIntroTestApp(service)

			status, _ := postIntro(t, app, `{"cardId":"abc123xyz","name":"Grace","phone":"5551234"}`, tt.headers)
			assert.Equal(t, fiber.StatusOK, status)
			assert.Equal(t, tt.want, service.gotReq.SourceAddress)
		})
	}
}
