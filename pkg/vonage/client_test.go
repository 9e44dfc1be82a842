package vonage

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigured(t *testing.T) {
	assert.True(t, NewClient("key", "secret", "CardLink", "").Configured())
	assert.False(t, NewClient("", "secret", "CardLink", "").Configured())
	assert.False(t, NewClient("key", "", "CardLink", "").Configured())
	assert.False(t, NewClient("", "", "CardLink", "").Configured())
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "15550001234", DigitsOnly("+1 (555) 000-1234"))
	assert.Equal(t, "905321234567", DigitsOnly("90 532 123 45 67"))
	assert.Equal(t, "", DigitsOnly("no digits"))
}

func TestSend_Success(t *testing.T) {
	var gotPath string
	var gotBody sendRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_, _ = w.Write([]byte(`{"messages":[{"status":"0","message-id":"0A0000000123ABCD1"}]}`))
	}))
	defer server.Close()

	client := NewClient("key", "secret", "CardLink", server.URL)
	res, err := client.Send(context.Background(), "+1 (555) 000-1234", "Hi there")

	require.NoError(t, err)
	assert.Equal(t, "/sms/json", gotPath)
	assert.Equal(t, "CardLink", gotBody.From)
	assert.Equal(t, "15550001234", gotBody.To, "numara rakamlara indirgenmeli")
	assert.Equal(t, "Hi there", gotBody.Text)
	assert.Equal(t, "key", gotBody.APIKey)
	assert.Equal(t, "secret", gotBody.APISecret)

	assert.True(t, res.Success)
	assert.Equal(t, "0", res.Status)
	assert.Equal(t, "0A0000000123ABCD1", res.MessageID)
	assert.Empty(t, res.ErrorText)
	assert.Contains(t, res.RawResponse, "0A0000000123ABCD1")
}

func TestSend_ProviderRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"messages":[{"status":"6","error-text":"Bad destination"}]}`))
	}))
	defer server.Close()

	client := NewClient("key", "secret", "CardLink", server.URL)
	res, err := client.Send(context.Background(), "5550001234", "Hi")

	// Sağlayıcı reddi taşıma hatası değildir; error nil kalır.
	require.NoError(t, err)
	assert.False(t, res.Success)
	assert.Equal(t, "6", res.Status)
	assert.Equal(t, "Bad destination", res.ErrorText)
	assert.Empty(t, res.MessageID)
}

func TestSend_EmptyMessages(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"messages":[]}`))
	}))
	defer server.Close()

	client := NewClient("key", "secret", "CardLink", server.URL)
	res, err := client.Send(context.Background(), "5550001234", "Hi")

	require.Error(t, err)
	assert.Nil(t, res)
}

func TestSend_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`<html>not json</html>`))
	}))
	defer server.Close()

	client := NewClient("key", "secret", "CardLink", server.URL)
	res, err := client.Send(context.Background(), "5550001234", "Hi")

	require.Error(t, err)
	assert.Nil(t, res)
}
