// pkg/vonage/client.go
package vonage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"unicode"
)

// Sağlayıcının "hata yok" durum kodu. messages[0].status bu değerse SMS kabul edilmiştir.
const statusOK = "0"

// SendResult tek bir SMS denemesinin yorumlanmış sonucudur.
// RawResponse denetim kaydı için sağlayıcının ham gövdesini taşır.
type SendResult struct {
	Success     bool
	Status      string
	MessageID   string
	ErrorText   string
	RawResponse string
}

// Client Vonage SMS REST API istemcisi. Tek deneme, retry yok.
type Client struct {
	apiKey     string
	apiSecret  string
	sender     string
	baseURL    string
	httpClient *http.Client
}

// NewClient yeni bir SMS istemcisi oluşturur.
func NewClient(apiKey, apiSecret, sender, baseURL string) *Client {
	return &Client{
		apiKey:     apiKey,
		apiSecret:  apiSecret,
		sender:     sender,
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 10 * time.Second},
	}
}

// Configured API anahtarlarının ayarlı olup olmadığını söyler.
func (c *Client) Configured() bool {
	return c.apiKey != "" && c.apiSecret != ""
}

// sendRequest Vonage'ın beklediği istek gövdesi.
type sendRequest struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Text      string `json:"text"`
	APIKey    string `json:"api_key"`
	APISecret string `json:"api_secret"`
}

// sendResponse messages dizisinin ilk elemanı değerlendirilir.
type sendResponse struct {
	Messages []struct {
		Status    string `json:"status"`
		ErrorText string `json:"error-text"`
		MessageID string `json:"message-id"`
	} `json:"messages"`
}

// DigitsOnly telefon numarasından rakam dışı karakterleri ayıklar.
func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Send mesajı verilen numaraya gönderir. Dönen error yalnızca taşıma/çözümleme
// hatalarını kapsar; sağlayıcının reddi SendResult içinde raporlanır.
func (c *Client) Send(ctx context.Context, to, text string) (*SendResult, error) {
	payload, err := json.Marshal(sendRequest{
		From:      c.sender,
		To:        DigitsOnly(to),
		Text:      text,
		APIKey:    c.apiKey,
		APISecret: c.apiSecret,
	})
	if err != nil {
		return nil, err
	}

	url := c.baseURL + "/sms/json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("sağlayıcı yanıtı okunamadı: %w", err)
	}

	var body sendResponse
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("sağlayıcı yanıtı çözümlenemedi: %w", err)
	}
	if len(body.Messages) == 0 {
		return nil, fmt.Errorf("sağlayıcı yanıtında messages alanı boş")
	}

	first := body.Messages[0]
	return &SendResult{
		Success:     first.Status == statusOK,
		Status:      first.Status,
		MessageID:   first.MessageID,
		ErrorText:   first.ErrorText,
		RawResponse: string(raw),
	}, nil
}
