// pkg/ipapi/client.go
package ipapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Location bir ağ adresinin kaba konum karşılığıdır.
type Location struct {
	City      string
	State     string
	Country   string
	Latitude  float64
	Longitude float64
}

// Client ipapi.co uyumlu geolocation servisine tek denemelik sorgu atar.
// Konum zenginleştirmesi best-effort olduğu için retry yoktur; çağıran taraf
// hatayı loglayıp konumsuz devam etmelidir.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient yeni bir geolocation istemcisi oluşturur.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// apiResponse ipapi.co yanıt gövdesi. error alanı doluysa sorgu başarısızdır.
type apiResponse struct {
	Error       bool    `json:"error"`
	Reason      string  `json:"reason"`
	City        string  `json:"city"`
	Region      string  `json:"region"`
	CountryName string  `json:"country_name"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
}

// Resolve adresi konuma çözer. Adres boş veya "unknown" ise ağ çağrısı
// yapılmadan (nil, nil) döner; bu bir hata değil hızlı vazgeçiştir.
func (c *Client) Resolve(ctx context.Context, address string) (*Location, error) {
	if address == "" || address == "unknown" {
		return nil, nil
	}

	url := fmt.Sprintf("%s/%s/json/", c.baseURL, address)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geolocation servisi %d döndürdü", resp.StatusCode)
	}

	var body apiResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("geolocation yanıtı çözümlenemedi: %w", err)
	}
	if body.Error {
		return nil, fmt.Errorf("geolocation servisi hata bildirdi: %s", body.Reason)
	}

	return &Location{
		City:      body.City,
		State:     body.Region,
		Country:   body.CountryName,
		Latitude:  body.Latitude,
		Longitude: body.Longitude,
	}, nil
}
