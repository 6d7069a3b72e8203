package nominatim

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент геокодера Nominatim (OpenStreetMap)
// Бесплатный, без ключа; все вызовы - best effort
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента геокодера
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Search ищет адреса по свободному тексту с приоритетом страны
// Возвращает до limit ранжированных вариантов
func (c *Client) Search(ctx context.Context, query, countryCode string, limit int) ([]Suggestion, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("q", query)
	q.Set("addressdetails", "1")
	q.Set("limit", fmt.Sprintf("%d", limit))
	if countryCode != "" {
		q.Set("countrycodes", strings.ToLower(countryCode))
	}

	var suggestions []Suggestion
	if err := c.get(ctx, fmt.Sprintf("%s/search?%s", c.baseURL, q.Encode()), &suggestions); err != nil {
		return nil, err
	}

	c.log.Info("Address search %q returned %d suggestions", query, len(suggestions))
	return suggestions, nil
}

// Reverse переводит координаты в адресную строку (best effort)
func (c *Client) Reverse(ctx context.Context, lat, lon float64) (string, error) {
	q := url.Values{}
	q.Set("format", "json")
	q.Set("lat", fmt.Sprintf("%f", lat))
	q.Set("lon", fmt.Sprintf("%f", lon))

	var resp reverseResponse
	if err := c.get(ctx, fmt.Sprintf("%s/reverse?%s", c.baseURL, q.Encode()), &resp); err != nil {
		return "", err
	}

	formatted := resp.Address.Format()
	if formatted == "" {
		formatted = resp.DisplayName
	}

	return formatted, nil
}

func (c *Client) get(ctx context.Context, endpoint string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return nil
}
