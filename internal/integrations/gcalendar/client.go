package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/dipeshpuri/CleanrCrew-Patched/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент событий Google Calendar (только чтение, free/busy разметка)
type Client struct {
	baseURL    string
	calendarID string
	apiKey     string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента календаря
func NewClient(baseURL, calendarID, apiKey string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL:    baseURL,
		calendarID: calendarID,
		apiKey:     apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Busy возвращает занятые интервалы календаря за окно [from, to]
// Отменённые события помечаются флагом Cancelled и не отбрасываются здесь -
// решение остается за потребителем
func (c *Client) Busy(ctx context.Context, from, to time.Time) ([]domain.BusyInterval, error) {
	if c.apiKey == "" || c.calendarID == "" {
		return nil, ErrNotConfigured
	}

	q := url.Values{}
	q.Set("key", c.apiKey)
	q.Set("timeMin", from.Format(time.RFC3339))
	q.Set("timeMax", to.Format(time.RFC3339))
	q.Set("singleEvents", "true")
	q.Set("orderBy", "startTime")

	endpoint := fmt.Sprintf("%s/calendars/%s/events?%s", c.baseURL, url.PathEscape(c.calendarID), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var events eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	intervals := make([]domain.BusyInterval, 0, len(events.Items))
	for _, ev := range events.Items {
		start, err := parseEventTime(ev.Start, false)
		if err != nil {
			c.log.Warn("Calendar event with unparseable start skipped: %v", err)
			continue
		}
		end, err := parseEventTime(ev.End, true)
		if err != nil {
			c.log.Warn("Calendar event with unparseable end skipped: %v", err)
			continue
		}

		intervals = append(intervals, domain.BusyInterval{
			Start:     start,
			End:       end,
			Cancelled: ev.Status == "cancelled",
		})
	}

	c.log.Info("Fetched %d busy intervals from calendar for window %s..%s",
		len(intervals), from.Format(time.RFC3339), to.Format(time.RFC3339))

	return intervals, nil
}

// parseEventTime разбирает момент события
// События на весь день несут только дату: начало трактуем как 00:00:00,
// конец - как 23:59:59 этого дня
func parseEventTime(t eventTime, isEnd bool) (time.Time, error) {
	if t.DateTime != "" {
		return time.Parse(time.RFC3339, t.DateTime)
	}
	if t.Date != "" {
		day, err := time.Parse(domain.DateFormat, t.Date)
		if err != nil {
			return time.Time{}, err
		}
		if isEnd {
			return day.Add(24*time.Hour - time.Second), nil
		}
		return day, nil
	}
	return time.Time{}, fmt.Errorf("event time has neither dateTime nor date")
}
