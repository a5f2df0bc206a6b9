package holiday

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"brettbot/internal/ports/output"
)

var _ output.HolidayProvider = (*Client)(nil)

// Client fetches public holidays from feiertage-api.de. The API returns
// {"Neujahrstag": {"datum": "2026-01-01", ...}, ...}; Holidays inverts that
// into date -> name. Should the feed ever list two holidays on the same date,
// the first one encountered wins and the conflict is left to the config
// loader to report.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string) *Client {
	return &Client{
		url:  url,
		http: &http.Client{Timeout: 10 * time.Second},
	}
}

type holidayEntry struct {
	Datum   string `json:"datum"`
	Hinweis string `json:"hinweis"`
}

func (c *Client) Holidays(ctx context.Context) (map[string]string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build holiday request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch holidays: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch holidays: unexpected status %s", resp.Status)
	}

	var entries map[string]holidayEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf("decode holidays: %w", err)
	}

	holidays := make(map[string]string, len(entries))
	for name, entry := range entries {
		if entry.Datum == "" {
			continue
		}
		if _, ok := holidays[entry.Datum]; ok {
			continue
		}
		holidays[entry.Datum] = name
	}
	return holidays, nil
}
