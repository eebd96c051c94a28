package feed

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/SharmaMitchell/SACNAS-UH-Discord-Bot/internal/domain/entity"
)

// Google Sheets values API:
// GET /v4/spreadsheets/{spreadsheetId}/values/{range}?key={apiKey}
// Rows follow the column order
// [name, description, location, date, time, image, label1, url1, label2, url2, ...]

const defaultBaseURL = "https://sheets.googleapis.com"

type SheetsClient struct {
	baseURL       string
	spreadsheetID string
	readRange     string
	apiKey        string
	client        *http.Client
}

type valuesResponse struct {
	Values [][]string `json:"values"`
}

func NewSheetsClient(baseURL, spreadsheetID, readRange, apiKey string, timeout time.Duration) *SheetsClient {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	tr := &http.Transport{
		Proxy: http.ProxyFromEnvironment,
		DialContext: (&net.Dialer{
			Timeout:   5 * time.Second,
			KeepAlive: 60 * time.Second,
		}).DialContext,
		MaxIdleConns:        10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 5 * time.Second,
	}
	return &SheetsClient{
		baseURL:       strings.TrimRight(baseURL, "/"),
		spreadsheetID: spreadsheetID,
		readRange:     readRange,
		apiKey:        strings.TrimSpace(apiKey),
		client: &http.Client{
			Timeout:   timeout,
			Transport: tr,
		},
	}
}

// FetchEvents fetches the sheet rows and normalizes them into events.
// Rows missing the required name or date columns are skipped silently.
func (c *SheetsClient) FetchEvents(ctx context.Context) ([]entity.Event, error) {
	q := url.Values{}
	q.Set("key", c.apiKey)

	u := fmt.Sprintf("%s/v4/spreadsheets/%s/values/%s?%s",
		c.baseURL, url.PathEscape(c.spreadsheetID), url.PathEscape(c.readRange), q.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return nil, fmt.Errorf("sheets: http %d", resp.StatusCode)
	}

	var data valuesResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, fmt.Errorf("sheets: decode response: %w", err)
	}

	var events []entity.Event
	for _, row := range data.Values {
		event, ok := parseRow(row)
		if !ok {
			continue
		}
		events = append(events, event)
	}

	return events, nil
}

// parseRow maps one sheet row onto an Event. Name and date are
// required; everything after the image column is read as label/url
// pairs, dropping a trailing unpaired label.
func parseRow(row []string) (entity.Event, bool) {
	col := func(i int) string {
		if i < len(row) {
			return strings.TrimSpace(row[i])
		}
		return ""
	}

	event := entity.Event{
		Name:        col(0),
		Description: col(1),
		Location:    col(2),
		Date:        col(3),
		Time:        col(4),
		Image:       col(5),
	}

	if event.Name == "" || event.Date == "" {
		return entity.Event{}, false
	}

	for i := 6; i+1 < len(row); i += 2 {
		label, linkURL := col(i), col(i+1)
		if label == "" || linkURL == "" {
			continue
		}
		event.Links = append(event.Links, entity.Link{Label: label, URL: linkURL})
	}

	return event, true
}
