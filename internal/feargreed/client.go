package feargreed

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Entry is one day of the alternative.me Fear & Greed index. The API
// encodes numeric fields as strings.
type Entry struct {
	Value          string `json:"value"`
	Classification string `json:"value_classification"`
	Timestamp      string `json:"timestamp"`
}

// Int returns the index value as an integer, or 0 when unparseable.
func (e Entry) Int() int {
	v, err := strconv.Atoi(strings.TrimSpace(e.Value))
	if err != nil {
		return 0
	}
	return v
}

type indexResponse struct {
	Data []Entry `json:"data"`
}

// Client fetches the Fear & Greed index from api.alternative.me.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, hc *http.Client) *Client {
	return &Client{baseURL: strings.TrimRight(baseURL, "/"), http: hc}
}

// Latest returns the most recent entries, newest first. Pass limit=2 to
// compute a day-over-day change from the result.
func (c *Client) Latest(ctx context.Context, limit int) ([]Entry, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/fng/?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("feargreed: build request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("feargreed: get /fng/: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		excerpt, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("feargreed: get /fng/: status %d: %s", resp.StatusCode, excerpt)
	}

	var out indexResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("feargreed: decode /fng/: %w", err)
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("feargreed: empty data")
	}
	return out.Data, nil
}
