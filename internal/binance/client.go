// Package binance is a minimal read-only client for the public Binance
// USDT-M futures REST API. Only the endpoints the dashboard renders are
// covered; all of them are unauthenticated.
package binance

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

const (
	pathTicker24h      = "/fapi/v1/ticker/24hr"
	pathPremiumIndex   = "/fapi/v1/premiumIndex"
	pathFundingInfo    = "/fapi/v1/fundingInfo"
	pathKlines         = "/fapi/v1/klines"
	pathLongShortRatio = "/futures/data/globalLongShortAccountRatio"
)

// Client issues requests against one Binance futures API base URL using a
// shared pooled HTTP client. It is safe for concurrent use.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient returns a client for the given base URL
// (e.g. https://fapi.binance.com).
func NewClient(baseURL string, hc *http.Client) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    hc,
	}
}

// Ticker24hAll fetches 24h statistics for every listed contract.
func (c *Client) Ticker24hAll(ctx context.Context) ([]Ticker24h, error) {
	var out []Ticker24h
	if err := c.getJSON(ctx, pathTicker24h, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Ticker24h fetches 24h statistics for a single contract. With a symbol
// parameter the endpoint returns an object instead of a list.
func (c *Client) Ticker24h(ctx context.Context, symbol string) (Ticker24h, error) {
	q := url.Values{"symbol": {symbol}}
	var out Ticker24h
	if err := c.getJSON(ctx, pathTicker24h, q, &out); err != nil {
		return Ticker24h{}, err
	}
	return out, nil
}

// PremiumIndexAll fetches mark price and funding data for every contract.
func (c *Client) PremiumIndexAll(ctx context.Context) ([]PremiumIndex, error) {
	var out []PremiumIndex
	if err := c.getJSON(ctx, pathPremiumIndex, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// FundingInfoAll fetches funding interval overrides.
func (c *Client) FundingInfoAll(ctx context.Context) ([]FundingInfo, error) {
	var out []FundingInfo
	if err := c.getJSON(ctx, pathFundingInfo, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Klines fetches up to limit candles for symbol at the given interval.
func (c *Client) Klines(ctx context.Context, symbol, interval string, limit int) ([]Kline, error) {
	q := url.Values{
		"symbol":   {symbol},
		"interval": {interval},
		"limit":    {strconv.Itoa(limit)},
	}
	var out []Kline
	if err := c.getJSON(ctx, pathKlines, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// GlobalLongShortRatio fetches the most recent long/short account ratio
// samples for one symbol.
func (c *Client) GlobalLongShortRatio(ctx context.Context, symbol, period string, limit int) ([]LongShortRatio, error) {
	q := url.Values{
		"symbol": {symbol},
		"period": {period},
		"limit":  {strconv.Itoa(limit)},
	}
	var out []LongShortRatio
	if err := c.getJSON(ctx, pathLongShortRatio, q, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("binance: build request %s: %w", path, err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("binance: %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// Binance error bodies are small JSON objects; keep a bounded
		// excerpt for the log line.
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("binance: %s returned %d: %s", path, resp.StatusCode, strings.TrimSpace(string(b)))
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("binance: decode %s: %w", path, err)
	}
	return nil
}
