package binance

import (
	"encoding/json"
	"strconv"
)

// Binance's futures REST API encodes most numeric fields as JSON strings.
// Wire types keep them as strings; Float converts at the point of use.

// Ticker24h is a rolling 24h statistics row from /fapi/v1/ticker/24hr.
type Ticker24h struct {
	Symbol             string `json:"symbol"`
	LastPrice          string `json:"lastPrice"`
	PriceChangePercent string `json:"priceChangePercent"`
	HighPrice          string `json:"highPrice"`
	LowPrice           string `json:"lowPrice"`
	QuoteVolume        string `json:"quoteVolume"`
	Count              int64  `json:"count"`
}

// PremiumIndex is a mark price/funding row from /fapi/v1/premiumIndex.
// Delivery contracts carry an empty LastFundingRate and a zero
// NextFundingTime.
type PremiumIndex struct {
	Symbol          string `json:"symbol"`
	MarkPrice       string `json:"markPrice"`
	IndexPrice      string `json:"indexPrice"`
	LastFundingRate string `json:"lastFundingRate"`
	NextFundingTime int64  `json:"nextFundingTime"`
}

// FundingInfo describes a contract's funding schedule; only symbols with
// a non-default interval are listed by /fapi/v1/fundingInfo.
type FundingInfo struct {
	Symbol               string `json:"symbol"`
	FundingIntervalHours int    `json:"fundingIntervalHours"`
}

// LongShortRatio is one sample of the global long/short account ratio.
// LongAccount/ShortAccount are proportions in [0,1].
type LongShortRatio struct {
	Symbol         string `json:"symbol"`
	LongShortRatio string `json:"longShortRatio"`
	LongAccount    string `json:"longAccount"`
	ShortAccount   string `json:"shortAccount"`
	Timestamp      int64  `json:"timestamp"`
}

// Kline is the positional candle array from /fapi/v1/klines:
// [openTime, open, high, low, close, volume, closeTime, quoteVolume, …].
type Kline []json.RawMessage

// QuoteVolume returns the candle's quote asset volume (index 7), or 0
// when the row is malformed.
func (k Kline) QuoteVolume() float64 {
	if len(k) <= 7 {
		return 0
	}
	var s string
	if err := json.Unmarshal(k[7], &s); err != nil {
		return 0
	}
	return Float(s)
}

// Float parses a Binance numeric string, returning 0 for empty or
// unparseable values. Non-finite results ("Infinity", "NaN") are passed
// through for the caller to normalize.
func Float(s string) float64 {
	if s == "" {
		return 0
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return f
}
