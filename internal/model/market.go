package model

// LongShortStat describes the global long/short account positioning of a
// single contract. Long and Short are percentages (0-100).
type LongShortStat struct {
	Ratio float64 `json:"ratio"`
	Long  float64 `json:"long"`
	Short float64 `json:"short"`
}

// TickerRow is one ranked row of the main market table.
// Symbol is display-formatted ("BTC/USDT"); FundingInterval is in hours.
type TickerRow struct {
	Rank            int           `json:"rank"`
	Symbol          string        `json:"symbol"`
	Price           float64       `json:"price"`
	Change24h       float64       `json:"change24h"`
	High24h         float64       `json:"high24h"`
	Low24h          float64       `json:"low24h"`
	Volume24h       float64       `json:"volume24h"`
	Trades          int64         `json:"trades"`
	FundingRate     float64       `json:"fundingRate"`
	NextFundingTime int64         `json:"nextFundingTime"`
	FundingInterval int           `json:"fundingInterval"`
	LongShort       LongShortStat `json:"lsRatio"`
}

// TickerBoard is the assembled ticker dataset: contracts with a live
// funding rate (Main), contracts whose current rate is exactly zero
// (Other), and market-wide aggregates.
type TickerBoard struct {
	Main         []TickerRow
	Other        []TickerRow
	TotalVolume  float64
	VolumeChange float64
}

// FundingRow is one row of the funding-rate leaderboard, ordered by
// absolute funding rate.
type FundingRow struct {
	Rank            int     `json:"rank"`
	Symbol          string  `json:"symbol"`
	MarkPrice       float64 `json:"markPrice"`
	IndexPrice      float64 `json:"indexPrice"`
	FundingRate     float64 `json:"fundingRate"`
	NextFundingTime int64   `json:"nextFundingTime"`
}

// PriceChange is a last price plus its 24h percent change.
type PriceChange struct {
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
}

// MajorPrices carries the headline BTC/ETH quotes shown in the top bar.
type MajorPrices struct {
	BTC PriceChange `json:"btc"`
	ETH PriceChange `json:"eth"`
}

// FearGreed is the alternative.me Fear & Greed index snapshot.
type FearGreed struct {
	Value          int     `json:"value"`
	Classification string  `json:"classification"`
	Change24h      float64 `json:"change24h"`
}
