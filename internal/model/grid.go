package model

// BacktestRow is one watchlist coin with its simulated grid yields.
// LongAPR/ShortAPR are annualized percentages, clamped to a plausible band.
type BacktestRow struct {
	Rank       int     `json:"rank"`
	Symbol     string  `json:"symbol"`
	Price      float64 `json:"price"`
	Volatility float64 `json:"volatility"`
	Change24h  float64 `json:"change24h"`
	LongAPR    float64 `json:"long_apr"`
	ShortAPR   float64 `json:"short_apr"`
}

// GridConfig is the dashboard summary of one grid strategy config file.
// Mode and Investment are display strings assembled by the loader.
type GridConfig struct {
	Filename   string `json:"filename"`
	Exchange   string `json:"exchange"`
	Symbol     string `json:"symbol"`
	Mode       string `json:"mode"`
	Direction  string `json:"direction"`
	Investment string `json:"investment"`
	Status     string `json:"status"`
}
