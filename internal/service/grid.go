package service

import (
	"context"
	"log"
	"sort"
	"strings"

	"github.com/Hans010101/Crypto-Trading/internal/binance"
	"github.com/Hans010101/Crypto-Trading/internal/gridconf"
	"github.com/Hans010101/Crypto-Trading/internal/model"
)

// backtestWatchlist fixes which coins the simulation covers and in which
// order they are ranked.
var backtestWatchlist = []string{
	"BTC", "ETH", "XRP", "SOL", "BNB", "DOGE", "ADA", "TON", "TRX", "AVAX",
	"SHIB", "LINK", "DOT", "SUI", "BCH", "UNI", "PEPE", "LTC", "NEAR", "AAVE", "APT",
}

const (
	// The simulated base yield assumes the grid captures the day's true
	// range about twelve times over a year of comparable sessions, and
	// tilts long/short legs by the 24h trend.
	aprVolatilityFactor = 12.0
	aprTrendFactor      = 15.0
	aprFloor            = -80.0
	aprCeiling          = 450.0
)

// GridService serves the grid-trading panels: the simulated yield table
// for the watchlist and the list of on-disk bot configurations.
type GridService interface {
	// Backtest simulates grid yields from live 24h statistics. It returns
	// an empty list when the upstream fetch fails.
	Backtest(ctx context.Context) []model.BacktestRow

	// Configs lists the configured grid bots.
	Configs() []model.GridConfig
}

type gridService struct {
	binance *binance.Client
	loader  *gridconf.Loader
}

// NewGridService constructs a GridService.
func NewGridService(bc *binance.Client, loader *gridconf.Loader) GridService {
	return &gridService{binance: bc, loader: loader}
}

func (s *gridService) Backtest(ctx context.Context) []model.BacktestRow {
	tickers, err := s.binance.Ticker24hAll(ctx)
	if err != nil {
		log.Printf("grid: backtest fetch failed: %v", err)
		return []model.BacktestRow{}
	}

	order := make(map[string]int, len(backtestWatchlist))
	for i, coin := range backtestWatchlist {
		order[coin] = i
	}

	// Pick one contract per watchlist coin. Multiplied contracts such as
	// 1000SHIBUSDT map back to their base coin; when several contracts
	// match, the most liquid one wins.
	best := make(map[string]binance.Ticker24h, len(backtestWatchlist))
	for _, t := range tickers {
		if !strings.HasSuffix(t.Symbol, "USDT") {
			continue
		}
		base := strings.ReplaceAll(strings.ReplaceAll(t.Symbol, "USDT", ""), "1000", "")
		if _, watched := order[base]; !watched {
			continue
		}
		cur, exists := best[base]
		if !exists || binance.Float(t.QuoteVolume) > binance.Float(cur.QuoteVolume) {
			best[base] = t
		}
	}

	coins := make([]string, 0, len(best))
	for coin := range best {
		coins = append(coins, coin)
	}
	sort.Slice(coins, func(i, j int) bool { return order[coins[i]] < order[coins[j]] })

	rows := make([]model.BacktestRow, 0, len(coins))
	for i, coin := range coins {
		t := best[coin]
		price := binance.Float(t.LastPrice)
		high := binance.Float(t.HighPrice)
		low := binance.Float(t.LowPrice)
		change := binance.Float(t.PriceChangePercent)

		volatility := 0.0
		if low > 0 {
			volatility = (high - low) / low * 100
		}

		baseAPR := volatility * aprVolatilityFactor
		longAPR := clampAPR(baseAPR + change*aprTrendFactor)
		shortAPR := clampAPR(baseAPR - change*aprTrendFactor)

		rows = append(rows, model.BacktestRow{
			Rank:       i + 1,
			Symbol:     strings.ReplaceAll(t.Symbol, "USDT", "/USDT"),
			Price:      price,
			Volatility: volatility,
			Change24h:  change,
			LongAPR:    longAPR,
			ShortAPR:   shortAPR,
		})
	}
	return rows
}

func clampAPR(apr float64) float64 {
	if apr < aprFloor {
		return aprFloor
	}
	if apr > aprCeiling {
		return aprCeiling
	}
	return apr
}

func (s *gridService) Configs() []model.GridConfig {
	return s.loader.List()
}
