package service

import (
	"context"
	"log"
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/jellydator/ttlcache/v3"
	"golang.org/x/sync/errgroup"

	"github.com/Hans010101/Crypto-Trading/internal/analysis"
	"github.com/Hans010101/Crypto-Trading/internal/binance"
	"github.com/Hans010101/Crypto-Trading/internal/cache"
	"github.com/Hans010101/Crypto-Trading/internal/feargreed"
	"github.com/Hans010101/Crypto-Trading/internal/model"
)

const (
	// tickerFreshness bounds how often the aggregated board, the funding
	// leaderboard and the BTC/ETH quotes hit the upstream API.
	tickerFreshness = 10 * time.Second

	// longShortFreshness is per contract; positioning ratios move slowly
	// and the endpoint is rate-limited harder than the ticker ones.
	longShortFreshness = 5 * time.Minute

	// fearGreedFreshness matches an index that updates once a day.
	fearGreedFreshness = time.Hour

	// maxRatioFetches caps the long/short fan-out.
	maxRatioFetches = 20

	// minQuoteVolume filters out illiquid contracts.
	minQuoteVolume = 1_000_000

	// fundingRows is the size of the funding-rate leaderboard.
	fundingRows = 20

	// defaultFundingIntervalHours applies when /fapi/v1/fundingInfo has no
	// entry for a contract.
	defaultFundingIntervalHours = 8
)

// MarketService aggregates the live market datasets served by the
// dashboard. Methods never fail: when a refresh errors they fall back to
// the last good dataset, or to an empty one before the first success.
type MarketService interface {
	// Tickers returns the ranked USDT-perpetual board.
	Tickers(ctx context.Context) model.TickerBoard

	// Funding returns the top contracts by absolute funding rate.
	Funding(ctx context.Context) []model.FundingRow

	// MajorPrices returns the headline BTC/ETH quotes.
	MajorPrices(ctx context.Context) model.MajorPrices

	// FearGreed returns the current Fear & Greed index.
	FearGreed(ctx context.Context) model.FearGreed

	// Analysis renders the commentary for one contract out of the cached
	// board; it does not trigger an upstream refresh.
	Analysis(ctx context.Context, symbol string) string

	// Stop terminates the positioning cache's eviction goroutine.
	Stop()
}

type marketService struct {
	binance *binance.Client
	fng     *feargreed.Client

	tickers   *cache.Snapshot[model.TickerBoard]
	funding   *cache.Snapshot[[]model.FundingRow]
	majors    *cache.Snapshot[model.MajorPrices]
	fearGreed *cache.Snapshot[model.FearGreed]
	longShort *ttlcache.Cache[string, model.LongShortStat]
}

// NewMarketService constructs a MarketService on top of the Binance and
// alternative.me clients.
func NewMarketService(bc *binance.Client, fc *feargreed.Client) MarketService {
	s := &marketService{
		binance:   bc,
		fng:       fc,
		tickers:   cache.NewSnapshot[model.TickerBoard](tickerFreshness),
		funding:   cache.NewSnapshot[[]model.FundingRow](tickerFreshness),
		majors:    cache.NewSnapshot[model.MajorPrices](tickerFreshness),
		fearGreed: cache.NewSnapshot[model.FearGreed](fearGreedFreshness),
		// Touch-on-hit must stay off: the board polls these entries every
		// few seconds, which would otherwise keep extending their TTL.
		longShort: ttlcache.New[string, model.LongShortStat](
			ttlcache.WithTTL[string, model.LongShortStat](longShortFreshness),
			ttlcache.WithDisableTouchOnHit[string, model.LongShortStat](),
		),
	}
	go s.longShort.Start()
	return s
}

func (s *marketService) Stop() {
	s.longShort.Stop()
}

func (s *marketService) Tickers(ctx context.Context) model.TickerBoard {
	board, err := s.tickers.GetOrRefresh(ctx, s.refreshTickers)
	if err != nil {
		log.Printf("market: ticker refresh failed: %v", err)
		if last, ok := s.tickers.Last(); ok {
			return last
		}
		return model.TickerBoard{Main: []model.TickerRow{}, Other: []model.TickerRow{}}
	}
	return board
}

func (s *marketService) refreshTickers(ctx context.Context) (model.TickerBoard, error) {
	var (
		tickers []binance.Ticker24h
		premium []binance.PremiumIndex
		info    []binance.FundingInfo
		klines  []binance.Kline
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		tickers, err = s.binance.Ticker24hAll(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		premium, err = s.binance.PremiumIndexAll(gctx)
		return err
	})
	// Funding intervals and the BTC volume proxy only enrich the board;
	// their failure must not cost us the whole refresh.
	g.Go(func() error {
		list, err := s.binance.FundingInfoAll(gctx)
		if err != nil {
			log.Printf("market: funding info unavailable: %v", err)
			return nil
		}
		info = list
		return nil
	})
	g.Go(func() error {
		rows, err := s.binance.Klines(gctx, "BTCUSDT", "1d", 2)
		if err != nil {
			log.Printf("market: btc klines unavailable: %v", err)
			return nil
		}
		klines = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return model.TickerBoard{}, err
	}

	volChange := 0.0
	if len(klines) >= 2 {
		yesterday := klines[0].QuoteVolume()
		today := klines[1].QuoteVolume()
		if yesterday > 0 {
			volChange = (today - yesterday) / yesterday * 100
		}
	}

	premiumBySymbol := make(map[string]binance.PremiumIndex, len(premium))
	for _, p := range premium {
		premiumBySymbol[p.Symbol] = p
	}
	intervalBySymbol := make(map[string]int, len(info))
	for _, fi := range info {
		intervalBySymbol[fi.Symbol] = fi.FundingIntervalHours
	}

	// Keep liquid USDT perpetuals with an active funding cycle. Contracts
	// whose current rate is exactly zero form the secondary list.
	var main, other []binance.Ticker24h
	var totalVolume float64
	for _, t := range tickers {
		if !strings.HasSuffix(t.Symbol, "USDT") || binance.Float(t.QuoteVolume) <= minQuoteVolume {
			continue
		}
		p, ok := premiumBySymbol[t.Symbol]
		if !ok || p.NextFundingTime <= 0 {
			continue
		}
		totalVolume += binance.Float(t.QuoteVolume)
		if binance.Float(p.LastFundingRate) == 0 {
			other = append(other, t)
		} else {
			main = append(main, t)
		}
	}
	byChangeDesc := func(items []binance.Ticker24h) func(i, j int) bool {
		return func(i, j int) bool {
			return binance.Float(items[i].PriceChangePercent) > binance.Float(items[j].PriceChangePercent)
		}
	}
	sort.Slice(main, byChangeDesc(main))
	sort.Slice(other, byChangeDesc(other))

	symbols := make([]string, 0, len(main)+len(other))
	for _, t := range main {
		symbols = append(symbols, t.Symbol)
	}
	for _, t := range other {
		symbols = append(symbols, t.Symbol)
	}
	ratios := s.longShortBatch(ctx, symbols)

	return model.TickerBoard{
		Main:         s.buildRows(main, premiumBySymbol, intervalBySymbol, ratios),
		Other:        s.buildRows(other, premiumBySymbol, intervalBySymbol, ratios),
		TotalVolume:  totalVolume,
		VolumeChange: volChange,
	}, nil
}

func (s *marketService) buildRows(
	items []binance.Ticker24h,
	premium map[string]binance.PremiumIndex,
	intervals map[string]int,
	ratios map[string]model.LongShortStat,
) []model.TickerRow {
	rows := make([]model.TickerRow, 0, len(items))
	for i, t := range items {
		p := premium[t.Symbol]
		interval := defaultFundingIntervalHours
		if h, ok := intervals[t.Symbol]; ok && h > 0 {
			interval = h
		}
		rows = append(rows, model.TickerRow{
			Rank:            i + 1,
			Symbol:          strings.ReplaceAll(t.Symbol, "USDT", "/USDT"),
			Price:           binance.Float(t.LastPrice),
			Change24h:       binance.Float(t.PriceChangePercent),
			High24h:         binance.Float(t.HighPrice),
			Low24h:          binance.Float(t.LowPrice),
			Volume24h:       binance.Float(t.QuoteVolume),
			Trades:          t.Count,
			FundingRate:     binance.Float(p.LastFundingRate),
			NextFundingTime: p.NextFundingTime,
			FundingInterval: interval,
			LongShort:       ratios[t.Symbol],
		})
	}
	return rows
}

// longShortBatch resolves positioning ratios for the given contracts,
// serving cached entries and fetching the rest with a bounded fan-out.
// Contracts whose fetch fails are simply absent from the result; their
// rows fall back to the zero stat.
func (s *marketService) longShortBatch(ctx context.Context, symbols []string) map[string]model.LongShortStat {
	out := make(map[string]model.LongShortStat, len(symbols))

	// Cache hits are collected before any fetch goroutine starts; once
	// the fan-out is running, every write to out goes through mu.
	var misses []string
	for _, sym := range symbols {
		if item := s.longShort.Get(sym); item != nil {
			out[sym] = item.Value()
			continue
		}
		misses = append(misses, sym)
	}
	if len(misses) == 0 {
		return out
	}

	var mu sync.Mutex
	var g errgroup.Group
	g.SetLimit(maxRatioFetches)
	for _, sym := range misses {
		g.Go(func() error {
			rows, err := s.binance.GlobalLongShortRatio(ctx, sym, "5m", 1)
			if err != nil || len(rows) == 0 {
				return nil
			}
			ratio := binance.Float(rows[0].LongShortRatio)
			if math.IsInf(ratio, 0) || math.IsNaN(ratio) {
				ratio = analysis.HighRatio
			}
			stat := model.LongShortStat{
				Ratio: ratio,
				Long:  binance.Float(rows[0].LongAccount) * 100,
				Short: binance.Float(rows[0].ShortAccount) * 100,
			}
			s.longShort.Set(sym, stat, ttlcache.DefaultTTL)
			mu.Lock()
			out[sym] = stat
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()
	return out
}

func (s *marketService) Funding(ctx context.Context) []model.FundingRow {
	rows, err := s.funding.GetOrRefresh(ctx, s.refreshFunding)
	if err != nil {
		log.Printf("market: funding refresh failed: %v", err)
		if last, ok := s.funding.Last(); ok {
			return last
		}
		return []model.FundingRow{}
	}
	return rows
}

func (s *marketService) refreshFunding(ctx context.Context) ([]model.FundingRow, error) {
	premium, err := s.binance.PremiumIndexAll(ctx)
	if err != nil {
		return nil, err
	}

	pairs := premium[:0:0]
	for _, p := range premium {
		if strings.HasSuffix(p.Symbol, "USDT") {
			pairs = append(pairs, p)
		}
	}
	sort.Slice(pairs, func(i, j int) bool {
		return math.Abs(binance.Float(pairs[i].LastFundingRate)) > math.Abs(binance.Float(pairs[j].LastFundingRate))
	})
	if len(pairs) > fundingRows {
		pairs = pairs[:fundingRows]
	}

	rows := make([]model.FundingRow, 0, len(pairs))
	for i, p := range pairs {
		rows = append(rows, model.FundingRow{
			Rank:            i + 1,
			Symbol:          strings.ReplaceAll(p.Symbol, "USDT", "/USDT"),
			MarkPrice:       binance.Float(p.MarkPrice),
			IndexPrice:      binance.Float(p.IndexPrice),
			FundingRate:     binance.Float(p.LastFundingRate),
			NextFundingTime: p.NextFundingTime,
		})
	}
	return rows, nil
}

func (s *marketService) MajorPrices(ctx context.Context) model.MajorPrices {
	quotes, err := s.majors.GetOrRefresh(ctx, s.refreshMajors)
	if err != nil {
		log.Printf("market: btc/eth refresh failed: %v", err)
		if last, ok := s.majors.Last(); ok {
			return last
		}
		return model.MajorPrices{}
	}
	return quotes
}

func (s *marketService) refreshMajors(ctx context.Context) (model.MajorPrices, error) {
	var btc, eth binance.Ticker24h
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		btc, err = s.binance.Ticker24h(gctx, "BTCUSDT")
		return err
	})
	g.Go(func() error {
		var err error
		eth, err = s.binance.Ticker24h(gctx, "ETHUSDT")
		return err
	})
	if err := g.Wait(); err != nil {
		return model.MajorPrices{}, err
	}
	return model.MajorPrices{
		BTC: model.PriceChange{Price: binance.Float(btc.LastPrice), Change: binance.Float(btc.PriceChangePercent)},
		ETH: model.PriceChange{Price: binance.Float(eth.LastPrice), Change: binance.Float(eth.PriceChangePercent)},
	}, nil
}

func (s *marketService) FearGreed(ctx context.Context) model.FearGreed {
	fg, err := s.fearGreed.GetOrRefresh(ctx, s.refreshFearGreed)
	if err != nil {
		log.Printf("market: fear&greed refresh failed: %v", err)
		if last, ok := s.fearGreed.Last(); ok {
			return last
		}
		return model.FearGreed{Value: 50, Classification: "Neutral"}
	}
	return fg
}

func (s *marketService) refreshFearGreed(ctx context.Context) (model.FearGreed, error) {
	entries, err := s.fng.Latest(ctx, 2)
	if err != nil {
		return model.FearGreed{}, err
	}

	fg := model.FearGreed{
		Value:          entries[0].Int(),
		Classification: entries[0].Classification,
	}
	if len(entries) >= 2 {
		if yesterday := entries[1].Int(); yesterday > 0 {
			fg.Change24h = float64(fg.Value-yesterday) / float64(yesterday) * 100
		}
	}
	return fg, nil
}

func (s *marketService) Analysis(ctx context.Context, symbol string) string {
	board, ok := s.tickers.Last()
	if !ok {
		return analysis.Unavailable
	}

	want := strings.ReplaceAll(symbol, "/", "")
	for _, rows := range [][]model.TickerRow{board.Main, board.Other} {
		for _, row := range rows {
			if strings.ReplaceAll(row.Symbol, "/", "") == want {
				return analysis.Generate(row)
			}
		}
	}
	return analysis.Unavailable
}
