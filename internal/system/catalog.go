// Package system holds the static platform catalog: the subsystem and
// exchange matrix plus the demo rows for panels whose live engines run
// outside this service.
package system

import "github.com/Hans010101/Crypto-Trading/internal/model"

// Info describes the trading platform itself.
func Info() model.SystemInfo {
	return model.SystemInfo{
		Name:    "多交易所策略自动化系统",
		Version: "2.0",
		Modules: []model.SystemModule{
			{
				Name: "网格交易系统", Icon: "📊", Status: "available", Desc: "普通/马丁/移动网格，剥头皮与本金保护",
				Features: []string{
					"多种网格模式：普通网格、马丁网格、价格移动网格",
					"智能风控：剥头皮快速止损、本金保护自动平仓",
					"现货币种自动预留管理",
					"支持多交易所(Hyperliquid, Backpack, Lighter)",
					"自动订单监控和异常恢复系统",
				},
			},
			{
				Name: "刷量交易系统", Icon: "💹", Status: "available", Desc: "挂单模式(Backpack)、市价模式(Lighter)",
				Features: []string{
					"Backpack限价挂单刷量模式",
					"Lighter WebSocket极速市价刷量",
					"智能订单匹配和多空对冲",
					"实时交易量、手续费精准追踪与统计",
					"支持多信号源(如跨交易所行情信号源)",
				},
			},
			{
				Name: "套利监控系统", Icon: "🔄", Status: "available", Desc: "分段套利、多腿套利、跨交易所套利",
				Features: []string{
					"基于历史天然独立价差的高级统计套利决策引擎",
					"分段网格分批下单机制，减少单笔大额的滑点冲击",
					"跨多交易所的实时毫秒级价差监控和自动执行合并",
					"自动监控并捕捉高额资金费率差的长线套利机会",
					"多重实盘流动性校验，确保挂单大概率完全成交",
				},
			},
			{
				Name: "价格提醒系统", Icon: "🔔", Status: "available", Desc: "多交易所价格突破监控，声音提醒",
				Features: []string{
					"监控币种实时价格阈值（上限/下限）并响应突破",
					"多交易所聚合深度监控架构",
					"达到设定的止盈止损线时通过系统蜂鸣声音震动提醒",
					"丰富的命令行桌面 UI 实时更新显示现价",
					"适合单次关键阻力/支撑位突破方向确认",
				},
			},
			{
				Name: "波动率扫描器", Icon: "🔍", Status: "available", Desc: "虚拟网格模拟、实时APR计算、智能评级",
				Features: []string{
					"在不实际花费手续费的情况下使用虚拟订单网格进行模拟推演回测",
					"实时换算当前各品种行情走势对应的预期年化收益率(APR)",
					"基于收益率预测模型为全市场所有代币打分客观评级(S/A/B/C/D)",
					"按高波动率对U本位合约进行实时滚动排序发现活跃标的",
					"为网格实盘操作提供强有力的数据导向建议和最优化参数",
				},
			},
		},
		Exchanges: []model.ExchangeSupport{
			{Name: "Binance", Spot: true, Perp: true, Status: "active"},
			{Name: "OKX", Spot: true, Perp: true, Status: "active"},
			{Name: "Hyperliquid", Spot: true, Perp: true, Status: "active"},
			{Name: "Backpack", Spot: false, Perp: true, Status: "active"},
			{Name: "Lighter", Spot: true, Perp: true, Status: "active"},
			{Name: "EdgeX", Spot: false, Perp: true, Status: "active"},
			{Name: "Paradex", Spot: false, Perp: true, Status: "active"},
			{Name: "GRVT", Spot: false, Perp: true, Status: "active"},
			{Name: "Variational", Spot: false, Perp: false, Status: "limited"},
		},
	}
}

// WashJobs lists the volume-generation panel rows.
func WashJobs() []model.WashJob {
	return []model.WashJob{
		{ID: 1, Pair: "ETH/USDT", Mode: "MAKER_TAKER (对敲)", Target: "1,000 ETH", Progress: "65%", Status: "Running", Color: "var(--gain)"},
		{ID: 2, Pair: "SOL/USDT", Mode: "LIGHTER (市价单边)", Target: "5,000 SOL", Progress: "12%", Status: "Paused", Color: "var(--text-muted)"},
		{ID: 3, Pair: "WIF/USDT", Mode: "RANDOM (随机抖动)", Target: "100K WIF", Progress: "99%", Status: "Running", Color: "var(--gain)"},
		{ID: 4, Pair: "SUI/USDT", Mode: "GRID_WASH (网格刷量)", Target: "20,000 SUI", Progress: "87%", Status: "Running", Color: "var(--gain)"},
		{ID: 5, Pair: "AVAX/USDT", Mode: "PING_PONG (乒乓自成交)", Target: "15,000 AVAX", Progress: "45%", Status: "Running", Color: "var(--gain)"},
		{ID: 6, Pair: "APT/USDT", Mode: "MAKER_TAKER (对敲)", Target: "10,000 APT", Progress: "0%", Status: "Pending", Color: "var(--text-muted)"},
		{ID: 7, Pair: "LINK/USDT", Mode: "TWAP (时间加权)", Target: "5,000 LINK", Progress: "100%", Status: "Finished", Color: "var(--text-primary)"},
	}
}

// ArbitrageOpportunities lists the cross-exchange spread panel rows.
func ArbitrageOpportunities() []model.ArbitrageOpportunity {
	return []model.ArbitrageOpportunity{
		{ID: 1, Type: "期现套利 (Spot/Perp)", Pair: "BTC", ExchangeA: "Binance ($64,710)", ExchangeB: "OKX ($64,750)", Spread: "+0.06%", Action: "一键双穿"},
		{ID: 2, Type: "跨币种三角 (Triangular)", Pair: "ETH/BTC", ExchangeA: "Binance (0.0450)", ExchangeB: "Bybit (0.0461)", Spread: "+2.4%", Action: "智能路由转换"},
		{ID: 3, Type: "跨所合约 (Perp/Perp)", Pair: "SOL/USDT", ExchangeA: "Bybit ($145.20)", ExchangeB: "MEXC ($146.10)", Spread: "+0.62%", Action: "单击套利"},
		{ID: 4, Type: "现货搬砖 (Spot/Spot)", Pair: "WIF/USDT", ExchangeA: "Gate.io ($2.105)", ExchangeB: "Binance ($2.130)", Spread: "+1.18%", Action: "执行划转搬砖"},
		{ID: 5, Type: "期现套利 (Spot/Perp)", Pair: "PEPE", ExchangeA: "KuCoin ($0.0001)", ExchangeB: "MEEX ($0.00012)", Spread: "+0.20%", Action: "自动对冲"},
		{ID: 6, Type: "跨所合约 (Perp/Perp)", Pair: "DOGE/USDT", ExchangeA: "Binance ($0.150)", ExchangeB: "OKX ($0.153)", Spread: "+2.00%", Action: "一键双穿"},
	}
}

// ScannerEvents lists the volatility-scanner feed rows.
func ScannerEvents() []model.ScannerEvent {
	return []model.ScannerEvent{
		{ID: 1, Pair: "SUI/USDT", Window: "5m", Volatility: "8.5%", Direction: "向上突破 (Bullish)", Time: "刚才 (Just now)", Color: "var(--gain)"},
		{ID: 2, Pair: "TRB/USDT", Window: "1m", Volatility: "15.2%", Direction: "画门/砸盘 (Crash)", Time: "2分钟前 (2m ago)", Color: "var(--loss)"},
		{ID: 3, Pair: "BOME/USDT", Window: "15s", Volatility: "5.3%", Direction: "暴力拉升 (Pump)", Time: "5分钟前 (5m ago)", Color: "var(--gain)"},
		{ID: 4, Pair: "ORDI/USDT", Window: "3m", Volatility: "7.1%", Direction: "巨量承接 (Absorption)", Time: "12分钟前 (12m ago)", Color: "var(--gain)"},
		{ID: 5, Pair: "WIF/USDT", Window: "1m", Volatility: "10.0%", Direction: "暴跌穿仓 (Flash Crash)", Time: "18分钟前 (18m ago)", Color: "var(--loss)"},
		{ID: 6, Pair: "MKR/USDT", Window: "5m", Volatility: "4.2%", Direction: "异常买盘 (Whale Buy)", Time: "25分钟前 (25m ago)", Color: "var(--gain)"},
		{ID: 7, Pair: "TIA/USDT", Window: "10s", Volatility: "3.8%", Direction: "流动性抽干 (Illiquid)", Time: "半小时前 (30m ago)", Color: "var(--text-muted)"},
	}
}

// SampleAlerts seeds the alert panel when no database is configured.
func SampleAlerts() []model.Alert {
	return []model.Alert{
		{ID: 1, Pair: "DOGE/USDT", Condition: "涨破 (Price >)", Target: "$0.500", Distance: "还需要 7.5%", Notify: "Telegram, Webhook", Status: "Active", Color: "var(--text-primary)"},
		{ID: 2, Pair: "PEPE/USDT", Condition: "资金费率 <", Target: "-0.5%", Distance: "已触发 (Reached)", Notify: "SMS, App", Status: "Triggered", Color: "var(--loss)"},
		{ID: 3, Pair: "BTC/USDT", Condition: "跌破 (Price <)", Target: "$58,000", Distance: "还需要 10.3%", Notify: "Telegram", Status: "Active", Color: "var(--text-primary)"},
		{ID: 4, Pair: "ETH/USDT", Condition: "24H 交易量 >", Target: "$5B", Distance: "还需要 $1B", Notify: "App Notification", Status: "Active", Color: "var(--text-primary)"},
		{ID: 5, Pair: "SOL/USDT", Condition: "1小时涨幅 >", Target: "10%", Distance: "已触发 (Reached)", Notify: "Email, SMS", Status: "Triggered", Color: "var(--gain)"},
		{ID: 6, Pair: "SUI/USDT", Condition: "价格异常波动 >", Target: "5% / 1m", Distance: "未触发 (-2%)", Notify: "DingTalk", Status: "Active", Color: "var(--text-primary)"},
		{ID: 7, Pair: "AR/USDT", Condition: "深度失衡 (Bid/Ask)", Target: "> 5.0", Distance: "还需要 1.5", Notify: "Webhook", Status: "Active", Color: "var(--text-primary)"},
	}
}
