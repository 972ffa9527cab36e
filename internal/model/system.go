package model

// SystemModule is one subsystem entry of the platform catalog.
type SystemModule struct {
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Status   string   `json:"status"`
	Desc     string   `json:"desc"`
	Features []string `json:"features"`
}

// ExchangeSupport flags which market types are wired for an exchange.
type ExchangeSupport struct {
	Name   string `json:"name"`
	Spot   bool   `json:"spot"`
	Perp   bool   `json:"perp"`
	Status string `json:"status"`
}

// SystemInfo is the static platform self-description served to the UI.
type SystemInfo struct {
	Name      string            `json:"name"`
	Version   string            `json:"version"`
	Modules   []SystemModule    `json:"modules"`
	Exchanges []ExchangeSupport `json:"exchanges"`
}

// WashJob is one row of the volume-generation panel.
type WashJob struct {
	ID       int    `json:"id"`
	Pair     string `json:"pair"`
	Mode     string `json:"mode"`
	Target   string `json:"target"`
	Progress string `json:"progress"`
	Status   string `json:"status"`
	Color    string `json:"color"`
}

// ArbitrageOpportunity is one row of the cross-exchange spread panel.
type ArbitrageOpportunity struct {
	ID        int    `json:"id"`
	Type      string `json:"type"`
	Pair      string `json:"pair"`
	ExchangeA string `json:"exchange_a"`
	ExchangeB string `json:"exchange_b"`
	Spread    string `json:"spread"`
	Action    string `json:"action"`
}

// ScannerEvent is one row of the volatility-scanner feed.
type ScannerEvent struct {
	ID         int    `json:"id"`
	Pair       string `json:"pair"`
	Window     string `json:"window"`
	Volatility string `json:"volatility"`
	Direction  string `json:"direction"`
	Time       string `json:"time"`
	Color      string `json:"color"`
}
