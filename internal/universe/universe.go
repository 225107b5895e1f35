package universe

import (
	"slices"

	"github.com/wonny/growthmap/internal/contracts"
)

// Universe is the fixed, ordered ticker list plus static sector membership
type Universe struct {
	Tickers  []string `yaml:"tickers" json:"tickers"`
	Groups   []Group  `yaml:"groups" json:"groups"`     // 순서대로 검사, 먼저 일치한 그룹 사용
	Fallback Group    `yaml:"fallback" json:"fallback"` // 어느 그룹에도 없는 종목
}

// Group assigns a sector and tag set to a fixed list of tickers
type Group struct {
	Sector  contracts.Sector `yaml:"sector" json:"sector"`
	Tags    []string         `yaml:"tags" json:"tags"`
	Members []string         `yaml:"members,omitempty" json:"members,omitempty"`
}

// Default returns the built-in NASDAQ top-30 universe
func Default() *Universe {
	return &Universe{
		Tickers: []string{
			"AAPL", "MSFT", "GOOGL", "AMZN", "NVDA", "TSLA", "META", "AVGO", "PEP", "COST",
			"CSCO", "TMUS", "ADBE", "TXN", "CMCSA", "AMGN", "NFLX", "QCOM", "SBUX", "INTC",
			"AMD", "INTU", "HON", "IBM", "GE", "AMAT", "BKNG", "ISRG", "GILD", "MDLZ",
		},
		Groups: []Group{
			{
				Sector:  contracts.SectorAICloud,
				Tags:    []string{"#AI", "#DataCenter", "#Generative"},
				Members: []string{"NVDA", "AMD", "MSFT", "GOOGL"},
			},
			{
				Sector:  contracts.SectorConsumerTech,
				Tags:    []string{"#Platform", "#Ecosystem", "#Loyalty"},
				Members: []string{"AAPL", "TSLA", "AMZN"},
			},
		},
		Fallback: Group{
			Sector: contracts.SectorOthers,
			Tags:   []string{"#Stable", "#Dividend"},
		},
	}
}

// Categorize returns the sector and a fresh copy of the tags for ticker.
// Pure static lookup: no randomness involved.
func (u *Universe) Categorize(ticker string) (contracts.Sector, []string) {
	for _, g := range u.Groups {
		if slices.Contains(g.Members, ticker) {
			return g.Sector, slices.Clone(g.Tags)
		}
	}
	return u.Fallback.Sector, slices.Clone(u.Fallback.Tags)
}
