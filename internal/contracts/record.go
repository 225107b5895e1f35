package contracts

import (
	"errors"
	"slices"
	"time"
)

// ErrNotFound is returned when a ticker is not part of a built dataset
var ErrNotFound = errors.New("ticker not found in dataset")

// Sector is the coarse static grouping used for filtering and tag display
type Sector string

const (
	SectorAICloud      Sector = "AI & Cloud"
	SectorConsumerTech Sector = "Consumer Tech"
	SectorOthers       Sector = "Others"
)

// Sample holds the raw random draws for one ticker, before any derivation
// ⭐ SSOT: Sample → Derive 2단계 구성의 입력
type Sample struct {
	EPSGrowth      float64 // 예상 EPS 성장률 (%)
	RevenueGrowth  float64 // 매출 성장률 (%)
	TAMPenetration int     // 시장 침투율 (%)
	PERatio        float64 // PER, 하한 5.0 적용 후
	VolumeChange   float64 // 거래량 변동률 (%)
	Momentum       float64 // 최근 주가 모멘텀 (%)
	MarketCapB     int     // 시가총액 (Billion $)
}

// EntityRecord is one fully populated row of the metrics dataset
type EntityRecord struct {
	Ticker string   `json:"ticker"`
	Sector Sector   `json:"sector"`
	Tags   []string `json:"tags"`

	MarketCapB     int     `json:"market_cap_b"`
	PERatio        float64 `json:"pe_ratio"`
	EPSGrowth      float64 `json:"eps_growth"`
	RevenueGrowth  float64 `json:"revenue_growth"`
	GrowthScore    float64 `json:"growth_score"`
	PEGRatio       float64 `json:"peg_ratio"`
	Momentum       float64 `json:"momentum"`
	VolumeChange   float64 `json:"volume_change"`
	TAMPenetration int     `json:"tam_penetration"`
}

func (r EntityRecord) clone() EntityRecord {
	r.Tags = slices.Clone(r.Tags)
	return r
}

// Dataset is the immutable, session-scoped table produced by one build
// ⭐ SSOT: 빌더 → 표현 계층 전달 데이터
type Dataset struct {
	Seed         int64          `json:"seed"`
	UniverseHash string         `json:"universe_hash"`
	BuiltAt      time.Time      `json:"built_at"`
	Records      []EntityRecord `json:"records"`
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Lookup returns a copy of the record for ticker
func (d *Dataset) Lookup(ticker string) (EntityRecord, bool) {
	for _, rec := range d.Records {
		if rec.Ticker == ticker {
			return rec.clone(), true
		}
	}
	return EntityRecord{}, false
}

// Tickers returns the tickers in build order
func (d *Dataset) Tickers() []string {
	tickers := make([]string, len(d.Records))
	for i, rec := range d.Records {
		tickers[i] = rec.Ticker
	}
	return tickers
}

// Sectors returns the distinct sectors in first-seen order
func (d *Dataset) Sectors() []Sector {
	sectors := make([]Sector, 0)
	for _, rec := range d.Records {
		if !slices.Contains(sectors, rec.Sector) {
			sectors = append(sectors, rec.Sector)
		}
	}
	return sectors
}

// Filter returns copies of the records in the given sectors, largest market cap first.
// With no sectors, every record is returned (no selection = all sectors selected).
func (d *Dataset) Filter(sectors ...Sector) []EntityRecord {
	out := make([]EntityRecord, 0, len(d.Records))
	for _, rec := range d.Records {
		if len(sectors) == 0 || slices.Contains(sectors, rec.Sector) {
			out = append(out, rec.clone())
		}
	}

	slices.SortStableFunc(out, func(a, b EntityRecord) int {
		return b.MarketCapB - a.MarketCapB
	})
	return out
}
