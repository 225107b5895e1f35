package metrics

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/wonny/growthmap/internal/contracts"
)

// Minimum EPS growth used as the PEG denominator
const PEGGrowthFloor = 0.1

// Derive computes the composite indicators from an immutable sample.
// Values are left unrounded; Round is applied once, afterwards.
func Derive(ticker string, sector contracts.Sector, tags []string, s contracts.Sample) contracts.EntityRecord {
	return contracts.EntityRecord{
		Ticker:         ticker,
		Sector:         sector,
		Tags:           tags,
		MarketCapB:     s.MarketCapB,
		PERatio:        s.PERatio,
		EPSGrowth:      s.EPSGrowth,
		RevenueGrowth:  s.RevenueGrowth,
		GrowthScore:    (s.EPSGrowth + s.RevenueGrowth) / 2,
		PEGRatio:       s.PERatio / math.Max(s.EPSGrowth, PEGGrowthFloor),
		Momentum:       s.Momentum,
		VolumeChange:   s.VolumeChange,
		TAMPenetration: s.TAMPenetration,
	}
}

// Round applies the display precision to every float field:
// 2 decimals for growth/valuation/momentum, 1 for volume change.
func Round(r contracts.EntityRecord) contracts.EntityRecord {
	r.PERatio = roundTo(r.PERatio, 2)
	r.EPSGrowth = roundTo(r.EPSGrowth, 2)
	r.RevenueGrowth = roundTo(r.RevenueGrowth, 2)
	r.GrowthScore = roundTo(r.GrowthScore, 2)
	r.PEGRatio = roundTo(r.PEGRatio, 2)
	r.Momentum = roundTo(r.Momentum, 2)
	r.VolumeChange = roundTo(r.VolumeChange, 1)
	return r
}

func roundTo(v float64, places int32) float64 {
	f, _ := decimal.NewFromFloat(v).Round(places).Float64()
	return f
}
