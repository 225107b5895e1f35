package signal

// Valuation band thresholds
const (
	PEGCheapBelow     = 1.5
	PEGExpensiveAbove = 2.5

	MagicZoneMaxPE     = 30.0 // 고평가 경계선
	MagicZoneMinGrowth = 15.0 // 고성장 기준선
)

// PEGBand interprets the growth-adjusted valuation
type PEGBand string

const (
	BandCheap     PEGBand = "cheap"
	BandFair      PEGBand = "fair"
	BandExpensive PEGBand = "expensive"
)

// InterpretPEG: < 1.5 cheap, [1.5, 2.5] fair, > 2.5 expensive
func InterpretPEG(peg float64) PEGBand {
	switch {
	case peg < PEGCheapBelow:
		return BandCheap
	case peg <= PEGExpensiveAbove:
		return BandFair
	default:
		return BandExpensive
	}
}

// PEGColor is the metric-card colour. Unlike InterpretPEG, exactly 2.5 is red.
func PEGColor(peg float64) string {
	switch {
	case peg < PEGCheapBelow:
		return "green"
	case peg < PEGExpensiveAbove:
		return "orange"
	default:
		return "red"
	}
}

// InMagicZone reports high growth at a below-threshold PE
func InMagicZone(pe, growthScore float64) bool {
	return pe < MagicZoneMaxPE && growthScore > MagicZoneMinGrowth
}

// GaugeZone is the sentiment gauge segment
type GaugeZone string

const (
	ZoneLow     GaugeZone = "low"     // [0, 30)
	ZoneNeutral GaugeZone = "neutral" // [30, 70)
	ZoneHigh    GaugeZone = "high"    // [70, 100]
)

// Gauge is the momentum sentiment reading on a 0..100 axis
type Gauge struct {
	Value float64   `json:"value"`
	Zone  GaugeZone `json:"zone"`
}

// MomentumGauge shifts momentum by +50 onto the gauge axis
func MomentumGauge(momentum float64) Gauge {
	v := momentum + 50
	zone := ZoneHigh
	switch {
	case v < 30:
		zone = ZoneLow
	case v < 70:
		zone = ZoneNeutral
	}
	return Gauge{Value: v, Zone: zone}
}
