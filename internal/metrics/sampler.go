package metrics

import (
	"math"
	"math/rand"

	"github.com/wonny/growthmap/internal/contracts"
)

// Distribution parameters for the synthetic draws
const (
	epsGrowthMean = 15.0
	epsGrowthStd  = 10.0
	revGrowthMean = 12.0
	revGrowthStd  = 8.0

	peMean  = 30.0
	peStd   = 15.0
	PEFloor = 5.0 // 최소값 보정

	volumeChangeMean = 0.0
	volumeChangeStd  = 20.0

	momentumMin = -10.0
	momentumMax = 30.0

	tamMin = 10 // [tamMin, tamMax)
	tamMax = 90

	marketCapMin = 100 // [marketCapMin, marketCapMax)
	marketCapMax = 3000
)

// Sampler draws raw per-ticker values from an owned random source.
// Not safe for concurrent use: each build owns its own Sampler.
type Sampler struct {
	rng *rand.Rand
}

// NewSampler creates a sampler seeded for reproducible output
func NewSampler(seed int64) *Sampler {
	return &Sampler{rng: rand.New(rand.NewSource(seed))}
}

// Sample draws one ticker's raw values. The draw order is fixed and
// part of the reproducibility contract.
func (s *Sampler) Sample() contracts.Sample {
	var smp contracts.Sample

	// 성장 지표 (Growth)
	smp.EPSGrowth = s.normal(epsGrowthMean, epsGrowthStd)
	smp.RevenueGrowth = s.normal(revGrowthMean, revGrowthStd)
	smp.TAMPenetration = s.intRange(tamMin, tamMax)

	// 유동성/밸류에이션 지표 (Liquidity)
	smp.PERatio = math.Max(s.normal(peMean, peStd), PEFloor)
	smp.VolumeChange = s.normal(volumeChangeMean, volumeChangeStd)
	smp.Momentum = s.uniform(momentumMin, momentumMax)

	smp.MarketCapB = s.intRange(marketCapMin, marketCapMax)

	return smp
}

func (s *Sampler) normal(mean, std float64) float64 {
	return s.rng.NormFloat64()*std + mean
}

func (s *Sampler) uniform(lo, hi float64) float64 {
	return lo + s.rng.Float64()*(hi-lo)
}

// intRange returns an int in [lo, hi)
func (s *Sampler) intRange(lo, hi int) int {
	return lo + s.rng.Intn(hi-lo)
}
