package metrics

import (
	"math/rand"
	"time"
)

const (
	volumeBars   = 10 // 최근 10일 거래량
	volumeBarMin = 50
	volumeBarMax = 150 // exclusive

	trendMonths = 12
)

// TrendPoint is one month of the decorative price/EPS chart
type TrendPoint struct {
	Date  time.Time `json:"date"`
	Price float64   `json:"price"`
	EPS   float64   `json:"eps"`
}

// NewRenderSource returns a time-seeded source for per-render display noise.
// Display series carry no reproducibility requirement.
func NewRenderSource() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}

// VolumeSeries returns 10 synthetic daily volume bars in [50, 150)
func VolumeSeries(rng *rand.Rand) []int {
	bars := make([]int, volumeBars)
	for i := range bars {
		bars[i] = volumeBarMin + rng.Intn(volumeBarMax-volumeBarMin)
	}
	return bars
}

// TrendSeries returns 12 month-end points starting January 2023.
// price = cumsum(N(0,1)+1)*10 + 100, eps = linspace(1, 1.5) * price/100
func TrendSeries(rng *rand.Rand) []TrendPoint {
	points := make([]TrendPoint, trendMonths)
	cum := 0.0

	for i := range points {
		cum += rng.NormFloat64() + 1
		price := cum*10 + 100
		scale := 1 + 0.5*float64(i)/float64(trendMonths-1)

		points[i] = TrendPoint{
			Date:  monthEnd(2023, time.Month(i+1)),
			Price: price,
			EPS:   scale * price / 100,
		}
	}

	return points
}

func monthEnd(year int, month time.Month) time.Time {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC)
}
