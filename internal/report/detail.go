package report

import (
	"github.com/wonny/growthmap/internal/contracts"
	"github.com/wonny/growthmap/internal/signal"
)

// Detail is everything the single-stock view shows for one record
type Detail struct {
	Record      contracts.EntityRecord `json:"record"`
	Action      signal.Action          `json:"action"`
	Rule        string                 `json:"rule,omitempty"`
	Card        signal.Template        `json:"card"`
	PEGBand     signal.PEGBand         `json:"peg_band"`
	PEGColor    string                 `json:"peg_color"`
	Sentiment   signal.Gauge           `json:"sentiment"`
	TAMHeadroom int                    `json:"tam_headroom"` // 남은 시장 (%)
	MagicZone   bool                   `json:"magic_zone"`
}

// NewDetail derives the detail view from a record
func NewDetail(rec contracts.EntityRecord) Detail {
	action, rule := signal.Explain(rec.GrowthScore, rec.PEGRatio)

	return Detail{
		Record:      rec,
		Action:      action,
		Rule:        rule,
		Card:        signal.TemplateFor(action),
		PEGBand:     signal.InterpretPEG(rec.PEGRatio),
		PEGColor:    signal.PEGColor(rec.PEGRatio),
		Sentiment:   signal.MomentumGauge(rec.Momentum),
		TAMHeadroom: 100 - rec.TAMPenetration,
		MagicZone:   signal.InMagicZone(rec.PERatio, rec.GrowthScore),
	}
}

// Lookup finds ticker in ds and builds its detail
func Lookup(ds *contracts.Dataset, ticker string) (Detail, error) {
	rec, ok := ds.Lookup(ticker)
	if !ok {
		return Detail{}, contracts.ErrNotFound
	}
	return NewDetail(rec), nil
}
