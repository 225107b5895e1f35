package metrics

import (
	"fmt"
	"time"

	"github.com/wonny/growthmap/internal/contracts"
	"github.com/wonny/growthmap/internal/universe"
	"github.com/wonny/growthmap/pkg/logger"
)

// Categorizer assigns the static sector and tags of a ticker
type Categorizer interface {
	Categorize(ticker string) (contracts.Sector, []string)
}

// Build produces one record per ticker, in input order.
// Callers must pass a non-empty list of unique tickers.
func Build(tickers []string, seed int64, cat Categorizer) []contracts.EntityRecord {
	sampler := NewSampler(seed)
	records := make([]contracts.EntityRecord, 0, len(tickers))

	for _, ticker := range tickers {
		smp := sampler.Sample()
		sector, tags := cat.Categorize(ticker)
		records = append(records, Round(Derive(ticker, sector, tags, smp)))
	}

	return records
}

// Builder builds complete datasets for a fixed universe
// ⭐ SSOT: 데이터셋 생성은 이 빌더에서만
type Builder struct {
	universe *universe.Universe
	hash     string
	logger   *logger.Logger
	now      func() time.Time
}

// NewBuilder validates the universe and creates a Builder
func NewBuilder(u *universe.Universe, log *logger.Logger) (*Builder, error) {
	if err := universe.Validate(u); err != nil {
		return nil, fmt.Errorf("invalid universe: %w", err)
	}

	hash, err := universe.Hash(u)
	if err != nil {
		return nil, fmt.Errorf("hash universe: %w", err)
	}

	return &Builder{
		universe: u,
		hash:     hash,
		logger:   log,
		now:      time.Now,
	}, nil
}

// UniverseHash identifies the universe this builder was created with
func (b *Builder) UniverseHash() string {
	return b.hash
}

// Build creates a new dataset for seed
func (b *Builder) Build(seed int64) *contracts.Dataset {
	start := b.now()
	records := Build(b.universe.Tickers, seed, b.universe)

	b.logger.WithFields(map[string]interface{}{
		"seed":     seed,
		"records":  len(records),
		"duration": time.Since(start),
	}).Debug("Built metrics dataset")

	return &contracts.Dataset{
		Seed:         seed,
		UniverseHash: b.hash,
		BuiltAt:      start,
		Records:      records,
	}
}
