package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wonny/growthmap/internal/contracts"
	"github.com/wonny/growthmap/internal/signal"
)

func strongBuyRecord() contracts.EntityRecord {
	return contracts.EntityRecord{
		Ticker:         "NVDA",
		Sector:         contracts.SectorAICloud,
		Tags:           []string{"#AI", "#DataCenter", "#Generative"},
		MarketCapB:     2500,
		PERatio:        28.4,
		EPSGrowth:      30.12,
		RevenueGrowth:  14.5,
		GrowthScore:    22.31,
		PEGRatio:       0.94,
		Momentum:       24.5,
		VolumeChange:   12.3,
		TAMPenetration: 35,
	}
}

func TestNewDetail(t *testing.T) {
	d := NewDetail(strongBuyRecord())

	assert.Equal(t, signal.StrongBuy, d.Action)
	assert.Equal(t, "high_growth_cheap", d.Rule)
	assert.Equal(t, signal.StrongBuy, d.Card.Action)
	assert.Equal(t, signal.BandCheap, d.PEGBand)
	assert.Equal(t, "green", d.PEGColor)
	assert.InDelta(t, 74.5, d.Sentiment.Value, 1e-9)
	assert.Equal(t, signal.ZoneHigh, d.Sentiment.Zone)
	assert.Equal(t, 65, d.TAMHeadroom)
	assert.True(t, d.MagicZone)
}

func TestLookup(t *testing.T) {
	ds := &contracts.Dataset{Records: []contracts.EntityRecord{strongBuyRecord()}}

	d, err := Lookup(ds, "NVDA")
	require.NoError(t, err)
	assert.Equal(t, "NVDA", d.Record.Ticker)

	_, err = Lookup(ds, "AAPL")
	assert.ErrorIs(t, err, contracts.ErrNotFound)
}

func TestRenderCard(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderCard(&buf, NewDetail(strongBuyRecord())))

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)

	card := doc.Find("div.action-card")
	require.Equal(t, 1, card.Length())

	action, _ := card.Attr("data-action")
	assert.Equal(t, "STRONG_BUY", action)
	assert.Equal(t, "STRONG BUY (강력 매수)", strings.TrimSpace(card.Find("h2.title").Text()))
	assert.Equal(t, "Action Plan for NVDA", card.Find("h3.ticker").Text())
	assert.Equal(t, "0.94", card.Find(".peg .value").Text())

	band, _ := card.Find(".peg").Attr("data-band")
	assert.Equal(t, "cheap", band)

	var tags []string
	card.Find("ul.tags li").Each(func(_ int, s *goquery.Selection) {
		tags = append(tags, s.Text())
	})
	assert.Equal(t, []string{"#AI", "#DataCenter", "#Generative"}, tags)
	assert.Contains(t, card.Find("p.tam").Text(), "아직 65%")
}

func TestRenderCard_EscapesTicker(t *testing.T) {
	rec := strongBuyRecord()
	rec.Ticker = "<script>x</script>"

	var buf bytes.Buffer
	require.NoError(t, RenderCard(&buf, NewDetail(rec)))

	assert.NotContains(t, buf.String(), "<script>")

	doc, err := goquery.NewDocumentFromReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, 0, doc.Find("script").Length())
}

func TestMacro(t *testing.T) {
	m := Macro()
	assert.Len(t, m.Indicators, 3)
	assert.NotEmpty(t, m.Status)
}
