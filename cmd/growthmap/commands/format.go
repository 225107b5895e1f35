package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/wonny/growthmap/internal/contracts"
	"github.com/wonny/growthmap/internal/report"
)

// ═══════════════════════════════════════════════════════════
// Common Formatting Utilities
// ═══════════════════════════════════════════════════════════

const (
	ruleHeavy = "═══════════════════════════════════════════════════════════"
	ruleLight = "───────────────────────────────────────────────────────────"
)

// PrintHeader prints a formatted section header
func PrintHeader(w io.Writer, title string) {
	fmt.Fprintln(w)
	fmt.Fprintln(w, ruleHeavy)
	fmt.Fprintf(w, "  %s\n", title)
	fmt.Fprintln(w, ruleLight)
}

// PrintRecords prints the dataset table
func PrintRecords(w io.Writer, records []contracts.EntityRecord) {
	fmt.Fprintf(w, "%-6s %-14s %7s %8s %8s %7s %8s %7s %5s\n",
		"Ticker", "Sector", "MCap(B)", "PER", "Growth", "PEG", "Momentum", "Vol%", "TAM")
	fmt.Fprintln(w, ruleLight)

	for _, r := range records {
		fmt.Fprintf(w, "%-6s %-14s %7d %8.2f %8.2f %7.2f %8.2f %7.1f %4d%%\n",
			r.Ticker, r.Sector, r.MarketCapB, r.PERatio, r.GrowthScore, r.PEGRatio, r.Momentum, r.VolumeChange, r.TAMPenetration)
	}
}

// PrintDetail prints the single-stock view
func PrintDetail(w io.Writer, d report.Detail) {
	r := d.Record

	PrintHeader(w, fmt.Sprintf("%s · %s", r.Ticker, r.Sector))
	fmt.Fprintf(w, "  PEG       : %.2f (%s, %s)\n", r.PEGRatio, d.PEGBand, d.PEGColor)
	fmt.Fprintf(w, "  PER       : %.2f ÷ EPS %.2f%%\n", r.PERatio, r.EPSGrowth)
	fmt.Fprintf(w, "  Revenue   : %.2f%%\n", r.RevenueGrowth)
	fmt.Fprintf(w, "  Growth    : %.2f\n", r.GrowthScore)
	fmt.Fprintf(w, "  Tags      : %s\n", strings.Join(r.Tags, " "))
	fmt.Fprintf(w, "  TAM       : %d%% (남은 시장 %d%%)\n", r.TAMPenetration, d.TAMHeadroom)
	fmt.Fprintf(w, "  Volume    : %.1f%%\n", r.VolumeChange)
	fmt.Fprintf(w, "  Sentiment : %.2f (%s)\n", d.Sentiment.Value, d.Sentiment.Zone)
	if d.MagicZone {
		fmt.Fprintln(w, "  💎 Magic Zone (고성장/저평가)")
	}
	fmt.Fprintln(w, ruleLight)
	fmt.Fprintf(w, "  📢 %s\n", d.Card.Title)
	fmt.Fprintf(w, "  %s\n", d.Card.Description)
	fmt.Fprintln(w, ruleHeavy)
}
