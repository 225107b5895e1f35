package report

import (
	"fmt"
	"html/template"
	"io"
)

var cardTemplate = template.Must(template.New("card").Parse(`<div class="action-card" data-action="{{.Action}}" style="background-color:{{.Card.Color}}">
  <h3 class="ticker">Action Plan for {{.Record.Ticker}}</h3>
  <h2 class="title">{{.Card.Title}}</h2>
  <p class="description">{{.Card.Description}}</p>
  <div class="metric-card peg" data-band="{{.PEGBand}}">
    <h4>PEG Ratio</h4>
    <span class="value" style="color:{{.PEGColor}}">{{printf "%.2f" .Record.PEGRatio}}</span>
    <p>PER {{printf "%.2f" .Record.PERatio}} ÷ EPS {{printf "%.2f" .Record.EPSGrowth}}%</p>
  </div>
  <ul class="tags">{{range .Record.Tags}}<li>{{.}}</li>{{end}}</ul>
  <p class="tam">현재 시장 침투율: {{.Record.TAMPenetration}}% (아직 {{.TAMHeadroom}}%의 시장이 남아있습니다)</p>
</div>
`))

// RenderCard writes the HTML action card for d
func RenderCard(w io.Writer, d Detail) error {
	if err := cardTemplate.Execute(w, d); err != nil {
		return fmt.Errorf("render action card: %w", err)
	}
	return nil
}
