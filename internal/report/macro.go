package report

// MacroIndicator is one tile of the static macro panel
type MacroIndicator struct {
	Name  string `json:"name"`
	Value string `json:"value"`
	Delta string `json:"delta"`
}

// MacroPanel is the fixed macro-environment header
type MacroPanel struct {
	Indicators []MacroIndicator `json:"indicators"`
	Status     string           `json:"status"`
	Note       string           `json:"note"`
}

// Macro returns the static macro panel. Values are fixed display data.
func Macro() MacroPanel {
	return MacroPanel{
		Indicators: []MacroIndicator{
			{Name: "미국 10년물 국채금리", Value: "4.25%", Delta: "+0.05% (유동성 축소)"},
			{Name: "나스닥 변동성(VIX)", Value: "14.5", Delta: "-2.1% (심리 안정)"},
			{Name: "시장 유동성 점수", Value: "65/100", Delta: "Neutral"},
		},
		Status: "흐림 뒤 갬",
		Note:   "금리 인하 기대감 유효",
	}
}
