// Package signal - action.go
// 성장 점수 + PEG 기반 액션 추천
// - 규칙은 순서대로 평가, 먼저 일치한 규칙이 결과
// - growth_score (15, 20] & PEG [1.5, 2.5] 구간은 의도적으로 WATCH
package signal

// Action is the recommendation shown on the action card
type Action string

const (
	StrongBuy Action = "STRONG_BUY"
	Hold      Action = "HOLD"
	Watch     Action = "WATCH"
)

// Rule pairs a predicate with the action it yields
type Rule struct {
	Name   string
	Match  func(growthScore, peg float64) bool
	Action Action
}

// Rules is the ordered decision list. Branches overlap, so order is part
// of the contract; anything unmatched falls through to Watch.
var Rules = []Rule{
	{
		Name:   "high_growth_cheap",
		Match:  func(g, peg float64) bool { return g > 20 && peg < 1.5 },
		Action: StrongBuy,
	},
	{
		Name:   "growth_overpriced",
		Match:  func(g, peg float64) bool { return g > 15 && peg > 2.5 },
		Action: Hold,
	},
}

// Classify returns the first matching rule's action, Watch otherwise
func Classify(growthScore, peg float64) Action {
	action, _ := Explain(growthScore, peg)
	return action
}

// Explain is Classify plus the name of the rule that fired ("" for the default)
func Explain(growthScore, peg float64) (Action, string) {
	for _, r := range Rules {
		if r.Match(growthScore, peg) {
			return r.Action, r.Name
		}
	}
	return Watch, ""
}

// Template is the canned text block for an action card
type Template struct {
	Action      Action `json:"action"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Color       string `json:"color"`
}

var templates = map[Action]Template{
	StrongBuy: {
		Action:      StrongBuy,
		Title:       "STRONG BUY (강력 매수)",
		Description: "성장성은 폭발적인데 가격은 아직 저렴합니다. 유동성이 붙기 시작하면 급등할 수 있습니다.",
		Color:       "#d4edda",
	},
	Hold: {
		Action:      Hold,
		Title:       "HOLD (관망/분할 매수)",
		Description: "훌륭한 기업이지만 유동성이 과하게 쏠려 비쌉니다. 조정 시 매수를 고려하세요.",
		Color:       "#fff3cd",
	},
	Watch: {
		Action:      Watch,
		Title:       "WATCH (관찰 필요)",
		Description: "성장 동력이 약화되었거나, 모멘텀이 부족합니다.",
		Color:       "#f8d7da",
	},
}

// TemplateFor returns the card text for action; unknown actions get Watch
func TemplateFor(action Action) Template {
	if t, ok := templates[action]; ok {
		return t
	}
	return templates[Watch]
}
