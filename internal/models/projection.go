package models

// Market types emitted by the projection
const (
	MarketTypeMoneyline    = "Money Line – Match"
	MarketTypeTotals       = "Total – Match"
	MarketTypeCorrectScore = "Correct Score"
)

// DrawLabel labels the draw outcome in moneyline and aggregate markets
const DrawLabel = "Draw"

// ProjectionPath identifies which evidence branch produced a projection
type ProjectionPath string

const (
	PathMoneylineTotals ProjectionPath = "moneyline_totals"
	PathTeamGoals       ProjectionPath = "team_goals"
	PathInsufficient    ProjectionPath = "insufficient"
)

// Rates is a pair of expected future scoring counts
type Rates struct {
	Home float64 `json:"home" yaml:"home"`
	Away float64 `json:"away" yaml:"away"`
}

// Total returns the aggregate rate
func (r Rates) Total() float64 {
	return r.Home + r.Away
}

// DerivedMarket is one fair-priced outcome of the projection
type DerivedMarket struct {
	MarketType string  `json:"market_type" yaml:"market_type"`
	Outcome    string  `json:"outcome" yaml:"outcome"`
	FairOdds   float64 `json:"fair_odds" yaml:"fair_odds"`
}

// Projection is the full result of one inference call
type Projection struct {
	EventID   string          `json:"event_id,omitempty" yaml:"event_id,omitempty"`
	Path      ProjectionPath  `json:"path" yaml:"path"`
	Rates     Rates           `json:"rates" yaml:"rates"`
	Mu        float64         `json:"mu" yaml:"mu"`
	Markets   []DerivedMarket `json:"markets" yaml:"markets"`
	Fallbacks []string        `json:"fallbacks,omitempty" yaml:"fallbacks,omitempty"`
}

// MarketsOfType filters the projection output by market type, preserving order
func (p *Projection) MarketsOfType(marketType string) []DerivedMarket {
	var out []DerivedMarket
	for _, m := range p.Markets {
		if m.MarketType == marketType {
			out = append(out, m)
		}
	}
	return out
}

// Find returns the first market matching type and outcome
func (p *Projection) Find(marketType, outcome string) (DerivedMarket, bool) {
	for _, m := range p.Markets {
		if m.MarketType == marketType && m.Outcome == outcome {
			return m, true
		}
	}
	return DerivedMarket{}, false
}

// Clone returns a deep copy, so cached projections are never shared mutably
func (p *Projection) Clone() *Projection {
	if p == nil {
		return nil
	}
	out := *p
	if p.Markets != nil {
		out.Markets = append(make([]DerivedMarket, 0, len(p.Markets)), p.Markets...)
	}
	if p.Fallbacks != nil {
		out.Fallbacks = append(make([]string, 0, len(p.Fallbacks)), p.Fallbacks...)
	}
	return &out
}
