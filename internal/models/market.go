package models

// Teams holds the display names of both sides. Names label output only.
type Teams struct {
	Home string `json:"home" yaml:"home" validate:"required"`
	Away string `json:"away" yaml:"away" validate:"required"`
}

// ScoreOffset is the score already accrued before projection begins
type ScoreOffset struct {
	Home int `json:"home" yaml:"home" validate:"gte=0"`
	Away int `json:"away" yaml:"away" validate:"gte=0"`
}

// Total returns the combined score
func (s ScoreOffset) Total() int {
	return s.Home + s.Away
}

// MoneylineMarket holds the outright-winner prices in home, [draw,] away order
type MoneylineMarket struct {
	Quotes []PriceQuote `json:"quotes" yaml:"quotes" validate:"required,min=2,max=3,dive"`
}

// MaxTotalsLine bounds the lines accepted as totals evidence
const MaxTotalsLine = 1000.0

// IsValidLine reports whether a totals line is finite and within [0, MaxTotalsLine]
func IsValidLine(line float64) bool {
	return line >= 0 && line <= MaxTotalsLine
}

// TotalsLine is one over/under pair keyed by its line.
// The boundary rejects a missing side; the engine tolerates one when built in code.
type TotalsLine struct {
	Line       float64  `json:"line" yaml:"line" validate:"gte=0,lte=1000"`
	OverPrice  *float64 `json:"over_price" yaml:"over_price" validate:"required"`
	UnderPrice *float64 `json:"under_price" yaml:"under_price" validate:"required"`
}

// TeamGoalsMarket holds one side's goal-threshold prices ("N" or "N+" labels)
type TeamGoalsMarket struct {
	Quotes []PriceQuote `json:"quotes" yaml:"quotes" validate:"omitempty,dive"`
}

// HasQuotes reports whether any threshold was posted at all
func (m TeamGoalsMarket) HasQuotes() bool {
	return len(m.Quotes) > 0
}

// TeamGoals pairs both sides' team goals markets
type TeamGoals struct {
	Home TeamGoalsMarket `json:"home" yaml:"home"`
	Away TeamGoalsMarket `json:"away" yaml:"away"`
}

// MarketSnapshot is the raw priced evidence for a single event, as handed over by
// whatever system acquired it.
type MarketSnapshot struct {
	EventID   string           `json:"event_id,omitempty" yaml:"event_id,omitempty"`
	Teams     Teams            `json:"teams" yaml:"teams"`
	Score     ScoreOffset      `json:"score" yaml:"score"`
	Moneyline *MoneylineMarket `json:"moneyline,omitempty" yaml:"moneyline,omitempty"`
	Totals    []TotalsLine     `json:"totals,omitempty" yaml:"totals,omitempty" validate:"omitempty,dive"`
	TeamGoals *TeamGoals       `json:"team_goals,omitempty" yaml:"team_goals,omitempty"`
}
