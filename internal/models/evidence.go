package models

// EventContext is shared by every evidence variant
type EventContext struct {
	EventID string
	Teams   Teams
	Score   ScoreOffset
	// Lines lists every usable totals line of the input; derived totals are quoted for each.
	Lines []float64
}

// Event returns the event context of the evidence
func (c EventContext) Event() EventContext {
	return c
}

// Evidence is the closed set of inputs the engine can infer from.
// Implementations: MoneylinePlusTotals, TeamGoalsOnly.
type Evidence interface {
	Event() EventContext
	isEvidence()
}

// TotalsEvidence is a totals line with its margin-free over probability
type TotalsEvidence struct {
	Line     float64
	OverProb float64
}

// MoneylinePlusTotals carries a de-vigged moneyline and every usable totals line
type MoneylinePlusTotals struct {
	EventContext
	HomeProb float64
	DrawProb float64
	AwayProb float64
	// TwoWay is set when no draw was quoted
	TwoWay bool
	Totals []TotalsEvidence
}

// TeamGoalsOnly carries per-side goal-threshold markets when no moneyline is usable
type TeamGoalsOnly struct {
	EventContext
	Home TeamGoalsMarket
	Away TeamGoalsMarket
}

func (MoneylinePlusTotals) isEvidence() {}

func (TeamGoalsOnly) isEvidence() {}
