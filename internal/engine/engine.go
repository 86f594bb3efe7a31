// Package engine infers scoring rates from market evidence and projects them
// into fair-priced derived markets.
package engine

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/yourusername/scoreline/internal/config"
	"github.com/yourusername/scoreline/internal/logger"
	"github.com/yourusername/scoreline/internal/metrics"
	"github.com/yourusername/scoreline/internal/models"
	"github.com/yourusername/scoreline/internal/projection"
	"github.com/yourusername/scoreline/internal/solver"
)

// Projection status labels
const (
	statusSuccess      = "success"
	statusInsufficient = "insufficient"
	statusError        = "error"
)

// Projector is anything that can project a raw snapshot
type Projector interface {
	ProjectSnapshot(ctx context.Context, s *models.MarketSnapshot) (*models.Projection, error)
}

// Engine runs inference and projection. It holds no per-call state and is safe
// for concurrent use.
type Engine struct {
	solver    *solver.TotalRateSolver
	allocator *solver.RateAllocator
	computer  *projection.Computer
	logger    *logger.ProjectionLogger
}

// New creates an engine from validated solver and projection parameters
func New(solverCfg solver.Config, projectionCfg projection.Config, log *logrus.Logger) (*Engine, error) {
	if err := solverCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid solver config: %w", err)
	}
	if err := projectionCfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid projection config: %w", err)
	}

	return &Engine{
		solver:    solver.NewTotalRateSolver(solverCfg),
		allocator: solver.NewRateAllocator(solverCfg),
		computer:  projection.NewComputer(projectionCfg),
		logger:    logger.NewProjectionLogger(log),
	}, nil
}

// NewFromConfig creates an engine from the application's engine section
func NewFromConfig(cfg *config.EngineConfig, log *logrus.Logger) (*Engine, error) {
	return New(cfg.SolverConfig(), cfg.ProjectionConfig(), log)
}

// ProjectSnapshot classifies the snapshot and projects the resulting evidence.
// An event without usable evidence yields an empty projection, not an error.
func (e *Engine) ProjectSnapshot(ctx context.Context, s *models.MarketSnapshot) (*models.Projection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil {
		return nil, models.ErrNilSnapshot
	}

	log := e.logger.ForContext(ctx)
	ev, skipped, err := classify(s)
	for _, sk := range skipped {
		metrics.RecordSkippedMarket(sk.Market)
		log.LogSkippedMarket(s.EventID, sk.Market, sk.Err)
	}

	var insufficient *models.InsufficientMarketDataError
	if errors.As(err, &insufficient) {
		log.LogInsufficientData(s.EventID, insufficient.Reason)
		metrics.RecordProjection(string(models.PathInsufficient), statusInsufficient, 0)
		return emptyProjection(s.EventID), nil
	}
	if err != nil {
		metrics.RecordProjection("", statusError, 0)
		return nil, err
	}

	return e.Project(ctx, ev)
}

// Project infers rates from the evidence and prices the derived markets
func (e *Engine) Project(ctx context.Context, ev models.Evidence) (*models.Projection, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	log := e.logger.ForContext(ctx)

	var p *models.Projection
	switch ev := ev.(type) {
	case models.MoneylinePlusTotals:
		p = e.projectMoneylineTotals(log, ev)
	case *models.MoneylinePlusTotals:
		if ev == nil {
			return nil, fmt.Errorf("%w: nil %T", models.ErrUnknownEvidence, ev)
		}
		p = e.projectMoneylineTotals(log, *ev)
	case models.TeamGoalsOnly:
		p = e.projectTeamGoals(log, ev)
	case *models.TeamGoalsOnly:
		if ev == nil {
			return nil, fmt.Errorf("%w: nil %T", models.ErrUnknownEvidence, ev)
		}
		p = e.projectTeamGoals(log, *ev)
	default:
		return nil, fmt.Errorf("%w: %T", models.ErrUnknownEvidence, ev)
	}

	elapsed := time.Since(start)
	status := statusSuccess
	if p.Path == models.PathInsufficient {
		status = statusInsufficient
	}
	metrics.RecordProjection(string(p.Path), status, elapsed.Seconds())
	recordEmitted(p.Markets)
	log.LogProjection(p, float64(elapsed.Microseconds())/1000)

	return p, nil
}

func (e *Engine) projectMoneylineTotals(log *logger.ProjectionLogger, ev models.MoneylinePlusTotals) *models.Projection {
	event := ev.Event()
	if len(ev.Totals) == 0 {
		log.LogInsufficientData(event.EventID, "moneyline evidence without totals")
		return emptyProjection(event.EventID)
	}

	current := float64(event.Score.Total())
	points := make([]solver.LinePoint, len(ev.Totals))
	for i, t := range ev.Totals {
		points[i] = solver.LinePoint{Line: t.Line - current, OverProb: t.OverProb}
	}

	p := &models.Projection{EventID: event.EventID, Path: models.PathMoneylineTotals}

	consensus := solver.Aggregate(e.solver, points, fallbackPoint(points))
	for _, rec := range consensus.Recovered {
		e.recordFallback(log, p, rec, rec.High)
	}
	if consensus.UsedFallback {
		p.Fallbacks = append(p.Fallbacks, "no informative totals line, solved first line directly")
	}

	target := solver.MoneylineTarget{Home: ev.HomeProb, Away: ev.AwayProb, TwoWay: ev.TwoWay}
	if ev.TwoWay {
		if decisive := ev.HomeProb + ev.AwayProb; decisive > 0 {
			target.Home = ev.HomeProb / decisive
			target.Away = ev.AwayProb / decisive
		}
	}

	alloc := e.allocator.Allocate(target, consensus.Mu, event.Score)
	if alloc.Recovered != nil {
		e.recordFallback(log, p, alloc.Recovered, alloc.Rates.Home)
	}

	p.Rates = alloc.Rates
	p.Mu = consensus.Mu
	p.Markets = e.computer.Compute(projection.Input{
		Teams:  event.Teams,
		Score:  event.Score,
		Rates:  alloc.Rates,
		Lines:  linesOf(event, ev.Totals),
		TwoWay: ev.TwoWay,
	})
	return p
}

func (e *Engine) projectTeamGoals(log *logger.ProjectionLogger, ev models.TeamGoalsOnly) *models.Projection {
	event := ev.Event()

	rates, err := projection.TeamGoalRates(ev.Home, ev.Away, event.Score)
	if err != nil {
		metrics.RecordSkippedMarket(MarketTeamGoals)
		log.LogSkippedMarket(event.EventID, MarketTeamGoals, err)
		log.LogInsufficientData(event.EventID, "team goals markets unusable")
		return emptyProjection(event.EventID)
	}

	return &models.Projection{
		EventID: event.EventID,
		Path:    models.PathTeamGoals,
		Rates:   rates,
		Mu:      rates.Total(),
		Markets: e.computer.Compute(projection.Input{
			Teams: event.Teams,
			Score: event.Score,
			Rates: rates,
			Lines: event.Lines,
		}),
	}
}

func (e *Engine) recordFallback(log *logger.ProjectionLogger, p *models.Projection, rec *models.RootNotBracketedError, fallback float64) {
	metrics.RecordRootFallback(rec.Component)
	log.LogRootFallback(p.EventID, rec, fallback)
	p.Fallbacks = append(p.Fallbacks, rec.Error())
}

// fallbackPoint is the first line that has not already been passed, or the
// first line clamped to zero when every line has
func fallbackPoint(points []solver.LinePoint) solver.LinePoint {
	for _, pt := range points {
		if pt.Line >= 0 {
			return pt
		}
	}
	pt := points[0]
	pt.Line = 0
	return pt
}

// linesOf prefers the event's line list and falls back to the evidence lines
func linesOf(event models.EventContext, totals []models.TotalsEvidence) []float64 {
	if len(event.Lines) > 0 {
		return event.Lines
	}
	return evidenceLines(totals)
}

func emptyProjection(eventID string) *models.Projection {
	return &models.Projection{
		EventID: eventID,
		Path:    models.PathInsufficient,
		Markets: []models.DerivedMarket{},
	}
}

func recordEmitted(markets []models.DerivedMarket) {
	counts := make(map[string]int, 3)
	for _, m := range markets {
		counts[m.MarketType]++
	}
	for marketType, n := range counts {
		metrics.RecordDerivedMarkets(marketType, n)
	}
}
