package analysis

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/zincdigitalofmiami/bhg-engine/internal/aggregate"
	"github.com/zincdigitalofmiami/bhg-engine/internal/bhg"
	"github.com/zincdigitalofmiami/bhg-engine/internal/correlation"
	"github.com/zincdigitalofmiami/bhg-engine/internal/fib"
	"github.com/zincdigitalofmiami/bhg-engine/internal/indicator"
	"github.com/zincdigitalofmiami/bhg-engine/internal/measured"
	"github.com/zincdigitalofmiami/bhg-engine/internal/risk"
	"github.com/zincdigitalofmiami/bhg-engine/internal/scoring"
	"github.com/zincdigitalofmiami/bhg-engine/internal/swing"
	"github.com/zincdigitalofmiami/bhg-engine/pkg/config"
	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// Analyzer wires the configuration and logger to the pure detection core and
// exposes every engine operation from one place. It holds no state across
// calls; re-running the same window yields identical output.
type Analyzer struct {
	cfg    *config.Config
	logger *logrus.Entry
}

// Result is one full analysis pass over a candle window.
type Result struct {
	Fib           *models.FibResult     `json:"fib"`
	SwingHighs    []models.SwingPoint   `json:"swing_highs"`
	SwingLows     []models.SwingPoint   `json:"swing_lows"`
	MeasuredMoves []models.MeasuredMove `json:"measured_moves"`
	Setups        []models.Setup        `json:"setups"` // active first, then completed
}

// NewAnalyzer creates a new analyzer
func NewAnalyzer(cfg *config.Config, logger *logrus.Logger) *Analyzer {
	return &Analyzer{
		cfg:    cfg,
		logger: logger.WithField("component", "analysis"),
	}
}

// Analyze runs the full pipeline over one candle window: swings, multi-period
// Fibonacci confluence, measured moves, and the BHG state machine. A window
// too thin to produce a Fibonacci anchor yields an empty result, not an
// error.
func (a *Analyzer) Analyze(candles []models.Candle) *Result {
	res := &Result{}
	if len(candles) == 0 {
		return res
	}

	eng := a.cfg.Engine
	res.SwingHighs, res.SwingLows = swing.Detect(candles, eng.SwingLeftBars, eng.SwingRightBars, eng.MaxSwingHistory)

	res.Fib = fib.CalculateMultiPeriod(candles)
	if res.Fib == nil {
		a.logger.WithField("candles", len(candles)).Debug("No Fibonacci anchor for window")
		return res
	}

	currentPrice := candles[len(candles)-1].Close
	res.MeasuredMoves = measured.Detect(res.SwingHighs, res.SwingLows, currentPrice)

	res.Setups = bhg.Advance(candles, res.Fib, res.MeasuredMoves, a.bhgConfig())

	active, triggered := 0, 0
	for i := range res.Setups {
		switch res.Setups[i].Phase {
		case models.PhaseContact, models.PhaseConfirmed:
			active++
		case models.PhaseTriggered:
			triggered++
		}
	}
	a.logger.WithFields(logrus.Fields{
		"symbol":    a.cfg.Instrument.Symbol,
		"candles":   len(candles),
		"swings":    len(res.SwingHighs) + len(res.SwingLows),
		"moves":     len(res.MeasuredMoves),
		"active":    active,
		"triggered": triggered,
	}).Info("Analysis window complete")

	return res
}

// DetectSwings finds pivot highs/lows over a symmetric window.
func (a *Analyzer) DetectSwings(candles []models.Candle, leftBars, rightBars, maxHistory int) ([]models.SwingPoint, []models.SwingPoint) {
	return swing.Detect(candles, leftBars, rightBars, maxHistory)
}

// CalculateFibonacci derives levels from the most recent swing pair.
func (a *Analyzer) CalculateFibonacci(highs, lows []models.SwingPoint) *models.FibResult {
	return fib.Calculate(highs, lows)
}

// CalculateFibonacciMultiPeriod runs the lookback-window confluence search.
func (a *Analyzer) CalculateFibonacciMultiPeriod(candles []models.Candle) *models.FibResult {
	return fib.CalculateMultiPeriod(candles)
}

// DetectMeasuredMoves scans swing triplets for AB=CD candidates.
func (a *Analyzer) DetectMeasuredMoves(highs, lows []models.SwingPoint, currentPrice float64) []models.MeasuredMove {
	return measured.Detect(highs, lows, currentPrice)
}

// AdvanceSetups folds the candle history through the BHG state machine.
func (a *Analyzer) AdvanceSetups(candles []models.Candle, fibResult *models.FibResult, moves []models.MeasuredMove) []models.Setup {
	return bhg.Advance(candles, fibResult, moves, a.bhgConfig())
}

// ComputeRisk sizes and grades a trade against the configured instrument.
func (a *Analyzer) ComputeRisk(entry, stopLoss, target float64) models.RiskResult {
	return risk.Compute(entry, stopLoss, target, risk.Params{
		TickSize:       a.cfg.Instrument.TickSize,
		TickValue:      a.cfg.Instrument.TickValue,
		MaxAccountRisk: a.cfg.Risk.MaxAccountRisk,
	})
}

// ComputeAlignmentScore translates cross-asset correlations into a
// directional alignment for the configured instrument.
func (a *Analyzer) ComputeAlignmentScore(symbolCandles map[string][]models.Candle, direction models.Direction) models.CorrelationAlignment {
	return correlation.AlignmentScore(symbolCandles, a.cfg.Instrument.Symbol, direction)
}

// ComputeTechnicalReadings computes the scorer's technical sub-indicators.
func (a *Analyzer) ComputeTechnicalReadings(candles []models.Candle) *models.TechnicalReadings {
	return indicator.ComputeReadings(candles)
}

// ComputeCompositeScore runs the multi-factor scorer.
func (a *Analyzer) ComputeCompositeScore(fv models.FeatureVector, baseline models.ProbabilityBaseline) models.TradeScore {
	return scoring.Composite(fv, baseline)
}

// ResampleCandles folds finer-grained candles into epoch-aligned buckets so
// one feed can back analysis at several resolutions.
func (a *Analyzer) ResampleCandles(candles []models.Candle, resolution time.Duration) []models.Candle {
	if !aggregate.SupportedResolution(resolution) {
		a.logger.WithField("resolution", resolution.String()).Warn("Unsupported resample resolution")
		return nil
	}
	return aggregate.Resample(candles, resolution)
}

func (a *Analyzer) bhgConfig() bhg.Config {
	return bhg.Config{
		TickSize:               a.cfg.Instrument.TickSize,
		ContactExpiryBars:      a.cfg.Engine.ContactExpiryBars,
		SetupExpiryBars:        a.cfg.Engine.SetupExpiryBars,
		ReentrySuppressionBars: a.cfg.Engine.ReentrySuppressionBars,
	}
}
