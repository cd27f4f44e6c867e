package correlation

import (
	"gonum.org/v1/gonum/stat"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// Reference series keys expected in the symbolCandles map. The primary
// instrument is whatever key the caller passes to AlignmentScore.
const (
	VolatilitySymbol = "VIX"
	DollarSymbol     = "DXY"
	EquitySymbol     = "ES"
)

// Composite weights: volatility, dollar, equity.
const (
	volatilityWeight = 0.4
	dollarWeight     = 0.3
	equityWeight     = 0.3
)

// minOverlap is the smallest number of overlapping return observations a
// pair needs before its correlation counts.
const minOverlap = 5

// AlignmentScore computes Pearson correlations of simple returns between the
// primary instrument and each reference series, maps them onto a bullish
// alignment scale (volatility and dollar correlations inverted, equity used
// directly), and reports whether the weighted composite agrees in sign with
// the requested direction. Pairs without enough overlapping data contribute
// a neutral zero.
func AlignmentScore(symbolCandles map[string][]models.Candle, primary string, direction models.Direction) models.CorrelationAlignment {
	primaryReturns := simpleReturns(symbolCandles[primary])

	result := models.CorrelationAlignment{Direction: direction}

	var minSamples int
	corrFor := func(symbol string) float64 {
		refReturns := simpleReturns(symbolCandles[symbol])
		n := len(primaryReturns)
		if len(refReturns) < n {
			n = len(refReturns)
		}
		if n < minOverlap {
			return 0
		}
		if minSamples == 0 || n < minSamples {
			minSamples = n
		}
		result.PairsEvaluated++
		// Align on the most recent n returns of each series.
		x := primaryReturns[len(primaryReturns)-n:]
		y := refReturns[len(refReturns)-n:]
		return stat.Correlation(x, y, nil)
	}

	result.VolatilityCorr = corrFor(VolatilitySymbol)
	result.DollarCorr = corrFor(DollarSymbol)
	result.EquityCorr = corrFor(EquitySymbol)
	result.SamplesUsed = minSamples

	// Negative correlation with a risk index is bullish, so the volatility
	// and dollar legs are inverted.
	composite := volatilityWeight*(-result.VolatilityCorr) +
		dollarWeight*(-result.DollarCorr) +
		equityWeight*result.EquityCorr
	if composite > 1 {
		composite = 1
	}
	if composite < -1 {
		composite = -1
	}
	result.Composite = composite

	if direction == models.Bullish {
		result.Aligned = composite > 0
	} else {
		result.Aligned = composite < 0
	}

	return result
}

// simpleReturns computes close-over-close simple returns.
func simpleReturns(candles []models.Candle) []float64 {
	if len(candles) < 2 {
		return nil
	}
	returns := make([]float64, 0, len(candles)-1)
	for i := 1; i < len(candles); i++ {
		prev := candles[i-1].Close
		if prev == 0 {
			continue
		}
		returns = append(returns, (candles[i].Close-prev)/prev)
	}
	return returns
}
