package fib

import (
	"math"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// Retracement and extension ratios every FibResult carries.
var (
	retracementRatios = []float64{0, 0.236, 0.382, 0.5, 0.618, 0.786, 1.0}
	extensionRatios   = []float64{1.236, 1.618}
)

// Lookback windows for the multi-period confluence search, in bars.
// Fibonacci-sequence sizes; the largest doubles as the fallback window.
var lookbackWindows = []int{8, 13, 21, 34, 55}

// Midpoint ratios compared across windows when scoring confluence.
var confluenceRatios = []float64{0.382, 0.5, 0.618}

// confluenceTolerance is the fraction of a window's range within which two
// midpoints count as coinciding.
const confluenceTolerance = 0.001

// Calculate derives a level set from the single most recent swing high and
// swing low. Direction is bullish iff the low's bar is more recent than the
// high's (price last made a low, implying upward retracement). Returns nil
// when either swing list is empty or the anchor range is non-positive.
func Calculate(highs, lows []models.SwingPoint) *models.FibResult {
	if len(highs) == 0 || len(lows) == 0 {
		return nil
	}

	// Lists are most-recent-first.
	high := highs[0]
	low := lows[0]

	rng := high.Price - low.Price
	if rng <= 0 {
		return nil
	}

	isBullish := low.BarIndex > high.BarIndex

	return &models.FibResult{
		Levels:             buildLevels(high.Price, low.Price, isBullish),
		AnchorHigh:         high.Price,
		AnchorLow:          low.Price,
		IsBullish:          isBullish,
		AnchorHighBarIndex: high.BarIndex,
		AnchorLowBarIndex:  low.BarIndex,
	}
}

// CalculateMultiPeriod runs the confluence search over the Fibonacci-sequence
// lookback windows. Each window is scored by how many midpoints of the other
// windows land within 0.1% of its range of one of its own midpoints; the
// highest-scoring window wins, with ties resolved toward the largest tied
// window and zero confluence falling back to the largest window outright.
// Direction is bullish iff the last close sits at or above the chosen
// window's 50% level. Returns nil when there is not enough history for even
// the smallest window, or the chosen window is flat.
func CalculateMultiPeriod(candles []models.Candle) *models.FibResult {
	n := len(candles)
	if n == 0 {
		return nil
	}

	type window struct {
		bars    int
		high    float64
		low     float64
		highIdx int
		lowIdx  int
		mids    []float64
	}

	var windows []window
	for _, w := range lookbackWindows {
		if n < w {
			continue
		}
		start := n - w
		hi, lo := candles[start].High, candles[start].Low
		hiIdx, loIdx := start, start
		for i := start + 1; i < n; i++ {
			if candles[i].High >= hi {
				hi = candles[i].High
				hiIdx = i
			}
			if candles[i].Low <= lo {
				lo = candles[i].Low
				loIdx = i
			}
		}
		mids := make([]float64, len(confluenceRatios))
		for j, r := range confluenceRatios {
			mids[j] = lo + (hi-lo)*r
		}
		windows = append(windows, window{bars: w, high: hi, low: lo, highIdx: hiIdx, lowIdx: loIdx, mids: mids})
	}
	if len(windows) == 0 {
		return nil
	}

	// All-pairs midpoint comparison across windows and ratios.
	scores := make([]int, len(windows))
	for i := range windows {
		tol := confluenceTolerance * (windows[i].high - windows[i].low)
		for j := range windows {
			if j == i {
				continue
			}
			for _, own := range windows[i].mids {
				for _, other := range windows[j].mids {
					if math.Abs(own-other) <= tol {
						scores[i]++
					}
				}
			}
		}
	}

	// Highest score wins; among tied winners prefer the largest window.
	// With no confluence at all, the largest window is used outright.
	best := len(windows) - 1
	bestScore := 0
	for i := range windows {
		if scores[i] > bestScore || (scores[i] == bestScore && scores[i] > 0 && windows[i].bars > windows[best].bars) {
			best = i
			bestScore = scores[i]
		}
	}

	chosen := windows[best]
	rng := chosen.high - chosen.low
	if rng <= 0 {
		return nil
	}

	lastClose := candles[n-1].Close
	isBullish := lastClose >= chosen.low+rng*0.5

	return &models.FibResult{
		Levels:             buildLevels(chosen.high, chosen.low, isBullish),
		AnchorHigh:         chosen.high,
		AnchorLow:          chosen.low,
		IsBullish:          isBullish,
		AnchorHighBarIndex: chosen.highIdx,
		AnchorLowBarIndex:  chosen.lowIdx,
	}
}

// buildLevels prices every retracement and extension ratio off the anchors.
// Bullish levels are measured upward from the low, bearish downward from the
// high.
func buildLevels(anchorHigh, anchorLow float64, isBullish bool) []models.FibLevel {
	rng := anchorHigh - anchorLow
	levels := make([]models.FibLevel, 0, len(retracementRatios)+len(extensionRatios))

	price := func(ratio float64) float64 {
		if isBullish {
			return anchorLow + rng*ratio
		}
		return anchorHigh - rng*ratio
	}

	for _, r := range retracementRatios {
		levels = append(levels, models.FibLevel{Ratio: r, Price: price(r)})
	}
	for _, r := range extensionRatios {
		levels = append(levels, models.FibLevel{Ratio: r, Price: price(r), IsExtension: true})
	}

	return levels
}
