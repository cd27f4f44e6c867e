package swing

import (
	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// Detect finds strict local pivot highs and lows over a symmetric window.
// A bar is a pivot high iff its high is strictly greater than every other
// bar's high in [i-leftBars, i+rightBars]; equal extremes never qualify.
// No pivot is confirmed within rightBars of either end of the series.
//
// Both result slices are ordered most-recent-first and truncated to
// maxHistory entries.
func Detect(candles []models.Candle, leftBars, rightBars, maxHistory int) (highs, lows []models.SwingPoint) {
	n := len(candles)
	if n == 0 || leftBars < 1 || rightBars < 1 || maxHistory < 1 {
		return nil, nil
	}

	// Walk newest to oldest so truncation keeps the most recent pivots.
	for i := n - rightBars - 1; i >= rightBars; i-- {
		if len(highs) >= maxHistory && len(lows) >= maxHistory {
			break
		}

		lo := i - leftBars
		if lo < 0 {
			lo = 0
		}
		hi := i + rightBars
		if hi > n-1 {
			hi = n - 1
		}

		isHigh := len(highs) < maxHistory
		isLow := len(lows) < maxHistory
		for j := lo; j <= hi && (isHigh || isLow); j++ {
			if j == i {
				continue
			}
			if candles[j].High >= candles[i].High {
				isHigh = false
			}
			if candles[j].Low <= candles[i].Low {
				isLow = false
			}
		}

		if isHigh {
			highs = append(highs, models.SwingPoint{
				Price:    candles[i].High,
				BarIndex: i,
				IsHigh:   true,
				Time:     candles[i].Time,
			})
		}
		if isLow {
			lows = append(lows, models.SwingPoint{
				Price:    candles[i].Low,
				BarIndex: i,
				IsHigh:   false,
				Time:     candles[i].Time,
			})
		}
	}

	return highs, lows
}
