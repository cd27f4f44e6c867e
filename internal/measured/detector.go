package measured

import (
	"math"
	"sort"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

const (
	// BC must retrace AB by a ratio inside this closed band.
	minRetracement = 0.382
	maxRetracement = 0.618

	// Stop buffer beyond the 61.8% retrace, as a fraction of the AB leg.
	stopBufferFraction = 0.02

	// At most this many candidates are returned, best quality first.
	maxResults = 5
)

// Detect scans swing triplets for AB=CD measured-move candidates. Swing highs
// and lows are merged into one bar-ordered list; every consecutive triplet
// with strictly alternating types whose BC leg retraces AB inside the
// [0.382, 0.618] band yields a candidate. Status is derived from currentPrice
// on each call and never persisted.
func Detect(highs, lows []models.SwingPoint, currentPrice float64) []models.MeasuredMove {
	points := merge(highs, lows)
	if len(points) < 3 {
		return nil
	}

	var moves []models.MeasuredMove
	for i := 0; i+2 < len(points); i++ {
		a, b, c := points[i], points[i+1], points[i+2]
		if a.IsHigh == b.IsHigh || b.IsHigh == c.IsHigh {
			continue
		}

		ab := math.Abs(b.Price - a.Price)
		if ab == 0 {
			continue
		}
		ratio := math.Abs(c.Price-b.Price) / ab
		if ratio < minRetracement || ratio > maxRetracement {
			continue
		}

		// A low-high-low triplet projects D above C; high-low-high below.
		direction := models.Bullish
		if a.IsHigh {
			direction = models.Bearish
		}

		var projectedD, entry, stop float64
		if direction == models.Bullish {
			projectedD = c.Price + ab
			entry = b.Price - 0.5*ab
			stop = b.Price - (maxRetracement+stopBufferFraction)*ab
		} else {
			projectedD = c.Price - ab
			entry = b.Price + 0.5*ab
			stop = b.Price + (maxRetracement+stopBufferFraction)*ab
		}

		quality := 100 - 500*math.Abs(ratio-0.5)

		move := models.MeasuredMove{
			Direction:        direction,
			PointA:           a,
			PointB:           b,
			PointC:           c,
			ProjectedD:       projectedD,
			RetracementRatio: ratio,
			Entry:            entry,
			Stop:             stop,
			Target:           projectedD,
			Quality:          quality,
		}
		move.Status = deriveStatus(&move, currentPrice)
		moves = append(moves, move)
	}

	sort.SliceStable(moves, func(i, j int) bool {
		return moves[i].Quality > moves[j].Quality
	})
	if len(moves) > maxResults {
		moves = moves[:maxResults]
	}
	return moves
}

// deriveStatus places currentPrice against the move's stop, target, and C
// pivot. Price beyond C in the move's direction means the D leg is underway.
func deriveStatus(m *models.MeasuredMove, currentPrice float64) models.MeasuredMoveStatus {
	if m.Direction == models.Bullish {
		switch {
		case currentPrice <= m.Stop:
			return models.MoveStoppedOut
		case currentPrice >= m.Target:
			return models.MoveTargetHit
		case currentPrice > m.PointC.Price:
			return models.MoveActive
		}
		return models.MoveForming
	}
	switch {
	case currentPrice >= m.Stop:
		return models.MoveStoppedOut
	case currentPrice <= m.Target:
		return models.MoveTargetHit
	case currentPrice < m.PointC.Price:
		return models.MoveActive
	}
	return models.MoveForming
}

// merge combines the most-recent-first swing lists into a single slice
// ordered ascending by bar index.
func merge(highs, lows []models.SwingPoint) []models.SwingPoint {
	points := make([]models.SwingPoint, 0, len(highs)+len(lows))
	points = append(points, highs...)
	points = append(points, lows...)
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].BarIndex < points[j].BarIndex
	})
	return points
}
