package measured

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

func high(price float64, bar int) models.SwingPoint {
	return models.SwingPoint{Price: price, BarIndex: bar, IsHigh: true}
}

func low(price float64, bar int) models.SwingPoint {
	return models.SwingPoint{Price: price, BarIndex: bar}
}

func TestDetectBullishMove(t *testing.T) {
	// A=1000 low, B=2000 high, C retraces exactly 50%.
	highs := []models.SwingPoint{high(2000, 10)}
	lows := []models.SwingPoint{low(1500, 20), low(1000, 0)}

	moves := Detect(highs, lows, 1480)
	require.Len(t, moves, 1)

	m := moves[0]
	assert.Equal(t, models.Bullish, m.Direction)
	assert.InDelta(t, 0.5, m.RetracementRatio, 1e-9)
	assert.InDelta(t, 2500.0, m.ProjectedD, 1e-9)
	assert.InDelta(t, 1500.0, m.Entry, 1e-9)
	assert.InDelta(t, 2000-0.638*1000, m.Stop, 1e-9)
	assert.InDelta(t, 100.0, m.Quality, 1e-9)
	assert.Equal(t, models.MoveForming, m.Status)
}

func TestDetectRetracementBandIsInclusive(t *testing.T) {
	// AB = 1000 makes the retracement ratio exact in both cases.
	cases := []struct {
		name   string
		cPrice float64
		want   int
	}{
		{"lower edge 0.382", 2000 - 382, 1},
		{"upper edge 0.618", 2000 - 618, 1},
		{"below band", 2000 - 381, 0},
		{"above band", 2000 - 619, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			highs := []models.SwingPoint{high(2000, 10)}
			lows := []models.SwingPoint{low(tc.cPrice, 20), low(1000, 0)}
			moves := Detect(highs, lows, tc.cPrice+5)
			assert.Len(t, moves, tc.want)
		})
	}
}

func TestDetectBearishMove(t *testing.T) {
	// A=2000 high, B=1000 low, C retraces 40% of the down leg.
	highs := []models.SwingPoint{high(1400, 20), high(2000, 0)}
	lows := []models.SwingPoint{low(1000, 10)}

	moves := Detect(highs, lows, 1350)
	require.Len(t, moves, 1)

	m := moves[0]
	assert.Equal(t, models.Bearish, m.Direction)
	assert.InDelta(t, 0.4, m.RetracementRatio, 1e-9)
	assert.InDelta(t, 400.0, m.ProjectedD, 1e-9)
	assert.InDelta(t, 1500.0, m.Entry, 1e-9)
	assert.InDelta(t, 1000+0.638*1000, m.Stop, 1e-9)
	assert.InDelta(t, 100-500*0.1, m.Quality, 1e-9)
	assert.Equal(t, models.MoveActive, m.Status, "price below C means the D leg is underway")
}

func TestDetectStatusTransitions(t *testing.T) {
	highs := []models.SwingPoint{high(2000, 10)}
	lows := []models.SwingPoint{low(1500, 20), low(1000, 0)}

	cases := []struct {
		name  string
		price float64
		want  models.MeasuredMoveStatus
	}{
		{"stopped out at stop", 2000 - 638, models.MoveStoppedOut},
		{"target hit at projection", 2500, models.MoveTargetHit},
		{"active above C", 1501, models.MoveActive},
		{"forming below C", 1499, models.MoveForming},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			moves := Detect(highs, lows, tc.price)
			require.Len(t, moves, 1)
			assert.Equal(t, tc.want, moves[0].Status)
		})
	}
}

func TestDetectSkipsNonAlternatingTriplets(t *testing.T) {
	// Two consecutive highs cannot form an A-B-C pattern.
	highs := []models.SwingPoint{high(2100, 10), high(2000, 5)}
	lows := []models.SwingPoint{low(1000, 0)}

	assert.Empty(t, Detect(highs, lows, 1500))
}

func TestDetectCapsAtFiveBestByQuality(t *testing.T) {
	// A 13-point zigzag with +100 legs and 50-point retraces yields six
	// qualifying low-high-low triplets, all at exactly 50% retracement.
	// Only the top five survive.
	var highs, lows []models.SwingPoint
	price := 1000.0
	for i := 0; i < 13; i++ {
		if i%2 == 0 {
			lows = append([]models.SwingPoint{low(price, i*5)}, lows...)
			price += 100
		} else {
			highs = append([]models.SwingPoint{high(price, i*5)}, highs...)
			price -= 50
		}
	}

	moves := Detect(highs, lows, price)
	require.Len(t, moves, 5)
	for _, m := range moves {
		assert.InDelta(t, 100.0, m.Quality, 1e-9)
	}
}

func TestDetectNeedsThreePoints(t *testing.T) {
	assert.Nil(t, Detect(nil, nil, 100))
	assert.Nil(t, Detect(
		[]models.SwingPoint{high(2000, 10)},
		[]models.SwingPoint{low(1000, 0)},
		1500,
	))
}
