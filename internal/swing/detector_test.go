package swing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

func bars(highsLows ...[2]float64) []models.Candle {
	candles := make([]models.Candle, len(highsLows))
	for i, hl := range highsLows {
		mid := (hl[0] + hl[1]) / 2
		candles[i] = models.Candle{
			Time:  int64(1700000000 + i*60),
			Open:  mid,
			High:  hl[0],
			Low:   hl[1],
			Close: mid,
		}
	}
	return candles
}

func TestDetectStrictPivotHigh(t *testing.T) {
	candles := bars(
		[2]float64{10, 5},
		[2]float64{11, 5},
		[2]float64{14, 5},
		[2]float64{11, 5},
		[2]float64{10, 5},
		[2]float64{9, 5},
		[2]float64{10, 5},
	)

	highs, lows := Detect(candles, 2, 2, 10)

	require.Len(t, highs, 1)
	assert.Equal(t, 2, highs[0].BarIndex)
	assert.Equal(t, 14.0, highs[0].Price)
	assert.True(t, highs[0].IsHigh)

	// All lows are equal, so no strict pivot low exists.
	assert.Empty(t, lows)
}

func TestDetectFlatTopIsNotAPivot(t *testing.T) {
	candles := bars(
		[2]float64{10, 8},
		[2]float64{12, 9},
		[2]float64{12, 9},
		[2]float64{10, 8},
		[2]float64{9, 7},
	)

	highs, _ := Detect(candles, 1, 1, 10)
	assert.Empty(t, highs, "two equal highs must not confirm either bar as a pivot")
}

func TestDetectBoundaryExclusion(t *testing.T) {
	// The highest high sits within rightBars of the series end.
	candles := bars(
		[2]float64{10, 5},
		[2]float64{11, 4},
		[2]float64{12, 3},
		[2]float64{20, 2},
		[2]float64{13, 6},
	)

	highs, lows := Detect(candles, 2, 2, 10)
	assert.Empty(t, highs, "extreme inside the right boundary cannot confirm")
	assert.Empty(t, lows, "lowest low also sits inside the right boundary")
}

func TestDetectMostRecentFirstAndTruncation(t *testing.T) {
	candles := bars(
		[2]float64{10, 5},
		[2]float64{15, 6},
		[2]float64{10, 5},
		[2]float64{9, 4},
		[2]float64{16, 6},
		[2]float64{10, 5},
		[2]float64{9, 4},
	)

	highs, _ := Detect(candles, 1, 1, 10)
	require.Len(t, highs, 2)
	assert.Equal(t, 4, highs[0].BarIndex, "most recent pivot first")
	assert.Equal(t, 1, highs[1].BarIndex)

	truncated, _ := Detect(candles, 1, 1, 1)
	require.Len(t, truncated, 1)
	assert.Equal(t, 4, truncated[0].BarIndex)
}

func TestDetectEmptyAndDegenerateInput(t *testing.T) {
	highs, lows := Detect(nil, 2, 2, 10)
	assert.Nil(t, highs)
	assert.Nil(t, lows)

	highs, lows = Detect(bars([2]float64{10, 5}), 2, 2, 0)
	assert.Nil(t, highs)
	assert.Nil(t, lows)
}
