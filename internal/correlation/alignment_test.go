package correlation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// series builds candles whose closes follow the given values.
func series(closes ...float64) []models.Candle {
	candles := make([]models.Candle, len(closes))
	for i, c := range closes {
		candles[i] = models.Candle{
			Time:  int64(1700000000 + i*60),
			Open:  c,
			High:  c + 1,
			Low:   c - 1,
			Close: c,
		}
	}
	return candles
}

// alternating produces a two-valued close series whose returns flip sign each
// bar. Two such series move perfectly together; one built from the swapped
// values moves perfectly against.
func alternating(a, b float64, n int) []models.Candle {
	closes := make([]float64, n)
	for i := range closes {
		if i%2 == 0 {
			closes[i] = a
		} else {
			closes[i] = b
		}
	}
	return series(closes...)
}

func TestAlignmentScoreBullishIdeal(t *testing.T) {
	// VIX and DXY move against the primary, ES moves with it. Every leg of
	// the composite then pulls in the bullish direction.
	data := map[string][]models.Candle{
		"MES":            alternating(100, 110, 12),
		VolatilitySymbol: alternating(20, 18, 12),
		DollarSymbol:     alternating(105, 103, 12),
		EquitySymbol:     alternating(5000, 5050, 12),
	}

	res := AlignmentScore(data, "MES", models.Bullish)

	assert.InDelta(t, -1.0, res.VolatilityCorr, 1e-9)
	assert.InDelta(t, -1.0, res.DollarCorr, 1e-9)
	assert.InDelta(t, 1.0, res.EquityCorr, 1e-9)
	assert.InDelta(t, 1.0, res.Composite, 1e-9)
	assert.True(t, res.Aligned)
	assert.Equal(t, 3, res.PairsEvaluated)
	assert.Equal(t, 11, res.SamplesUsed)
}

func TestAlignmentScoreBearishOfSameData(t *testing.T) {
	data := map[string][]models.Candle{
		"MES":            alternating(100, 110, 12),
		VolatilitySymbol: alternating(20, 18, 12),
		DollarSymbol:     alternating(105, 103, 12),
		EquitySymbol:     alternating(5000, 5050, 12),
	}

	res := AlignmentScore(data, "MES", models.Bearish)
	assert.InDelta(t, 1.0, res.Composite, 1e-9)
	assert.False(t, res.Aligned, "a bullish composite contradicts a bearish setup")
}

func TestAlignmentScoreRiskOff(t *testing.T) {
	// Everything inverted: VIX and DXY rise with the primary's declines
	// mirrored, ES moves against. Composite lands at -1, aligning bearish.
	data := map[string][]models.Candle{
		"MES":            alternating(100, 110, 12),
		VolatilitySymbol: alternating(18, 20, 12),
		DollarSymbol:     alternating(103, 105, 12),
		EquitySymbol:     alternating(5050, 5000, 12),
	}

	res := AlignmentScore(data, "MES", models.Bearish)
	assert.InDelta(t, -1.0, res.Composite, 1e-9)
	assert.True(t, res.Aligned)
}

func TestAlignmentScoreMissingReferenceIsNeutral(t *testing.T) {
	data := map[string][]models.Candle{
		"MES":         alternating(100, 110, 12),
		EquitySymbol: alternating(5000, 5050, 12),
	}

	res := AlignmentScore(data, "MES", models.Bullish)

	assert.Zero(t, res.VolatilityCorr)
	assert.Zero(t, res.DollarCorr)
	assert.InDelta(t, 1.0, res.EquityCorr, 1e-9)
	assert.Equal(t, 1, res.PairsEvaluated)
	// Only the equity leg contributes.
	assert.InDelta(t, 0.3, res.Composite, 1e-9)
	assert.True(t, res.Aligned)
}

func TestAlignmentScoreInsufficientOverlap(t *testing.T) {
	// Five closes give four returns, below the overlap floor.
	data := map[string][]models.Candle{
		"MES":            alternating(100, 110, 5),
		VolatilitySymbol: alternating(20, 18, 5),
		DollarSymbol:     alternating(105, 103, 5),
		EquitySymbol:     alternating(5000, 5050, 5),
	}

	res := AlignmentScore(data, "MES", models.Bullish)

	assert.Zero(t, res.PairsEvaluated)
	assert.Zero(t, res.Composite)
	assert.Zero(t, res.SamplesUsed)
	assert.False(t, res.Aligned)
}
