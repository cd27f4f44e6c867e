package indicator

import (
	talib "github.com/markcheno/go-talib"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// Fixed indicator parameters for the scorer's technical readings.
const (
	rsiLen     = 14
	macdFast   = 12
	macdSlow   = 26
	macdSignal = 9
	emaFastLen = 20
	emaSlowLen = 50
	bbLen      = 20
	bbMult     = 2.0

	// minCandles covers the slowest indicator's warmup.
	minCandles = 60
)

// ComputeReadings computes the technical sub-indicator readings the composite
// scorer consumes: RSI(14), MACD(12,26,9) histogram, EMA(20)/EMA(50), and
// Bollinger %B(20,2). Returns nil when the window is too short for a stable
// read.
func ComputeReadings(candles []models.Candle) *models.TechnicalReadings {
	if len(candles) < minCandles {
		return nil
	}

	closes := models.Closes(candles)
	i := len(closes) - 1

	rsi := talib.Rsi(closes, rsiLen)
	_, _, hist := talib.Macd(closes, macdFast, macdSlow, macdSignal)
	emaFast := talib.Ema(closes, emaFastLen)
	emaSlow := talib.Ema(closes, emaSlowLen)

	basis := talib.Sma(closes, bbLen)
	dev := talib.StdDev(closes, bbLen, 1.0)
	upper := basis[i] + bbMult*dev[i]
	lower := basis[i] - bbMult*dev[i]

	pctB := 0.5
	if upper > lower {
		pctB = (closes[i] - lower) / (upper - lower)
	}

	return &models.TechnicalReadings{
		RSI:           rsi[i],
		MACDHistogram: hist[i],
		EMAFast:       emaFast[i],
		EMASlow:       emaSlow[i],
		BollingerPctB: pctB,
		LastClose:     closes[i],
	}
}
