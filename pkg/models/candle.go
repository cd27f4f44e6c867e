package models

import (
	"time"
)

// Candle represents a single OHLCV price bar. Bars are ordered ascending by
// time; missing bars are simply absent, no gap-filling is performed.
type Candle struct {
	Time   int64   `json:"time"` // unix seconds
	Open   float64 `json:"open"`
	High   float64 `json:"high"`
	Low    float64 `json:"low"`
	Close  float64 `json:"close"`
	Volume int64   `json:"volume"`
}

// Timestamp returns the candle time as time.Time.
func (c *Candle) Timestamp() time.Time {
	return time.Unix(c.Time, 0).UTC()
}

// Range returns the high-low range of the candle.
func (c *Candle) Range() float64 {
	return c.High - c.Low
}

// Body returns the absolute open-close distance.
func (c *Candle) Body() float64 {
	if c.Close >= c.Open {
		return c.Close - c.Open
	}
	return c.Open - c.Close
}

// Covers reports whether price falls inside the candle's [low, high] range.
func (c *Candle) Covers(price float64) bool {
	return c.Low <= price && price <= c.High
}

// Closes extracts the close series from a candle slice.
func Closes(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i := range candles {
		out[i] = candles[i].Close
	}
	return out
}

// Highs extracts the high series from a candle slice.
func Highs(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i := range candles {
		out[i] = candles[i].High
	}
	return out
}

// Lows extracts the low series from a candle slice.
func Lows(candles []Candle) []float64 {
	out := make([]float64, len(candles))
	for i := range candles {
		out[i] = candles[i].Low
	}
	return out
}
