package aggregate

import (
	"time"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// Supported resampling resolutions, smallest first.
var supportedResolutions = []time.Duration{
	1 * time.Minute,
	5 * time.Minute,
	15 * time.Minute,
	30 * time.Minute,
	1 * time.Hour,
	4 * time.Hour,
	24 * time.Hour,
}

// SupportedResolution reports whether d is one of the resolutions the engine
// resamples to.
func SupportedResolution(d time.Duration) bool {
	for _, r := range supportedResolutions {
		if r == d {
			return true
		}
	}
	return false
}

// Resample folds finer-grained candles into epoch-aligned buckets of the
// given resolution: first open, running high/low extremes, last close,
// summed volume. Input must be ordered ascending by time; output preserves
// that order. Buckets with no candles are simply absent. Returns nil when
// the resolution is not positive.
func Resample(candles []models.Candle, resolution time.Duration) []models.Candle {
	secs := int64(resolution / time.Second)
	if secs <= 0 || len(candles) == 0 {
		return nil
	}

	out := make([]models.Candle, 0, len(candles)/int(secs)+1)
	var cur *models.Candle

	for i := range candles {
		c := &candles[i]
		bucket := c.Time - c.Time%secs

		if cur == nil || cur.Time != bucket {
			if cur != nil {
				out = append(out, *cur)
			}
			cur = &models.Candle{
				Time:   bucket,
				Open:   c.Open,
				High:   c.High,
				Low:    c.Low,
				Close:  c.Close,
				Volume: c.Volume,
			}
			continue
		}

		if c.High > cur.High {
			cur.High = c.High
		}
		if c.Low < cur.Low {
			cur.Low = c.Low
		}
		cur.Close = c.Close
		cur.Volume += c.Volume
	}
	out = append(out, *cur)

	return out
}
