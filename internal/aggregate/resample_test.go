package aggregate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

func minuteCandle(offsetMin int, o, h, l, c float64, v int64) models.Candle {
	return models.Candle{
		Time:   int64(1700000400 + offsetMin*60), // aligned to a 5m boundary
		Open:   o,
		High:   h,
		Low:    l,
		Close:  c,
		Volume: v,
	}
}

func TestResampleFiveMinutes(t *testing.T) {
	candles := []models.Candle{
		minuteCandle(0, 5000, 5002, 4999, 5001, 100),
		minuteCandle(1, 5001, 5004, 5000, 5003, 150),
		minuteCandle(2, 5003, 5003.5, 4997, 4998, 200),
		minuteCandle(3, 4998, 5000, 4998, 4999, 50),
		minuteCandle(4, 4999, 5001, 4998.5, 5000.5, 80),
		minuteCandle(5, 5000.5, 5005, 5000, 5004, 120),
		minuteCandle(6, 5004, 5006, 5003, 5005, 90),
	}

	out := Resample(candles, 5*time.Minute)
	require.Len(t, out, 2)

	first := out[0]
	assert.Equal(t, int64(1700000400), first.Time)
	assert.Equal(t, 5000.0, first.Open)
	assert.Equal(t, 5004.0, first.High)
	assert.Equal(t, 4997.0, first.Low)
	assert.Equal(t, 5000.5, first.Close)
	assert.Equal(t, int64(580), first.Volume)

	second := out[1]
	assert.Equal(t, int64(1700000700), second.Time)
	assert.Equal(t, 5000.5, second.Open)
	assert.Equal(t, 5006.0, second.High)
	assert.Equal(t, int64(210), second.Volume)
}

func TestResampleSkipsEmptyBuckets(t *testing.T) {
	candles := []models.Candle{
		minuteCandle(0, 5000, 5001, 4999, 5000, 10),
		// A 20-minute gap in the feed.
		minuteCandle(20, 5010, 5011, 5009, 5010, 10),
	}

	out := Resample(candles, 5*time.Minute)
	require.Len(t, out, 2)
	assert.Equal(t, int64(1700000400), out[0].Time)
	assert.Equal(t, int64(1700000400+20*60), out[1].Time)
}

func TestResampleDegenerateInput(t *testing.T) {
	assert.Nil(t, Resample(nil, 5*time.Minute))
	assert.Nil(t, Resample([]models.Candle{minuteCandle(0, 1, 1, 1, 1, 1)}, 0))
}

func TestSupportedResolution(t *testing.T) {
	assert.True(t, SupportedResolution(5*time.Minute))
	assert.True(t, SupportedResolution(24*time.Hour))
	assert.False(t, SupportedResolution(7*time.Minute))
}
