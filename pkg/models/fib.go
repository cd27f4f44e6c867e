package models

import "math"

// ratioEpsilon tolerates float drift when looking up a level by ratio.
const ratioEpsilon = 1e-9

// FibLevel is a single Fibonacci retracement or extension price.
type FibLevel struct {
	Ratio       float64 `json:"ratio"`
	Price       float64 `json:"price"`
	IsExtension bool    `json:"is_extension"`
}

// FibResult holds the full level set derived from a swing high/low anchor
// pair. AnchorHigh is always strictly greater than AnchorLow; a result that
// would violate that is never produced.
type FibResult struct {
	Levels             []FibLevel `json:"levels"`
	AnchorHigh         float64    `json:"anchor_high"`
	AnchorLow          float64    `json:"anchor_low"`
	IsBullish          bool       `json:"is_bullish"`
	AnchorHighBarIndex int        `json:"anchor_high_bar_index"`
	AnchorLowBarIndex  int        `json:"anchor_low_bar_index"`
}

// Range returns the anchor high-low distance.
func (f *FibResult) Range() float64 {
	return f.AnchorHigh - f.AnchorLow
}

// LevelPrice looks up the price for a given ratio. The second return value
// reports whether the ratio exists in the level set.
func (f *FibResult) LevelPrice(ratio float64) (float64, bool) {
	for _, lvl := range f.Levels {
		if math.Abs(lvl.Ratio-ratio) < ratioEpsilon {
			return lvl.Price, true
		}
	}
	return 0, false
}
