package models

// CorrelationAlignment translates cross-asset return correlations into a
// directional bullish/bearish alignment score. Volatility-index and
// dollar-index correlations are inverted before weighting; the equity-index
// correlation is used directly. Composite is clamped to [-1, 1].
type CorrelationAlignment struct {
	Direction      Direction `json:"direction"`
	VolatilityCorr float64   `json:"volatility_corr"`
	DollarCorr     float64   `json:"dollar_corr"`
	EquityCorr     float64   `json:"equity_corr"`
	Composite      float64   `json:"composite"`
	Aligned        bool      `json:"aligned"`
	SamplesUsed    int       `json:"samples_used"`    // smallest overlapping return count
	PairsEvaluated int       `json:"pairs_evaluated"` // reference pairs with enough data
}
