package models

// EventPhase classifies the current economic-calendar regime. It is supplied
// by an external collaborator and treated as opaque input here.
type EventPhase string

const (
	EventQuiet     EventPhase = "quiet"
	EventPreEvent  EventPhase = "pre_event"
	EventBlackout  EventPhase = "blackout" // active release window, hard veto
	EventPostEvent EventPhase = "post_event"
)

// TechnicalReadings is a small set of sub-indicator values computed over the
// same candle window the setup was detected on.
type TechnicalReadings struct {
	RSI           float64 `json:"rsi"`
	MACDHistogram float64 `json:"macd_histogram"`
	EMAFast       float64 `json:"ema_fast"`
	EMASlow       float64 `json:"ema_slow"`
	BollingerPctB float64 `json:"bollinger_pct_b"`
	LastClose     float64 `json:"last_close"`
}

// ProbabilityBaseline is an externally supplied TP-hit probability baseline,
// looked up by setup regime (fib ratio x risk grade x volatility bucket x
// session x go type).
type ProbabilityBaseline struct {
	PTp1        float64 `json:"p_tp1"`
	PTp2        float64 `json:"p_tp2"`
	Confidence  float64 `json:"confidence"` // 0-1
	SampleCount int     `json:"sample_count"`
}

// BaselineKey documents the regime key the external baseline store uses.
type BaselineKey struct {
	FibRatio         float64 `json:"fib_ratio"`
	RiskGrade        Grade   `json:"risk_grade"`
	VolatilityBucket string  `json:"volatility_bucket"`
	Session          string  `json:"session"`
	GoType           GoType  `json:"go_type"`
}

// FeatureVector is the composite scorer's input, assembled from a triggered
// setup and its surrounding context.
type FeatureVector struct {
	Direction   Direction `json:"direction"`
	FibRatio    float64   `json:"fib_ratio"`
	HookQuality float64   `json:"hook_quality"` // 0-1

	MoveAligned bool    `json:"move_aligned"` // an active/forming measured move shares the direction
	MoveQuality float64 `json:"move_quality"` // 0-100, best aligned move

	RiskGrade    Grade   `json:"risk_grade"`
	RR           float64 `json:"rr"`
	StopDistance float64 `json:"stop_distance"`

	EventPhase EventPhase `json:"event_phase"`
	NewsVolume int        `json:"news_volume"` // headline count in the window

	CorrelationAligned   bool    `json:"correlation_aligned"`
	CorrelationComposite float64 `json:"correlation_composite"`
	VolatilityCorr       float64 `json:"volatility_corr"`

	Technical TechnicalReadings `json:"technical"`

	// ConfidenceAdjustment scales the baseline probabilities before the
	// alignment nudges are applied. Supplied externally; 1.0 is neutral.
	ConfidenceAdjustment float64 `json:"confidence_adjustment"`
}

// SubScores are the six 0-100 components of the composite score.
type SubScores struct {
	Fib         float64 `json:"fib"`
	Risk        float64 `json:"risk"`
	Event       float64 `json:"event"`
	Correlation float64 `json:"correlation"`
	Technical   float64 `json:"technical"`
	Baseline    float64 `json:"baseline"`
}

// TradeScore is the composite scorer's output.
type TradeScore struct {
	Composite float64   `json:"composite"` // 0-100
	Grade     Grade     `json:"grade"`
	Scores    SubScores `json:"scores"`
	PTp1      float64   `json:"p_tp1"` // adjusted
	PTp2      float64   `json:"p_tp2"` // adjusted
	Flags     []string  `json:"flags,omitempty"` // advisory only, never affects the score
}
