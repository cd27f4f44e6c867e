package models

// Direction of a setup or measured move.
type Direction string

const (
	Bullish Direction = "bullish"
	Bearish Direction = "bearish"
)

// Phase of a BHG setup's lifecycle. Triggered and Expired are terminal.
type Phase string

const (
	PhaseContact   Phase = "contact"
	PhaseConfirmed Phase = "confirmed"
	PhaseTriggered Phase = "triggered"
	PhaseExpired   Phase = "expired"
)

// GoType records how the go confirmation fired.
type GoType string

const (
	GoBreak GoType = "break"
	GoClose GoType = "close"
)

// Setup is a Touch-Hook-Go trade setup anchored to a single Fibonacci level.
// One instance exists per (direction, fib ratio, originating touch bar);
// phase fields are populated progressively as the state machine advances.
type Setup struct {
	ID        string    `json:"id"`
	Direction Direction `json:"direction"`
	FibRatio  float64   `json:"fib_ratio"` // 0.5 or 0.618
	FibLevel  float64   `json:"fib_level"` // price of the touched level
	Phase     Phase     `json:"phase"`

	// Touch (contact with the fib level)
	TouchTime     int64   `json:"touch_time"`
	TouchBarIndex int     `json:"touch_bar_index"`
	TouchPrice    float64 `json:"touch_price"`

	// Hook (rejection candle)
	HookTime     int64   `json:"hook_time,omitempty"`
	HookBarIndex int     `json:"hook_bar_index,omitempty"`
	HookLow      float64 `json:"hook_low,omitempty"`
	HookHigh     float64 `json:"hook_high,omitempty"`
	HookClose    float64 `json:"hook_close,omitempty"`

	// Go (break or close beyond the hook extreme)
	GoTime     int64  `json:"go_time,omitempty"`
	GoBarIndex int    `json:"go_bar_index,omitempty"`
	GoType     GoType `json:"go_type,omitempty"`

	// Targets, populated only once the phase reaches Triggered.
	Entry    float64 `json:"entry,omitempty"`
	StopLoss float64 `json:"stop_loss,omitempty"`
	TP1      float64 `json:"tp1,omitempty"`
	TP2      float64 `json:"tp2,omitempty"`

	// ExpiryBars bounds how long the setup may sit in Confirmed before
	// forced expiry.
	ExpiryBars int `json:"expiry_bars"`
}

// Terminal reports whether the setup can no longer advance.
func (s *Setup) Terminal() bool {
	return s.Phase == PhaseTriggered || s.Phase == PhaseExpired
}

// HookQuality measures the rejection strength of the hook candle as the
// direction-side wick's share of the candle range, clamped to [0, 1].
// Returns 0 before a hook has formed.
func (s *Setup) HookQuality() float64 {
	rng := s.HookHigh - s.HookLow
	if rng <= 0 {
		return 0
	}
	var wick float64
	if s.Direction == Bullish {
		wick = s.HookClose - s.HookLow
	} else {
		wick = s.HookHigh - s.HookClose
	}
	q := wick / rng
	if q < 0 {
		return 0
	}
	if q > 1 {
		return 1
	}
	return q
}
