package models

// SwingPoint represents a confirmed local pivot high or low. Immutable once
// created; downstream components read it and never mutate it.
type SwingPoint struct {
	Price    float64 `json:"price"`
	BarIndex int     `json:"bar_index"`
	IsHigh   bool    `json:"is_high"`
	Time     int64   `json:"time"` // unix seconds
}
