package models

// Grade is a letter grade assigned by the risk engine and composite scorer.
type Grade string

const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
)

// RiskResult is the output of the position-sizing / grading function.
type RiskResult struct {
	StopDistance float64 `json:"stop_distance"`
	StopTicks    int     `json:"stop_ticks"`
	Contracts    int     `json:"contracts"`
	DollarRisk   float64 `json:"dollar_risk"`
	RR           float64 `json:"rr"` // reward-to-risk ratio
	Grade        Grade   `json:"grade"`
}
