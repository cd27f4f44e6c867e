package risk

import (
	"math"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// R:R thresholds for letter grading.
const (
	gradeAMinRR = 2.5
	gradeBMinRR = 1.8
	gradeCMinRR = 1.2
)

// Params carries the instrument geometry and account limit the sizing
// function needs.
type Params struct {
	TickSize       float64
	TickValue      float64
	MaxAccountRisk float64
}

// Compute sizes and grades a trade from its entry, stop, and target. Pure
// function; a zero stop distance yields one contract and an R:R of zero
// rather than an error.
func Compute(entry, stopLoss, target float64, p Params) models.RiskResult {
	stopDistance := math.Abs(entry - stopLoss)

	stopTicks := 0
	if p.TickSize > 0 {
		stopTicks = int(math.Round(stopDistance / p.TickSize))
	}

	contracts := 1
	if stopTicks > 0 && p.TickValue > 0 {
		riskPerContract := float64(stopTicks) * p.TickValue
		if c := int(math.Floor(p.MaxAccountRisk / riskPerContract)); c > 1 {
			contracts = c
		}
	}

	dollarRisk := float64(stopTicks) * p.TickValue * float64(contracts)

	rr := 0.0
	if stopDistance > 0 {
		rr = math.Abs(target-entry) / stopDistance
	}

	return models.RiskResult{
		StopDistance: stopDistance,
		StopTicks:    stopTicks,
		Contracts:    contracts,
		DollarRisk:   dollarRisk,
		RR:           rr,
		Grade:        gradeForRR(rr),
	}
}

func gradeForRR(rr float64) models.Grade {
	switch {
	case rr >= gradeAMinRR:
		return models.GradeA
	case rr >= gradeBMinRR:
		return models.GradeB
	case rr >= gradeCMinRR:
		return models.GradeC
	}
	return models.GradeD
}
