package scoring

import (
	"fmt"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// Fixed sub-score weights.
const (
	fibWeight         = 0.15
	riskWeight        = 0.15
	eventWeight       = 0.20
	correlationWeight = 0.10
	technicalWeight   = 0.10
	baselineWeight    = 0.30
)

// Composite grade thresholds.
const (
	gradeAMin = 75.0
	gradeBMin = 55.0
	gradeCMin = 35.0
)

// Probability bounds after adjustment.
const (
	probFloor = 0.0
	probCeil  = 0.95
)

// lowSampleThreshold flags baselines built on thin history.
const lowSampleThreshold = 30

// Composite folds the feature vector and probability baseline into a single
// 0-100 score, a letter grade, and adjusted TP-hit probabilities. An event
// blackout is a hard veto: composite 0, grade D, probabilities 0, whatever
// the other sub-scores say. Advisory flags are attached but never move the
// numbers.
func Composite(fv models.FeatureVector, baseline models.ProbabilityBaseline) models.TradeScore {
	scores := models.SubScores{
		Fib:         fibScore(fv),
		Risk:        riskScore(fv),
		Event:       eventScore(fv),
		Correlation: correlationScore(fv),
		Technical:   technicalScore(fv),
		Baseline:    baselineScore(baseline),
	}

	flags := advisoryFlags(fv, baseline)

	if fv.EventPhase == models.EventBlackout {
		return models.TradeScore{
			Composite: 0,
			Grade:     models.GradeD,
			Scores:    scores,
			PTp1:      0,
			PTp2:      0,
			Flags:     flags,
		}
	}

	composite := fibWeight*scores.Fib +
		riskWeight*scores.Risk +
		eventWeight*scores.Event +
		correlationWeight*scores.Correlation +
		technicalWeight*scores.Technical +
		baselineWeight*scores.Baseline
	composite = clamp(composite, 0, 100)

	p1, p2 := adjustProbabilities(fv, baseline)

	return models.TradeScore{
		Composite: composite,
		Grade:     gradeFor(composite),
		Scores:    scores,
		PTp1:      p1,
		PTp2:      p2,
		Flags:     flags,
	}
}

// fibScore rates the setup geometry: a golden-ratio touch starts higher, and
// the hook's rejection strength carries the rest.
func fibScore(fv models.FeatureVector) float64 {
	base := 50.0
	if fv.FibRatio == 0.618 {
		base = 60
	}
	return clamp(base+fv.HookQuality*40, 0, 100)
}

// riskScore maps the risk grade onto a base score with a small R:R bonus.
func riskScore(fv models.FeatureVector) float64 {
	var base float64
	switch fv.RiskGrade {
	case models.GradeA:
		base = 90
	case models.GradeB:
		base = 75
	case models.GradeC:
		base = 55
	default:
		base = 30
	}
	if fv.RR > 1 {
		bonus := (fv.RR - 1) * 4
		if bonus > 10 {
			bonus = 10
		}
		base += bonus
	}
	return clamp(base, 0, 100)
}

// eventScore rates how safe the macro-event regime is for a fresh entry.
func eventScore(fv models.FeatureVector) float64 {
	var base float64
	switch fv.EventPhase {
	case models.EventQuiet:
		base = 100
	case models.EventPostEvent:
		base = 70
	case models.EventPreEvent:
		base = 40
	case models.EventBlackout:
		return 0
	}
	if fv.NewsVolume >= 20 {
		base -= 20
	} else if fv.NewsVolume >= 10 {
		base -= 10
	}
	return clamp(base, 0, 100)
}

// correlationScore centers on 50 and moves with the composite's directional
// agreement.
func correlationScore(fv models.FeatureVector) float64 {
	directional := fv.CorrelationComposite
	if fv.Direction == models.Bearish {
		directional = -directional
	}
	return clamp(50+directional*50, 0, 100)
}

// technicalScore counts direction-aware confluence across the four readings,
// 25 points each.
func technicalScore(fv models.FeatureVector) float64 {
	t := fv.Technical
	score := 0.0

	if fv.Direction == models.Bullish {
		if t.RSI >= 45 && t.RSI <= 70 {
			score += 25
		}
		if t.MACDHistogram > 0 {
			score += 25
		}
		if t.EMAFast > t.EMASlow {
			score += 25
		}
		if t.BollingerPctB >= 0.5 {
			score += 25
		}
		return score
	}

	if t.RSI >= 30 && t.RSI <= 55 {
		score += 25
	}
	if t.MACDHistogram < 0 {
		score += 25
	}
	if t.EMAFast < t.EMASlow {
		score += 25
	}
	if t.BollingerPctB <= 0.5 {
		score += 25
	}
	return score
}

// baselineScore scales the baseline TP1 probability toward a neutral 50 as
// confidence drops.
func baselineScore(baseline models.ProbabilityBaseline) float64 {
	conf := clamp(baseline.Confidence, 0, 1)
	return clamp(50+(baseline.PTp1*100-50)*conf, 0, 100)
}

// adjustProbabilities starts from the baseline, applies the external
// confidence adjustment, then nudges for alignment vs. misalignment.
func adjustProbabilities(fv models.FeatureVector, baseline models.ProbabilityBaseline) (float64, float64) {
	adj := fv.ConfidenceAdjustment
	if adj <= 0 {
		adj = 1
	}

	factor := adj
	if fv.CorrelationAligned {
		factor *= 1.05
	} else {
		factor *= 0.90
	}
	if fv.MoveAligned {
		factor *= 1.05
	} else {
		factor *= 0.95
	}

	p1 := clamp(baseline.PTp1*factor, probFloor, probCeil)
	p2 := clamp(baseline.PTp2*factor, probFloor, probCeil)
	return p1, p2
}

// advisoryFlags builds the human-readable caveats. They never affect the
// numeric score.
func advisoryFlags(fv models.FeatureVector, baseline models.ProbabilityBaseline) []string {
	var flags []string

	switch fv.EventPhase {
	case models.EventBlackout:
		flags = append(flags, "inside event release window")
	case models.EventPreEvent:
		flags = append(flags, "economic release approaching")
	}
	if fv.VolatilityCorr > 0.5 {
		flags = append(flags, fmt.Sprintf("tracking the fear gauge (correlation %.2f)", fv.VolatilityCorr))
	}
	if baseline.SampleCount > 0 && baseline.SampleCount < lowSampleThreshold {
		flags = append(flags, fmt.Sprintf("baseline built on %d samples", baseline.SampleCount))
	}
	if !fv.CorrelationAligned {
		flags = append(flags, "cross-asset correlations misaligned")
	}
	if fv.RR > 0 && fv.RR < 1.2 {
		flags = append(flags, fmt.Sprintf("reward-to-risk %.2f below 1.2", fv.RR))
	}
	if fv.NewsVolume >= 20 {
		flags = append(flags, "elevated headline volume")
	}

	return flags
}

func gradeFor(composite float64) models.Grade {
	switch {
	case composite >= gradeAMin:
		return models.GradeA
	case composite >= gradeBMin:
		return models.GradeB
	case composite >= gradeCMin:
		return models.GradeC
	}
	return models.GradeD
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
