package scoring

import (
	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// BuildFeatureVector folds a triggered setup and its surrounding context into
// the composite scorer's input. Only active or forming measured moves in the
// setup's direction count as aligned; the best such quality is carried.
func BuildFeatureVector(
	setup *models.Setup,
	riskResult models.RiskResult,
	moves []models.MeasuredMove,
	corr models.CorrelationAlignment,
	eventPhase models.EventPhase,
	newsVolume int,
	readings *models.TechnicalReadings,
	confidenceAdjustment float64,
) models.FeatureVector {
	fv := models.FeatureVector{
		Direction:   setup.Direction,
		FibRatio:    setup.FibRatio,
		HookQuality: setup.HookQuality(),

		RiskGrade:    riskResult.Grade,
		RR:           riskResult.RR,
		StopDistance: riskResult.StopDistance,

		EventPhase: eventPhase,
		NewsVolume: newsVolume,

		CorrelationAligned:   corr.Aligned,
		CorrelationComposite: corr.Composite,
		VolatilityCorr:       corr.VolatilityCorr,

		ConfidenceAdjustment: confidenceAdjustment,
	}

	for i := range moves {
		m := &moves[i]
		if m.Direction != setup.Direction {
			continue
		}
		if m.Status != models.MoveActive && m.Status != models.MoveForming {
			continue
		}
		fv.MoveAligned = true
		if m.Quality > fv.MoveQuality {
			fv.MoveQuality = m.Quality
		}
	}

	if readings != nil {
		fv.Technical = *readings
	}

	return fv
}
