package bhg

import (
	"math"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// Target geometry constants.
const (
	bufferRangeFraction = 0.02 // stop buffer as a fraction of the anchor range
	bufferMinTicks      = 4    // floor on the forced minimum distance, in ticks
	bufferScale         = 1.5  // forced minimum distance as a multiple of buffer

	tp1FallbackRatio = 0.236 // beyond the far anchor when the 1.236 extension is missing
	tp2FallbackRatio = 0.618 // beyond the far anchor when the 1.618 extension is missing
)

// ComputeTargets populates entry, stop, and both take-profits on a triggered
// setup. It is a no-op on any other phase; the state machine calls it
// unconditionally.
//
// Candidate levels are filtered to the side of entry the setup's own
// direction requires and the nearest survivor wins, with forced minimum
// distances when no candidate survives. The fib anchor's own orientation is
// never trusted for sign, so the ordering invariant (stop < entry < tp1 <
// tp2 for bullish, mirrored for bearish) holds even when the anchor
// orientation disagrees with the setup direction.
func ComputeTargets(s *models.Setup, fib *models.FibResult, moves []models.MeasuredMove, cfg Config) {
	if s == nil || s.Phase != models.PhaseTriggered || fib == nil {
		return
	}

	tick := cfg.TickSize
	rng := fib.Range()
	entry := roundToTick(s.HookClose, tick)

	buffer := rng * bufferRangeFraction
	if buffer < tick {
		buffer = tick
	}
	minDistance := bufferScale * buffer
	if floor := float64(bufferMinTicks) * tick; minDistance < floor {
		minDistance = floor
	}

	bullish := s.Direction == models.Bullish

	// Stop: next fib ratio inward, the touched level itself, or the
	// opposite anchor -- whichever survives the side filter and sits
	// nearest to entry, offset outward by the buffer.
	nextRatio := 0.618
	if s.FibRatio != 0.5 {
		nextRatio = 0.786
	}
	stopCandidates := []float64{s.FibLevel}
	if p, ok := fib.LevelPrice(nextRatio); ok {
		stopCandidates = append(stopCandidates, p)
	}
	if bullish {
		stopCandidates = append(stopCandidates, fib.AnchorLow)
	} else {
		stopCandidates = append(stopCandidates, fib.AnchorHigh)
	}

	stop := beyond(entry, -minDistance, bullish)
	if pick, ok := nearest(stopCandidates, entry, bullish); ok {
		candidate := beyond(pick, -buffer, bullish)
		// Keep the candidate only if it lands strictly beyond entry.
		if bullish && candidate < entry || !bullish && candidate > entry {
			stop = candidate
		}
	}

	// Take-profits from the 1.236 and 1.618 extensions, falling back to a
	// projection beyond the far anchor when an extension is absent.
	tpCandidates := []float64{
		extensionPrice(fib, 1.236, tp1FallbackRatio, bullish),
		extensionPrice(fib, 1.618, tp2FallbackRatio, bullish),
	}
	var tp1, tp2 float64
	onSide := filterSide(tpCandidates, entry, bullish)
	switch len(onSide) {
	case 2:
		// filterSide returns nearest-first.
		tp1, tp2 = onSide[0], onSide[1]
	case 1:
		tp1 = onSide[0]
		tp2 = beyond(tp1, minDistance, bullish)
	default:
		tp1 = beyond(entry, minDistance, bullish)
		tp2 = beyond(tp1, minDistance, bullish)
	}

	// Measured-move override: an active or forming move in the setup's
	// direction whose target sits on the correct side of entry replaces
	// tp1.
	for i := range moves {
		m := &moves[i]
		if m.Direction != s.Direction {
			continue
		}
		if m.Status != models.MoveActive && m.Status != models.MoveForming {
			continue
		}
		if bullish && m.Target > entry || !bullish && m.Target < entry {
			tp1 = m.Target
			break
		}
	}

	// tp2 must clear tp1 by the forced minimum distance.
	if bullish && tp2 < tp1+minDistance {
		tp2 = tp1 + minDistance
	}
	if !bullish && tp2 > tp1-minDistance {
		tp2 = tp1 - minDistance
	}

	s.Entry = entry
	s.StopLoss = stop
	s.TP1 = tp1
	s.TP2 = tp2
}

// nearest returns the candidate closest to entry on the trade's stop side:
// the maximum candidate below entry for bullish setups, the minimum above
// for bearish.
func nearest(candidates []float64, entry float64, bullish bool) (float64, bool) {
	found := false
	var best float64
	for _, p := range candidates {
		if bullish && p >= entry || !bullish && p <= entry {
			continue
		}
		if !found || (bullish && p > best) || (!bullish && p < best) {
			best = p
			found = true
		}
	}
	return best, found
}

// filterSide keeps candidates strictly beyond entry in the profit direction,
// nearest first.
func filterSide(candidates []float64, entry float64, bullish bool) []float64 {
	var out []float64
	for _, p := range candidates {
		if bullish && p > entry || !bullish && p < entry {
			out = append(out, p)
		}
	}
	if len(out) == 2 {
		nearer := math.Abs(out[0]-entry) <= math.Abs(out[1]-entry)
		if !nearer {
			out[0], out[1] = out[1], out[0]
		}
	}
	return out
}

// extensionPrice resolves an extension ratio from the level set, projecting
// past the far anchor by the fallback ratio when the level is missing.
func extensionPrice(fib *models.FibResult, ratio, fallbackRatio float64, bullish bool) float64 {
	if p, ok := fib.LevelPrice(ratio); ok {
		return p
	}
	if bullish {
		return fib.AnchorHigh + fib.Range()*fallbackRatio
	}
	return fib.AnchorLow - fib.Range()*fallbackRatio
}

func beyond(price, distance float64, bullish bool) float64 {
	if bullish {
		return price + distance
	}
	return price - distance
}

func roundToTick(price, tick float64) float64 {
	if tick <= 0 {
		return price
	}
	return math.Round(price/tick) * tick
}
