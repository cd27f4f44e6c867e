package bhg

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/zincdigitalofmiami/bhg-engine/pkg/models"
)

// Config holds the state machine's tunables. Zero values are not usable;
// start from DefaultConfig.
type Config struct {
	TickSize               float64
	ContactExpiryBars      int
	SetupExpiryBars        int
	ReentrySuppressionBars int
}

// DefaultConfig mirrors the production constants: MES ticks, 10-bar contact
// expiry, 20-bar confirmed expiry, 40-bar post-trigger suppression.
func DefaultConfig() Config {
	return Config{
		TickSize:               0.25,
		ContactExpiryBars:      10,
		SetupExpiryBars:        20,
		ReentrySuppressionBars: 40,
	}
}

// The fib ratios eligible to host a setup.
var setupRatios = []float64{0.5, 0.618}

var directions = []models.Direction{models.Bullish, models.Bearish}

// track identifies one independent (direction, ratio) state-machine instance.
type track struct {
	direction models.Direction
	ratio     float64
}

// Advance folds the full candle history through every (direction, ratio)
// track and returns all setups: active ones first in track order, then
// completed ones most-recent-first. The machine holds no state across calls;
// re-running the same window yields identical output.
//
// Each track holds at most one active setup. A new touch is ignored while
// one is active and is suppressed for ReentrySuppressionBars bars after the
// track's most recent trigger.
func Advance(candles []models.Candle, fibResult *models.FibResult, moves []models.MeasuredMove, cfg Config) []models.Setup {
	if len(candles) == 0 || fibResult == nil {
		return nil
	}

	active := make(map[track]*models.Setup)
	lastTrigger := make(map[track]int)
	var completed []models.Setup

	retire := func(key track, s *models.Setup) {
		completed = append(completed, *s)
		delete(active, key)
	}

	for i := range candles {
		c := &candles[i]

		for _, dir := range directions {
			for _, ratio := range setupRatios {
				key := track{direction: dir, ratio: ratio}

				if s := active[key]; s != nil {
					switch s.Phase {
					case models.PhaseContact:
						if i-s.TouchBarIndex > cfg.ContactExpiryBars {
							s.Phase = models.PhaseExpired
							retire(key, s)
							break
						}
						if isHook(c, dir, s.FibLevel) {
							s.Phase = models.PhaseConfirmed
							s.HookTime = c.Time
							s.HookBarIndex = i
							s.HookLow = c.Low
							s.HookHigh = c.High
							s.HookClose = c.Close
						}
					case models.PhaseConfirmed:
						// Expiry is checked before the go attempt.
						if i-s.HookBarIndex > s.ExpiryBars {
							s.Phase = models.PhaseExpired
							retire(key, s)
							break
						}
						if goType, ok := goFired(c, dir, s); ok {
							s.Phase = models.PhaseTriggered
							s.GoTime = c.Time
							s.GoBarIndex = i
							s.GoType = goType
							ComputeTargets(s, fibResult, moves, cfg)
							lastTrigger[key] = i
							retire(key, s)
						}
					}
				}

				if active[key] != nil {
					continue
				}
				if lt, ok := lastTrigger[key]; ok && i-lt <= cfg.ReentrySuppressionBars {
					continue
				}

				level, ok := fibResult.LevelPrice(ratio)
				if !ok {
					continue
				}
				if c.Covers(level) {
					active[key] = &models.Setup{
						ID:            setupID(dir, ratio, i),
						Direction:     dir,
						FibRatio:      ratio,
						FibLevel:      level,
						Phase:         models.PhaseContact,
						TouchTime:     c.Time,
						TouchBarIndex: i,
						TouchPrice:    level,
						ExpiryBars:    cfg.SetupExpiryBars,
					}
				}
			}
		}
	}

	// Active setups first in track order, then completed most-recent-first.
	out := make([]models.Setup, 0, len(active)+len(completed))
	for _, dir := range directions {
		for _, ratio := range setupRatios {
			if s := active[track{direction: dir, ratio: ratio}]; s != nil {
				out = append(out, *s)
			}
		}
	}
	for i := len(completed) - 1; i >= 0; i-- {
		out = append(out, completed[i])
	}
	return out
}

// setupID derives a stable identity from the (direction, ratio, touch bar)
// tuple so that re-running the same window yields byte-identical setups.
func setupID(dir models.Direction, ratio float64, touchBar int) string {
	name := fmt.Sprintf("%s:%v:%d", dir, ratio, touchBar)
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte(name)).String()
}

// isHook reports whether the candle is a qualifying rejection at the level:
// the candle trades through the level, closes back on the setup's side, and
// carries a rejection wick at least as long as its body.
func isHook(c *models.Candle, dir models.Direction, level float64) bool {
	if dir == models.Bullish {
		return c.Low <= level && c.Close > level && (c.Close-c.Low) >= c.Body()
	}
	return c.High >= level && c.Close < level && (c.High-c.Close) >= c.Body()
}

// goFired reports whether the candle confirms the hook. A strict wick beyond
// the hook extreme is a break; the type is reported as a close only when the
// close itself also exceeds the extreme.
func goFired(c *models.Candle, dir models.Direction, s *models.Setup) (models.GoType, bool) {
	if dir == models.Bullish {
		if c.High <= s.HookHigh && c.Close <= s.HookHigh {
			return "", false
		}
		if c.Close > s.HookHigh {
			return models.GoClose, true
		}
		return models.GoBreak, true
	}
	if c.Low >= s.HookLow && c.Close >= s.HookLow {
		return "", false
	}
	if c.Close < s.HookLow {
		return models.GoClose, true
	}
	return models.GoBreak, true
}
